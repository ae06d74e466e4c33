package main

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerHandler_ArchivoInexistente_DevuelveNil(t *testing.T) {
	h := swaggerHandler(filepath.Join(t.TempDir(), "no-existe.json"))
	assert.Nil(t, h, "sin archivo de documentación el servidor debe arrancar sin /docs")
}

func TestSwaggerHandler_ArchivoPresente_SirveDocs(t *testing.T) {
	doc := `{"swagger":"2.0","info":{"title":"Ruturas API","version":"1.0"},"paths":{}}`
	ruta := filepath.Join(t.TempDir(), "swagger.json")
	require.NoError(t, os.WriteFile(ruta, []byte(doc), 0o644))

	h := swaggerHandler(ruta)
	require.NotNil(t, h)

	app := fiber.New()
	app.Use(h)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// El resto de rutas sigue respondiendo con el middleware montado.
	resp, err = app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
