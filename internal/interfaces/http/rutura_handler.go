package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ruturas-api/internal/application/dto"
	"github.com/jhoicas/Ruturas-api/internal/application/usecase"
	"github.com/jhoicas/Ruturas-api/internal/domain"
)

// RuturaHandler maneja import, listado, export y limpieza del lote.
type RuturaHandler struct {
	uc *usecase.RuturaUseCase
}

// NewRuturaHandler construye el handler de ruturas.
func NewRuturaHandler(uc *usecase.RuturaUseCase) *RuturaHandler {
	return &RuturaHandler{uc: uc}
}

// Import godoc
// @Summary      Importar planilla de ruturas (.xlsx o .csv)
// @Tags         ruturas
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "planilla con las abas 14H/18H"
// @Success      201   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      415   {object}  dto.ErrorResponse
// @Router       /api/ruturas/import [post]
func (h *RuturaHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se espera el campo multipart \"file\""})
	}
	if !usecase.EsFormatoSoportado(fh.Filename) {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: "solo se aceptan .xlsx y .csv"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()

	out, err := h.uc.ImportFile(c.Context(), fh.Filename, f)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyImport):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_IMPORT", Message: "el archivo no contiene filas de ruturas"})
		case errors.Is(err, domain.ErrUnsupportedFormat):
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ruturas con filtros y paginación
// @Tags         ruturas
// @Produce      json
// @Param        semana  query  string  false  "etiqueta de semana, ej. 1ª Semana de Abril"
// @Param        secao   query  string  false  "sección (se normaliza antes de comparar)"
// @Param        hora    query  string  false  "14H | 18H"
// @Param        desde   query  string  false  "DD/MM/YYYY"
// @Param        hasta   query  string  false  "DD/MM/YYYY"
// @Param        limit   query  int     false  "máx. 500, por defecto 50"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.RuturaListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ruturas [get]
func (h *RuturaHandler) List(c *fiber.Ctx) error {
	var in dto.RuturaListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query params inválidos"})
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Borrar todos los registros importados
// @Tags         ruturas
// @Produce      json
// @Success      200  {object}  dto.ClearResponse
// @Router       /api/ruturas [delete]
func (h *RuturaHandler) Clear(c *fiber.Ctx) error {
	out, err := h.uc.Clear(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar el lote completo como CSV reimportable
// @Tags         ruturas
// @Produce      text/csv
// @Success      200  {string}  string  "CSV con el layout de la planilla"
// @Router       /api/ruturas/export [get]
func (h *RuturaHandler) Export(c *fiber.Ctx) error {
	datos, err := h.uc.ExportCSV(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ruturas.csv"`)
	return c.Send(datos)
}
