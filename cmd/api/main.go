package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Ruturas-api/internal/application/auth"
	"github.com/jhoicas/Ruturas-api/internal/application/usecase"
	"github.com/jhoicas/Ruturas-api/internal/domain/repository"
	"github.com/jhoicas/Ruturas-api/internal/infrastructure/importer"
	"github.com/jhoicas/Ruturas-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Ruturas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Ruturas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Ruturas-api/internal/interfaces/http"
	"github.com/jhoicas/Ruturas-api/pkg/config"
	"github.com/jhoicas/Ruturas-api/pkg/logger"
)

// swaggerHandler construye el middleware de Swagger UI. El middleware lee el
// archivo en la construcción y entra en pánico si falta, así que devolvemos
// nil cuando no existe y la API arranca igual, solo sin /docs.
func swaggerHandler(filePath string) fiber.Handler {
	if _, err := os.Stat(filePath); err != nil {
		return nil
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Ruturas API",
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Persistencia: PostgreSQL si hay configuración, si no el modo local en
	// memoria (útil para demo y desarrollo sin DB).
	var ruturaRepo repository.RuturaRepository
	var userRepo repository.UserRepository
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		ruturaRepo = postgres.NewRuturaRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
		log.Info().Msg("persistencia: PostgreSQL")
	} else {
		ruturaRepo = memory.NewRuturaRepository()
		userRepo = memory.NewUserRepository()
		log.Warn().Msg("persistencia: memoria (sin DB configurada, los datos se pierden al apagar)")
	}

	importerSvc := importer.NewService()
	ruturaUC := usecase.NewRuturaUseCase(ruturaRepo, importerSvc)
	analysisUC := usecase.NewAnalysisUseCase(ruturaRepo)
	reportUC := usecase.NewReportUseCase(analysisUC, infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Import.MaxUploadMB * 1024 * 1024,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if h := swaggerHandler("./docs/swagger.json"); h != nil {
		app.Use(h)
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RuturaUC:   ruturaUC,
		AnalysisUC: analysisUC,
		ReportUC:   reportUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
