package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ruturas-api/internal/application/auth"
	"github.com/jhoicas/Ruturas-api/internal/application/usecase"
	"github.com/jhoicas/Ruturas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RuturaUC   *usecase.RuturaUseCase
	AnalysisUC *usecase.AnalysisUseCase
	ReportUC   *usecase.ReportUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ruturas (protegido)
	ruturas := protected.Group("/ruturas")
	ruturaHandler := NewRuturaHandler(deps.RuturaUC)
	ruturas.Post("/import", ruturaHandler.Import)
	ruturas.Get("/", ruturaHandler.List)
	ruturas.Get("/export", ruturaHandler.Export)
	// Borrar el lote es destructivo: solo admin.
	ruturas.Delete("/", RequireRole(entity.RoleAdmin), ruturaHandler.Clear)

	// Análisis (protegido)
	analysisHandler := NewAnalysisHandler(deps.AnalysisUC)
	protected.Get("/analysis", analysisHandler.Get)

	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/analysis/report", reportHandler.Download)
}
