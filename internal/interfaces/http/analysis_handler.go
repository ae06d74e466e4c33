package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ruturas-api/internal/application/dto"
	"github.com/jhoicas/Ruturas-api/internal/application/usecase"
	"github.com/jhoicas/Ruturas-api/internal/domain"
)

// AnalysisHandler expone el análisis de reconciliación 14H/18H.
type AnalysisHandler struct {
	uc *usecase.AnalysisUseCase
}

// NewAnalysisHandler construye el handler de análisis.
func NewAnalysisHandler(uc *usecase.AnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// Get godoc
// @Summary      Análisis completo del lote (reconciliación + agregados)
// @Tags         analysis
// @Produce      json
// @Param        top_n   query  int     false  "tamaño de los rankings, por defecto 10"
// @Param        semana  query  string  false  "filtrar por etiqueta de semana"
// @Param        secao   query  string  false  "filtrar por sección"
// @Param        desde   query  string  false  "DD/MM/YYYY"
// @Param        hasta   query  string  false  "DD/MM/YYYY"
// @Success      200  {object}  dto.AnalysisResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analysis [get]
func (h *AnalysisHandler) Get(c *fiber.Ctx) error {
	var in dto.AnalysisRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query params inválidos"})
	}
	out, err := h.uc.Get(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
