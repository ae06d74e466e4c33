package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ruturas-api/internal/application/dto"
	"github.com/jhoicas/Ruturas-api/internal/application/usecase"
	"github.com/jhoicas/Ruturas-api/internal/domain"
)

// ReportHandler descarga del informe PDF del análisis.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler del informe.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Download godoc
// @Summary      Informe PDF del análisis de ruturas
// @Tags         analysis
// @Produce      application/pdf
// @Param        top_n   query  int     false  "tamaño de los rankings, por defecto 10"
// @Param        semana  query  string  false  "filtrar por etiqueta de semana"
// @Param        secao   query  string  false  "filtrar por sección"
// @Param        desde   query  string  false  "DD/MM/YYYY"
// @Param        hasta   query  string  false  "DD/MM/YYYY"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analysis/report [get]
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	var in dto.AnalysisRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query params inválidos"})
	}
	datos, err := h.uc.GeneratePDF(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="analise-ruturas.pdf"`)
	return c.Send(datos)
}
