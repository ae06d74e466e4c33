package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Ruturas-api/internal/application/dto"
)

// ReportUseCase genera el informe PDF del análisis de ruturas.
type ReportUseCase struct {
	analysis  *AnalysisUseCase
	generator AnalysisPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(analysis *AnalysisUseCase, generator AnalysisPDFGenerator) *ReportUseCase {
	return &ReportUseCase{analysis: analysis, generator: generator}
}

// GeneratePDF ejecuta el análisis con los filtros dados y lo renderiza.
func (uc *ReportUseCase) GeneratePDF(ctx context.Context, in dto.AnalysisRequest) ([]byte, error) {
	a, err := uc.analysis.Analisis(ctx, in)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateAnalysisPDF(ctx, a, time.Now())
}
