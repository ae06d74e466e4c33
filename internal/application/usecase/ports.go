package usecase

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/Ruturas-api/internal/domain/entity"
	"github.com/jhoicas/Ruturas-api/internal/domain/rutura"
)

// PlanillaImporter puerto del lector de planillas (Excel/CSV). La
// implementación vive en infrastructure/importer.
type PlanillaImporter interface {
	// Import convierte el archivo en un lote de ruturas. Devuelve además las
	// abas/hojas reconocidas y los warnings por fila (nunca abortan el lote).
	Import(nombreArchivo string, r io.Reader) (batch []entity.Rutura, abas, warnings []string, err error)
}

// AnalysisPDFGenerator puerto del generador del informe PDF del análisis.
type AnalysisPDFGenerator interface {
	GenerateAnalysisPDF(ctx context.Context, a *rutura.Analisis, generado time.Time) ([]byte, error)
}
