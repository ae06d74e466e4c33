package importer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Ruturas-api/internal/domain"
	"github.com/jhoicas/Ruturas-api/internal/domain/entity"
	"github.com/jhoicas/Ruturas-api/internal/domain/rutura"
)

// Service implementación del puerto PlanillaImporter: despacha por extensión
// al lector Excel o CSV y completa los metadatos de persistencia (ID,
// timestamps, semana efectiva) antes de entregar el lote.
type Service struct{}

// NewService construye el importador de planillas.
func NewService() *Service {
	return &Service{}
}

// Import convierte el archivo en un lote de ruturas listo para persistir.
func (s *Service) Import(nombreArchivo string, r io.Reader) ([]entity.Rutura, []string, []string, error) {
	var res *Result
	var err error
	switch strings.ToLower(filepath.Ext(nombreArchivo)) {
	case ".xlsx":
		res, err = ImportExcel(r)
	case ".csv":
		res, err = ImportCSV(r, nombreArchivo)
	default:
		return nil, nil, nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, nombreArchivo)
	}
	if err != nil {
		return nil, nil, nil, err
	}

	now := time.Now()
	for i := range res.Ruturas {
		rt := &res.Ruturas[i]
		if rt.ID == "" {
			rt.ID = uuid.New().String()
		}
		if rt.Semana == "" {
			rt.Semana = rutura.SemanaEfectiva(rt)
		}
		rt.CreatedAt = now
		rt.UpdatedAt = now
	}
	return res.Ruturas, res.Abas, res.Warnings, nil
}
