package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Ruturas-api/internal/domain/entity"
)

// RuturaFilter filtros de listado. Los campos vacíos no filtran.
type RuturaFilter struct {
	Semana string
	Secao  string // se compara contra la sección normalizada
	Hora   string // "14H" | "18H"
	Desde  time.Time
	Hasta  time.Time
	Limit  int // 0 = sin límite
	Offset int
}

// RuturaRepository puerto de persistencia del lote de ruturas. El motor de
// análisis nunca lo toca: los casos de uso cargan el lote y se lo entregan
// al motor como slice en memoria.
type RuturaRepository interface {
	// SaveBatch persiste un lote completo de registros importados.
	SaveBatch(ctx context.Context, batch []entity.Rutura) error
	// List devuelve los registros que pasan el filtro, en orden de creación.
	List(ctx context.Context, f RuturaFilter) ([]entity.Rutura, error)
	// Count total de registros que pasan el filtro, ignorando Limit/Offset.
	Count(ctx context.Context, f RuturaFilter) (int, error)
	// Clear borra todos los registros (operación "limpiar datos" del dashboard).
	Clear(ctx context.Context) error
}
