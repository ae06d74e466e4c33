// Package memory contiene adaptadores de persistencia en memoria. Se usan
// cuando la app arranca sin configuración de PostgreSQL (modo local) y en los
// tests de los casos de uso.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Ruturas-api/internal/domain/entity"
	"github.com/jhoicas/Ruturas-api/internal/domain/repository"
	"github.com/jhoicas/Ruturas-api/internal/domain/rutura"
)

var _ repository.RuturaRepository = (*RuturaRepo)(nil)

// RuturaRepo implementación en memoria del puerto RuturaRepository.
// Conserva el orden de inserción; el filtrado replica la semántica del
// adaptador PostgreSQL (sección normalizada, hora derivada, semana efectiva).
type RuturaRepo struct {
	mu    sync.RWMutex
	items []entity.Rutura
}

// NewRuturaRepository construye el repositorio en memoria.
func NewRuturaRepository() *RuturaRepo {
	return &RuturaRepo{}
}

// SaveBatch agrega el lote al final, conservando el orden de entrada.
func (r *RuturaRepo) SaveBatch(_ context.Context, batch []entity.Rutura) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, batch...)
	return nil
}

// List devuelve copias de los registros que pasan el filtro, en orden de
// inserción.
func (r *RuturaRepo) List(_ context.Context, f repository.RuturaFilter) ([]entity.Rutura, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Rutura, 0, len(r.items))
	saltados := 0
	for i := range r.items {
		rt := &r.items[i]
		if !pasaFiltro(rt, f) {
			continue
		}
		if saltados < f.Offset {
			saltados++
			continue
		}
		out = append(out, *rt)
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
	}
	return out, nil
}

// Count total de registros que pasan el filtro, ignorando Limit/Offset.
func (r *RuturaRepo) Count(_ context.Context, f repository.RuturaFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for i := range r.items {
		if pasaFiltro(&r.items[i], f) {
			n++
		}
	}
	return n, nil
}

// Clear borra todo el lote.
func (r *RuturaRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	return nil
}

func pasaFiltro(rt *entity.Rutura, f repository.RuturaFilter) bool {
	if f.Semana != "" && rutura.SemanaEfectiva(rt) != f.Semana {
		return false
	}
	if f.Secao != "" && rutura.NormalizarSecao(rt.Secao) != f.Secao {
		return false
	}
	if f.Hora != "" && rutura.HoraDe(rt).String() != f.Hora {
		return false
	}
	if !f.Desde.IsZero() && (rt.Fecha.IsZero() || rt.Fecha.Before(f.Desde)) {
		return false
	}
	if !f.Hasta.IsZero() && (rt.Fecha.IsZero() || rt.Fecha.After(f.Hasta)) {
		return false
	}
	return true
}
