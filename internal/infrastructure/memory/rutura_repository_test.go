package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ruturas-api/internal/domain"
	"github.com/jhoicas/Ruturas-api/internal/domain/entity"
	"github.com/jhoicas/Ruturas-api/internal/domain/repository"
	"github.com/jhoicas/Ruturas-api/internal/infrastructure/memory"
)

func rutura(id, hora, secao string, fecha time.Time) entity.Rutura {
	return entity.Rutura{
		ID:             id,
		HoraRutura:     hora,
		Secao:          secao,
		NumeroProducto: "P-" + id,
		QtdFalta:       decimal.NewFromInt(1),
		Fecha:          fecha,
		AbaOrigem:      entity.AbaImport,
	}
}

func TestRuturaRepo_SaveListConservaOrden(t *testing.T) {
	repo := memory.NewRuturaRepository()
	ctx := context.Background()

	lote := []entity.Rutura{
		rutura("a", "Rutura 14h", "Pastelaria", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)),
		rutura("b", "Rutura 18h", "Cafetaria", time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)),
		rutura("c", "Rutura 14h", "Pastelaria", time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC)),
	}
	require.NoError(t, repo.SaveBatch(ctx, lote))

	got, err := repo.List(ctx, repository.RuturaFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)

	n, err := repo.Count(ctx, repository.RuturaFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRuturaRepo_FiltroSecaoNormalizada(t *testing.T) {
	repo := memory.NewRuturaRepository()
	ctx := context.Background()

	// Variantes de la misma sección: deben caer en el mismo filtro.
	require.NoError(t, repo.SaveBatch(ctx, []entity.Rutura{
		rutura("a", "Rutura 14h", "Cozinha Fria", time.Time{}),
		rutura("b", "Rutura 14h", "COZ FRIA", time.Time{}),
		rutura("c", "Rutura 14h", "Pastelaria", time.Time{}),
	}))

	got, err := repo.List(ctx, repository.RuturaFilter{Secao: "COZINHA FRIA"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRuturaRepo_FiltroHora(t *testing.T) {
	repo := memory.NewRuturaRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveBatch(ctx, []entity.Rutura{
		rutura("a", "Rutura 14h", "X", time.Time{}),
		rutura("b", "Rutura 18h", "X", time.Time{}),
		rutura("c", "sin clasificar", "X", time.Time{}),
	}))

	got14, err := repo.List(ctx, repository.RuturaFilter{Hora: "14H"})
	require.NoError(t, err)
	require.Len(t, got14, 1)
	assert.Equal(t, "a", got14[0].ID)

	got18, err := repo.List(ctx, repository.RuturaFilter{Hora: "18H"})
	require.NoError(t, err)
	require.Len(t, got18, 1)
	assert.Equal(t, "b", got18[0].ID)
}

func TestRuturaRepo_FiltroFechas(t *testing.T) {
	repo := memory.NewRuturaRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveBatch(ctx, []entity.Rutura{
		rutura("a", "Rutura 14h", "X", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)),
		rutura("b", "Rutura 14h", "X", time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)),
		rutura("c", "Rutura 14h", "X", time.Time{}), // fecha desconocida
	}))

	got, err := repo.List(ctx, repository.RuturaFilter{
		Desde: time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestRuturaRepo_LimitOffset(t *testing.T) {
	repo := memory.NewRuturaRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveBatch(ctx, []entity.Rutura{
		rutura("a", "Rutura 14h", "X", time.Time{}),
		rutura("b", "Rutura 14h", "X", time.Time{}),
		rutura("c", "Rutura 14h", "X", time.Time{}),
	}))

	got, err := repo.List(ctx, repository.RuturaFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestRuturaRepo_CountConFiltro(t *testing.T) {
	repo := memory.NewRuturaRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveBatch(ctx, []entity.Rutura{
		rutura("a", "Rutura 14h", "X", time.Time{}),
		rutura("b", "Rutura 14h", "X", time.Time{}),
		rutura("c", "Rutura 18h", "X", time.Time{}),
	}))

	// Limit no acota el conteo: Count mide el universo filtrado.
	n, err := repo.Count(ctx, repository.RuturaFilter{Hora: "14H", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRuturaRepo_Clear(t *testing.T) {
	repo := memory.NewRuturaRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveBatch(ctx, []entity.Rutura{
		rutura("a", "Rutura 14h", "X", time.Time{}),
	}))
	require.NoError(t, repo.Clear(ctx))

	n, err := repo.Count(ctx, repository.RuturaFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUserRepo_EmailUnico(t *testing.T) {
	repo := memory.NewUserRepository()

	u := &entity.User{ID: "1", Email: "ana@example.com", Role: entity.RoleAnalista}
	require.NoError(t, repo.Create(u))

	err := repo.Create(&entity.User{ID: "2", Email: "ana@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	got, err := repo.FindByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "1", got.ID)

	missing, err := repo.FindByEmail("nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepo_GetByID(t *testing.T) {
	repo := memory.NewUserRepository()
	require.NoError(t, repo.Create(&entity.User{ID: "u-1", Email: "x@example.com"}))

	got, err := repo.GetByID("u-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "x@example.com", got.Email)

	missing, err := repo.GetByID("u-2")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
