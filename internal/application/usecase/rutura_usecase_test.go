package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ruturas-api/internal/application/dto"
	"github.com/jhoicas/Ruturas-api/internal/application/usecase"
	"github.com/jhoicas/Ruturas-api/internal/domain"
	"github.com/jhoicas/Ruturas-api/internal/domain/repository"
	"github.com/jhoicas/Ruturas-api/internal/infrastructure/importer"
	"github.com/jhoicas/Ruturas-api/internal/infrastructure/memory"
)

// planilla mínima: el mismo producto aparece a las 14h y a las 18h (persiste)
// y otro solo a las 14h (repuesto).
const csvEjemplo = `Semana;Hora Rutura;Seção;OT;REQ;Nº Produto;Descrição;Qtd. Req.;Qtd. Env.;Qtd. Falta;Data;Stock CT;Stock FF;Em Trânsito FF
;Rutura 14h;Pastelaria;OT1;R1;1001;Farinha;10;4;6;01/04/2025;0;5;0
;Rutura 14h;Cafetaria;OT2;R2;1002;Café em grão;8;8;2;01/04/2025;3;0;0
;Rutura 18h;Pastelaria;OT1;R1;1001;Farinha;10;4;6;01/04/2025;0;5;0
`

func nuevoRuturaUC() (*usecase.RuturaUseCase, *memory.RuturaRepo) {
	repo := memory.NewRuturaRepository()
	return usecase.NewRuturaUseCase(repo, importer.NewService()), repo
}

func TestRuturaUseCase_ImportYList(t *testing.T) {
	uc, _ := nuevoRuturaUC()
	ctx := context.Background()

	out, err := uc.ImportFile(ctx, "ruturas.csv", strings.NewReader(csvEjemplo))
	require.NoError(t, err)
	assert.Equal(t, 3, out.Importadas)
	assert.Equal(t, []string{"ruturas.csv"}, out.Abas)

	list, err := uc.List(ctx, dto.RuturaListRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	assert.Equal(t, 3, list.Page.Total)

	// La semana vacía en la planilla se recalcula desde la fecha.
	assert.Equal(t, "1ª Semana de Abril", list.Items[0].Semana)
	assert.Equal(t, "PASTELARIA", list.Items[0].SecaoNormalizada)
	assert.Equal(t, "01/04/2025", list.Items[0].Fecha)
}

func TestRuturaUseCase_ImportVacio(t *testing.T) {
	uc, _ := nuevoRuturaUC()

	soloHeader := "Semana;Hora Rutura;Seção;OT;REQ\n"
	_, err := uc.ImportFile(context.Background(), "vacio.csv", strings.NewReader(soloHeader))
	assert.ErrorIs(t, err, domain.ErrEmptyImport)
}

func TestRuturaUseCase_ListFiltroHora(t *testing.T) {
	uc, _ := nuevoRuturaUC()
	ctx := context.Background()

	_, err := uc.ImportFile(ctx, "ruturas.csv", strings.NewReader(csvEjemplo))
	require.NoError(t, err)

	list, err := uc.List(ctx, dto.RuturaListRequest{Hora: "18h"})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "1001", list.Items[0].NumeroProducto)
	// El total del listado cuenta lo filtrado, no el lote entero.
	assert.Equal(t, 1, list.Page.Total)
}

func TestRuturaUseCase_ListTotalFiltradoConPaginacion(t *testing.T) {
	uc, _ := nuevoRuturaUC()
	ctx := context.Background()

	_, err := uc.ImportFile(ctx, "ruturas.csv", strings.NewReader(csvEjemplo))
	require.NoError(t, err)

	// Página de 1 sobre las dos filas de las 14h: el total sigue siendo 2.
	list, err := uc.List(ctx, dto.RuturaListRequest{
		PageRequest: dto.PageRequest{Limit: 1},
		Hora:        "14h",
	})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, 2, list.Page.Total)
}

func TestRuturaUseCase_ListFechaInvalida(t *testing.T) {
	uc, _ := nuevoRuturaUC()

	_, err := uc.List(context.Background(), dto.RuturaListRequest{Desde: "2025-04-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRuturaUseCase_Clear(t *testing.T) {
	uc, repo := nuevoRuturaUC()
	ctx := context.Background()

	_, err := uc.ImportFile(ctx, "ruturas.csv", strings.NewReader(csvEjemplo))
	require.NoError(t, err)

	out, err := uc.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Eliminadas)

	n, err := repo.Count(ctx, repository.RuturaFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

// El export debe poder reimportarse tal cual y producir el mismo lote.
func TestRuturaUseCase_ExportReimportable(t *testing.T) {
	uc, _ := nuevoRuturaUC()
	ctx := context.Background()

	_, err := uc.ImportFile(ctx, "ruturas.csv", strings.NewReader(csvEjemplo))
	require.NoError(t, err)

	datos, err := uc.ExportCSV(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, datos)

	uc2, _ := nuevoRuturaUC()
	out, err := uc2.ImportFile(ctx, "export.csv", strings.NewReader(string(datos)))
	require.NoError(t, err)
	assert.Equal(t, 3, out.Importadas)

	list, err := uc2.List(ctx, dto.RuturaListRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "1001", list.Items[0].NumeroProducto)
	assert.Equal(t, "6", list.Items[0].QtdFalta.String())
}

func TestEsFormatoSoportado(t *testing.T) {
	assert.True(t, usecase.EsFormatoSoportado("planilla.xlsx"))
	assert.True(t, usecase.EsFormatoSoportado("RUTURAS.CSV"))
	assert.False(t, usecase.EsFormatoSoportado("planilla.xls"))
	assert.False(t, usecase.EsFormatoSoportado("datos.json"))
}
