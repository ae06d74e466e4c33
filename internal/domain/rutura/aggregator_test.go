package rutura_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Ruturas-api/internal/domain/entity"
	"github.com/jhoicas/Ruturas-api/internal/domain/rutura"
)

func loteEjemplo() []entity.Rutura {
	abril := func(dia int) time.Time {
		return time.Date(2025, time.April, dia, 0, 0, 0, 0, time.UTC)
	}
	r := func(hora, producto, secao, ot, req, falta string, fecha time.Time) entity.Rutura {
		out := nuevaRutura(hora, producto, secao, ot, req, falta)
		out.Fecha = fecha
		out.TipologiaRutura = rutura.TipologiaSemStock
		return out
	}

	return []entity.Rutura{
		// P1 persiste de 14H a 18H en la 1ª semana
		r("Rutura 14h", "P1", "Cozinha Fria", "OT1", "REQ1", "5", abril(1)),
		r("Rutura 18h", "P1", "COZINHA FRIA", "OT1", "REQ1", "5", abril(1)),
		// P2 repuesta (sin contraparte 18H)
		r("Rutura 14h", "P2", "TALHO", "OT2", "REQ2", "2", abril(2)),
		// P3 en la 2ª semana, solo 18H
		r("Rutura 18h", "P3", "PADARIA", "OT3", "REQ3", "8", abril(9)),
	}
}

func TestAnalizar_MetricasCabecera(t *testing.T) {
	a := rutura.Analizar(loteEjemplo(), 0)

	assert.Equal(t, 4, a.TotalRuturas)
	assert.Equal(t, 2, a.Ruturas14H)
	assert.Equal(t, 2, a.Ruturas18H)
	assert.Equal(t, 1, a.NaoRepostos)
	assert.Equal(t, 3, a.SecoesAfetadas) // COZINHA FRIA, TALHO, PADARIA
	assert.True(t, a.QtdFaltaTotal.Equal(decimal.RequireFromString("20")))
	// 2 ruturas 14H, 1 persistió: 50% de resolución
	assert.InDelta(t, 50.0, a.TasaResolucion, 0.0001)
}

func TestAnalizar_Determinista(t *testing.T) {
	lote := loteEjemplo()
	a1 := rutura.Analizar(lote, 5)
	a2 := rutura.Analizar(lote, 5)
	assert.Equal(t, a1, a2, "misma entrada, salida idéntica")
}

func TestAnalizar_ProductosMasAfetados(t *testing.T) {
	a := rutura.Analizar(loteEjemplo(), 10)

	require.NotEmpty(t, a.ProductosMasAfetados)
	top := a.ProductosMasAfetados[0]
	// P1: 1 ocurrencia 14H + 1 no repuesta = 2; P2: 1; P3: 0
	assert.Equal(t, "P1", top.Producto)
	assert.Equal(t, 1, top.Ocorrencias14H)
	assert.Equal(t, 1, top.Ocorrencias18H)
	assert.Equal(t, 1, top.NaoRepostos)
	assert.Equal(t, 1, top.SecoesAfetadas)
}

func TestAnalizar_SeccionesColapsanNormalizadas(t *testing.T) {
	// "Cozinha Fria" y "COZINHA FRIA" deben caer en el mismo bucket.
	a := rutura.Analizar(loteEjemplo(), 10)

	var fria *rutura.SecaoAfetada
	for i := range a.SecoesMasAfetadas {
		if a.SecoesMasAfetadas[i].Secao == "COZINHA FRIA" {
			fria = &a.SecoesMasAfetadas[i]
		}
	}
	require.NotNil(t, fria)
	assert.Equal(t, 2, fria.Count)

	// Conservación: cada registro cae en exactamente un bucket de sección.
	suma := 0
	for _, s := range a.SecoesMasAfetadas {
		suma += s.Count
	}
	assert.Equal(t, a.TotalRuturas, suma)
}

func TestAnalizar_DistribucionTipologias(t *testing.T) {
	lote := loteEjemplo()
	lote[3].TipologiaRutura = rutura.TipologiaPedirFF
	a := rutura.Analizar(lote, 10)

	require.Len(t, a.DistribucionTipologias, 2)
	assert.Equal(t, rutura.TipologiaSemStock, a.DistribucionTipologias[0].Tipologia)
	assert.Equal(t, 3, a.DistribucionTipologias[0].Count)
	assert.InDelta(t, 75.0, a.DistribucionTipologias[0].Percentagem, 0.0001)

	// Los porcentajes suman ~100 sobre el lote completo.
	suma := 0.0
	for _, tc := range a.DistribucionTipologias {
		suma += tc.Percentagem
	}
	assert.InDelta(t, 100.0, suma, 0.0001)
}

func TestAnalizar_TendenciaSemanalCronologica(t *testing.T) {
	a := rutura.Analizar(loteEjemplo(), 10)

	require.Len(t, a.TendenciaSemanal, 2)
	assert.Equal(t, "1ª Semana de Abril", a.TendenciaSemanal[0].Semana)
	assert.Equal(t, "2ª Semana de Abril", a.TendenciaSemanal[1].Semana)

	primera := a.TendenciaSemanal[0]
	assert.Equal(t, 2, primera.Ruturas14H)
	assert.Equal(t, 1, primera.Ruturas18H)
	assert.Equal(t, 1, primera.NaoRepostos)

	segunda := a.TendenciaSemanal[1]
	assert.Equal(t, 0, segunda.Ruturas14H)
	assert.Equal(t, 1, segunda.Ruturas18H)
}

func TestAnalizar_IndicadoresStock(t *testing.T) {
	cero := decimal.Zero
	cinco := decimal.NewFromInt(5)
	dos := decimal.NewFromInt(2)
	lote := []entity.Rutura{
		{NumeroProducto: "A", QtdFalta: cinco, StockCT: cero, StockFF: cinco, EmTransitoFF: cero},
		{NumeroProducto: "B", QtdFalta: cinco, StockCT: cinco, StockFF: cero, EmTransitoFF: dos},
		{NumeroProducto: "C", QtdFalta: cinco, StockCT: cero, StockFF: cero, EmTransitoFF: cero},
	}
	a := rutura.Analizar(lote, 10)

	assert.Equal(t, 2, a.IndicadoresStock.SemStockCT)
	assert.Equal(t, 2, a.IndicadoresStock.SemStockFF)
	assert.Equal(t, 1, a.IndicadoresStock.EmTransitoFF)
}

func TestAnalizar_ProductosCriticos(t *testing.T) {
	a := rutura.Analizar(loteEjemplo(), 10)

	require.NotEmpty(t, a.ProductosCriticos)
	// P3 acumula 8 de falta, por encima de P1 (5) y P2 (2).
	assert.Equal(t, "P3", a.ProductosCriticos[0].Producto)
	assert.True(t, a.ProductosCriticos[0].QtdFalta.Equal(decimal.NewFromInt(8)))
}

func TestAnalizar_TopNEstable(t *testing.T) {
	// Truncar a N nunca reordena el prefijo respecto a la lista completa.
	lote := loteEjemplo()
	completo := rutura.Analizar(lote, 100)
	truncado := rutura.Analizar(lote, 2)

	require.Len(t, truncado.ProductosMasAfetados, 2)
	assert.Equal(t, completo.ProductosMasAfetados[:2], truncado.ProductosMasAfetados)
	assert.Equal(t, completo.ProductosCriticos[:2], truncado.ProductosCriticos)
}

func TestAnalizar_LoteVacio(t *testing.T) {
	a := rutura.Analizar(nil, 5)

	assert.Zero(t, a.TotalRuturas)
	assert.Zero(t, a.Ruturas14H)
	assert.Zero(t, a.NaoRepostos)
	assert.Zero(t, a.TasaResolucion)
	assert.Empty(t, a.ProductosMasAfetados)
	assert.Empty(t, a.SecoesMasAfetadas)
	assert.Empty(t, a.DistribucionTipologias)
	assert.Empty(t, a.TendenciaSemanal)
	assert.Empty(t, a.ProductosCriticos)
	assert.True(t, a.QtdFaltaTotal.IsZero())
}

func TestAnalizar_SemanaInvalidaParticipa(t *testing.T) {
	// Fecha desconocida: el registro cuenta en todos los agregados y su
	// semana cae en el bucket centinela, que ordena primero.
	sinFecha := nuevaRutura("Rutura 14h", "PX", "TALHO", "OTX", "REQX", "1")
	sinFecha.Fecha = time.Time{}
	lote := append(loteEjemplo(), sinFecha)

	a := rutura.Analizar(lote, 10)
	assert.Equal(t, 5, a.TotalRuturas)
	require.Len(t, a.TendenciaSemanal, 3)
	assert.Equal(t, rutura.SemanaInvalidaLabel, a.TendenciaSemanal[0].Semana)
}
