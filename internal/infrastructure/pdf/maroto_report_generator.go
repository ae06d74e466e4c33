// Package pdf implementa el informe PDF del análisis de ruturas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: total / 14H / 18H / no repostos / tasa resolución     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: productos más afetados                               │
//	│  TABLA: seções más afetadas                                  │
//	│  TABLA: distribución de tipologías                           │
//	│  TABLA: tendencia semanal                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: indicadores de stock + leyenda                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Ruturas-api/internal/domain/rutura"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.AnalysisPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateAnalysisPDF genera el informe y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateAnalysisPDF(_ context.Context, a *rutura.Analisis, generado time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Análise de Ruturas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generado))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(a))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(seccionTitulo("PRODUTOS MAIS AFETADOS"))
	m.AddRows(productosHeaderRow())
	for _, r := range productosRows(a.ProductosMasAfetados) {
		m.AddRows(r)
	}

	m.AddRows(seccionTitulo("SEÇÕES MAIS AFETADAS"))
	for _, r := range secoesRows(a.SecoesMasAfetadas) {
		m.AddRows(r)
	}

	m.AddRows(seccionTitulo("DISTRIBUIÇÃO DE TIPOLOGIAS"))
	for _, r := range tipologiasRows(a.DistribucionTipologias) {
		m.AddRows(r)
	}

	m.AddRows(seccionTitulo("TENDÊNCIA SEMANAL"))
	m.AddRows(tendenciaHeaderRow())
	for _, r := range tendenciaRows(a.TendenciaSemanal) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(stockFooterRow(a.IndicadoresStock))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generado time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("ANÁLISE DE RUTURAS", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Reconciliação dos cortes 14H / 18H", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Gerado: "+generado.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// kpiRow: fila de indicadores principales, cinco columnas iguales.
func kpiRow(a *rutura.Analisis) core.Row {
	kpi := func(valor, label string) core.Col {
		return col.New(2).Add(
			text.New(valor, props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Center,
				Color: colorPrimary, Top: 1,
			}),
			text.New(label, props.Text{
				Size: 7, Align: align.Center, Top: 9, Color: colorGray,
			}),
		)
	}
	return row.New(16).Add(
		col.New(1),
		kpi(fmt.Sprintf("%d", a.TotalRuturas), "Total de ruturas"),
		kpi(fmt.Sprintf("%d", a.Ruturas14H), "Ruturas 14H"),
		kpi(fmt.Sprintf("%d", a.Ruturas18H), "Ruturas 18H"),
		kpi(fmt.Sprintf("%d", a.NaoRepostos), "Não repostos"),
		kpi(fmt.Sprintf("%.1f%%", a.TasaResolucion), "Taxa de resolução"),
		col.New(1),
	)
}

func seccionTitulo(titulo string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3,
		}),
	))
}

func productosHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Produto", 2, align.Left),
		h("Descrição", 4, align.Left),
		h("14H", 1, align.Center),
		h("18H", 1, align.Center),
		h("Não rep.", 2, align.Center),
		h("Seções", 2, align.Center),
	)
}

func productosRows(lista []rutura.ProductoAfetado) []core.Row {
	out := make([]core.Row, 0, len(lista))
	for _, p := range lista {
		out = append(out, row.New(5).Add(
			col.New(2).Add(text.New(p.Producto, props.Text{Size: 7.5, Top: 0.5, Left: 1})),
			col.New(4).Add(text.New(p.Descricao, props.Text{Size: 7.5, Top: 0.5, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", p.Ocorrencias14H), props.Text{Size: 7.5, Align: align.Center, Top: 0.5})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", p.Ocorrencias18H), props.Text{Size: 7.5, Align: align.Center, Top: 0.5})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", p.NaoRepostos), props.Text{Size: 7.5, Align: align.Center, Top: 0.5})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", p.SecoesAfetadas), props.Text{Size: 7.5, Align: align.Center, Top: 0.5})),
		))
	}
	return out
}

func secoesRows(lista []rutura.SecaoAfetada) []core.Row {
	out := make([]core.Row, 0, len(lista))
	for _, s := range lista {
		out = append(out, row.New(5).Add(
			col.New(8).Add(text.New(s.Secao, props.Text{Size: 7.5, Top: 0.5, Left: 1})),
			col.New(4).Add(text.New(fmt.Sprintf("%d ruturas", s.Count), props.Text{Size: 7.5, Align: align.Right, Top: 0.5, Right: 1})),
		))
	}
	return out
}

func tipologiasRows(lista []rutura.TipologiaCount) []core.Row {
	out := make([]core.Row, 0, len(lista))
	for _, t := range lista {
		out = append(out, row.New(5).Add(
			col.New(7).Add(text.New(t.Tipologia, props.Text{Size: 7.5, Top: 0.5, Left: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", t.Count), props.Text{Size: 7.5, Align: align.Center, Top: 0.5})),
			col.New(3).Add(text.New(fmt.Sprintf("%.1f%%", t.Percentagem), props.Text{Size: 7.5, Align: align.Right, Top: 0.5, Right: 1})),
		))
	}
	return out
}

func tendenciaHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: a, Top: 1, Left: 1,
		}))
	}
	return row.New(6).Add(
		h("Semana", 5, align.Left),
		h("14H", 2, align.Center),
		h("18H", 2, align.Center),
		h("Não repostos", 3, align.Center),
	)
}

func tendenciaRows(lista []rutura.TendenciaSemana) []core.Row {
	out := make([]core.Row, 0, len(lista))
	for _, s := range lista {
		out = append(out, row.New(5).Add(
			col.New(5).Add(text.New(s.Semana, props.Text{Size: 7.5, Top: 0.5, Left: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", s.Ruturas14H), props.Text{Size: 7.5, Align: align.Center, Top: 0.5})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", s.Ruturas18H), props.Text{Size: 7.5, Align: align.Center, Top: 0.5})),
			col.New(3).Add(text.New(fmt.Sprintf("%d", s.NaoRepostos), props.Text{Size: 7.5, Align: align.Center, Top: 0.5})),
		))
	}
	return out
}

func stockFooterRow(ind rutura.IndicadoresStock) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("INDICADORES DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Sem stock CT: %d   |   Sem stock FF: %d   |   Em trânsito da FF: %d",
				ind.SemStockCT, ind.SemStockFF, ind.EmTransitoFF,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}
