package dto

import "github.com/shopspring/decimal"

// AnalysisRequest parámetros del análisis. Los filtros recortan el lote
// antes de la pasada del motor; los porcentajes se calculan siempre sobre el
// lote ya filtrado.
type AnalysisRequest struct {
	TopN   int    `query:"top_n"`
	Semana string `query:"semana"`
	Secao  string `query:"secao"`
	Desde  string `query:"desde"` // DD/MM/YYYY
	Hasta  string `query:"hasta"`
}

// ProductoAfetadoDTO fila del ranking de productos.
type ProductoAfetadoDTO struct {
	Producto       string `json:"produto"`
	Descricao      string `json:"descricao"`
	Ocorrencias14H int    `json:"ocorrencias_14h"`
	Ocorrencias18H int    `json:"ocorrencias_18h"`
	NaoRepostos    int    `json:"nao_repostos"`
	SecoesAfetadas int    `json:"secoes_afetadas"`
}

// SecaoAfetadaDTO fila del ranking de secciones.
type SecaoAfetadaDTO struct {
	Secao string `json:"secao"`
	Count int    `json:"count"`
}

// TipologiaDTO fila de la distribución de tipologías.
type TipologiaDTO struct {
	Tipologia   string  `json:"tipologia"`
	Count       int     `json:"count"`
	Percentagem float64 `json:"percentagem"`
}

// TendenciaSemanaDTO punto de la tendencia semanal (orden cronológico).
type TendenciaSemanaDTO struct {
	Semana      string `json:"semana"`
	Ruturas14H  int    `json:"ruturas_14h"`
	Ruturas18H  int    `json:"ruturas_18h"`
	NaoRepostos int    `json:"nao_repostos"`
}

// IndicadoresStockDTO conteos de stock sobre el lote filtrado.
type IndicadoresStockDTO struct {
	SemStockCT   int `json:"sem_stock_ct"`
	SemStockFF   int `json:"sem_stock_ff"`
	EmTransitoFF int `json:"em_transito_ff"`
}

// ProductoCriticoDTO fila del ranking por cantidad en falta.
type ProductoCriticoDTO struct {
	Producto  string          `json:"produto"`
	Descricao string          `json:"descricao"`
	QtdFalta  decimal.Decimal `json:"qtd_falta"`
}

// AnalysisResponse resultado completo del análisis para el dashboard.
type AnalysisResponse struct {
	TotalRuturas   int             `json:"total_ruturas"`
	Ruturas14H     int             `json:"ruturas_14h"`
	Ruturas18H     int             `json:"ruturas_18h"`
	NaoRepostos    int             `json:"nao_repostos"`
	SecoesAfetadas int             `json:"secoes_afetadas"`
	QtdFaltaTotal  decimal.Decimal `json:"qtd_falta_total"`
	TasaResolucion float64         `json:"taxa_resolucao"`

	ProductosMasAfetados   []ProductoAfetadoDTO `json:"produtos_mais_afetados"`
	SecoesMasAfetadas      []SecaoAfetadaDTO    `json:"secoes_mais_afetadas"`
	DistribucionTipologias []TipologiaDTO       `json:"tipologias"`
	TendenciaSemanal       []TendenciaSemanaDTO `json:"tendencia_semanal"`
	IndicadoresStock       IndicadoresStockDTO  `json:"indicadores_stock"`
	ProductosCriticos      []ProductoCriticoDTO `json:"produtos_criticos"`
}
