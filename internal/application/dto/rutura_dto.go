package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RuturaResponse un registro de rutura en respuestas HTTP. Las fechas salen
// en DD/MM/YYYY porque así las consume el frontend del cliente.
type RuturaResponse struct {
	ID               string          `json:"id"`
	Semana           string          `json:"semana"`
	HoraRutura       string          `json:"hora_rutura"`
	HoraDaRutura     string          `json:"hora_da_rutura"`
	Secao            string          `json:"secao"`
	SecaoNormalizada string          `json:"secao_normalizada"`
	TipoRequisicao   string          `json:"tipo_requisicao"`
	OT               string          `json:"ot"`
	REQ              string          `json:"req"`
	TipoProducto     string          `json:"tipo_produto"`
	NumeroProducto   string          `json:"numero_produto"`
	Descricao        string          `json:"descricao"`
	QtdReq           decimal.Decimal `json:"qtd_req"`
	QtdEnv           decimal.Decimal `json:"qtd_env"`
	QtdFalta         decimal.Decimal `json:"qtd_falta"`
	UnMed            string          `json:"un_med"`
	Fecha            string          `json:"data"` // DD/MM/YYYY, vacía si desconocida
	StockCT          decimal.Decimal `json:"stock_ct"`
	StockFF          decimal.Decimal `json:"stock_ff"`
	EmTransitoFF     decimal.Decimal `json:"em_transito_ff"`
	TipologiaRutura  string          `json:"tipologia_rutura"`
	AbaOrigem        string          `json:"aba_origem"`
	CreatedAt        time.Time       `json:"created_at"`
}

// RuturaListResponse listado paginado.
type RuturaListResponse struct {
	Items []RuturaResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// RuturaListRequest filtros de listado vía query params.
type RuturaListRequest struct {
	PageRequest
	Semana string `query:"semana"`
	Secao  string `query:"secao"`
	Hora   string `query:"hora"`  // "14H" | "18H"
	Desde  string `query:"desde"` // DD/MM/YYYY
	Hasta  string `query:"hasta"`
}

// ImportResponse resultado de un import de planilla.
type ImportResponse struct {
	Importadas int      `json:"importadas"`
	Abas       []string `json:"abas"`
	Warnings   []string `json:"warnings,omitempty"`
}

// ClearResponse resultado de limpiar los datos.
type ClearResponse struct {
	Eliminadas int `json:"eliminadas"`
}
