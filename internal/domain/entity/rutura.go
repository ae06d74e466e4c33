package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AbaOrigem identifica la hoja/pestaña de la que vino el registro en el
// import. Es independiente de la hora derivada del texto libre: cuando el
// texto no permite clasificar 14H/18H, la aba es el único indicio.
type AbaOrigem string

const (
	Aba14H    AbaOrigem = "14H"
	Aba18H    AbaOrigem = "18H"
	AbaImport AbaOrigem = "IMPORT"
	AbaOutra  AbaOrigem = "OUTRA"
)

// Rutura representa un evento de rotura de stock observado en uno de los dos
// cortes diarios (14:00 / 18:00). Los nombres de campos siguen la planilla
// del cliente (portugués): OT = orden de trabajo, REQ = requisición,
// CT = armazém central, FF = armazém secundario (fornecedor).
//
// Los registros son inmutables tras el import: el motor de análisis nunca
// los modifica, solo los lee.
type Rutura struct {
	ID              string
	Semana          string // etiqueta "1ª Semana de Abril"; recalculada desde Fecha si viene vacía
	HoraRutura      string // texto libre, ej. "Rutura 14h"
	HoraDaRutura    string // texto libre con detalle, ej. "Rutura 14h-Sem Stock Físico e BC"
	Secao           string // sección/estación tal como vino (sin normalizar)
	TipoRequisicao  string // NORMAL | EXTRA
	OT              string
	REQ             string
	TipoProducto    string
	NumeroProducto  string
	Descricao       string
	QtdReq          decimal.Decimal // >= 0
	QtdEnv          decimal.Decimal // >= 0
	QtdFalta        decimal.Decimal // >= 0; 0 significa resuelta sea cual sea el corte
	UnMed           string
	Fecha           time.Time // zero time = fecha desconocida
	StockCT         decimal.Decimal
	StockFF         decimal.Decimal
	EmTransitoFF    decimal.Decimal
	TipologiaRutura string
	AbaOrigem       AbaOrigem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
