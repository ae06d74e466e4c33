package rutura

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Tipologías de rutura conocidas. Vienen de la planilla del cliente; cuando
// la columna llega vacía se infieren desde los niveles de stock con la tabla
// de decisión de InferirTipologia.
const (
	TipologiaSemStock      = "Sem Stock Físico e BC"
	TipologiaAcerto        = "Acerto de Inventário"
	TipologiaPedirFF       = "A pedir à FF"
	TipologiaTransferencia = "Em Transferência da FF"
	TipologiaStockInsuf    = "Stock Insuficiente"
	TipologiaDescontinuado = "Produto Descontinuado"
	TipologiaOutros        = "Outros"
)

// InferirTipologia clasifica el porqué de la rutura desde los niveles de
// stock observados. Tabla de decisión (solo aplica con QtdFalta > 0):
//
//	StockCT  StockFF  EmTransito  QtdEnv/QtdReq        → Tipología
//	0        0        0           —                    → Sem Stock Físico e BC
//	> 0      —        —           env == 0 y req > 0   → Acerto de Inventário
//	0        > 0      0           —                    → A pedir à FF
//	0        —        > 0         —                    → Em Transferência da FF
//	cualquier otra combinación                         → Outros
//
// Una QtdFalta de 0 no es rutura activa: devuelve "Outros".
func InferirTipologia(qtdReq, qtdEnv, qtdFalta, stockCT, stockFF, emTransito decimal.Decimal) string {
	if !qtdFalta.IsPositive() {
		return TipologiaOutros
	}
	ctCero := stockCT.IsZero()
	ffCero := stockFF.IsZero()
	trCero := emTransito.IsZero()
	switch {
	case ctCero && ffCero && trCero:
		return TipologiaSemStock
	case stockCT.IsPositive() && qtdEnv.IsZero() && qtdReq.IsPositive():
		return TipologiaAcerto
	case ctCero && trCero && stockFF.IsPositive():
		return TipologiaPedirFF
	case ctCero && emTransito.IsPositive():
		return TipologiaTransferencia
	default:
		return TipologiaOutros
	}
}

// TipologiaEfectiva devuelve la tipología declarada si viene informada; si
// no, la infiere desde el stock. Es la función que usa el importador.
func TipologiaEfectiva(declarada string, qtdReq, qtdEnv, qtdFalta, stockCT, stockFF, emTransito decimal.Decimal) string {
	if t := strings.TrimSpace(declarada); t != "" {
		return t
	}
	return InferirTipologia(qtdReq, qtdEnv, qtdFalta, stockCT, stockFF, emTransito)
}
