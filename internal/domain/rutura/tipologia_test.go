package rutura_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/jhoicas/Ruturas-api/internal/domain/rutura"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// TestInferirTipologia recorre la tabla de decisión completa: una combinación
// de entrada, una salida determinista.
func TestInferirTipologia(t *testing.T) {
	tests := []struct {
		nombre                       string
		qtdReq, qtdEnv, qtdFalta     string
		stockCT, stockFF, emTransito string
		want                         string
	}{
		{"sin stock en ningún lado", "2", "0", "2", "0", "0", "0", rutura.TipologiaSemStock},
		{"stock en CT pero nada enviado", "3", "0", "3", "5", "0", "0", rutura.TipologiaAcerto},
		{"solo stock en FF", "1", "0", "1", "0", "4", "0", rutura.TipologiaPedirFF},
		{"mercancía en tránsito", "1", "0", "1", "0", "0", "2", rutura.TipologiaTransferencia},
		{"tránsito con stock FF", "1", "0", "1", "0", "3", "2", rutura.TipologiaTransferencia},
		{"combinación sin regla", "2", "1", "1", "5", "3", "1", rutura.TipologiaOutros},
		{"sin falta no hay rutura activa", "2", "2", "0", "0", "0", "0", rutura.TipologiaOutros},
	}
	for _, tc := range tests {
		t.Run(tc.nombre, func(t *testing.T) {
			got := rutura.InferirTipologia(
				d(tc.qtdReq), d(tc.qtdEnv), d(tc.qtdFalta),
				d(tc.stockCT), d(tc.stockFF), d(tc.emTransito),
			)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTipologiaEfectiva(t *testing.T) {
	// Declarada no vacía: pasa tal cual, sin inferencia.
	got := rutura.TipologiaEfectiva("Produto Descontinuado", d("1"), d("0"), d("1"), d("0"), d("0"), d("0"))
	assert.Equal(t, rutura.TipologiaDescontinuado, got)

	// Vacía o solo espacios: se infiere desde el stock.
	got = rutura.TipologiaEfectiva("   ", d("1"), d("0"), d("1"), d("0"), d("0"), d("0"))
	assert.Equal(t, rutura.TipologiaSemStock, got)
}
