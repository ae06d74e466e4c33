// Package importer convierte planillas Excel/CSV del cliente en lotes de
// entity.Rutura. El mapeo columna→campo, el parsing de fechas y la coerción
// numérica viven aquí: el motor de análisis recibe registros ya tipados.
//
// Los errores por fila nunca abortan el import: se acumulan como warnings y
// la fila entra con los campos que sí se pudieron leer.
package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Ruturas-api/internal/domain/entity"
	"github.com/jhoicas/Ruturas-api/internal/domain/rutura"
)

// Result lote importado más metadatos de diagnóstico.
type Result struct {
	Ruturas  []entity.Rutura
	Abas     []string
	Warnings []string
}

// campos canónicos de la planilla.
const (
	colSemana    = "semana"
	colHora      = "hora rutura"
	colHoraDa    = "hora da rutura"
	colSecao     = "secao"
	colTipoReq   = "tipo requisicao"
	colOT        = "ot"
	colREQ       = "req"
	colTipoProd  = "tipo produto"
	colNumProd   = "numero produto"
	colDescricao = "descricao"
	colQtdReq    = "qtd req"
	colQtdEnv    = "qtd env"
	colQtdFalta  = "qtd falta"
	colUnMed     = "un med"
	colFecha     = "data"
	colStockCT   = "stock ct"
	colStockFF   = "stock ff"
	colTransito  = "em transito ff"
	colTipologia = "tipologia rutura"
)

// aliasColumnas encabezados vistos en las distintas versiones de la planilla
// del cliente, ya plegados por normalizarHeader.
var aliasColumnas = map[string]string{
	"semana":              colSemana,
	"hora":                colHora,
	"hora rutura":         colHora,
	"hora da rutura":      colHoraDa,
	"secao":               colSecao,
	"departamento":        colSecao,
	"tipo requisicao":     colTipoReq,
	"tipo de requisicao":  colTipoReq,
	"ot":                  colOT,
	"req":                 colREQ,
	"requisicao":          colREQ,
	"tipo produto":        colTipoProd,
	"no produto":          colNumProd,
	"n produto":           colNumProd,
	"numero produto":      colNumProd,
	"codigo":              colNumProd,
	"descricao":           colDescricao,
	"produto":             colDescricao,
	"qtd req":             colQtdReq,
	"quantidade":          colQtdReq,
	"qtd env":             colQtdEnv,
	"enviado":             colQtdEnv,
	"qtd falta":           colQtdFalta,
	"falta":               colQtdFalta,
	"un med":              colUnMed,
	"unidade":             colUnMed,
	"data":                colFecha,
	"stock ct":            colStockCT,
	"stock ff":            colStockFF,
	"em transito ff":      colTransito,
	"em transito da ff":   colTransito,
	"tipologia rutura":    colTipologia,
	"tipologia":           colTipologia,
}

var foldHeader = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizarHeader pliega un encabezado de columna a su forma de lookup:
// minúsculas, sin acentos, sin puntuación, espacios colapsados.
func normalizarHeader(h string) string {
	if folded, _, err := transform.String(foldHeader, h); err == nil {
		h = folded
	}
	h = strings.ToLower(h)
	var b strings.Builder
	for _, r := range h {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '.' || r == ',' || r == 'º' || r == '°':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// resolverColumnas mapea cada índice de columna al campo canónico que le
// corresponde. Columnas no reconocidas se ignoran.
func resolverColumnas(headers []string) map[int]string {
	out := make(map[int]string, len(headers))
	for i, h := range headers {
		if campo, ok := aliasColumnas[normalizarHeader(h)]; ok {
			out[i] = campo
		}
	}
	return out
}

// abaDesdeNombre deriva la aba de origen desde el nombre de hoja/archivo.
func abaDesdeNombre(nombre string) entity.AbaOrigem {
	n := strings.ToUpper(nombre)
	switch {
	case strings.Contains(n, "14"):
		return entity.Aba14H
	case strings.Contains(n, "18"):
		return entity.Aba18H
	case n == "":
		return entity.AbaOutra
	default:
		return entity.AbaImport
	}
}

// filaARutura materializa una fila ya mapeada (campo canónico → valor crudo)
// en una entidad. Devuelve warnings por los valores que no se pudieron
// coercionar; la fila nunca se descarta por eso.
func filaARutura(campos map[string]string, aba entity.AbaOrigem, numFila int) (entity.Rutura, []string) {
	var warnings []string
	warn := func(formato string, args ...any) {
		warnings = append(warnings, fmt.Sprintf("fila %d: ", numFila)+fmt.Sprintf(formato, args...))
	}

	cantidad := func(campo string) decimal.Decimal {
		crudo := campos[campo]
		v, ok := parseCantidad(crudo)
		if !ok {
			if strings.TrimSpace(crudo) != "" {
				warn("cantidad inválida en %q: %q", campo, crudo)
			}
			return decimal.Zero
		}
		if v.IsNegative() {
			warn("cantidad negativa en %q: %s (ajustada a 0)", campo, v)
			return decimal.Zero
		}
		return v
	}

	fecha, ok := ParseFecha(campos[colFecha])
	if !ok && strings.TrimSpace(campos[colFecha]) != "" {
		warn("fecha imparseable: %q", campos[colFecha])
	}

	hora := strings.TrimSpace(campos[colHora])
	if hora == "" {
		// La planilla vieja no traía columna de hora: la aba es el indicio.
		hora = string(aba)
	}

	qtdReq := cantidad(colQtdReq)
	qtdEnv := cantidad(colQtdEnv)
	qtdFalta := cantidad(colQtdFalta)
	stockCT := cantidad(colStockCT)
	stockFF := cantidad(colStockFF)
	emTransito := cantidad(colTransito)

	semana := strings.TrimSpace(campos[colSemana])
	if semana == "" && !fecha.IsZero() {
		semana = rutura.SemanaDelMes(fecha).Label
	}

	now := time.Now()
	r := entity.Rutura{
		ID:             uuid.New().String(),
		Semana:         semana,
		HoraRutura:     hora,
		HoraDaRutura:   strings.TrimSpace(campos[colHoraDa]),
		Secao:          strings.TrimSpace(campos[colSecao]),
		TipoRequisicao: defaultStr(campos[colTipoReq], "NORMAL"),
		OT:             strings.TrimSpace(campos[colOT]),
		REQ:            strings.TrimSpace(campos[colREQ]),
		TipoProducto:   strings.TrimSpace(campos[colTipoProd]),
		NumeroProducto: strings.TrimSpace(campos[colNumProd]),
		Descricao:      strings.TrimSpace(campos[colDescricao]),
		QtdReq:         qtdReq,
		QtdEnv:         qtdEnv,
		QtdFalta:       qtdFalta,
		UnMed:          defaultStr(campos[colUnMed], "UN"),
		Fecha:          fecha,
		StockCT:        stockCT,
		StockFF:        stockFF,
		EmTransitoFF:   emTransito,
		TipologiaRutura: rutura.TipologiaEfectiva(
			campos[colTipologia], qtdReq, qtdEnv, qtdFalta, stockCT, stockFF, emTransito,
		),
		AbaOrigem: aba,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return r, warnings
}

func defaultStr(s, def string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return def
}

// parseCantidad acepta punto o coma decimal ("1.495" / "1,495") y espacios.
func parseCantidad(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	s = strings.ReplaceAll(s, " ", "")
	if !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		// "1.234,56": punto de miles europeo con coma decimal
		if strings.Contains(s, ",") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		}
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

// base de los seriales de fecha de Excel (sistema 1900).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseFecha interpreta las formas de fecha que aparecen en las planillas:
// DD/MM/YYYY (o MM/DD/YYYY cuando el primer número no puede ser mes),
// YYYY-MM-DD, DD-MM-YYYY y seriales numéricos de Excel. Devuelve ok=false,
// nunca error: una fecha mala no descarta la fila.
func ParseFecha(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "#N/A" || strings.EqualFold(s, "n/a") {
		return time.Time{}, false
	}

	if strings.Contains(s, "/") {
		return parseFechaBarras(s)
	}
	if strings.Contains(s, "-") {
		return parseFechaGuiones(s)
	}
	// Serial de Excel: días desde 1900 (45000 ≈ 2023).
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 59 && serial < 200000 {
		return excelEpoch.AddDate(0, 0, int(serial)), true
	}
	return time.Time{}, false
}

func parseFechaBarras(s string) (time.Time, bool) {
	partes := strings.Split(s, "/")
	if len(partes) != 3 {
		return time.Time{}, false
	}
	n1, err1 := strconv.Atoi(strings.TrimSpace(partes[0]))
	n2, err2 := strconv.Atoi(strings.TrimSpace(partes[1]))
	anio, err3 := strconv.Atoi(strings.TrimSpace(partes[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	// Heurística de la planilla: si el primer número no puede ser mes, es
	// DD/MM; si ambos pueden, se asume DD/MM (formato local portugués).
	dia, mes := n1, n2
	if n1 <= 12 && n2 > 12 {
		dia, mes = n2, n1
	}
	return fechaValida(anio, mes, dia)
}

func parseFechaGuiones(s string) (time.Time, bool) {
	partes := strings.Split(s, "-")
	if len(partes) != 3 {
		return time.Time{}, false
	}
	if len(partes[0]) == 4 {
		// YYYY-MM-DD
		anio, e1 := strconv.Atoi(partes[0])
		mes, e2 := strconv.Atoi(partes[1])
		dia, e3 := strconv.Atoi(partes[2])
		if e1 != nil || e2 != nil || e3 != nil {
			return time.Time{}, false
		}
		return fechaValida(anio, mes, dia)
	}
	// DD-MM-YYYY
	dia, e1 := strconv.Atoi(partes[0])
	mes, e2 := strconv.Atoi(partes[1])
	anio, e3 := strconv.Atoi(partes[2])
	if e1 != nil || e2 != nil || e3 != nil {
		return time.Time{}, false
	}
	return fechaValida(anio, mes, dia)
}

func fechaValida(anio, mes, dia int) (time.Time, bool) {
	if anio < 1900 || anio > 2200 || mes < 1 || mes > 12 || dia < 1 || dia > 31 {
		return time.Time{}, false
	}
	t := time.Date(anio, time.Month(mes), dia, 0, 0, 0, 0, time.UTC)
	// time.Date normaliza overflow (31/04 → 01/05); eso es una fecha mala.
	if t.Day() != dia || t.Month() != time.Month(mes) {
		return time.Time{}, false
	}
	return t, true
}
