// Package rutura contiene el motor puro de reconciliación y analítica de
// ruturas: normalización de claves, correlación 14H vs 18H y los agregados
// que consume la capa de presentación.
//
// Todo el paquete es libre de estado: cada función es una transformación
// read-only sobre el lote en memoria y puede invocarse cuantas veces se
// quiera sobre lotes distintos sin acarrear nada entre llamadas.
package rutura

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Hora corte diario al que pertenece una observación.
type Hora int

const (
	// HoraDesconocida: el texto libre no contiene "14h" ni "18h". El registro
	// queda fuera de la reconciliación por corte; nunca se asume un corte por
	// defecto.
	HoraDesconocida Hora = iota
	Hora14
	Hora18
)

// String etiqueta legible del corte.
func (h Hora) String() string {
	switch h {
	case Hora14:
		return "14H"
	case Hora18:
		return "18H"
	default:
		return "desconocida"
	}
}

// ClasificarHora deriva el corte desde texto libre ("Rutura 14h",
// "RUTURA 18H", ...). Match por substring, case-insensitive.
func ClasificarHora(texto string) Hora {
	t := strings.ToLower(texto)
	switch {
	case strings.Contains(t, "14h"):
		return Hora14
	case strings.Contains(t, "18h"):
		return Hora18
	default:
		return HoraDesconocida
	}
}

// quitarAcentos elimina marcas diacríticas ("Seção" -> "Secao") para que la
// misma sección escrita con y sin acentos caiga en el mismo bucket.
var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// aliasSecoes colapsa variantes conocidas de la misma unidad organizativa a
// una etiqueta canónica. Las claves ya están en mayúsculas y sin acentos.
var aliasSecoes = map[string]string{
	"COZ FRIA":     "COZINHA FRIA",
	"COZ. FRIA":    "COZINHA FRIA",
	"C FRIA":       "COZINHA FRIA",
	"COZ QUENTE":   "COZINHA QUENTE",
	"COZ. QUENTE":  "COZINHA QUENTE",
	"C QUENTE":     "COZINHA QUENTE",
	"PAST":         "PASTELARIA",
	"PAST.":        "PASTELARIA",
	"CAFET":        "CAFETARIA",
	"CAFET.":       "CAFETARIA",
	"SELF SERVICE": "SELF-SERVICE",
}

// NormalizarSecao produce la clave estable de sección: trim, colapso de
// espacios internos, mayúsculas sin acentos y tabla de alias conocidos.
// Entradas desconocidas pasan normalizadas pero sin renombrar. Nunca falla:
// input vacío devuelve "".
func NormalizarSecao(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	if s == "" {
		return ""
	}
	if folded, _, err := transform.String(quitarAcentos, s); err == nil {
		s = folded
	}
	s = strings.ToUpper(s)
	if canonica, ok := aliasSecoes[s]; ok {
		return canonica
	}
	return s
}

// ── Semana del mes ────────────────────────────────────────────────────────────

// SemanaInvalidaLabel etiqueta centinela para fechas ausentes o imparseables.
// El registro sigue participando en todos los agregados que no requieren
// semana válida.
const SemanaInvalidaLabel = "Semana inválida"

// Semana identifica la semana ordinal dentro del mes. Label es lo que ve el
// usuario ("1ª Semana de Abril"); Anio/Mes/Ordinal son la clave de orden
// cronológico (las etiquetas no ordenan lexicográficamente).
type Semana struct {
	Label   string
	Anio    int
	Mes     time.Month
	Ordinal int // 1..5 dentro del mes; 0 = inválida
}

// Valida indica si la semana proviene de una fecha real.
func (s Semana) Valida() bool { return s.Ordinal > 0 }

// Antes orden cronológico; las semanas inválidas van primero.
func (s Semana) Antes(otra Semana) bool {
	if s.Anio != otra.Anio {
		return s.Anio < otra.Anio
	}
	if s.Mes != otra.Mes {
		return s.Mes < otra.Mes
	}
	return s.Ordinal < otra.Ordinal
}

var mesesPortugues = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

var ordinaisPortugues = [...]string{"1ª", "2ª", "3ª", "4ª", "5ª"}

// SemanaDelMes calcula la semana ordinal del mes en portugués para la fecha
// dada. Fecha zero (desconocida) devuelve la semana centinela en lugar de
// fallar: la calidad del dato de origen es mala y eso no puede tirar el
// análisis.
func SemanaDelMes(fecha time.Time) Semana {
	if fecha.IsZero() {
		return Semana{Label: SemanaInvalidaLabel}
	}
	ordinal := (fecha.Day()-1)/7 + 1
	var prefijo string
	if ordinal >= 1 && ordinal <= len(ordinaisPortugues) {
		prefijo = ordinaisPortugues[ordinal-1]
	} else {
		prefijo = fmt.Sprintf("%dª", ordinal)
	}
	mes := mesesPortugues[fecha.Month()-1]
	return Semana{
		Label:   fmt.Sprintf("%s Semana de %s", prefijo, mes),
		Anio:    fecha.Year(),
		Mes:     fecha.Month(),
		Ordinal: ordinal,
	}
}
