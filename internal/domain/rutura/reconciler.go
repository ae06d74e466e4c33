package rutura

import (
	"github.com/jhoicas/Ruturas-api/internal/domain/entity"
)

// EstadoReposicion clasificación de un registro 14H tras la reconciliación.
type EstadoReposicion int

const (
	// Repuesta: la rutura de las 14H no volvió a aparecer a las 18H (o no
	// quedó cantidad en falta). El almacén repuso a tiempo.
	Repuesta EstadoReposicion = iota
	// NoRepuesta: existe un registro 18H con la misma clave natural; la
	// rutura persistió hasta el segundo corte.
	NoRepuesta
)

// clave natural de correlación entre cortes. Incluye la semana: en lotes
// multi-semana, la misma OT/REQ puede repetirse en semanas distintas y sin
// semana en la clave habría matches cruzados falsos.
type claveRutura struct {
	producto string
	secao    string
	ot       string
	req      string
	semana   string
}

func claveDe(r *entity.Rutura) claveRutura {
	return claveRutura{
		producto: r.NumeroProducto,
		secao:    NormalizarSecao(r.Secao),
		ot:       r.OT,
		req:      r.REQ,
		semana:   SemanaEfectiva(r),
	}
}

// SemanaEfectiva etiqueta de semana a usar para agrupar: la declarada en la
// planilla o, si vino vacía, la recalculada desde la fecha.
func SemanaEfectiva(r *entity.Rutura) string {
	if r.Semana != "" {
		return r.Semana
	}
	return SemanaDelMes(r.Fecha).Label
}

// HoraDe deriva el corte de un registro: primero desde el texto libre
// HoraRutura, con fallback a la aba de origen cuando el texto no decide.
func HoraDe(r *entity.Rutura) Hora {
	if h := ClasificarHora(r.HoraRutura); h != HoraDesconocida {
		return h
	}
	switch r.AbaOrigem {
	case entity.Aba14H:
		return Hora14
	case entity.Aba18H:
		return Hora18
	default:
		return HoraDesconocida
	}
}

// Reconciliacion resultado de correlacionar el lote completo. Los índices
// refieren al slice de entrada; el lote nunca se copia ni se muta.
type Reconciliacion struct {
	// Idx14 / Idx18 índices de los subconjuntos por corte, en orden de
	// entrada. Los registros de corte desconocido no están en ninguno.
	Idx14 []int
	Idx18 []int
	// Estado señal de match puro por índice: NoRepuesta si existe contraparte
	// 18H con la misma clave. Definida exactamente para cada elemento de
	// Idx14 y para ningún otro.
	Estado map[int]EstadoReposicion
	// ResueltaPorCantidad marca los registros (de cualquier corte) con
	// QtdFalta == 0: la cantidad es la verdad de base y manda sobre el match
	// entre cortes.
	ResueltaPorCantidad map[int]bool
}

// Resuelta clasificación final de un registro 14H: resuelta por cantidad
// cero o por ausencia de contraparte a las 18H.
func (rc *Reconciliacion) Resuelta(i int) bool {
	return rc.ResueltaPorCantidad[i] || rc.Estado[i] == Repuesta
}

// NoRepuestas cuenta los registros 14H que persistieron a las 18H con
// cantidad en falta.
func (rc *Reconciliacion) NoRepuestas() int {
	n := 0
	for _, i := range rc.Idx14 {
		if !rc.Resuelta(i) {
			n++
		}
	}
	return n
}

// Reconciliar correlaciona cada rutura de las 14H contra el corte de las 18H
// por la clave natural (producto, sección normalizada, OT, REQ, semana).
//
// El subconjunto 18H se indexa primero por clave, así la pasada sobre 14H es
// O(n+m) en lugar del cruce cuadrático. Registros con campos de clave vacíos
// simplemente no matchean nada y caen como repuestos: la ausencia de match es
// la señal, nunca un error.
func Reconciliar(batch []entity.Rutura) *Reconciliacion {
	rc := &Reconciliacion{
		Estado:              make(map[int]EstadoReposicion),
		ResueltaPorCantidad: make(map[int]bool),
	}

	indice18 := make(map[claveRutura]int)
	for i := range batch {
		r := &batch[i]
		if r.QtdFalta.IsZero() {
			rc.ResueltaPorCantidad[i] = true
		}
		switch HoraDe(r) {
		case Hora14:
			rc.Idx14 = append(rc.Idx14, i)
		case Hora18:
			rc.Idx18 = append(rc.Idx18, i)
			indice18[claveDe(r)]++
		}
	}

	for _, i := range rc.Idx14 {
		if indice18[claveDe(&batch[i])] > 0 {
			rc.Estado[i] = NoRepuesta
		} else {
			rc.Estado[i] = Repuesta
		}
	}
	return rc
}
