package rutura

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Ruturas-api/internal/domain/entity"
)

// TopNPorDefecto tamaño de los rankings cuando el caller no pide otro.
const TopNPorDefecto = 10

// ProductoAfetado ranking de productos por ocurrencias y no repuestos.
type ProductoAfetado struct {
	Producto       string
	Descricao      string
	Ocorrencias14H int
	Ocorrencias18H int
	NaoRepostos    int
	SecoesAfetadas int // secciones normalizadas distintas donde apareció
}

// SecaoAfetada ranking de secciones (normalizadas) por número de ruturas.
type SecaoAfetada struct {
	Secao string
	Count int
}

// TipologiaCount distribución de tipologías sobre el lote filtrado.
type TipologiaCount struct {
	Tipologia   string
	Count       int
	Percentagem float64 // count / total * 100
}

// TendenciaSemana evolución semanal 14H vs 18H.
type TendenciaSemana struct {
	Semana      string
	Ruturas14H  int
	Ruturas18H  int
	NaoRepostos int
}

// IndicadoresStock conteos de predicados simples sobre el lote completo.
type IndicadoresStock struct {
	SemStockCT   int // StockCT == 0
	SemStockFF   int // StockFF == 0
	EmTransitoFF int // EmTransitoFF > 0
}

// ProductoCritico ranking por cantidad total en falta, independiente de la
// lógica de cortes.
type ProductoCritico struct {
	Producto  string
	Descricao string
	QtdFalta  decimal.Decimal
}

// Analisis resultado completo de una pasada de reconciliación + agregación.
// Es una función pura del lote de entrada: la misma entrada produce siempre
// bit a bit la misma salida.
type Analisis struct {
	TotalRuturas   int
	Ruturas14H     int
	Ruturas18H     int
	NaoRepostos    int
	SecoesAfetadas int
	QtdFaltaTotal  decimal.Decimal
	// TasaResolucion porcentaje de ruturas 14H que no persistieron:
	// (c14 - noRepuestas) / c14 * 100. 0 cuando no hay ruturas 14H.
	TasaResolucion float64

	ProductosMasAfetados   []ProductoAfetado
	SecoesMasAfetadas      []SecaoAfetada
	DistribucionTipologias []TipologiaCount
	TendenciaSemanal       []TendenciaSemana
	IndicadoresStock       IndicadoresStock
	ProductosCriticos      []ProductoCritico
}

// Analizar ejecuta la pasada completa sobre el lote: reconcilia 14H vs 18H y
// pliega todo en los agregados del dashboard. topN limita los rankings
// (<= 0 usa TopNPorDefecto). Un lote vacío devuelve el resultado cero, sin
// errores: no hay fallos reintentables dentro del motor.
func Analizar(batch []entity.Rutura, topN int) *Analisis {
	if topN <= 0 {
		topN = TopNPorDefecto
	}
	a := &Analisis{QtdFaltaTotal: decimal.Zero}
	if len(batch) == 0 {
		a.ProductosMasAfetados = []ProductoAfetado{}
		a.SecoesMasAfetadas = []SecaoAfetada{}
		a.DistribucionTipologias = []TipologiaCount{}
		a.TendenciaSemanal = []TendenciaSemana{}
		a.ProductosCriticos = []ProductoCritico{}
		return a
	}

	rc := Reconciliar(batch)

	a.TotalRuturas = len(batch)
	a.Ruturas14H = len(rc.Idx14)
	a.Ruturas18H = len(rc.Idx18)
	a.NaoRepostos = rc.NoRepuestas()
	if a.Ruturas14H > 0 {
		a.TasaResolucion = float64(a.Ruturas14H-a.NaoRepostos) / float64(a.Ruturas14H) * 100
	}

	a.ProductosMasAfetados = productosMasAfetados(batch, rc, topN)
	a.SecoesMasAfetadas = secoesMasAfetadas(batch, topN)
	a.DistribucionTipologias = distribucionTipologias(batch)
	a.TendenciaSemanal = tendenciaSemanal(batch, rc)
	a.IndicadoresStock = indicadoresStock(batch)
	a.ProductosCriticos = productosCriticos(batch, topN)

	secoes := make(map[string]struct{})
	for i := range batch {
		secoes[NormalizarSecao(batch[i].Secao)] = struct{}{}
		a.QtdFaltaTotal = a.QtdFaltaTotal.Add(batch[i].QtdFalta)
	}
	a.SecoesAfetadas = len(secoes)

	return a
}

// acumulador con orden de inserción: los agregados nunca iteran mapas
// directamente, así el resultado es determinista y los empates del sort
// estable respetan el orden de entrada.
type productoAcc struct {
	ProductoAfetado
	secoes map[string]struct{}
}

func productosMasAfetados(batch []entity.Rutura, rc *Reconciliacion, topN int) []ProductoAfetado {
	porProducto := make(map[string]*productoAcc)
	var orden []string

	acumular := func(r *entity.Rutura) *productoAcc {
		acc, ok := porProducto[r.NumeroProducto]
		if !ok {
			acc = &productoAcc{
				ProductoAfetado: ProductoAfetado{Producto: r.NumeroProducto, Descricao: r.Descricao},
				secoes:          make(map[string]struct{}),
			}
			porProducto[r.NumeroProducto] = acc
			orden = append(orden, r.NumeroProducto)
		}
		acc.secoes[NormalizarSecao(r.Secao)] = struct{}{}
		return acc
	}

	for i := range batch {
		acumular(&batch[i])
	}
	for _, i := range rc.Idx14 {
		acc := porProducto[batch[i].NumeroProducto]
		acc.Ocorrencias14H++
		if !rc.Resuelta(i) {
			acc.NaoRepostos++
		}
	}
	for _, i := range rc.Idx18 {
		porProducto[batch[i].NumeroProducto].Ocorrencias18H++
	}

	lista := make([]ProductoAfetado, 0, len(orden))
	for _, p := range orden {
		acc := porProducto[p]
		acc.SecoesAfetadas = len(acc.secoes)
		lista = append(lista, acc.ProductoAfetado)
	}
	sort.SliceStable(lista, func(i, j int) bool {
		return lista[i].NaoRepostos+lista[i].Ocorrencias14H > lista[j].NaoRepostos+lista[j].Ocorrencias14H
	})
	return truncar(lista, topN)
}

func secoesMasAfetadas(batch []entity.Rutura, topN int) []SecaoAfetada {
	counts := make(map[string]int)
	var orden []string
	for i := range batch {
		s := NormalizarSecao(batch[i].Secao)
		if _, ok := counts[s]; !ok {
			orden = append(orden, s)
		}
		counts[s]++
	}
	lista := make([]SecaoAfetada, 0, len(orden))
	for _, s := range orden {
		lista = append(lista, SecaoAfetada{Secao: s, Count: counts[s]})
	}
	sort.SliceStable(lista, func(i, j int) bool { return lista[i].Count > lista[j].Count })
	return truncar(lista, topN)
}

func distribucionTipologias(batch []entity.Rutura) []TipologiaCount {
	counts := make(map[string]int)
	var orden []string
	for i := range batch {
		t := batch[i].TipologiaRutura
		if t == "" {
			t = TipologiaOutros
		}
		if _, ok := counts[t]; !ok {
			orden = append(orden, t)
		}
		counts[t]++
	}
	total := len(batch)
	lista := make([]TipologiaCount, 0, len(orden))
	for _, t := range orden {
		lista = append(lista, TipologiaCount{
			Tipologia:   t,
			Count:       counts[t],
			Percentagem: float64(counts[t]) / float64(total) * 100,
		})
	}
	sort.SliceStable(lista, func(i, j int) bool { return lista[i].Count > lista[j].Count })
	return lista
}

func tendenciaSemanal(batch []entity.Rutura, rc *Reconciliacion) []TendenciaSemana {
	type bucket struct {
		TendenciaSemana
		// primera fecha válida vista en el bucket: clave de orden cronológico
		// (las etiquetas "2ª Semana de Abril" no ordenan lexicográficamente)
		fecha time.Time
	}
	buckets := make(map[string]*bucket)
	var orden []string

	bucketDe := func(r *entity.Rutura) *bucket {
		label := SemanaEfectiva(r)
		b, ok := buckets[label]
		if !ok {
			b = &bucket{TendenciaSemana: TendenciaSemana{Semana: label}}
			buckets[label] = b
			orden = append(orden, label)
		}
		if b.fecha.IsZero() && !r.Fecha.IsZero() {
			b.fecha = r.Fecha
		}
		return b
	}

	for i := range batch {
		bucketDe(&batch[i])
	}
	for _, i := range rc.Idx14 {
		b := buckets[SemanaEfectiva(&batch[i])]
		b.Ruturas14H++
		if !rc.Resuelta(i) {
			b.NaoRepostos++
		}
	}
	for _, i := range rc.Idx18 {
		buckets[SemanaEfectiva(&batch[i])].Ruturas18H++
	}

	lista := make([]*bucket, 0, len(orden))
	for _, label := range orden {
		lista = append(lista, buckets[label])
	}
	// Cronológico ascendente; las semanas sin fecha válida van primero.
	sort.SliceStable(lista, func(i, j int) bool {
		return SemanaDelMes(lista[i].fecha).Antes(SemanaDelMes(lista[j].fecha))
	})
	out := make([]TendenciaSemana, 0, len(lista))
	for _, b := range lista {
		out = append(out, b.TendenciaSemana)
	}
	return out
}

func indicadoresStock(batch []entity.Rutura) IndicadoresStock {
	var ind IndicadoresStock
	for i := range batch {
		r := &batch[i]
		if r.StockCT.IsZero() {
			ind.SemStockCT++
		}
		if r.StockFF.IsZero() {
			ind.SemStockFF++
		}
		if r.EmTransitoFF.IsPositive() {
			ind.EmTransitoFF++
		}
	}
	return ind
}

func productosCriticos(batch []entity.Rutura, topN int) []ProductoCritico {
	porProducto := make(map[string]*ProductoCritico)
	var orden []string
	for i := range batch {
		r := &batch[i]
		pc, ok := porProducto[r.NumeroProducto]
		if !ok {
			pc = &ProductoCritico{Producto: r.NumeroProducto, Descricao: r.Descricao, QtdFalta: decimal.Zero}
			porProducto[r.NumeroProducto] = pc
			orden = append(orden, r.NumeroProducto)
		}
		pc.QtdFalta = pc.QtdFalta.Add(r.QtdFalta)
	}
	lista := make([]ProductoCritico, 0, len(orden))
	for _, p := range orden {
		lista = append(lista, *porProducto[p])
	}
	sort.SliceStable(lista, func(i, j int) bool { return lista[i].QtdFalta.GreaterThan(lista[j].QtdFalta) })
	return truncar(lista, topN)
}

func truncar[T any](lista []T, n int) []T {
	if len(lista) > n {
		return lista[:n]
	}
	return lista
}
