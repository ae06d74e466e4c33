package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ImportExcel lee un .xlsx completo: cada hoja con encabezados reconocibles
// aporta filas al lote y su nombre alimenta la aba de origen ("Ruturas 14H",
// "Ruturas 18H", ...). Hojas sin columnas conocidas se saltan con warning.
func ImportExcel(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	out := &Result{}
	for _, hoja := range f.GetSheetList() {
		filas, err := f.GetRows(hoja)
		if err != nil {
			return nil, fmt.Errorf("leer hoja %q: %w", hoja, err)
		}
		importarHoja(out, hoja, filas)
	}
	return out, nil
}

// importarHoja procesa una matriz de celdas (primera fila = encabezados).
func importarHoja(out *Result, nombre string, filas [][]string) {
	if len(filas) == 0 {
		return
	}
	columnas := resolverColumnas(filas[0])
	if len(columnas) == 0 {
		out.Warnings = append(out.Warnings, fmt.Sprintf("hoja %q: sin columnas reconocibles, ignorada", nombre))
		return
	}
	out.Abas = append(out.Abas, nombre)
	aba := abaDesdeNombre(nombre)

	for i, fila := range filas[1:] {
		campos := make(map[string]string, len(columnas))
		vacia := true
		for idx, campo := range columnas {
			if idx < len(fila) {
				campos[campo] = fila[idx]
				if fila[idx] != "" {
					vacia = false
				}
			}
		}
		if vacia {
			continue
		}
		r, warnings := filaARutura(campos, aba, i+2) // +2: encabezado + base 1
		out.Ruturas = append(out.Ruturas, r)
		out.Warnings = append(out.Warnings, prefijarHoja(nombre, warnings)...)
	}
}

func prefijarHoja(hoja string, warnings []string) []string {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = fmt.Sprintf("hoja %q, %s", hoja, w)
	}
	return out
}
