package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ImportCSV lee un CSV exportado de la planilla. Acepta separador coma o
// punto y coma (sniffing sobre la primera línea) y archivos en Latin-1, que
// es lo que suele exportar el Excel portugués.
//
// nombreArchivo alimenta la aba de origen cuando la columna de hora no
// permite clasificar el corte (ej. "ruturas-14h.csv").
func ImportCSV(r io.Reader, nombreArchivo string) (*Result, error) {
	datos, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	if !utf8.Valid(datos) {
		// Export viejo de Excel: Latin-1.
		decodificado, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), datos)
		if err == nil {
			datos = decodificado
		}
	}
	datos = bytes.TrimPrefix(datos, []byte{0xEF, 0xBB, 0xBF}) // BOM

	reader := csv.NewReader(bytes.NewReader(datos))
	reader.Comma = detectarSeparador(datos)
	reader.FieldsPerRecord = -1 // filas cortas frecuentes en exports manuales
	reader.LazyQuotes = true

	filas, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsear csv: %w", err)
	}

	out := &Result{}
	importarHoja(out, nombreArchivo, filas)
	return out, nil
}

// detectarSeparador elige entre ',' y ';' contando ocurrencias en la primera
// línea. El export PT de Excel usa ';'.
func detectarSeparador(datos []byte) rune {
	linea := string(datos)
	if i := strings.IndexAny(linea, "\r\n"); i >= 0 {
		linea = linea[:i]
	}
	if strings.Count(linea, ";") > strings.Count(linea, ",") {
		return ';'
	}
	return ','
}
