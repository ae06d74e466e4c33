package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/Ruturas-api/internal/application/dto"
	"github.com/jhoicas/Ruturas-api/internal/domain"
	"github.com/jhoicas/Ruturas-api/internal/domain/entity"
	"github.com/jhoicas/Ruturas-api/internal/domain/repository"
	"github.com/jhoicas/Ruturas-api/internal/domain/rutura"
)

// fechaLayout formato de fecha que consume y produce la API (el del cliente).
const fechaLayout = "02/01/2006"

// RuturaUseCase import, listado, export y limpieza del lote de ruturas.
type RuturaUseCase struct {
	repo     repository.RuturaRepository
	importer PlanillaImporter
}

// NewRuturaUseCase construye el caso de uso.
func NewRuturaUseCase(repo repository.RuturaRepository, importer PlanillaImporter) *RuturaUseCase {
	return &RuturaUseCase{repo: repo, importer: importer}
}

// ImportFile importa una planilla (.xlsx o .csv) y persiste el lote. Los
// warnings por fila van en la respuesta; un archivo sin filas es error.
func (uc *RuturaUseCase) ImportFile(ctx context.Context, nombreArchivo string, r io.Reader) (*dto.ImportResponse, error) {
	batch, abas, warnings, err := uc.importer.Import(nombreArchivo, r)
	if err != nil {
		return nil, err
	}
	if len(batch) == 0 {
		return nil, domain.ErrEmptyImport
	}
	if err := uc.repo.SaveBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("guardar lote importado: %w", err)
	}
	return &dto.ImportResponse{
		Importadas: len(batch),
		Abas:       abas,
		Warnings:   warnings,
	}, nil
}

// List lista registros con filtros y paginación.
func (uc *RuturaUseCase) List(ctx context.Context, in dto.RuturaListRequest) (*dto.RuturaListResponse, error) {
	in.DefaultPage()
	filter, err := filtroDesdeRequest(in)
	if err != nil {
		return nil, err
	}
	filter.Limit = in.Limit
	filter.Offset = in.Offset

	batch, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	// El total refleja el filtro, no el lote completo, para que la
	// paginación del frontend cuadre con lo listado.
	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RuturaResponse, 0, len(batch))
	for i := range batch {
		items = append(items, toRuturaResponse(&batch[i]))
	}
	return &dto.RuturaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// Clear borra todos los registros y devuelve cuántos había.
func (uc *RuturaUseCase) Clear(ctx context.Context) (*dto.ClearResponse, error) {
	total, err := uc.repo.Count(ctx, repository.RuturaFilter{})
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Clear(ctx); err != nil {
		return nil, err
	}
	return &dto.ClearResponse{Eliminadas: total}, nil
}

// encabezados del export, mismo layout de 19 columnas que la planilla del
// cliente para que el archivo se pueda reimportar tal cual.
var columnasExport = []string{
	"Semana", "Hora Rutura", "Hora da Rutura", "Seção", "Tipo Requisição",
	"OT", "REQ", "Tipo Produto", "Nº Produto", "Descrição",
	"Qtd. Req.", "Qtd. Env.", "Qtd. Falta", "Un. Med", "Data",
	"Stock CT", "Stock FF", "Em Trânsito FF", "Tipologia Rutura",
}

// ExportCSV serializa el lote completo en el layout de la planilla.
func (uc *RuturaUseCase) ExportCSV(ctx context.Context) ([]byte, error) {
	batch, err := uc.repo.List(ctx, repository.RuturaFilter{})
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columnasExport); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	for i := range batch {
		r := &batch[i]
		fila := []string{
			r.Semana, r.HoraRutura, r.HoraDaRutura, r.Secao, r.TipoRequisicao,
			r.OT, r.REQ, r.TipoProducto, r.NumeroProducto, r.Descricao,
			r.QtdReq.String(), r.QtdEnv.String(), r.QtdFalta.String(), r.UnMed, formatearFecha(r),
			r.StockCT.String(), r.StockFF.String(), r.EmTransitoFF.String(), r.TipologiaRutura,
		}
		if err := w.Write(fila); err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return buf.Bytes(), nil
}

// EsFormatoSoportado valida la extensión antes de leer el cuerpo.
func EsFormatoSoportado(nombreArchivo string) bool {
	switch strings.ToLower(filepath.Ext(nombreArchivo)) {
	case ".xlsx", ".csv":
		return true
	default:
		return false
	}
}

func filtroDesdeRequest(in dto.RuturaListRequest) (repository.RuturaFilter, error) {
	f := repository.RuturaFilter{
		Semana: strings.TrimSpace(in.Semana),
		Secao:  rutura.NormalizarSecao(in.Secao),
		Hora:   strings.ToUpper(strings.TrimSpace(in.Hora)),
	}
	if in.Desde != "" {
		t, err := parseFechaAPI(in.Desde)
		if err != nil {
			return f, err
		}
		f.Desde = t
	}
	if in.Hasta != "" {
		t, err := parseFechaAPI(in.Hasta)
		if err != nil {
			return f, err
		}
		f.Hasta = t
	}
	return f, nil
}

func parseFechaAPI(s string) (t time.Time, err error) {
	t, err = time.Parse(fechaLayout, s)
	if err != nil {
		return t, fmt.Errorf("%w: fecha %q (se espera DD/MM/YYYY)", domain.ErrInvalidInput, s)
	}
	return t, nil
}

func formatearFecha(r *entity.Rutura) string {
	if r.Fecha.IsZero() {
		return ""
	}
	return r.Fecha.Format(fechaLayout)
}

func toRuturaResponse(r *entity.Rutura) dto.RuturaResponse {
	return dto.RuturaResponse{
		ID:               r.ID,
		Semana:           rutura.SemanaEfectiva(r),
		HoraRutura:       r.HoraRutura,
		HoraDaRutura:     r.HoraDaRutura,
		Secao:            r.Secao,
		SecaoNormalizada: rutura.NormalizarSecao(r.Secao),
		TipoRequisicao:   r.TipoRequisicao,
		OT:               r.OT,
		REQ:              r.REQ,
		TipoProducto:     r.TipoProducto,
		NumeroProducto:   r.NumeroProducto,
		Descricao:        r.Descricao,
		QtdReq:           r.QtdReq,
		QtdEnv:           r.QtdEnv,
		QtdFalta:         r.QtdFalta,
		UnMed:            r.UnMed,
		Fecha:            formatearFecha(r),
		StockCT:          r.StockCT,
		StockFF:          r.StockFF,
		EmTransitoFF:     r.EmTransitoFF,
		TipologiaRutura:  r.TipologiaRutura,
		AbaOrigem:        string(r.AbaOrigem),
		CreatedAt:        r.CreatedAt,
	}
}
