package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Ruturas-api/internal/application/dto"
	"github.com/jhoicas/Ruturas-api/internal/domain/repository"
	"github.com/jhoicas/Ruturas-api/internal/domain/rutura"
)

// AnalysisUseCase ejecuta la pasada de reconciliación + agregación sobre el
// lote persistido. El caso de uso solo carga y filtra; el cálculo es del
// motor puro en domain/rutura y se rehace completo en cada llamada.
type AnalysisUseCase struct {
	repo repository.RuturaRepository
}

// NewAnalysisUseCase construye el caso de uso.
func NewAnalysisUseCase(repo repository.RuturaRepository) *AnalysisUseCase {
	return &AnalysisUseCase{repo: repo}
}

// Analisis carga el lote filtrado y devuelve el resultado del motor. Los
// porcentajes del resultado se calculan sobre el lote ya filtrado.
func (uc *AnalysisUseCase) Analisis(ctx context.Context, in dto.AnalysisRequest) (*rutura.Analisis, error) {
	filter := repository.RuturaFilter{
		Semana: strings.TrimSpace(in.Semana),
		Secao:  rutura.NormalizarSecao(in.Secao),
	}
	if in.Desde != "" {
		t, err := parseFechaAPI(in.Desde)
		if err != nil {
			return nil, err
		}
		filter.Desde = t
	}
	if in.Hasta != "" {
		t, err := parseFechaAPI(in.Hasta)
		if err != nil {
			return nil, err
		}
		filter.Hasta = t
	}
	batch, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return rutura.Analizar(batch, in.TopN), nil
}

// Get versión DTO del análisis para el handler HTTP.
func (uc *AnalysisUseCase) Get(ctx context.Context, in dto.AnalysisRequest) (*dto.AnalysisResponse, error) {
	a, err := uc.Analisis(ctx, in)
	if err != nil {
		return nil, err
	}
	return toAnalysisResponse(a), nil
}

func toAnalysisResponse(a *rutura.Analisis) *dto.AnalysisResponse {
	out := &dto.AnalysisResponse{
		TotalRuturas:   a.TotalRuturas,
		Ruturas14H:     a.Ruturas14H,
		Ruturas18H:     a.Ruturas18H,
		NaoRepostos:    a.NaoRepostos,
		SecoesAfetadas: a.SecoesAfetadas,
		QtdFaltaTotal:  a.QtdFaltaTotal,
		TasaResolucion: a.TasaResolucion,

		ProductosMasAfetados:   make([]dto.ProductoAfetadoDTO, 0, len(a.ProductosMasAfetados)),
		SecoesMasAfetadas:      make([]dto.SecaoAfetadaDTO, 0, len(a.SecoesMasAfetadas)),
		DistribucionTipologias: make([]dto.TipologiaDTO, 0, len(a.DistribucionTipologias)),
		TendenciaSemanal:       make([]dto.TendenciaSemanaDTO, 0, len(a.TendenciaSemanal)),
		ProductosCriticos:      make([]dto.ProductoCriticoDTO, 0, len(a.ProductosCriticos)),
		IndicadoresStock: dto.IndicadoresStockDTO{
			SemStockCT:   a.IndicadoresStock.SemStockCT,
			SemStockFF:   a.IndicadoresStock.SemStockFF,
			EmTransitoFF: a.IndicadoresStock.EmTransitoFF,
		},
	}
	for _, p := range a.ProductosMasAfetados {
		out.ProductosMasAfetados = append(out.ProductosMasAfetados, dto.ProductoAfetadoDTO{
			Producto:       p.Producto,
			Descricao:      p.Descricao,
			Ocorrencias14H: p.Ocorrencias14H,
			Ocorrencias18H: p.Ocorrencias18H,
			NaoRepostos:    p.NaoRepostos,
			SecoesAfetadas: p.SecoesAfetadas,
		})
	}
	for _, s := range a.SecoesMasAfetadas {
		out.SecoesMasAfetadas = append(out.SecoesMasAfetadas, dto.SecaoAfetadaDTO{Secao: s.Secao, Count: s.Count})
	}
	for _, t := range a.DistribucionTipologias {
		out.DistribucionTipologias = append(out.DistribucionTipologias, dto.TipologiaDTO{
			Tipologia:   t.Tipologia,
			Count:       t.Count,
			Percentagem: t.Percentagem,
		})
	}
	for _, s := range a.TendenciaSemanal {
		out.TendenciaSemanal = append(out.TendenciaSemanal, dto.TendenciaSemanaDTO{
			Semana:      s.Semana,
			Ruturas14H:  s.Ruturas14H,
			Ruturas18H:  s.Ruturas18H,
			NaoRepostos: s.NaoRepostos,
		})
	}
	for _, p := range a.ProductosCriticos {
		out.ProductosCriticos = append(out.ProductosCriticos, dto.ProductoCriticoDTO{
			Producto:  p.Producto,
			Descricao: p.Descricao,
			QtdFalta:  p.QtdFalta,
		})
	}
	return out
}
