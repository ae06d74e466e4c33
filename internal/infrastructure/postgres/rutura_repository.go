package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Ruturas-api/internal/domain/entity"
	"github.com/jhoicas/Ruturas-api/internal/domain/repository"
	"github.com/jhoicas/Ruturas-api/internal/domain/rutura"
)

var _ repository.RuturaRepository = (*RuturaRepo)(nil)

// RuturaRepo implementación del puerto RuturaRepository sobre PostgreSQL.
//
// Además de las columnas crudas de la planilla persiste dos derivadas,
// secao_norm y hora, calculadas con el motor de dominio al insertar. Los
// filtros SQL operan sobre ellas para que el listado filtre igual que la
// reconciliación agrupa.
type RuturaRepo struct {
	pool *pgxpool.Pool
}

// NewRuturaRepository construye el adaptador de persistencia del lote.
func NewRuturaRepository(pool *pgxpool.Pool) *RuturaRepo {
	return &RuturaRepo{pool: pool}
}

var columnasRutura = []string{
	"id", "semana", "hora_rutura", "hora_da_rutura", "secao", "secao_norm", "hora",
	"tipo_requisicao", "ot", "req", "tipo_producto", "numero_producto", "descricao",
	"qtd_req", "qtd_env", "qtd_falta", "un_med", "fecha",
	"stock_ct", "stock_ff", "em_transito_ff", "tipologia_rutura", "aba_origem",
	"created_at", "updated_at",
}

// SaveBatch inserta el lote completo vía COPY. Un lote de planilla trae miles
// de filas; COPY es una orden de magnitud más rápido que INSERTs fila a fila.
func (r *RuturaRepo) SaveBatch(ctx context.Context, batch []entity.Rutura) error {
	if len(batch) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(batch))
	for i := range batch {
		rt := &batch[i]
		var fecha any
		if !rt.Fecha.IsZero() {
			fecha = rt.Fecha
		}
		var hora any
		if h := rutura.HoraDe(rt); h != rutura.HoraDesconocida {
			hora = h.String()
		}
		rows = append(rows, []any{
			rt.ID, rutura.SemanaEfectiva(rt), rt.HoraRutura, rt.HoraDaRutura,
			rt.Secao, rutura.NormalizarSecao(rt.Secao), hora,
			rt.TipoRequisicao, rt.OT, rt.REQ, rt.TipoProducto, rt.NumeroProducto, rt.Descricao,
			rt.QtdReq, rt.QtdEnv, rt.QtdFalta, rt.UnMed, fecha,
			rt.StockCT, rt.StockFF, rt.EmTransitoFF, rt.TipologiaRutura, string(rt.AbaOrigem),
			rt.CreatedAt, rt.UpdatedAt,
		})
	}
	_, err := r.pool.CopyFrom(ctx, pgx.Identifier{"ruturas"}, columnasRutura, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy ruturas: %w", err)
	}
	return nil
}

// List devuelve los registros que pasan el filtro en orden de inserción.
func (r *RuturaRepo) List(ctx context.Context, f repository.RuturaFilter) ([]entity.Rutura, error) {
	query := `
		SELECT id, semana, hora_rutura, hora_da_rutura, secao, tipo_requisicao,
		       ot, req, tipo_producto, numero_producto, descricao,
		       qtd_req, qtd_env, qtd_falta, un_med, fecha,
		       stock_ct, stock_ff, em_transito_ff, tipologia_rutura, aba_origem,
		       created_at, updated_at
		FROM ruturas`
	where, args := filtroSQL(f)
	query += where + ` ORDER BY created_at, id`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ruturas: %w", err)
	}
	defer rows.Close()

	var list []entity.Rutura
	for rows.Next() {
		var rt entity.Rutura
		var fecha *time.Time
		var aba string
		if err := rows.Scan(
			&rt.ID, &rt.Semana, &rt.HoraRutura, &rt.HoraDaRutura, &rt.Secao, &rt.TipoRequisicao,
			&rt.OT, &rt.REQ, &rt.TipoProducto, &rt.NumeroProducto, &rt.Descricao,
			&rt.QtdReq, &rt.QtdEnv, &rt.QtdFalta, &rt.UnMed, &fecha,
			&rt.StockCT, &rt.StockFF, &rt.EmTransitoFF, &rt.TipologiaRutura, &aba,
			&rt.CreatedAt, &rt.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rutura: %w", err)
		}
		if fecha != nil {
			rt.Fecha = *fecha
		}
		rt.AbaOrigem = entity.AbaOrigem(aba)
		list = append(list, rt)
	}
	return list, rows.Err()
}

// Count total de registros que pasan el filtro, ignorando Limit/Offset.
func (r *RuturaRepo) Count(ctx context.Context, f repository.RuturaFilter) (int, error) {
	where, args := filtroSQL(f)
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ruturas`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count ruturas: %w", err)
	}
	return n, nil
}

// Clear borra el lote completo.
func (r *RuturaRepo) Clear(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `TRUNCATE ruturas`); err != nil {
		return fmt.Errorf("clear ruturas: %w", err)
	}
	return nil
}

func filtroSQL(f repository.RuturaFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Semana != "" {
		add("semana = $%d", f.Semana)
	}
	if f.Secao != "" {
		add("secao_norm = $%d", f.Secao)
	}
	if f.Hora != "" {
		add("hora = $%d", f.Hora)
	}
	if !f.Desde.IsZero() {
		add("fecha >= $%d", f.Desde)
	}
	if !f.Hasta.IsZero() {
		add("fecha <= $%d", f.Hasta)
	}
	if len(conds) == 0 {
		return "", nil
	}
	where := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		where += " AND " + c
	}
	return where, args
}
