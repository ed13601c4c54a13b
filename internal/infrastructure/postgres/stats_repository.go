package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/bennys-motorworks/verkstad-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el panel de administración.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// whereClause arma el WHERE parametrizado a partir del filtro del panel.
func whereClause(f repository.StatsFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.DateFrom != "" {
		add(`created_at::date >= $%d::date`, f.DateFrom)
	}
	if f.DateTo != "" {
		add(`created_at::date <= $%d::date`, f.DateTo)
	}
	if f.WorkType != "" {
		add(`work_type = $%d`, f.WorkType)
	}
	if f.Mechanic != "" {
		add(`mechanic = $%d`, f.Mechanic)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Summary cuenta recibos y suma facturación bajo el filtro.
func (r *StatsRepo) Summary(ctx context.Context, f repository.StatsFilter) (*repository.StatsSummary, error) {
	where, args := whereClause(f)
	query := `SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM receipts` + where
	var s repository.StatsSummary
	if err := r.q.QueryRow(ctx, query, args...).Scan(&s.TotalReceipts, &s.TotalAmount); err != nil {
		return nil, fmt.Errorf("stats summary: %w", err)
	}
	return &s, nil
}

// CountByWorkType distribución de recibos por tipo, mayor primero.
func (r *StatsRepo) CountByWorkType(ctx context.Context, f repository.StatsFilter) ([]repository.WorkTypeCount, error) {
	where, args := whereClause(f)
	query := `SELECT work_type, COUNT(*) FROM receipts` + where + ` GROUP BY work_type ORDER BY COUNT(*) DESC`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stats by work type: %w", err)
	}
	defer rows.Close()
	var list []repository.WorkTypeCount
	for rows.Next() {
		var wc repository.WorkTypeCount
		if err := rows.Scan(&wc.WorkType, &wc.Total); err != nil {
			return nil, fmt.Errorf("scan work type count: %w", err)
		}
		list = append(list, wc)
	}
	return list, rows.Err()
}

// Mechanics mecánicos distintos con recibos, orden alfabético (para el filtro del panel).
func (r *StatsRepo) Mechanics(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT mechanic FROM receipts ORDER BY mechanic ASC`)
	if err != nil {
		return nil, fmt.Errorf("stats mechanics: %w", err)
	}
	defer rows.Close()
	var list []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("scan mechanic: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
