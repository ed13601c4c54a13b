package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatsFilter acota las estadísticas del panel admin. Campos vacíos = sin filtro.
type StatsFilter struct {
	DateFrom string // YYYY-MM-DD
	DateTo   string // YYYY-MM-DD
	WorkType string
	Mechanic string
}

// StatsSummary totales de recibos bajo el filtro.
type StatsSummary struct {
	TotalReceipts int64
	TotalAmount   decimal.Decimal
}

// WorkTypeCount distribución de recibos por tipo de trabajo.
type WorkTypeCount struct {
	WorkType string
	Total    int64
}

// StatsRepository consultas de solo lectura para el panel de administración.
type StatsRepository interface {
	Summary(ctx context.Context, f StatsFilter) (*StatsSummary, error)
	CountByWorkType(ctx context.Context, f StatsFilter) ([]WorkTypeCount, error)
	// Mechanics devuelve los mecánicos con al menos un recibo, orden alfabético.
	Mechanics(ctx context.Context) ([]string, error)
}
