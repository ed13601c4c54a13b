package usecase

import (
	"context"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/repository"
	"github.com/bennys-motorworks/verkstad-api/pkg/svtext"
)

// StatsUseCase estadísticas agregadas del panel de administración.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Stats totales, distribución por tipo y lista de mecánicos bajo el filtro.
func (uc *StatsUseCase) Stats(ctx context.Context, in dto.StatsRequest) (*dto.StatsResponse, error) {
	filter := repository.StatsFilter{
		DateFrom: in.DateFrom,
		DateTo:   in.DateTo,
		WorkType: in.WorkType,
		Mechanic: in.Mechanic,
	}

	summary, err := uc.repo.Summary(ctx, filter)
	if err != nil {
		return nil, err
	}
	byType, err := uc.repo.CountByWorkType(ctx, filter)
	if err != nil {
		return nil, err
	}
	mechanics, err := uc.repo.Mechanics(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.WorkTypeCountItem, 0, len(byType))
	for _, wc := range byType {
		items = append(items, dto.WorkTypeCountItem{WorkType: wc.WorkType, Total: wc.Total})
	}

	return &dto.StatsResponse{
		OK:                 true,
		TotalReceipts:      summary.TotalReceipts,
		TotalAmount:        summary.TotalAmount,
		TotalAmountDisplay: svtext.SEK(summary.TotalAmount),
		ByWorkType:         items,
		Mechanics:          mechanics,
	}, nil
}
