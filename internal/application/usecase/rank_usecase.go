package usecase

import (
	"strings"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/domain"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/repository"
)

// RankUseCase gestión de rangos (upsert por nombre, nunca se borran).
type RankUseCase struct {
	repo repository.RankRepository
}

// NewRankUseCase construye el caso de uso.
func NewRankUseCase(repo repository.RankRepository) *RankUseCase {
	return &RankUseCase{repo: repo}
}

// List todos los rangos.
func (uc *RankUseCase) List() ([]*dto.RankResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RankResponse, 0, len(list))
	for _, r := range list {
		out = append(out, rankToDTO(r))
	}
	return out, nil
}

// Upsert inserta el rango o reemplaza sus capacidades si el nombre ya existe.
func (uc *RankUseCase) Upsert(in dto.SaveRankRequest) (*dto.RankResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ValidationErrors{"Namn på rang måste anges."}
	}
	saved, err := uc.repo.UpsertByName(&entity.Rank{
		Name:         name,
		ViewAdmin:    in.ViewAdmin,
		ManageUsers:  in.ManageUsers,
		ManagePrices: in.ManagePrices,
		EditReceipts: in.EditReceipts,
	})
	if err != nil {
		return nil, err
	}
	return rankToDTO(saved), nil
}

func rankToDTO(r *entity.Rank) *dto.RankResponse {
	return &dto.RankResponse{
		ID:           r.ID,
		Name:         r.Name,
		ViewAdmin:    r.ViewAdmin,
		ManageUsers:  r.ManageUsers,
		ManagePrices: r.ManagePrices,
		EditReceipts: r.EditReceipts,
	}
}
