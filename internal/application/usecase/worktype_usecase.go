package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/domain"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/repository"
	"github.com/bennys-motorworks/verkstad-api/pkg/svtext"
)

// WorkTypeUseCase gestión de tipos de trabajo y sus precios.
type WorkTypeUseCase struct {
	repo repository.WorkTypeRepository
}

// NewWorkTypeUseCase construye el caso de uso.
func NewWorkTypeUseCase(repo repository.WorkTypeRepository) *WorkTypeUseCase {
	return &WorkTypeUseCase{repo: repo}
}

// ListActive tipos seleccionables en el formulario de recibo, con precio por defecto.
func (uc *WorkTypeUseCase) ListActive() ([]*dto.WorkTypeResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return workTypesToDTO(list), nil
}

// List todos los tipos (vista admin).
func (uc *WorkTypeUseCase) List() ([]*dto.WorkTypeResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return workTypesToDTO(list), nil
}

// Create alta de tipo nuevo. Nombre duplicado -> domain.ErrDuplicate.
func (uc *WorkTypeUseCase) Create(in dto.SaveWorkTypeRequest) (*dto.WorkTypeResponse, error) {
	wt, errs := workTypeFromRequest(in)
	if len(errs) > 0 {
		return nil, errs
	}
	created, err := uc.repo.Create(wt)
	if err != nil {
		return nil, err
	}
	return workTypeToDTO(created), nil
}

// Update edición por id.
func (uc *WorkTypeUseCase) Update(id int64, in dto.SaveWorkTypeRequest) (*dto.WorkTypeResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	wt, errs := workTypeFromRequest(in)
	if len(errs) > 0 {
		return nil, errs
	}
	wt.ID = existing.ID
	if err := uc.repo.Update(wt); err != nil {
		return nil, err
	}
	return workTypeToDTO(wt), nil
}

// Upsert por nombre: inserta o reemplaza precios/estado conservando el id.
func (uc *WorkTypeUseCase) Upsert(in dto.SaveWorkTypeRequest) (*dto.WorkTypeResponse, error) {
	wt, errs := workTypeFromRequest(in)
	if len(errs) > 0 {
		return nil, errs
	}
	saved, err := uc.repo.UpsertByName(wt)
	if err != nil {
		return nil, err
	}
	return workTypeToDTO(saved), nil
}

// workTypeFromRequest valida acumulando y arma la entidad.
func workTypeFromRequest(in dto.SaveWorkTypeRequest) (*entity.WorkType, domain.ValidationErrors) {
	var errs domain.ValidationErrors

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = append(errs, "Namn på arbete måste anges.")
	}

	price := decimal.Zero
	if in.DefaultPrice != nil {
		price = *in.DefaultPrice
	}
	if price.IsNegative() {
		errs = append(errs, "Standardpris måste vara 0 eller högre.")
	}
	if in.ExpenseCost != nil && in.ExpenseCost.IsNegative() {
		errs = append(errs, "Utgiftskostnad måste vara 0 eller högre.")
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &entity.WorkType{
		Name:         name,
		DefaultPrice: price,
		ExpenseCost:  in.ExpenseCost,
		IsActive:     active,
	}, nil
}

func workTypeToDTO(wt *entity.WorkType) *dto.WorkTypeResponse {
	return &dto.WorkTypeResponse{
		ID:                  wt.ID,
		Name:                wt.Name,
		DefaultPrice:        wt.DefaultPrice,
		DefaultPriceDisplay: svtext.SEK(wt.DefaultPrice),
		ExpenseCost:         wt.ExpenseCost,
		IsActive:            wt.IsActive,
	}
}

func workTypesToDTO(list []*entity.WorkType) []*dto.WorkTypeResponse {
	out := make([]*dto.WorkTypeResponse, 0, len(list))
	for _, wt := range list {
		out = append(out, workTypeToDTO(wt))
	}
	return out
}
