package usecase

import (
	"strings"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/domain"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/repository"
)

// VehicleUseCase registro de vehículos (matrícula + modelo).
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// List registro completo por matrícula.
func (uc *VehicleUseCase) List() ([]*dto.VehicleResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, vehicleToDTO(v))
	}
	return out, nil
}

// Create alta de vehículo. Matrícula duplicada -> domain.ErrDuplicate.
func (uc *VehicleUseCase) Create(in dto.SaveVehicleRequest) (*dto.VehicleResponse, error) {
	v, errs := vehicleFromRequest(in)
	if len(errs) > 0 {
		return nil, errs
	}
	created, err := uc.repo.Create(v)
	if err != nil {
		return nil, err
	}
	return vehicleToDTO(created), nil
}

// UpdateType edición de la descripción por id.
func (uc *VehicleUseCase) UpdateType(id int64, in dto.UpdateVehicleRequest) error {
	vehicleType := strings.TrimSpace(in.VehicleType)
	if vehicleType == "" {
		return domain.ValidationErrors{"Fordonstyp måste anges."}
	}
	return uc.repo.UpdateType(id, vehicleType)
}

// Upsert por matrícula: inserta o reemplaza la descripción conservando el id.
func (uc *VehicleUseCase) Upsert(in dto.SaveVehicleRequest) (*dto.VehicleResponse, error) {
	v, errs := vehicleFromRequest(in)
	if len(errs) > 0 {
		return nil, errs
	}
	saved, err := uc.repo.UpsertByPlate(v)
	if err != nil {
		return nil, err
	}
	return vehicleToDTO(saved), nil
}

func vehicleFromRequest(in dto.SaveVehicleRequest) (*entity.Vehicle, domain.ValidationErrors) {
	var errs domain.ValidationErrors
	plate := domain.NormalizePlate(in.Plate)
	if !domain.ValidPlate(plate) {
		errs = append(errs, "Nummerplåt måste vara i formatet XXX-000.")
	}
	vehicleType := strings.TrimSpace(in.VehicleType)
	if vehicleType == "" {
		errs = append(errs, "Fordonstyp måste anges.")
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &entity.Vehicle{Plate: plate, VehicleType: vehicleType}, nil
}

func vehicleToDTO(v *entity.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		ID:          v.ID,
		Plate:       v.Plate,
		VehicleType: v.VehicleType,
		CreatedAt:   v.CreatedAt,
	}
}
