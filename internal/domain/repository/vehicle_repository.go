package repository

import "github.com/bennys-motorworks/verkstad-api/internal/domain/entity"

// VehicleRepository define el puerto de persistencia para el registro de vehículos.
type VehicleRepository interface {
	Create(v *entity.Vehicle) (*entity.Vehicle, error)
	// UpdateType cambia la descripción del vehículo de una matrícula existente.
	UpdateType(id int64, vehicleType string) error
	List() ([]*entity.Vehicle, error)
	UpsertByPlate(v *entity.Vehicle) (*entity.Vehicle, error)
}
