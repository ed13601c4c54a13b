package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bennys-motorworks/verkstad-api/internal/domain"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación del puerto VehicleRepository sobre PostgreSQL.
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador del registro de vehículos.
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

const vehicleColumns = `id, plate, vehicle_type, created_at`

// Create registra un vehículo nuevo. Matrícula duplicada -> domain.ErrDuplicate.
func (r *VehicleRepo) Create(v *entity.Vehicle) (*entity.Vehicle, error) {
	query := `
		INSERT INTO vehicle_registry (plate, vehicle_type)
		VALUES ($1, $2)
		RETURNING ` + vehicleColumns
	created, err := scanVehicle(r.q.QueryRow(context.Background(), query, v.Plate, v.VehicleType))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert vehicle: %w", err)
	}
	return created, nil
}

// UpdateType cambia la descripción del vehículo.
func (r *VehicleRepo) UpdateType(id int64, vehicleType string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE vehicle_registry SET vehicle_type = $2 WHERE id = $1`, id, vehicleType)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	return nil
}

// List lista el registro por matrícula.
func (r *VehicleRepo) List() ([]*entity.Vehicle, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+vehicleColumns+` FROM vehicle_registry ORDER BY plate ASC`)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// UpsertByPlate inserta o reemplaza la descripción conservando el id subrogado.
func (r *VehicleRepo) UpsertByPlate(v *entity.Vehicle) (*entity.Vehicle, error) {
	query := `
		INSERT INTO vehicle_registry (plate, vehicle_type)
		VALUES ($1, $2)
		ON CONFLICT (plate) DO UPDATE SET vehicle_type = EXCLUDED.vehicle_type
		RETURNING ` + vehicleColumns
	saved, err := scanVehicle(r.q.QueryRow(context.Background(), query, v.Plate, v.VehicleType))
	if err != nil {
		return nil, fmt.Errorf("upsert vehicle: %w", err)
	}
	return saved, nil
}

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var v entity.Vehicle
	if err := row.Scan(&v.ID, &v.Plate, &v.VehicleType, &v.CreatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
