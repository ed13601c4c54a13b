package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bennys-motorworks/verkstad-api/internal/domain"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/repository"
)

var _ repository.WorkTypeRepository = (*WorkTypeRepo)(nil)

// WorkTypeRepo implementación del puerto WorkTypeRepository sobre PostgreSQL.
type WorkTypeRepo struct {
	q Querier
}

// NewWorkTypeRepository construye el adaptador de persistencia para tipos de trabajo.
func NewWorkTypeRepository(q Querier) *WorkTypeRepo {
	return &WorkTypeRepo{q: q}
}

const workTypeColumns = `id, name, default_price, expense_cost, is_active, created_at`

// Create persiste un nuevo tipo de trabajo.
func (r *WorkTypeRepo) Create(wt *entity.WorkType) (*entity.WorkType, error) {
	query := `
		INSERT INTO work_types (name, default_price, expense_cost, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + workTypeColumns
	row := r.q.QueryRow(context.Background(), query,
		wt.Name, wt.DefaultPrice, wt.ExpenseCost, wt.IsActive,
	)
	created, err := scanWorkType(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert work type: %w", err)
	}
	return created, nil
}

// Update actualiza nombre, precios y estado de un tipo existente.
func (r *WorkTypeRepo) Update(wt *entity.WorkType) error {
	query := `
		UPDATE work_types SET name = $2, default_price = $3, expense_cost = $4, is_active = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		wt.ID, wt.Name, wt.DefaultPrice, wt.ExpenseCost, wt.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update work type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo por id. (nil, nil) si no existe.
func (r *WorkTypeRepo) GetByID(id int64) (*entity.WorkType, error) {
	query := `SELECT ` + workTypeColumns + ` FROM work_types WHERE id = $1`
	wt, err := scanWorkType(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work type: %w", err)
	}
	return wt, nil
}

// GetActiveByName obtiene un tipo activo por nombre. (nil, nil) si no existe o está inactivo.
func (r *WorkTypeRepo) GetActiveByName(name string) (*entity.WorkType, error) {
	query := `SELECT ` + workTypeColumns + ` FROM work_types WHERE name = $1 AND is_active`
	wt, err := scanWorkType(r.q.QueryRow(context.Background(), query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active work type: %w", err)
	}
	return wt, nil
}

// ListActive devuelve los tipos seleccionables para recibos nuevos, por nombre.
func (r *WorkTypeRepo) ListActive() ([]*entity.WorkType, error) {
	return r.list(`SELECT ` + workTypeColumns + ` FROM work_types WHERE is_active ORDER BY name ASC`)
}

// List devuelve todos los tipos por id ascendente (vista admin).
func (r *WorkTypeRepo) List() ([]*entity.WorkType, error) {
	return r.list(`SELECT ` + workTypeColumns + ` FROM work_types ORDER BY id ASC`)
}

func (r *WorkTypeRepo) list(query string) ([]*entity.WorkType, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list work types: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkType
	for rows.Next() {
		wt, err := scanWorkType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work type: %w", err)
		}
		list = append(list, wt)
	}
	return list, rows.Err()
}

// UpsertByName inserta o reemplaza precios/estado conservando el id subrogado.
func (r *WorkTypeRepo) UpsertByName(wt *entity.WorkType) (*entity.WorkType, error) {
	query := `
		INSERT INTO work_types (name, default_price, expense_cost, is_active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET
			default_price = EXCLUDED.default_price,
			expense_cost = EXCLUDED.expense_cost,
			is_active = EXCLUDED.is_active
		RETURNING ` + workTypeColumns
	row := r.q.QueryRow(context.Background(), query,
		wt.Name, wt.DefaultPrice, wt.ExpenseCost, wt.IsActive,
	)
	saved, err := scanWorkType(row)
	if err != nil {
		return nil, fmt.Errorf("upsert work type: %w", err)
	}
	return saved, nil
}

func scanWorkType(row pgx.Row) (*entity.WorkType, error) {
	var wt entity.WorkType
	err := row.Scan(&wt.ID, &wt.Name, &wt.DefaultPrice, &wt.ExpenseCost, &wt.IsActive, &wt.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &wt, nil
}
