package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/repository"
)

var _ repository.RankRepository = (*RankRepo)(nil)

// RankRepo implementación del puerto RankRepository sobre PostgreSQL.
type RankRepo struct {
	q Querier
}

// NewRankRepository construye el adaptador de persistencia para rangos.
func NewRankRepository(q Querier) *RankRepo {
	return &RankRepo{q: q}
}

const rankColumns = `id, name, view_admin, manage_users, manage_prices, edit_receipts`

// GetByID obtiene un rango por id. (nil, nil) si no existe.
func (r *RankRepo) GetByID(id int64) (*entity.Rank, error) {
	query := `SELECT ` + rankColumns + ` FROM ranks WHERE id = $1`
	rank, err := scanRank(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rank by id: %w", err)
	}
	return rank, nil
}

// GetByName obtiene un rango por su clave natural. (nil, nil) si no existe.
func (r *RankRepo) GetByName(name string) (*entity.Rank, error) {
	query := `SELECT ` + rankColumns + ` FROM ranks WHERE name = $1`
	rank, err := scanRank(r.q.QueryRow(context.Background(), query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rank by name: %w", err)
	}
	return rank, nil
}

// List lista todos los rangos por nombre.
func (r *RankRepo) List() ([]*entity.Rank, error) {
	query := `SELECT ` + rankColumns + ` FROM ranks ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ranks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rank
	for rows.Next() {
		rank, err := scanRank(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rank: %w", err)
		}
		list = append(list, rank)
	}
	return list, rows.Err()
}

// UpsertByName inserta el rango o reemplaza sus capacidades si el nombre ya
// existe. El DO UPDATE conserva el id subrogado original.
func (r *RankRepo) UpsertByName(rank *entity.Rank) (*entity.Rank, error) {
	query := `
		INSERT INTO ranks (name, view_admin, manage_users, manage_prices, edit_receipts)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE SET
			view_admin = EXCLUDED.view_admin,
			manage_users = EXCLUDED.manage_users,
			manage_prices = EXCLUDED.manage_prices,
			edit_receipts = EXCLUDED.edit_receipts
		RETURNING ` + rankColumns
	row := r.q.QueryRow(context.Background(), query,
		rank.Name, rank.ViewAdmin, rank.ManageUsers, rank.ManagePrices, rank.EditReceipts,
	)
	saved, err := scanRank(row)
	if err != nil {
		return nil, fmt.Errorf("upsert rank: %w", err)
	}
	return saved, nil
}

func scanRank(row pgx.Row) (*entity.Rank, error) {
	var rk entity.Rank
	err := row.Scan(&rk.ID, &rk.Name, &rk.ViewAdmin, &rk.ManageUsers, &rk.ManagePrices, &rk.EditReceipts)
	if err != nil {
		return nil, err
	}
	return &rk, nil
}
