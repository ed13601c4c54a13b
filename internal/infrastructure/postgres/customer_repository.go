package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bennys-motorworks/verkstad-api/internal/domain"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador del registro de clientes.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, customer_name, phone, created_at`

// Create registra un cliente nuevo. Nombre duplicado -> domain.ErrDuplicate.
func (r *CustomerRepo) Create(c *entity.Customer) (*entity.Customer, error) {
	query := `
		INSERT INTO customer_registry (customer_name, phone)
		VALUES ($1, $2)
		RETURNING ` + customerColumns
	created, err := scanCustomer(r.q.QueryRow(context.Background(), query, c.Name, c.Phone))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	return created, nil
}

// UpdatePhone cambia el teléfono de un cliente existente.
func (r *CustomerRepo) UpdatePhone(id int64, phone string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE customer_registry SET phone = $2 WHERE id = $1`, id, phone)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// List lista el registro por nombre.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+customerColumns+` FROM customer_registry ORDER BY customer_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// UpsertByName inserta o reemplaza el teléfono conservando el id subrogado.
func (r *CustomerRepo) UpsertByName(c *entity.Customer) (*entity.Customer, error) {
	query := `
		INSERT INTO customer_registry (customer_name, phone)
		VALUES ($1, $2)
		ON CONFLICT (customer_name) DO UPDATE SET phone = EXCLUDED.phone
		RETURNING ` + customerColumns
	saved, err := scanCustomer(r.q.QueryRow(context.Background(), query, c.Name, c.Phone))
	if err != nil {
		return nil, fmt.Errorf("upsert customer: %w", err)
	}
	return saved, nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
