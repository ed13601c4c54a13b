package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación del puerto ReceiptRepository sobre PostgreSQL.
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador de persistencia para recibos.
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

const receiptColumns = `id, mechanic, work_type, styling_parts, performance_parts, amount, customer, plate, created_at`

// Create persiste el recibo. created_at lo pone el almacén (inmutable).
func (r *ReceiptRepo) Create(receipt *entity.Receipt) (*entity.Receipt, error) {
	query := `
		INSERT INTO receipts (mechanic, work_type, styling_parts, performance_parts, amount, customer, plate)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + receiptColumns
	row := r.q.QueryRow(context.Background(), query,
		receipt.Mechanic, receipt.WorkType, receipt.StylingParts, receipt.PerformanceParts,
		receipt.Amount, receipt.Customer, receipt.Plate,
	)
	created, err := scanReceipt(row)
	if err != nil {
		return nil, fmt.Errorf("insert receipt: %w", err)
	}
	return created, nil
}

// GetByID obtiene un recibo por id. (nil, nil) si no existe.
func (r *ReceiptRepo) GetByID(id int64) (*entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE id = $1`
	receipt, err := scanReceipt(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return receipt, nil
}

// List devuelve todos los recibos, el más reciente primero (id DESC).
func (r *ReceiptRepo) List() ([]*entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, receipt)
	}
	return list, rows.Err()
}

func scanReceipt(row pgx.Row) (*entity.Receipt, error) {
	var rc entity.Receipt
	err := row.Scan(
		&rc.ID, &rc.Mechanic, &rc.WorkType, &rc.StylingParts, &rc.PerformanceParts,
		&rc.Amount, &rc.Customer, &rc.Plate, &rc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rc, nil
}
