package repository

import "github.com/bennys-motorworks/verkstad-api/internal/domain/entity"

// ReceiptRepository define el puerto de persistencia para Receipt.
// Los recibos nunca se borran; List devuelve orden id descendente (más
// reciente primero), que es el orden del listado original.
type ReceiptRepository interface {
	// Create persiste el recibo; id y created_at los asigna el almacén.
	Create(receipt *entity.Receipt) (*entity.Receipt, error)
	GetByID(id int64) (*entity.Receipt, error)
	List() ([]*entity.Receipt, error)
}
