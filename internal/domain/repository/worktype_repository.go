package repository

import "github.com/bennys-motorworks/verkstad-api/internal/domain/entity"

// WorkTypeRepository define el puerto de persistencia para WorkType.
type WorkTypeRepository interface {
	Create(wt *entity.WorkType) (*entity.WorkType, error)
	Update(wt *entity.WorkType) error
	GetByID(id int64) (*entity.WorkType, error)
	// GetActiveByName devuelve (nil, nil) si el tipo no existe o está inactivo.
	GetActiveByName(name string) (*entity.WorkType, error)
	// ListActive devuelve los tipos seleccionables en recibos nuevos, por nombre.
	ListActive() ([]*entity.WorkType, error)
	// List devuelve todos los tipos, por id ascendente (vista admin).
	List() ([]*entity.WorkType, error)
	UpsertByName(wt *entity.WorkType) (*entity.WorkType, error)
}
