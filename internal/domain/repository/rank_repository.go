package repository

import "github.com/bennys-motorworks/verkstad-api/internal/domain/entity"

// RankRepository define el puerto de persistencia para Rank.
// Los rangos se gestionan con upsert por nombre y nunca se borran.
type RankRepository interface {
	GetByID(id int64) (*entity.Rank, error)
	GetByName(name string) (*entity.Rank, error)
	List() ([]*entity.Rank, error)
	// UpsertByName inserta el rango o, si el nombre ya existe, reemplaza las
	// cuatro capacidades conservando el id subrogado original.
	UpsertByName(rank *entity.Rank) (*entity.Rank, error)
}
