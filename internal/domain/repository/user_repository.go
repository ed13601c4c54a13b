package repository

import "github.com/bennys-motorworks/verkstad-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// GetByUsername devuelve (nil, nil) cuando no existe.
type UserRepository interface {
	Create(user *entity.User) (*entity.User, error)
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
}
