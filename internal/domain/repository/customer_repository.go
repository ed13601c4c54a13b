package repository

import "github.com/bennys-motorworks/verkstad-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para el registro de clientes.
type CustomerRepository interface {
	Create(c *entity.Customer) (*entity.Customer, error)
	UpdatePhone(id int64, phone string) error
	List() ([]*entity.Customer, error)
	UpsertByName(c *entity.Customer) (*entity.Customer, error)
}
