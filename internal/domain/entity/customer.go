package entity

import "time"

// Customer es una entrada del registro de clientes: nombre único y teléfono.
type Customer struct {
	ID        int64
	Name      string
	Phone     string
	CreatedAt time.Time
}
