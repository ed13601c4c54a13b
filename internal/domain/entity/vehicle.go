package entity

import "time"

// Vehicle es una entrada del registro de vehículos: matrícula única
// (normalizada a mayúsculas, formato AAA-000) y descripción del modelo.
type Vehicle struct {
	ID          int64
	Plate       string
	VehicleType string
	CreatedAt   time.Time
}
