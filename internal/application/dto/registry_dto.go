package dto

import "time"

// SaveVehicleRequest alta/upsert de vehículo en el registro.
type SaveVehicleRequest struct {
	Plate       string `json:"plate"`
	VehicleType string `json:"vehicle_type"`
}

// UpdateVehicleRequest edición de la descripción de un vehículo existente.
type UpdateVehicleRequest struct {
	VehicleType string `json:"vehicle_type"`
}

// VehicleResponse una entrada del registro de vehículos.
type VehicleResponse struct {
	ID          int64     `json:"id"`
	Plate       string    `json:"plate"`
	VehicleType string    `json:"vehicle_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// VehicleListResponse listado del registro de vehículos.
type VehicleListResponse struct {
	OK       bool               `json:"ok"`
	Vehicles []*VehicleResponse `json:"vehicles"`
}

// VehicleSavedResponse alta/upsert correcto.
type VehicleSavedResponse struct {
	OK      bool             `json:"ok"`
	Vehicle *VehicleResponse `json:"vehicle"`
}

// SaveCustomerRequest alta/upsert de cliente en el registro.
type SaveCustomerRequest struct {
	Name  string `json:"customer_name"`
	Phone string `json:"phone"`
}

// UpdateCustomerRequest edición del teléfono de un cliente existente.
type UpdateCustomerRequest struct {
	Phone string `json:"phone"`
}

// CustomerResponse una entrada del registro de clientes.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"customer_name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerListResponse listado del registro de clientes.
type CustomerListResponse struct {
	OK        bool                `json:"ok"`
	Customers []*CustomerResponse `json:"customers"`
}

// CustomerSavedResponse alta/upsert correcto.
type CustomerSavedResponse struct {
	OK       bool              `json:"ok"`
	Customer *CustomerResponse `json:"customer"`
}
