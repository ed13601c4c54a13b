package dto

import "github.com/bennys-motorworks/verkstad-api/internal/domain/entity"

// LoginRequest credenciales del formulario de acceso.
type LoginRequest struct {
	Personnummer string `json:"personnummer"`
	Password     string `json:"password"`
}

// SessionResponse identidad y permisos resueltos de la sesión actual.
type SessionResponse struct {
	OK           bool               `json:"ok"`
	Personnummer string             `json:"personnummer"`
	DisplayName  string             `json:"display_name"`
	RankName     string             `json:"rank_name,omitempty"`
	Permissions  entity.Permissions `json:"permissions"`
}
