// Package auth resuelve la autenticación por credenciales y el conjunto de
// permisos que viaja en la sesión.
//
// Brecha conocida y deliberada: las contraseñas se comparan en claro, sin
// hashing ni comparación en tiempo constante. El sistema original funciona
// así y no define ningún esquema que replicar; se conserva el comportamiento
// en lugar de inventar uno.
package auth

import (
	"github.com/bennys-motorworks/verkstad-api/internal/domain"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/repository"
)

// Identity es el principal autenticado con su snapshot de permisos, listo
// para persistir en sesión.
type Identity struct {
	UserID      int64
	Username    string
	DisplayName string
	RankID      *int64
	RankName    string
	Permissions entity.Permissions
}

// AuthUseCase autentica credenciales y resuelve permisos.
type AuthUseCase struct {
	users repository.UserRepository
	ranks repository.RankRepository
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, ranks repository.RankRepository) *AuthUseCase {
	return &AuthUseCase{users: users, ranks: ranks}
}

// Authenticate busca el usuario y exige coincidencia exacta de contraseña
// (sensible a mayúsculas). Usuario desconocido y contraseña incorrecta
// devuelven el mismo error genérico: no se distingue para no permitir
// enumeración de usuarios.
//
// Permisos: los cuatro booleanos del rango (todo falso sin rango); el flag
// legado is_admin, si está activo, fuerza todas las capacidades.
func (uc *AuthUseCase) Authenticate(username, password string) (*Identity, error) {
	user, err := uc.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != password {
		return nil, domain.ErrInvalidCredentials
	}

	id := &Identity{
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		RankID:      user.RankID,
	}

	if user.RankID != nil {
		rank, err := uc.ranks.GetByID(*user.RankID)
		if err != nil {
			return nil, err
		}
		if rank != nil {
			id.RankName = rank.Name
			id.Permissions = rank.Permissions()
		}
	}
	if user.IsAdmin {
		id.Permissions = entity.AllPermissions()
	}
	return id, nil
}
