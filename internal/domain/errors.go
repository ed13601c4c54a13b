package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas). Los mensajes visibles al
// usuario van en sueco: es el idioma del taller y de la interfaz original.
var (
	ErrNotFound           = errors.New("resursen hittades inte")
	ErrInvalidCredentials = errors.New("fel personnummer eller lösenord")
	ErrInvalidInput       = errors.New("ogiltig indata")
	ErrDuplicate          = errors.New("posten finns redan")
	ErrUnauthorized       = errors.New("inloggning krävs")
	ErrForbidden          = errors.New("åtkomst nekad")
)

// ValidationErrors acumula todos los problemas de un formulario/payload.
// Nunca fail-fast: el llamador recibe la lista completa de una vez.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

// AsValidation devuelve la lista de mensajes si err es ValidationErrors.
func AsValidation(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
