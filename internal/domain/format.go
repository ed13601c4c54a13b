package domain

import (
	"regexp"
	"strings"
)

// Reglas de formato del taller, idénticas en todas las variantes del sistema:
// matrícula AAA-000, personnummer ÅÅÅÅMMDD-XXXX y teléfono permisivo.
var (
	platePattern        = regexp.MustCompile(`^[A-Z]{3}-[0-9]{3}$`)
	personnummerPattern = regexp.MustCompile(`^\d{8}-\d{4}$`)
	phonePattern        = regexp.MustCompile(`^[0-9+\- ]{6,20}$`)
)

// NormalizePlate recorta y pasa a mayúsculas la matrícula antes de validar/guardar.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// ValidPlate acepta exactamente tres letras mayúsculas, guion y tres dígitos.
func ValidPlate(plate string) bool {
	return platePattern.MatchString(plate)
}

// ValidPersonnummer valida el identificador natural de usuario (8 dígitos, guion, 4 dígitos).
func ValidPersonnummer(pnr string) bool {
	return personnummerPattern.MatchString(pnr)
}

// ValidPhone valida el teléfono: dígitos, +, - y espacios, longitud 6–20.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
