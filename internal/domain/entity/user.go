package entity

import "time"

// User representa un mecánico o administrador del taller.
// Username es el personnummer sueco (clave natural, formato ÅÅÅÅMMDD-XXXX).
// La contraseña se guarda en claro: el sistema original no define ningún
// esquema de hashing y la especificación pide conservar ese comportamiento.
type User struct {
	ID          int64
	Username    string
	DisplayName string
	Password    string
	RankID      *int64 // opcional; sin rango = sin capacidades (salvo IsAdmin)
	IsAdmin     bool   // flag legado: si está activo, otorga todas las capacidades
	CreatedAt   time.Time
}
