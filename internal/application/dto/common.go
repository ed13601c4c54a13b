package dto

// Todas las respuestas JSON llevan un booleano "ok": true con payload,
// false con "error" (texto en sueco para el usuario) y "code" para clientes.

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"error"`
}

// Err construye un ErrorResponse.
func Err(code, message string) ErrorResponse {
	return ErrorResponse{OK: false, Code: code, Message: message}
}

// ValidationResponse error de validación con la lista completa de problemas.
type ValidationResponse struct {
	OK      bool     `json:"ok"`
	Code    string   `json:"code"`
	Message string   `json:"error"`
	Errors  []string `json:"errors"`
}

// Validation construye un ValidationResponse a partir de los mensajes acumulados.
func Validation(msgs []string) ValidationResponse {
	joined := ""
	if len(msgs) > 0 {
		joined = msgs[0]
		for _, m := range msgs[1:] {
			joined += "; " + m
		}
	}
	return ValidationResponse{OK: false, Code: "VALIDATION", Message: joined, Errors: msgs}
}

// OKResponse respuesta mínima de éxito (logout, updates sin payload).
type OKResponse struct {
	OK bool `json:"ok"`
}
