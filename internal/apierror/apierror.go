// Package apierror provee la envoltura estandar de errores para la API JSON.
// Todo error que llega a un cliente pasa por aca para no filtrar detalles
// internos (trazas, errores de la capa de persistencia, etc.).
package apierror

// APIError es la envoltura canonica para respuestas 4xx/5xx de la API.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError agrupa errores de varios campos de un mismo request.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
