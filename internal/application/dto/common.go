package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AckResponse respuesta simple de confirmación para operaciones sin cuerpo útil.
type AckResponse struct {
	Message string `json:"message"`
}
