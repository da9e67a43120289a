package dto

// ErrorResponse cuerpo de error HTTP: siempre un objeto con campo "error".
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse cuerpo de confirmación para borrados.
type MessageResponse struct {
	Message string `json:"message"`
}
