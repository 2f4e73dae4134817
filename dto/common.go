package dto

// ErrorResponse is the uniform error body every handler returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
