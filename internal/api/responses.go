// Package api defines the shared HTTP response envelope and the translation
// of domain errors into transport status codes.
package api

// MessageResponse is the success body for operations without a payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body returned on every failure.
type ErrorResponse struct {
	Message string `json:"message"`
}
