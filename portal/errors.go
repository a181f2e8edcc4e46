package portal

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrTransport wraps failures that happened before any HTTP status was received.
	ErrTransport = errors.New("Erro de conexão com o servidor.")
	// ErrNotFound is returned when neither the by-id request nor the list scan found the post.
	ErrNotFound = errors.New("Post não encontrado.")
	// ErrMissingToken is returned for a successful login response that carries no token.
	ErrMissingToken = errors.New("Resposta sem token de acesso.")
	// ErrInvalidID is returned when an operation needs an id and got none.
	ErrInvalidID = errors.New("ID inválido.")
)

// APIError is a non-2xx answer from the portal API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// newAPIError prefers the server's message field and falls back to a status-coded text.
func newAPIError(status int, body []byte, generic string) *APIError {
	msg := fmt.Sprintf("%s (HTTP %d)", generic, status)
	if m := messageField(body); m != "" {
		msg = m
	}
	return &APIError{Status: status, Message: msg}
}

// Message returns the text shown to the user for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Requisição cancelada."
	case errors.Is(err, ErrTransport):
		return ErrTransport.Error()
	}
	return err.Error()
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
