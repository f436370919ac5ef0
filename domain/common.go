package domain

import (
	"errors"
	"fmt"
)

const (
	CodeValidationError     = "VALIDATION_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeConflict            = "CONFLICT"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrTokenNotFound = errors.New("access token required")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
)

// APIError is the closed error type surfaced at the HTTP boundary. The Code
// field is the machine-readable discriminant; Status is the HTTP status it
// maps to.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewValidationError(message string, details any) *APIError {
	return &APIError{Status: 400, Code: CodeValidationError, Message: message, Details: details}
}

func NewNotFoundError(resource string, id uint) *APIError {
	return &APIError{Status: 404, Code: CodeNotFound, Message: fmt.Sprintf("%s not found: %d", resource, id)}
}

func NewUnauthorizedError(message string) *APIError {
	return &APIError{Status: 401, Code: CodeUnauthorized, Message: message}
}

func NewForbiddenError(message string) *APIError {
	return &APIError{Status: 403, Code: CodeForbidden, Message: message}
}

func NewConflictError(message string, details any) *APIError {
	return &APIError{Status: 409, Code: CodeConflict, Message: message, Details: details}
}

func NewInternalServerError(message string) *APIError {
	return &APIError{Status: 500, Code: CodeInternalServerError, Message: message}
}
