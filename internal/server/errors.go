// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"fmt"
	"net/http"
)

// ErrUserAlreadyExists indicates the username or email is taken
type ErrUserAlreadyExists struct {
	Username string
}

func (e *ErrUserAlreadyExists) Error() string {
	return fmt.Sprintf("user already registered: %s", e.Username)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// ErrNoHistory indicates no stored analyses exist for an identifier
type ErrNoHistory struct {
	UserIdentifier string
}

func (e *ErrNoHistory) Error() string {
	return fmt.Sprintf("no analysis history found for user: %s", e.UserIdentifier)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnsupportedDocument indicates an upload with no registered extractor
type ErrUnsupportedDocument struct {
	ContentType string
}

func (e *ErrUnsupportedDocument) Error() string {
	return fmt.Sprintf("unsupported document type: %s", e.ContentType)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrUserAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrNoHistory:
		return http.StatusNotFound
	case *ErrValidation, *ErrUnsupportedDocument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
