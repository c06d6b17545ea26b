package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected response status")

	ErrEmptyAddress = errors.New("empty server address")
	ErrNoToken      = errors.New("no access token, log in first")
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int

	// Detail is the "detail" field of the error body, or the raw body when
	// it is not JSON.
	Detail string

	kind error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.kind, e.StatusCode, e.Detail)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
