package kachelmann

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidCredential  = errors.New("invalid API key")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidUnits       = errors.New("invalid units")
	ErrInvalidTimestep    = errors.New("invalid timestep")
	ErrInvalidStation     = errors.New("invalid station id")
	ErrMissingCoordinates = errors.New("client has no coordinates")

	ErrUnknownEndpoint = errors.New("unknown endpoint")
	ErrMissingParam    = errors.New("missing url parameter")

	ErrAuthentication = errors.New("API key rejected by KachelmannWetter")
	ErrAPI            = errors.New("KachelmannWetter API error")

	ErrRequestsExceeded = errors.New("allowed number of requests exceeded")
)

// ValidationError is returned for caller input rejected before any request is sent.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

type AuthenticationError struct {
	StatusCode int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s (status %d)", ErrAuthentication, e.StatusCode)
}

func (e *AuthenticationError) Unwrap() error {
	return ErrAuthentication
}

// APIError carries a non-success response. Payload is nil when the body
// is not valid JSON; Body always holds the raw response body.
// A 429 response also matches ErrRequestsExceeded.
type APIError struct {
	StatusCode int
	Payload    *Payload
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Payload != nil {
		return fmt.Sprintf("%s: status %d, payload: %s", ErrAPI, e.StatusCode, e.Payload)
	}
	return fmt.Sprintf("%s: status %d, body: %s", ErrAPI, e.StatusCode, string(e.Body))
}

func (e *APIError) Unwrap() []error {
	if e.StatusCode == http.StatusTooManyRequests {
		return []error{ErrAPI, ErrRequestsExceeded}
	}
	return []error{ErrAPI}
}

func invalid(field, value string, err error) error {
	return &ValidationError{Field: field, Value: value, Err: err}
}
