package models

import "fmt"

type APIErrorKind string

var (
	APIErrorUnauthorized APIErrorKind = "unauthorized"
	APIErrorTransient    APIErrorKind = "transient"
)

// APIError carries the HTTP status of a failed platform request so callers
// can tell an expired credential apart from a transient failure.
type APIError struct {
	Kind       APIErrorKind
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (status code %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s (status code %d)", e.Kind, e.StatusCode)
}

func (e *APIError) IsUnauthorized() bool {
	return e.Kind == APIErrorUnauthorized
}

type GetStreamsUnauthorized struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}
