package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrMalformedResponse = errors.New("malformed server response")
)

// APIError is a non-success HTTP response. Detail carries the backend's
// human-readable message when one was provided.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("server error (%d)", e.StatusCode)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match auth failures.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}

// ErrorDetail extracts the backend-provided message from err, or returns
// fallback. Remote details are surfaced to the user verbatim when present.
func ErrorDetail(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
