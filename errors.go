package vortex

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/vortex/pkg/apikey"
)

var (
	ErrInvalidKeyFormat      = apikey.ErrInvalidFormat
	ErrInvalidKeyPrefix      = apikey.ErrInvalidPrefix
	ErrAPIRequestFailed      = errors.New("vortex: api request failed")
	ErrUnsupportedTargetType = errors.New("vortex: unsupported target type")
	ErrMissingIdentity       = errors.New("vortex: user must have either email or phone")
	ErrNoTargetsProvided     = errors.New("vortex: no targets provided")
	ErrMissingArgument       = errors.New("vortex: missing required argument")
	ErrInvalidRequest        = errors.New("vortex: invalid request")
)

// APIError is returned for any non-2xx response. Body holds the raw response
// text and is never parsed.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("vortex: api request failed: %s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return ErrAPIRequestFailed
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
