package auth

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrSubmitInFlight is returned when a form is submitted again before the
// previous submission finished.
var ErrSubmitInFlight = errors.New("auth: submission already in progress")

// ValidationErrors maps a field name to its localized message.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// GenericAuthError is a non-2xx answer from the login endpoint.
type GenericAuthError struct {
	StatusCode int
	Message    string
}

func (e *GenericAuthError) Error() string {
	return e.Message
}

// TransportError wraps a failure to reach the login endpoint at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("auth: login request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
