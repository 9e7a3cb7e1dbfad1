package creds

import (
	"errors"
	"fmt"
)

// ErrMalformedPort is returned when a port parameter is not a valid base-10
// port number. Use errors.Is(err, ErrMalformedPort) to check for it.
var ErrMalformedPort = errors.New("creds: malformed port")

// PortError describes a port parameter that could not be parsed.
type PortError struct {
	// Field is the parameter name ("port" or "proxyPort").
	Field string

	// Value is the raw value supplied by the caller.
	Value string

	// Err is the underlying parse error, if any.
	Err error
}

// Error implements the error interface.
func (e *PortError) Error() string {
	msg := fmt.Sprintf("creds: malformed %s %q", e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying parse error.
func (e *PortError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedPort.
func (e *PortError) Is(target error) bool {
	return target == ErrMalformedPort
}
