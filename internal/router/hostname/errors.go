package hostname

import (
	"errors"
	"fmt"
)

var errNilValue = errors.New("value is null")

// ConfigurationError is returned when route options are malformed.
type ConfigurationError struct {
	Key    string // offending option key
	Reason string
	Err    error // decoding error, if any
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return "hostname: " + e.Reason
}

// Unwrap returns the decoding error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// AssemblyError is returned when the URL builder rejects the host.
type AssemblyError struct {
	Host string
	Err  error
}

// Error implements the error interface.
func (e *AssemblyError) Error() string {
	return fmt.Sprintf("hostname: could not set host %s: %v", e.Host, e.Err)
}

// Unwrap returns the URL builder's error.
func (e *AssemblyError) Unwrap() error {
	return e.Err
}

// IsConfigurationError returns true if the error is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// AsAssemblyError extracts the AssemblyError from an error if present.
func AsAssemblyError(err error) (*AssemblyError, bool) {
	var ae *AssemblyError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
