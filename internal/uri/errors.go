package uri

import (
	"errors"
	"fmt"
)

// InvalidPartError is returned when a URL component violates URI syntax.
type InvalidPartError struct {
	Part   string // "host" or "port"
	Value  string
	Reason string
}

// Error implements the error interface.
func (e *InvalidPartError) Error() string {
	return fmt.Sprintf("uri: invalid %s %q: %s", e.Part, e.Value, e.Reason)
}

// IsInvalidPartError reports whether err is an InvalidPartError.
func IsInvalidPartError(err error) bool {
	var pe *InvalidPartError
	return errors.As(err, &pe)
}
