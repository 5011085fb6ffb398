package router

import (
	"errors"
	"fmt"
)

var (
	// ErrOptionsRequired is returned when a route is created without an options map.
	ErrOptionsRequired = errors.New("router: options must be a map")

	// ErrUnknownRouteType is returned when no factory is registered for a route type.
	ErrUnknownRouteType = errors.New("router: unknown route type")

	// ErrRouteNotFound is returned when assembling a route name the router does not hold.
	ErrRouteNotFound = errors.New("router: route not found")
)

// ServiceNotCreatedError is returned by Manager.Create when a route could not be built.
type ServiceNotCreatedError struct {
	Type string
	Err  error
}

// Error implements the error interface.
func (e *ServiceNotCreatedError) Error() string {
	return fmt.Sprintf("router: an error occurred while creating route %q: %v", e.Type, e.Err)
}

// Unwrap returns the cause.
func (e *ServiceNotCreatedError) Unwrap() error {
	return e.Err
}

// MissingDependencyError is returned by Manager.Load when a module is loaded
// before a module it requires.
type MissingDependencyError struct {
	Module   string
	Requires string
}

// Error implements the error interface.
func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("router: module %q requires module %q to be loaded first", e.Module, e.Requires)
}

// IsServiceNotCreatedError returns true if the error is a ServiceNotCreatedError.
func IsServiceNotCreatedError(err error) bool {
	var se *ServiceNotCreatedError
	return errors.As(err, &se)
}
