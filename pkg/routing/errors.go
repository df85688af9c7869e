package routing

import (
	"errors"
	"fmt"
)

// ErrIncompleteSpec marks a merged routing spec that still lacks a method or
// URL after request defaults were applied.
var ErrIncompleteSpec = errors.New("merged routing spec lacks a method or url")

// ErrNoRouting marks a resolution state where no active property or selected
// option carries a routing spec.
var ErrNoRouting = errors.New("no active property carries a routing spec")

// RoutingError is fatal to a single compilation call. The resolved parameter
// tree it was compiled from stays valid.
type RoutingError struct {
	Field string
	Err   error
}

func (e *RoutingError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("routing compilation failed: %v", e.Err)
	}

	return fmt.Sprintf("routing compilation failed at %s: %v", e.Field, e.Err)
}

func (e *RoutingError) Unwrap() error {
	return e.Err
}

// IsRoutingError reports whether err came out of a compilation call.
func IsRoutingError(err error) bool {
	var target *RoutingError

	return errors.As(err, &target)
}
