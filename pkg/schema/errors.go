package schema

import (
	"errors"
	"fmt"
)

// Schema-load failures are fatal: a description that fails any of these
// checks must never be used for resolution.
var (
	ErrUnknownType          = errors.New("unknown property type")
	ErrDuplicateName        = errors.New("duplicate property name among siblings")
	ErrCyclicVisibility     = errors.New("visibility reference to self or later sibling")
	ErrInvalidReference     = errors.New("visibility reference to unknown sibling")
	ErrTypeOptionsMismatch  = errors.New("type options variant does not match property type")
	ErrResourceMapperMethod = errors.New("resourceMapper requires exactly one of resource_mapper_method and local_resource_mapper_method")
	ErrInvalidDefault       = errors.New("default value shape invalid for property type")
	ErrInvalidRouting       = errors.New("invalid routing spec")
	ErrMalformedDocument    = errors.New("malformed node description document")
)

// SchemaError wraps a load-time failure with the property path it was
// detected at.
type SchemaError struct {
	Path string
	Err  error
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

func schemaErr(path string, err error) error {
	return &SchemaError{Path: path, Err: err}
}

func schemaErrf(path string, err error, format string, args ...any) error {
	return &SchemaError{Path: path, Err: fmt.Errorf("%w: "+format, append([]any{err}, args...)...)}
}
