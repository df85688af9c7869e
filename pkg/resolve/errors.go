package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a per-field resolution failure.
type ErrorKind string

const (
	KindMissingRequired  ErrorKind = "missing_required_field"
	KindTypeMismatch     ErrorKind = "type_mismatch"
	KindRange            ErrorKind = "range"
	KindUnknownOption    ErrorKind = "unknown_option_value"
	KindDuplicateOption  ErrorKind = "duplicate_option_value"
	KindCollectionBounds ErrorKind = "collection_bounds"
)

// FieldError is one validation failure, addressed by the dotted path of the
// failing property.
type FieldError struct {
	Path    string    `json:"path"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Path, e.Message, e.Kind)
}

// FieldErrors is the batched failure of one resolution pass; every invalid
// active property contributes exactly one entry.
type FieldErrors []*FieldError

func (e FieldErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}

	msgs := make([]string, len(e))
	for i, fieldErr := range e {
		msgs[i] = fieldErr.Error()
	}

	return fmt.Sprintf("%d invalid parameters: %s", len(e), strings.Join(msgs, "; "))
}

func fieldErr(path string, kind ErrorKind, format string, args ...any) *FieldError {
	return &FieldError{Path: path, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsFieldErrors unwraps a batched resolution failure.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var target FieldErrors
	if errors.As(err, &target) {
		return target, true
	}

	return nil, false
}
