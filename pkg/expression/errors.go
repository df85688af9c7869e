package expression

import (
	"errors"
	"fmt"
)

// MalformedExpressionError reports a template that cannot be parsed:
// unbalanced delimiters or a reference outside the $parameter root.
type MalformedExpressionError struct {
	Template string
	Reason   string
}

func (e *MalformedExpressionError) Error() string {
	return fmt.Sprintf("malformed expression %q: %s", e.Template, e.Reason)
}

// UnresolvedReferenceError reports a referenced path absent from the
// context, typically because the property is inactive or not yet resolved.
type UnresolvedReferenceError struct {
	Path string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved reference %q", e.Path)
}

// IsMalformed reports whether err is a template parse failure.
func IsMalformed(err error) bool {
	var target *MalformedExpressionError

	return errors.As(err, &target)
}

// IsUnresolved reports whether err is a missing-reference failure.
func IsUnresolved(err error) bool {
	var target *UnresolvedReferenceError

	return errors.As(err, &target)
}
