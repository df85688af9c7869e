package expression

import (
	"strconv"
	"strings"

	"github.com/ohler55/ojg/jp"
)

// Context is the read-only resolution context expressions are evaluated
// against: the resolved parameter tree keyed by property name, nested maps
// for groups and slices for repeated group instances.
type Context struct {
	params map[string]any
}

// NewContext wraps a resolved parameter tree. The tree is not copied; it is
// treated as immutable for the lifetime of the context.
func NewContext(params map[string]any) *Context {
	return &Context{params: params}
}

// Lookup resolves a dotted path ("group.0.street") against the tree. The
// empty path yields the whole tree.
func (c *Context) Lookup(path string) (any, bool) {
	if path == "" {
		return c.params, true
	}

	expr, err := pathExpr(path)
	if err != nil {
		return nil, false
	}

	matches := expr.Get(c.params)
	if len(matches) == 0 {
		return nil, false
	}

	return matches[0], true
}

// pathExpr converts a dotted parameter path into a JSONPath expression.
// Numeric segments become array indexes.
func pathExpr(path string) (jp.Expr, error) {
	var b strings.Builder

	b.WriteString("$")

	for _, seg := range strings.Split(path, ".") {
		if idx, err := strconv.Atoi(seg); err == nil {
			b.WriteString("[" + strconv.Itoa(idx) + "]")

			continue
		}

		b.WriteString("['" + seg + "']")
	}

	return jp.ParseString(b.String())
}
