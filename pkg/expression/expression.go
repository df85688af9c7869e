// Package expression parses and evaluates the embedded routing template
// syntax: a leading "=" sigil marks a template whose {{ ... }} segments hold
// dotted $parameter references, interleaved with literal text. Evaluation is
// pure; it never loads options or performs I/O.
package expression

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	sigil      = "="
	openDelim  = "{{"
	closeDelim = "}}"

	parameterRoot = "$parameter"
)

// IsExpression reports whether the string carries the expression sigil.
func IsExpression(s string) bool {
	return strings.HasPrefix(s, sigil)
}

// Evaluate renders a template against the context. Non-sigil strings pass
// through unchanged, except that stray {{ }} delimiters without the sigil
// are rejected rather than dispatched as literal text. Segment results are
// stringified and concatenated with the surrounding literal text.
func Evaluate(template string, ctx *Context) (string, error) {
	result, err := Resolve(template, ctx)
	if err != nil {
		return "", err
	}

	return Stringify(result), nil
}

// Resolve renders a template like Evaluate but preserves the referenced
// value's type when the template is a single expression segment with no
// surrounding literal text. Routing body leaves rely on this to stay
// structured.
func Resolve(template string, ctx *Context) (any, error) {
	if !IsExpression(template) {
		if strings.Contains(template, openDelim) || strings.Contains(template, closeDelim) {
			return nil, &MalformedExpressionError{Template: template, Reason: "template segments require the leading \"=\" sigil"}
		}

		return template, nil
	}

	body := strings.TrimPrefix(template, sigil)

	segments, err := split(template, body)
	if err != nil {
		return nil, err
	}

	if len(segments) == 1 && segments[0].expr {
		return lookup(template, segments[0].text, ctx)
	}

	var out strings.Builder

	for _, seg := range segments {
		if !seg.expr {
			out.WriteString(seg.text)

			continue
		}

		value, err := lookup(template, seg.text, ctx)
		if err != nil {
			return nil, err
		}

		out.WriteString(Stringify(value))
	}

	return out.String(), nil
}

type segment struct {
	text string
	expr bool
}

// split cuts the template body into literal and expression segments,
// rejecting unbalanced delimiters.
func split(template, body string) ([]segment, error) {
	var segments []segment

	for len(body) > 0 {
		open := strings.Index(body, openDelim)
		stray := strings.Index(body, closeDelim)

		if open == -1 {
			if stray != -1 {
				return nil, &MalformedExpressionError{Template: template, Reason: "unbalanced delimiters"}
			}

			segments = append(segments, segment{text: body})

			break
		}

		if stray != -1 && stray < open {
			return nil, &MalformedExpressionError{Template: template, Reason: "unbalanced delimiters"}
		}

		if open > 0 {
			segments = append(segments, segment{text: body[:open]})
		}

		body = body[open+len(openDelim):]

		closing := strings.Index(body, closeDelim)
		if closing == -1 {
			return nil, &MalformedExpressionError{Template: template, Reason: "unbalanced delimiters"}
		}

		segments = append(segments, segment{text: strings.TrimSpace(body[:closing]), expr: true})
		body = body[closing+len(closeDelim):]
	}

	return segments, nil
}

// lookup resolves one expression segment: a dotted path rooted at
// $parameter, numeric segments indexing repeated group instances.
func lookup(template, expr string, ctx *Context) (any, error) {
	if expr != parameterRoot && !strings.HasPrefix(expr, parameterRoot+".") {
		return nil, &MalformedExpressionError{Template: template, Reason: fmt.Sprintf("expression %q is not rooted at %s", expr, parameterRoot)}
	}

	path := strings.TrimPrefix(expr, parameterRoot)
	path = strings.TrimPrefix(path, ".")

	value, ok := ctx.Lookup(path)
	if !ok {
		return nil, &UnresolvedReferenceError{Path: expr}
	}

	return value, nil
}

// Stringify renders a resolved value for interpolation into a string field.
// Structured values serialize as JSON.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}

		return string(encoded)
	}
}
