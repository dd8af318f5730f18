package expr

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-drift/genui/pkg/dynamic"
)

// emailPattern accepts a simple single-address shape: one @, a dot in the
// domain, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// required(value) is false for an absent value and for empty or
// whitespace-only strings; any other resolved value passes.
func (e *Evaluator) required(call *dynamic.FunctionCall) (any, bool) {
	value, ok := e.resolve(call.Arg("value"))
	if !ok {
		return false, true
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) != "", true
	case []string:
		return len(v) > 0, true
	default:
		return true, true
	}
}

// email(value) is true iff the value matches a simple single-address shape.
func (e *Evaluator) email(call *dynamic.FunctionCall) (any, bool) {
	value, ok := e.stringArg(call, "value")
	if !ok {
		return false, true
	}
	return emailPattern.MatchString(value), true
}

// regex(value, pattern) is true iff the whole value matches pattern.
// An invalid pattern or a missing value yields false, never an error.
func (e *Evaluator) regex(call *dynamic.FunctionCall) (any, bool) {
	value, ok := e.stringArg(call, "value")
	if !ok {
		return false, true
	}
	pattern, ok := e.stringArg(call, "pattern")
	if !ok {
		return false, true
	}
	compiled, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return false, true
	}
	return compiled.MatchString(value), true
}

// length(value, min?, max?) is true iff the value's length is within the
// given bounds. An unconstrained bound is always satisfied; a missing value
// has length zero.
func (e *Evaluator) length(call *dynamic.FunctionCall) (any, bool) {
	size := 0
	if value, ok := e.resolve(call.Arg("value")); ok {
		switch v := value.(type) {
		case string:
			size = utf8.RuneCountInString(v)
		case []string:
			size = len(v)
		}
	}
	if min, ok := e.intArg(call, "min"); ok && size < min {
		return false, true
	}
	if max, ok := e.intArg(call, "max"); ok && size > max {
		return false, true
	}
	return true, true
}

// numeric(value, min?, max?) is a numeric range check. A missing or
// non-numeric value is false.
func (e *Evaluator) numeric(call *dynamic.FunctionCall) (any, bool) {
	value, ok := e.numberArg(call, "value")
	if !ok {
		return false, true
	}
	if min, ok := e.numberArg(call, "min"); ok && value < min {
		return false, true
	}
	if max, ok := e.numberArg(call, "max"); ok && value > max {
		return false, true
	}
	return true, true
}
