// Package expr evaluates function-call dynamic values against a data store.
//
// The registry is fixed and flat: a closed set of pure formatting,
// validation, and boolean functions, none of which can invoke itself by
// name. Arguments are resolved depth-first — a literal yields its scalar, a
// path binding reads the store, and a nested function call evaluates
// recursively before the outer call runs.
//
// Evaluation never throws. It runs inside a UI rendering pass, where a hard
// failure would break an entire surface, so every failure mode degrades: an
// unknown function name or an action-style function (such as "openUrl")
// yields no value, and each registered function defines a safe default for
// missing arguments.
package expr

import (
	"strconv"

	"github.com/go-drift/genui/pkg/datastore"
	"github.com/go-drift/genui/pkg/dynamic"
	"github.com/go-drift/genui/pkg/errors"
)

// Evaluator evaluates function calls against one data store, which may be a
// template-scoped view.
type Evaluator struct {
	store datastore.Store
}

// NewEvaluator creates an evaluator reading from store.
func NewEvaluator(store datastore.Store) *Evaluator {
	return &Evaluator{store: store}
}

// Evaluate runs the named function and returns its result. The second
// return is false when the call yields no resolvable value: unknown
// function, action-style function, or a required argument that cannot be
// resolved. Callers treat that as "render the default", not as an error.
func (e *Evaluator) Evaluate(call *dynamic.FunctionCall) (result any, ok bool) {
	if call == nil {
		return nil, false
	}
	defer func() {
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         "expr.Evaluate",
				Value:      r,
				StackTrace: errors.CaptureStack(),
			})
			result, ok = nil, false
		}
	}()
	switch call.Name {
	case "formatNumber":
		return e.formatNumber(call)
	case "formatCurrency":
		return e.formatCurrency(call)
	case "formatDate":
		return e.formatDate(call)
	case "formatString":
		return e.formatString(call)
	case "pluralize":
		return e.pluralize(call)
	case "required":
		return e.required(call)
	case "email":
		return e.email(call)
	case "regex":
		return e.regex(call)
	case "length":
		return e.length(call)
	case "numeric":
		return e.numeric(call)
	case "and":
		return e.and(call)
	case "or":
		return e.or(call)
	case "not":
		return e.not(call)
	default:
		// Unknown names and action verbs resolve to nothing.
		return nil, false
	}
}

// EvaluateString evaluates the call and coerces the result to a string.
func (e *Evaluator) EvaluateString(call *dynamic.FunctionCall) (string, bool) {
	result, ok := e.Evaluate(call)
	if !ok {
		return "", false
	}
	return asString(result)
}

// EvaluateBoolean evaluates the call and coerces the result to a boolean.
func (e *Evaluator) EvaluateBoolean(call *dynamic.FunctionCall) (bool, bool) {
	result, ok := e.Evaluate(call)
	if !ok {
		return false, false
	}
	b, ok := result.(bool)
	return b, ok
}

// resolve produces the scalar value of one argument, depth-first.
func (e *Evaluator) resolve(value dynamic.Value) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case dynamic.Literal:
		return v.Value, true
	case dynamic.PathBinding:
		return e.read(v.Path)
	case *dynamic.FunctionCall:
		return e.Evaluate(v)
	default:
		return nil, false
	}
}

// read fetches whatever leaf shape lives at path.
func (e *Evaluator) read(path string) (any, bool) {
	if s, ok := e.store.GetString(path); ok {
		return s, true
	}
	if n, ok := e.store.GetNumber(path); ok {
		return n, true
	}
	if b, ok := e.store.GetBoolean(path); ok {
		return b, true
	}
	if list, ok := e.store.GetStringList(path); ok {
		return list, true
	}
	return nil, false
}

func (e *Evaluator) stringArg(call *dynamic.FunctionCall, name string) (string, bool) {
	value, ok := e.resolve(call.Arg(name))
	if !ok {
		return "", false
	}
	return asString(value)
}

func (e *Evaluator) numberArg(call *dynamic.FunctionCall, name string) (float64, bool) {
	value, ok := e.resolve(call.Arg(name))
	if !ok {
		return 0, false
	}
	return asNumber(value)
}

func (e *Evaluator) intArg(call *dynamic.FunctionCall, name string) (int, bool) {
	n, ok := e.numberArg(call, name)
	if !ok || n != float64(int(n)) {
		return 0, false
	}
	return int(n), true
}

func (e *Evaluator) boolArg(call *dynamic.FunctionCall, name string) (bool, bool) {
	value, ok := e.resolve(call.Arg(name))
	if !ok {
		return false, false
	}
	b, ok := value.(bool)
	return b, ok
}

// asString coerces a resolved scalar to its string form.
func asString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// asNumber coerces a resolved scalar to a float64. Numeric strings count:
// bound values arriving from text inputs are strings on the wire.
func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
