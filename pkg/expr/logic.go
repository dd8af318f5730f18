package expr

import "github.com/go-drift/genui/pkg/dynamic"

// conditionsOf extracts the ordered condition list from an argument value.
// A single non-list condition counts as a one-element list.
func conditionsOf(value dynamic.Value) []dynamic.Value {
	switch v := value.(type) {
	case nil:
		return nil
	case dynamic.List:
		return v.Items
	case dynamic.ChildrenList:
		// A list of bare strings classifies as ids; treat them as literals.
		items := make([]dynamic.Value, len(v.IDs))
		for i, id := range v.IDs {
			items[i] = dynamic.Literal{Value: id}
		}
		return items
	default:
		return []dynamic.Value{value}
	}
}

// condition evaluates one condition to a boolean. Anything unresolvable or
// non-boolean is false.
func (e *Evaluator) condition(value dynamic.Value) bool {
	resolved, ok := e.resolve(value)
	if !ok {
		return false
	}
	b, ok := resolved.(bool)
	return ok && b
}

// and(conditions[]) is true iff every condition holds; and([]) is true.
func (e *Evaluator) and(call *dynamic.FunctionCall) (any, bool) {
	for _, item := range conditionsOf(call.Arg("conditions")) {
		if !e.condition(item) {
			return false, true
		}
	}
	return true, true
}

// or(conditions[]) is true iff any condition holds; or([]) is false.
func (e *Evaluator) or(call *dynamic.FunctionCall) (any, bool) {
	for _, item := range conditionsOf(call.Arg("conditions")) {
		if e.condition(item) {
			return true, true
		}
	}
	return false, true
}

// not(condition) negates its condition. A missing condition defaults to
// false, so not() alone yields true.
func (e *Evaluator) not(call *dynamic.FunctionCall) (any, bool) {
	return !e.condition(call.Arg("condition")), true
}
