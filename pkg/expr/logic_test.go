package expr

import (
	"testing"

	"github.com/go-drift/genui/pkg/datastore"
	"github.com/go-drift/genui/pkg/dynamic"
)

func conditions(items ...dynamic.Value) dynamic.Value {
	return dynamic.List{Items: items}
}

func TestAnd(t *testing.T) {
	e := emptyEvaluator()

	if !evalBool(t, e, call("and", map[string]dynamic.Value{"conditions": conditions()})) {
		t.Error("and([]) = false; want true")
	}
	if !evalBool(t, e, call("and", map[string]dynamic.Value{
		"conditions": conditions(lit(true), lit(true)),
	})) {
		t.Error("and([true,true]) = false; want true")
	}
	if evalBool(t, e, call("and", map[string]dynamic.Value{
		"conditions": conditions(lit(true), lit(false)),
	})) {
		t.Error("and([true,false]) = true; want false")
	}
}

func TestOr(t *testing.T) {
	e := emptyEvaluator()

	if evalBool(t, e, call("or", map[string]dynamic.Value{"conditions": conditions()})) {
		t.Error("or([]) = true; want false")
	}
	if !evalBool(t, e, call("or", map[string]dynamic.Value{
		"conditions": conditions(lit(false), lit(true)),
	})) {
		t.Error("or([false,true]) = false; want true")
	}
	if evalBool(t, e, call("or", map[string]dynamic.Value{
		"conditions": conditions(lit(false), lit(false)),
	})) {
		t.Error("or([false,false]) = true; want false")
	}
}

func TestNot(t *testing.T) {
	e := emptyEvaluator()

	if evalBool(t, e, call("not", map[string]dynamic.Value{"condition": lit(true)})) {
		t.Error("not(true) = true; want false")
	}
	if !evalBool(t, e, call("not", map[string]dynamic.Value{"condition": lit(false)})) {
		t.Error("not(false) = false; want true")
	}
	// A missing condition defaults to false before negation.
	if !evalBool(t, e, call("not", nil)) {
		t.Error("not() = false; want true")
	}
}

func TestLogic_RecursesIntoNestedCalls(t *testing.T) {
	store := datastore.NewDataStore()
	if err := store.Update("form", map[string]any{"name": "Ada", "email": "ada@example.com"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	e := NewEvaluator(store)

	valid := call("and", map[string]dynamic.Value{
		"conditions": conditions(
			call("required", map[string]dynamic.Value{"value": dynamic.PathBinding{Path: "form/name"}}),
			call("email", map[string]dynamic.Value{"value": dynamic.PathBinding{Path: "form/email"}}),
			call("or", map[string]dynamic.Value{
				"conditions": conditions(
					lit(false),
					call("not", nil),
				),
			}),
		),
	})
	if !evalBool(t, e, valid) {
		t.Error("nested condition tree = false; want true")
	}

	// Breaking one leaf flips the whole conjunction.
	if err := store.Update("form/email", "not-an-email"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if evalBool(t, e, valid) {
		t.Error("nested condition tree = true after invalidating a leaf; want false")
	}
}

func TestLogic_NonBooleanConditionsAreFalse(t *testing.T) {
	e := emptyEvaluator()
	if evalBool(t, e, call("and", map[string]dynamic.Value{
		"conditions": conditions(lit("yes")),
	})) {
		t.Error(`and(["yes"]) = true; want false (non-boolean condition)`)
	}
	if evalBool(t, e, call("or", map[string]dynamic.Value{
		"conditions": conditions(dynamic.PathBinding{Path: "missing"}),
	})) {
		t.Error("or([absent path]) = true; want false")
	}
}
