package expr

import (
	"testing"

	"github.com/go-drift/genui/pkg/datastore"
	"github.com/go-drift/genui/pkg/dynamic"
)

// lit wraps a scalar as a literal argument.
func lit(v any) dynamic.Value {
	return dynamic.Literal{Value: v}
}

// call builds a function call value for tests.
func call(name string, args map[string]dynamic.Value) *dynamic.FunctionCall {
	if args == nil {
		args = map[string]dynamic.Value{}
	}
	return &dynamic.FunctionCall{Name: name, Args: args}
}

func emptyEvaluator() *Evaluator {
	return NewEvaluator(datastore.NewDataStore())
}

func TestEvaluate_UnknownFunctionYieldsNothing(t *testing.T) {
	e := emptyEvaluator()
	if _, ok := e.Evaluate(call("openUrl", map[string]dynamic.Value{"url": lit("https://example.com")})); ok {
		t.Error("action-style function resolved to a value")
	}
	if _, ok := e.Evaluate(call("noSuchFunction", nil)); ok {
		t.Error("unknown function resolved to a value")
	}
	if _, ok := e.Evaluate(nil); ok {
		t.Error("nil call resolved to a value")
	}
}

func TestEvaluate_PathBindingArguments(t *testing.T) {
	store := datastore.NewDataStore()
	if err := store.Update("price", 1234.56); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	e := NewEvaluator(store)

	result, ok := e.Evaluate(call("formatCurrency", map[string]dynamic.Value{
		"value": dynamic.PathBinding{Path: "price"},
	}))
	if !ok {
		t.Fatal("formatCurrency did not resolve")
	}
	if result != "$1,234.56" {
		t.Errorf("result = %v; want $1,234.56", result)
	}
}

func TestEvaluate_NestedCallsRunDepthFirst(t *testing.T) {
	store := datastore.NewDataStore()
	if err := store.Update("email", "ada@example.com"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	e := NewEvaluator(store)

	// not(not(email(/email))) exercises two levels of nesting.
	inner := call("email", map[string]dynamic.Value{"value": dynamic.PathBinding{Path: "email"}})
	middle := call("not", map[string]dynamic.Value{"condition": inner})
	outer := call("not", map[string]dynamic.Value{"condition": middle})

	result, ok := e.EvaluateBoolean(outer)
	if !ok || !result {
		t.Errorf("EvaluateBoolean = %v, %v; want true, true", result, ok)
	}
}

func TestEvaluate_ScopedViewArguments(t *testing.T) {
	store := datastore.NewDataStore()
	err := store.Update("items", []any{
		map[string]any{"count": 1.0},
		map[string]any{"count": 5.0},
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	plural := call("pluralize", map[string]dynamic.Value{
		"count": dynamic.PathBinding{Path: "count"},
		"one":   lit("item"),
		"other": lit("items"),
	})

	first := NewEvaluator(store.WithBasePath("items/0"))
	if result, _ := first.Evaluate(plural); result != "item" {
		t.Errorf("items/0 pluralize = %v; want item", result)
	}
	second := NewEvaluator(store.WithBasePath("items/1"))
	if result, _ := second.Evaluate(plural); result != "items" {
		t.Errorf("items/1 pluralize = %v; want items", result)
	}
}

func TestEvaluateString_CoercesScalars(t *testing.T) {
	e := emptyEvaluator()
	got, ok := e.EvaluateString(call("formatDate", map[string]dynamic.Value{"value": lit("2026-01-02")}))
	if !ok || got != "2026-01-02" {
		t.Errorf("EvaluateString = %q, %v; want 2026-01-02, true", got, ok)
	}
}

func TestEvaluate_NeverPanics(t *testing.T) {
	e := emptyEvaluator()
	// An argument map holding a nil value must not take the surface down.
	result, ok := e.Evaluate(&dynamic.FunctionCall{
		Name: "required",
		Args: map[string]dynamic.Value{"value": nil},
	})
	if !ok {
		t.Fatal("required did not resolve")
	}
	if result != false {
		t.Errorf("required(nil) = %v; want false", result)
	}
}
