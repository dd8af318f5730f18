// Package dynamic classifies raw component property values into tagged
// dynamic-value variants.
//
// Classification is purely structural: the shape of the decoded JSON decides
// the variant, never the property name it arrived under. Classification also
// never evaluates anything — resolving a PathBinding needs a data store and
// resolving a FunctionCall needs the expression evaluator.
package dynamic

// ValueKind discriminates the dynamic-value variants.
type ValueKind int

const (
	// KindUnrecognized marks a shape that is none of the known variants.
	KindUnrecognized ValueKind = iota
	// KindLiteral is a bare scalar.
	KindLiteral
	// KindPathBinding is a reference to a data store path.
	KindPathBinding
	// KindFunctionCall is a named expression with classified arguments.
	KindFunctionCall
	// KindChildrenList is an explicit ordered list of component ids.
	KindChildrenList
	// KindChildrenTemplate repeats one component per array element.
	KindChildrenTemplate
	// KindList is an ordered list of classified values, as carried by
	// function arguments such as and/or conditions.
	KindList
)

// Value is one classified dynamic value.
type Value interface {
	Kind() ValueKind
}

// Literal is a bare scalar property value.
type Literal struct {
	Value any
}

func (Literal) Kind() ValueKind { return KindLiteral }

// PathBinding binds a property to the data store subtree at Path.
type PathBinding struct {
	Path string
}

func (PathBinding) Kind() ValueKind { return KindPathBinding }

// FunctionCall is a named expression over classified arguments.
// ReturnType is the declared result type ("string", "number", "boolean"),
// or empty when undeclared.
type FunctionCall struct {
	Name       string
	Args       map[string]Value
	ReturnType string
}

func (*FunctionCall) Kind() ValueKind { return KindFunctionCall }

// Arg returns the named argument, or nil when absent.
func (c *FunctionCall) Arg(name string) Value {
	if c == nil {
		return nil
	}
	return c.Args[name]
}

// ChildrenList is an explicit ordered list of child component ids.
type ChildrenList struct {
	IDs []string
}

func (ChildrenList) Kind() ValueKind { return KindChildrenList }

// List is an ordered list of classified values.
type List struct {
	Items []Value
}

func (List) Kind() ValueKind { return KindList }

// Unrecognized is a shape that matched no variant. Consumers treat it as
// "no resolvable value", never as an error.
type Unrecognized struct{}

func (Unrecognized) Kind() ValueKind { return KindUnrecognized }
