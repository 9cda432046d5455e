// Package descriptor enumerates the bindable fields of a struct type.
//
// A TypeDescriptor is the only introspection capability the binder relies on.
// The default implementation, Reflection, reads `param` and `cascade` struct
// tags; tests and code generators can supply fields directly.
package descriptor

import (
	"reflect"
)

// Annotations are the parameter annotations declared on a field.
type Annotations struct {
	Ordinary               bool // receives explicitly supplied values
	Cascading              bool // receives values from an ancestor context
	Required               bool
	CaptureUnmatchedValues bool // catch-all for values that match nothing else
}

// Empty reports whether the field carries no parameter annotation at all.
func (a Annotations) Empty() bool {
	return !a.Ordinary && !a.Cascading && !a.CaptureUnmatchedValues
}

// SetFunc assigns value to the field of target. target is the addressable
// struct value; value is already of the field's declared type.
type SetFunc func(target reflect.Value, value reflect.Value) error

// Field is one candidate bindable field of a type.
type Field struct {
	Name        string       // name parameters are matched against
	Type        reflect.Type // declared value type
	Settable    bool         // write access is public
	Annotations Annotations
	Set         SetFunc // nil when not settable
}

// TypeDescriptor enumerates the public instance fields of t, including
// those promoted from embedded structs.
type TypeDescriptor interface {
	Fields(t reflect.Type) ([]Field, error)
}

// TypeDescriptorFunc adapts a function to TypeDescriptor.
type TypeDescriptorFunc func(t reflect.Type) ([]Field, error)

func (f TypeDescriptorFunc) Fields(t reflect.Type) ([]Field, error) { return f(t) }
