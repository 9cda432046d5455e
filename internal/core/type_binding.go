package core

import (
	"reflect"
	"slices"

	"github.com/ygrebnov/params/constants"
	"github.com/ygrebnov/params/descriptor"
	"github.com/ygrebnov/params/errors"
)

const maxRequired = constants.MaxRequiredParameters

var unmatchedMapType = reflect.TypeOf(map[string]any(nil))

// TypeBinding is the binding table of a single struct type: its bindable
// fields indexed by folded name, the catch-all field if any and the mask of
// required slots. It is read-only after NewTypeBinding returns.
type TypeBinding struct {
	// typ is the struct type this binding was built for.
	typ          reflect.Type
	fields       map[string]*Field
	ordered      []*Field // enumeration order
	catchAll     *Field
	requiredMask uint32
	lookup       *lookupCache
}

// NewTypeBinding builds the binding table of struct type t from the fields
// enumerated by d. lookupLimit bounds the identity keyed name cache; zero
// disables it.
func NewTypeBinding(t reflect.Type, d descriptor.TypeDescriptor, lookupLimit int) (*TypeBinding, error) {
	dfs, err := d.Fields(t)
	if err != nil {
		return nil, descriptorError(t, err)
	}

	tb := &TypeBinding{
		typ:    t,
		fields: make(map[string]*Field, len(dfs)),
		lookup: newLookupCache(lookupLimit),
	}

	slot := 0
	for _, df := range dfs {
		a := df.Annotations
		if a.Empty() {
			continue
		}
		if a.Cascading && (a.Ordinary || a.CaptureUnmatchedValues) {
			return nil, fieldError(errors.ErrConflictingParameterOrigin, t, df.Name)
		}
		if !df.Settable || df.Set == nil {
			return nil, fieldError(errors.ErrNonPublicParameterSetter, t, df.Name)
		}

		f := &Field{
			name:   df.Name,
			folded: fold(df.Name),
			typ:    df.Type,
			origin: OriginOrdinary,
			slot:   -1,
			set:    df.Set,
		}
		if _, dup := tb.fields[f.folded]; dup {
			return nil, fieldError(errors.ErrDuplicateParameterName, t, df.Name)
		}

		switch {
		case a.CaptureUnmatchedValues:
			if a.Required {
				return nil, fieldError(errors.ErrCatchAllCannotBeRequired, t, df.Name)
			}
			if tb.catchAll != nil {
				return nil, fieldError(errors.ErrDuplicateCatchAll, t, df.Name)
			}
			if !acceptsUnmatched(df.Type) {
				return nil, invalidCatchAllTypeError(t, df.Name, df.Type)
			}
			f.origin = OriginCatchAll
			tb.catchAll = f
		case a.Cascading:
			f.origin = OriginCascading
		}

		if a.Required && f.origin != OriginCatchAll {
			if slot >= maxRequired {
				return nil, requiredCountError(t, df.Name)
			}
			f.required = true
			f.slot = slot
			tb.requiredMask |= f.bit()
			slot++
		}

		tb.fields[f.folded] = f
		tb.ordered = append(tb.ordered, f)
	}
	return tb, nil
}

// acceptsUnmatched reports whether a map[string]any can be stored in a field of type t.
func acceptsUnmatched(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if unmatchedMapType.AssignableTo(t) {
		return true
	}
	return t.Kind() == reflect.Map && unmatchedMapType.ConvertibleTo(t)
}

func (tb *TypeBinding) Type() reflect.Type { return tb.typ }

// Fields returns the bindable fields in enumeration order.
func (tb *TypeBinding) Fields() []*Field { return slices.Clone(tb.ordered) }

// CatchAll returns the catch-all field or nil.
func (tb *TypeBinding) CatchAll() *Field { return tb.catchAll }

func (tb *TypeBinding) RequiredMask() uint32 { return tb.requiredMask }

// Resolve finds the field matching name case-insensitively, or nil.
func (tb *TypeBinding) Resolve(name string) *Field {
	if f, ok := tb.lookup.load(name); ok {
		return f
	}
	f := tb.fields[fold(name)]
	tb.lookup.store(name, f)
	return f
}

// missing splits the required fields whose bit is unset in satisfied into
// ordinary and cascading names, each sorted ordinally.
func (tb *TypeBinding) missing(satisfied uint32) (ordinary, cascading []string) {
	for _, f := range tb.ordered {
		if !f.required || satisfied&f.bit() != 0 {
			continue
		}
		if f.origin == OriginCascading {
			cascading = append(cascading, f.name)
		} else {
			ordinary = append(ordinary, f.name)
		}
	}
	slices.Sort(ordinary)
	slices.Sort(cascading)
	return ordinary, cascading
}
