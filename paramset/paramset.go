// Package paramset defines the incoming side of a bind: named values
// supplied by a caller, each marked as ordinary or cascading.
package paramset

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Parameter is a single named value supplied for one bind operation.
type Parameter struct {
	Name      string
	Value     any
	Cascading bool // value is sourced from an ancestor context
}

// Ordinary returns an explicitly supplied parameter.
func Ordinary(name string, value any) Parameter {
	return Parameter{Name: name, Value: value}
}

// Cascading returns a parameter sourced from an ancestor context.
func Cascading(name string, value any) Parameter {
	return Parameter{Name: name, Value: value, Cascading: true}
}

// ParameterSet is an ordered, possibly name-duplicated sequence of parameters.
// A binder iterates All exactly once per bind; ToMap is used for diagnostics only.
type ParameterSet interface {
	All() iter.Seq[Parameter]
	ToMap() map[string]any
}

// Parameters is a slice-backed ParameterSet.
type Parameters []Parameter

func (ps Parameters) All() iter.Seq[Parameter] {
	return func(yield func(Parameter) bool) {
		for _, p := range ps {
			if !yield(p) {
				return
			}
		}
	}
}

// ToMap returns name -> value. For duplicated names the last value wins.
func (ps Parameters) ToMap() map[string]any {
	m := make(map[string]any, len(ps))
	for _, p := range ps {
		m[p.Name] = p.Value
	}
	return m
}

// With returns a copy of ps with p appended.
func (ps Parameters) With(p ...Parameter) Parameters {
	out := make(Parameters, 0, len(ps)+len(p))
	out = append(out, ps...)
	return append(out, p...)
}

// FromMap builds ordinary parameters from m, ordered by name so that
// binds driven by a map are deterministic.
func FromMap(m map[string]any) Parameters {
	ps := make(Parameters, 0, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		ps = append(ps, Ordinary(name, m[name]))
	}
	return ps
}

// Unmatched is a map type a catch-all field may be declared with.
// Keys keep the casing of the first parameter that produced them.
type Unmatched map[string]any

// Lookup finds a value by case-insensitive name.
func (u Unmatched) Lookup(name string) (any, bool) {
	if v, ok := u[name]; ok {
		return v, true
	}
	for k, v := range u {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}
