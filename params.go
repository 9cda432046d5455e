// Package params binds named parameter values into struct fields.
//
// A struct declares its parameters with tags:
//
//	type Widget struct {
//		Label string         `param:"required"`
//		Count int            `param:""`
//		Theme string         `cascade:""`
//		Extra map[string]any `param:"unmatched"`
//	}
//
// Ordinary parameters are supplied explicitly by a caller. Cascading
// parameters come from an ancestor context and never mix with ordinary ones.
// A single catch-all field collects ordinary values that match nothing else.
// Names match case-insensitively.
//
// A Binder builds the binding table of each type once, on first use, and
// reuses it for every later bind. A type may declare at most 32 required
// parameters; a type breaking this or any other declaration rule fails every
// bind with the same error.
package params

import (
	"github.com/ygrebnov/params/errors"
	"github.com/ygrebnov/params/paramset"
)

type (
	Parameter    = paramset.Parameter
	ParameterSet = paramset.ParameterSet
	Parameters   = paramset.Parameters
	Unmatched    = paramset.Unmatched
	BindError    = errors.BindError
)

// Ordinary returns an explicitly supplied parameter.
func Ordinary(name string, value any) Parameter { return paramset.Ordinary(name, value) }

// Cascading returns a parameter sourced from an ancestor context.
func Cascading(name string, value any) Parameter { return paramset.Cascading(name, value) }

// FromMap builds ordinary parameters from m, ordered by name.
func FromMap(m map[string]any) Parameters { return paramset.FromMap(m) }
