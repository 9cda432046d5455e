package core

import (
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ygrebnov/params/constants"
	"github.com/ygrebnov/params/descriptor"
	"github.com/ygrebnov/params/paramset"
)

type widget struct {
	Label string `param:"required"`
	Count int    `param:""`
	Theme string `cascade:""`
}

type panel struct {
	Label string         `param:""`
	Theme string         `cascade:""`
	Extra map[string]any `param:"unmatched"`
}

func newTestBinding(t *testing.T, typ reflect.Type) *TypeBinding {
	t.Helper()
	tb, err := NewTypeBinding(typ, descriptor.NewReflection(), constants.DefaultLookupCacheLimit)
	require.NoError(t, err)
	return tb
}

// countingDescriptor wraps the reflection descriptor and counts calls.
type countingDescriptor struct {
	calls atomic.Int32
	inner descriptor.TypeDescriptor
}

func (d *countingDescriptor) Fields(t reflect.Type) ([]descriptor.Field, error) {
	d.calls.Add(1)
	return d.inner.Fields(t)
}

// syntheticFields returns a descriptor supplying fields directly.
func syntheticFields(fields ...descriptor.Field) descriptor.TypeDescriptor {
	return descriptor.TypeDescriptorFunc(func(reflect.Type) ([]descriptor.Field, error) {
		return fields, nil
	})
}

func noopSet(reflect.Value, reflect.Value) error { return nil }

func params(ps ...paramset.Parameter) paramset.Parameters { return ps }

var (
	ord = paramset.Ordinary
	cas = paramset.Cascading
)
