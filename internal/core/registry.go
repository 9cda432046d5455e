package core

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/ygrebnov/params/descriptor"
)

// Registry caches one TypeBinding per struct type. Construction runs at most
// once per type: concurrent first binds wait for the same build. A failed
// build is cached as well, so a misconfigured type fails identically forever.
type Registry struct {
	descriptor  descriptor.TypeDescriptor
	lookupLimit int
	logger      *slog.Logger

	entries sync.Map // reflect.Type -> *registryEntry
	group   singleflight.Group
}

type registryEntry struct {
	tb  *TypeBinding
	err error
}

// NewRegistry creates an empty Registry. A nil logger discards records.
func NewRegistry(d descriptor.TypeDescriptor, lookupLimit int, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{descriptor: d, lookupLimit: lookupLimit, logger: logger}
}

// Get returns the TypeBinding of struct type t, building it on first use.
func (r *Registry) Get(t reflect.Type) (*TypeBinding, error) {
	if v, ok := r.entries.Load(t); ok {
		e := v.(*registryEntry)
		return e.tb, e.err
	}

	// reflect.Type values of distinct types may share a String(); the
	// address keeps their flights apart.
	key := fmt.Sprintf("%s@%p", t.String(), t)
	v, _, _ := r.group.Do(key, func() (any, error) {
		if v, ok := r.entries.Load(t); ok {
			return v, nil
		}
		e := r.build(t)
		actual, _ := r.entries.LoadOrStore(t, e)
		return actual, nil
	})
	e := v.(*registryEntry)
	return e.tb, e.err
}

func (r *Registry) build(t reflect.Type) *registryEntry {
	tb, err := NewTypeBinding(t, r.descriptor, r.lookupLimit)
	if err != nil {
		r.logger.Debug("type binding failed",
			slog.String("type", t.String()),
			slog.String("err", err.Error()),
		)
		return &registryEntry{err: err}
	}

	required := 0
	for _, f := range tb.ordered {
		if f.required {
			required++
		}
	}
	attrs := []any{
		slog.String("type", t.String()),
		slog.Int("fields", len(tb.ordered)),
		slog.Int("required", required),
	}
	if tb.catchAll != nil {
		attrs = append(attrs, slog.String("catch_all", tb.catchAll.name))
	}
	r.logger.Debug("type binding built", attrs...)
	return &registryEntry{tb: tb}
}

// Len returns the number of types with a cached binding or failure.
func (r *Registry) Len() int {
	n := 0
	r.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
