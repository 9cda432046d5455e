package params

import (
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/ygrebnov/params/internal/core"
)

// Binder binds parameter sets into struct targets. It owns a registry of
// per-type binding tables; distinct Binders never share tables. A Binder is
// safe for concurrent use.
type Binder struct {
	config  Config
	service *core.Service
}

// Bind writes the parameters of ps into target, a non-nil pointer to struct.
//
// Every parameter is resolved, checked and coerced before the first field is
// written, so a failing bind leaves target unchanged unless a field setter
// itself fails. Failures are *BindError values wrapping one of the Err*
// sentinels.
func (b *Binder) Bind(target any, ps ParameterSet) error {
	return b.service.Bind(target, ps)
}

// Schema describes the public parameter contract of target's type: its
// ordinary parameters, which of them are required and whether unmatched
// names are accepted. Cascading parameters are not part of the contract.
// target is a struct or a pointer to struct.
func (b *Binder) Schema(target any) (*jsonschema.Schema, error) {
	t, err := structType(target)
	if err != nil {
		return nil, err
	}
	tb, err := b.service.Registry().Get(t)
	if err != nil {
		return nil, err
	}
	return contractSchema(tb), nil
}

// Config returns the configuration the Binder was built with.
func (b *Binder) Config() Config { return b.config }

var defaultBinder = sync.OnceValue(func() *Binder {
	b, err := NewBinder()
	if err != nil {
		panic(err)
	}
	return b
})

// Bind binds ps into target using a process-wide Binder with default options.
func Bind(target any, ps ParameterSet) error {
	return defaultBinder().Bind(target, ps)
}
