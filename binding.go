package params

import (
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/params/errors"
	"github.com/ygrebnov/params/internal/core"
)

// Binding is a reusable, prebuilt binder for a specific struct type T.
// Type-shape errors of T surface from NewBinding instead of the first Bind.
type Binding[T any] struct {
	binder *Binder
	// tb holds the binding table of T.
	tb *core.TypeBinding
}

// NewBinding constructs a Binding for T with its own Binder configured by opts.
func NewBinding[T any](opts ...Option) (*Binding[T], error) {
	b, err := NewBinder(opts...)
	if err != nil {
		return nil, err
	}
	return NewBindingFor[T](b)
}

// NewBindingFor constructs a Binding for T sharing the registry of b.
func NewBindingFor[T any](b *Binder) (*Binding[T], error) {
	// Obtain the reflect.Type for T. The zero value of *T is never dereferenced.
	var zero *T
	typ := reflect.TypeOf(zero).Elem()
	if typ.Kind() != reflect.Struct {
		return nil, errorc.With(
			errors.ErrNotStructPtr,
			errorc.String(errors.ErrorFieldTargetType, typ.String()),
		)
	}

	tb, err := b.service.Registry().Get(typ)
	if err != nil {
		return nil, err
	}
	return &Binding[T]{binder: b, tb: tb}, nil
}

// Bind writes the parameters of ps into obj. See Binder.Bind.
func (b *Binding[T]) Bind(obj *T, ps ParameterSet) error {
	if obj == nil {
		return errors.ErrNilTarget
	}
	return b.binder.service.BindValue(reflect.ValueOf(obj).Elem(), ps)
}

// BindAny is Bind for callers holding target as an untyped value.
// target must be a *T.
func (b *Binding[T]) BindAny(target any, ps ParameterSet) error {
	obj, ok := target.(*T)
	if !ok {
		return errorc.With(
			errors.ErrTypeMismatch,
			errorc.String(errors.ErrorFieldTargetType, fmt.Sprintf("%T", target)),
		)
	}
	return b.Bind(obj, ps)
}

// Schema describes the public parameter contract of T. See Binder.Schema.
func (b *Binding[T]) Schema() *jsonschema.Schema {
	return contractSchema(b.tb)
}
