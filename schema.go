package params

import (
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/params/errors"
	"github.com/ygrebnov/params/internal/core"
)

func structType(target any) (reflect.Type, error) {
	if target == nil {
		return nil, errors.ErrNilTarget
	}
	t := reflect.TypeOf(target)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errorc.With(
			errors.ErrNotStructPtr,
			errorc.String(errors.ErrorFieldTargetType, reflect.TypeOf(target).String()),
		)
	}
	return t, nil
}

func contractSchema(tb *core.TypeBinding) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true, // inline nested types
		Anonymous:      true, // no $id per property
	}

	s := &jsonschema.Schema{
		Version:              jsonschema.Version,
		Title:                tb.Type().Name(),
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		AdditionalProperties: jsonschema.FalseSchema,
	}
	for _, f := range tb.Fields() {
		if f.Origin() != core.OriginOrdinary {
			continue
		}
		s.Properties.Set(f.Name(), propertySchema(r, f.Type()))
		if f.Required() {
			s.Required = append(s.Required, f.Name())
		}
	}
	if tb.CatchAll() != nil {
		s.AdditionalProperties = jsonschema.TrueSchema
	}
	return s
}

// propertySchema reflects t, falling back to an unconstrained schema for
// kinds without a JSON representation.
func propertySchema(r *jsonschema.Reflector, t reflect.Type) *jsonschema.Schema {
	base := t
	for base != nil && base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	if base == nil {
		return &jsonschema.Schema{}
	}
	switch base.Kind() {
	case reflect.Func, reflect.Chan, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer, reflect.Uintptr:
		return &jsonschema.Schema{}
	}
	ps := r.ReflectFromType(t)
	ps.Version = ""
	ps.Definitions = nil
	return ps
}
