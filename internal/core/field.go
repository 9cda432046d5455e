package core

import (
	"reflect"

	"github.com/ygrebnov/params/descriptor"
)

// Origin tells where the value of a field is expected to come from.
type Origin uint8

const (
	OriginOrdinary Origin = iota
	OriginCascading
	OriginCatchAll
)

func (o Origin) String() string {
	switch o {
	case OriginOrdinary:
		return "ordinary"
	case OriginCascading:
		return "cascading"
	case OriginCatchAll:
		return "catch-all"
	default:
		return "unknown"
	}
}

// Field is one bindable field of a TypeBinding. It is immutable once built.
type Field struct {
	name     string
	folded   string
	typ      reflect.Type
	origin   Origin
	required bool
	slot     int // bit position in the required mask, -1 when optional
	set      descriptor.SetFunc
}

func (f *Field) Name() string       { return f.name }
func (f *Field) Type() reflect.Type { return f.typ }
func (f *Field) Origin() Origin     { return f.origin }
func (f *Field) Required() bool     { return f.required }
func (f *Field) Slot() int          { return f.slot }

func (f *Field) bit() uint32 {
	if f.slot < 0 {
		return 0
	}
	return 1 << uint(f.slot)
}

// prepare coerces value to the field type without touching any target.
func (f *Field) prepare(value any) (reflect.Value, error) {
	return coerce(value, f.typ)
}

// assign writes a prepared value into target.
func (f *Field) assign(target reflect.Value, v reflect.Value) error {
	return f.set(target, v)
}
