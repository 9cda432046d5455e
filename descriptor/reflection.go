package descriptor

import (
	"fmt"
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/params/constants"
	"github.com/ygrebnov/params/errors"
)

// Reflection is a TypeDescriptor reading struct tags:
//
//	Label string         `param:"required"`          // ordinary, required
//	Count int            `param:""`                  // ordinary, optional
//	Theme string         `cascade:""`                // cascading, optional
//	Title string         `param:"name(heading)"`     // matched as "heading"
//	Extra map[string]any `param:"unmatched"`         // catch-all
//
// A tag value of "-" skips the field. Fields promoted from embedded structs
// are enumerated as well.
type Reflection struct {
	ParamTag   string
	CascadeTag string
}

// NewReflection returns a Reflection reading the default `param` and `cascade` tags.
func NewReflection() *Reflection {
	return &Reflection{ParamTag: constants.TagParam, CascadeTag: constants.TagCascade}
}

func (r *Reflection) Fields(t reflect.Type) ([]Field, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, errorc.With(errors.ErrNotStructPtr, errorc.String(errors.ErrorFieldTargetType, fmt.Sprint(t)))
	}

	paramTag, cascadeTag := r.ParamTag, r.CascadeTag
	if paramTag == "" {
		paramTag = constants.TagParam
	}
	if cascadeTag == "" {
		cascadeTag = constants.TagCascade
	}

	var fields []Field
	for _, sf := range reflect.VisibleFields(t) {
		ptag, hasParam := sf.Tag.Lookup(paramTag)
		ctag, hasCascade := sf.Tag.Lookup(cascadeTag)
		if ptag == constants.OptionSkip {
			hasParam = false
		}
		if ctag == constants.OptionSkip {
			hasCascade = false
		}
		if !hasParam && !hasCascade {
			continue
		}

		f := Field{Name: sf.Name, Type: sf.Type}
		f.Annotations.Ordinary = hasParam
		f.Annotations.Cascading = hasCascade

		for _, raw := range []struct {
			present bool
			tag     string
		}{{hasParam, ptag}, {hasCascade, ctag}} {
			if !raw.present {
				continue
			}
			if err := applyTagOptions(&f, sf, raw.tag); err != nil {
				return nil, err
			}
		}

		if settable(t, sf.Index) {
			f.Settable = true
			f.Set = setterFor(sf.Index)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func applyTagOptions(f *Field, sf reflect.StructField, tag string) error {
	for _, opt := range parseTag(tag) {
		switch opt.name {
		case constants.OptionRequired:
			f.Annotations.Required = true
		case constants.OptionUnmatched:
			f.Annotations.CaptureUnmatchedValues = true
		case constants.OptionName:
			if len(opt.args) != 1 {
				return errorc.With(
					errors.ErrInvalidTag,
					errorc.String(errors.ErrorFieldFieldName, sf.Name),
					errorc.String(errors.ErrorFieldTag, tag),
				)
			}
			f.Name = opt.args[0]
		default:
			return errorc.With(
				errors.ErrInvalidTag,
				errorc.String(errors.ErrorFieldFieldName, sf.Name),
				errorc.String(errors.ErrorFieldTag, tag),
			)
		}
	}
	return nil
}

// settable reports whether the field at index can be written from outside the
// package: the field itself is exported and no nil embedded pointer on the way
// would need allocating through an unexported field.
func settable(t reflect.Type, index []int) bool {
	for i, idx := range index {
		sf := t.Field(idx)
		last := i == len(index)-1
		if last {
			return sf.IsExported()
		}
		ft := sf.Type
		if ft.Kind() == reflect.Ptr {
			if !sf.IsExported() {
				return false
			}
			ft = ft.Elem()
		}
		t = ft
	}
	return false
}

// setterFor walks the index path, allocating nil embedded struct pointers.
func setterFor(index []int) SetFunc {
	return func(target reflect.Value, value reflect.Value) error {
		v := target
		for i, idx := range index {
			if i > 0 && v.Kind() == reflect.Ptr {
				if v.IsNil() {
					v.Set(reflect.New(v.Type().Elem()))
				}
				v = v.Elem()
			}
			v = v.Field(idx)
		}
		if !v.CanSet() {
			return fmt.Errorf("field of %s at %v is not settable", target.Type(), index)
		}
		v.Set(value)
		return nil
	}
}
