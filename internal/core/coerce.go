package core

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// coerce converts value into a value of type t.
// Accepted inputs, in order of preference:
//   - a value assignable to t;
//   - nil for pointer, map, slice, interface, func and chan types (zero value);
//   - any acceptable value for t.Elem() when t is a pointer (allocated);
//   - a non-nil pointer whose target is acceptable (dereferenced);
//   - a string literal for bool, integer, float and time.Duration types;
//   - a number convertible to t without overflow or loss of the integral part;
//   - a value of the same kind convertible to t (named bool, string, map and slice types).
//
//nolint:gocyclo // one branch per accepted input shape
func coerce(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		default:
			return reflect.Value{}, fmt.Errorf("cannot assign nil to %s", t)
		}
	}

	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(t) {
		if v.Type() == t || t.Kind() == reflect.Interface {
			return v, nil
		}
		return v.Convert(t), nil
	}

	if t.Kind() == reflect.Ptr {
		ev, err := coerce(value, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(ev)
		return p, nil
	}

	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("cannot assign nil %s to %s", v.Type(), t)
		}
		return coerce(v.Elem().Interface(), t)
	}

	if v.Kind() == reflect.String && t.Kind() != reflect.String {
		return parseLiteral(v.String(), t)
	}

	if isNumber(v.Kind()) && isNumber(t.Kind()) {
		return convertNumber(v, t)
	}

	switch t.Kind() {
	case reflect.Bool, reflect.String, reflect.Map, reflect.Slice:
		if v.Kind() == t.Kind() && v.Type().ConvertibleTo(t) {
			return v.Convert(t), nil
		}
	}

	return reflect.Value{}, fmt.Errorf("cannot convert %s to %s", v.Type(), t)
}

// parseLiteral parses a string literal into a value of type t.
func parseLiteral(lit string, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()

	// Handle special case: time.Duration typed fields
	if t == durationType {
		d, err := time.ParseDuration(strings.TrimSpace(lit))
		if err != nil {
			return reflect.Value{}, fmt.Errorf("parse duration: %w", err)
		}
		out.SetInt(int64(d))
		return out, nil
	}

	switch t.Kind() {
	case reflect.Bool:
		switch strings.ToLower(strings.TrimSpace(lit)) {
		case "1", "true", "t", "yes", "y", "on":
			out.SetBool(true)
		case "0", "false", "f", "no", "n", "off":
			out.SetBool(false)
		default:
			return reflect.Value{}, fmt.Errorf("parse bool: %q", lit)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		iv, err := parseInt64(lit)
		if err != nil {
			return reflect.Value{}, err
		}
		if out.OverflowInt(iv) {
			return reflect.Value{}, fmt.Errorf("parse int: %d overflows %s", iv, t)
		}
		out.SetInt(iv)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		uv, err := parseUint64(lit)
		if err != nil {
			return reflect.Value{}, err
		}
		if out.OverflowUint(uv) {
			return reflect.Value{}, fmt.Errorf("parse uint: %d overflows %s", uv, t)
		}
		out.SetUint(uv)
	case reflect.Float32, reflect.Float64:
		fv, err := parseFloat64(lit)
		if err != nil {
			return reflect.Value{}, err
		}
		if out.OverflowFloat(fv) {
			return reflect.Value{}, fmt.Errorf("parse float: %g overflows %s", fv, t)
		}
		out.SetFloat(fv)
	default:
		return reflect.Value{}, fmt.Errorf("cannot parse string literal into %s", t)
	}
	return out, nil
}

func parseInt64(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse int: %w", err)
	}
	return v, nil
}

func parseUint64(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse uint: %w", err)
	}
	return v, nil
}

func parseFloat64(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse float: %w", err)
	}
	return v, nil
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumber(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || isFloat(k)
}

// convertNumber converts between numeric kinds, rejecting overflow and
// floats with a fractional part when the target is an integer.
//
//nolint:gocyclo // one branch per source and target kind pair
func convertNumber(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	overflow := func() error { return fmt.Errorf("%v overflows %s", v.Interface(), t) }

	switch {
	case isInt(v.Kind()):
		n := v.Int()
		switch {
		case isInt(t.Kind()):
			if out.OverflowInt(n) {
				return reflect.Value{}, overflow()
			}
			out.SetInt(n)
		case isUint(t.Kind()):
			if n < 0 || out.OverflowUint(uint64(n)) {
				return reflect.Value{}, overflow()
			}
			out.SetUint(uint64(n))
		default:
			out.SetFloat(float64(n))
		}
	case isUint(v.Kind()):
		u := v.Uint()
		switch {
		case isInt(t.Kind()):
			if u > math.MaxInt64 || out.OverflowInt(int64(u)) {
				return reflect.Value{}, overflow()
			}
			out.SetInt(int64(u))
		case isUint(t.Kind()):
			if out.OverflowUint(u) {
				return reflect.Value{}, overflow()
			}
			out.SetUint(u)
		default:
			out.SetFloat(float64(u))
		}
	default:
		f := v.Float()
		switch {
		case isInt(t.Kind()), isUint(t.Kind()):
			if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
				return reflect.Value{}, fmt.Errorf("%v is not an integral value for %s", f, t)
			}
			if isInt(t.Kind()) {
				if f < math.MinInt64 || f >= math.MaxInt64 || out.OverflowInt(int64(f)) {
					return reflect.Value{}, overflow()
				}
				out.SetInt(int64(f))
			} else {
				if f < 0 || f >= math.MaxUint64 || out.OverflowUint(uint64(f)) {
					return reflect.Value{}, overflow()
				}
				out.SetUint(uint64(f))
			}
		default:
			if out.OverflowFloat(f) {
				return reflect.Value{}, overflow()
			}
			out.SetFloat(f)
		}
	}
	return out, nil
}
