package core

import (
	"math"
	"reflect"
	"testing"
	"time"
)

type myString string

type myMap map[string]any

func typeOf[T any]() reflect.Type {
	var zero *T
	return reflect.TypeOf(zero).Elem()
}

func mustCoerce(t *testing.T, value any, to reflect.Type) any {
	t.Helper()
	v, err := coerce(value, to)
	if err != nil {
		t.Fatalf("coerce(%v, %s): unexpected err: %v", value, to, err)
	}
	return v.Interface()
}

func TestCoerce(t *testing.T) {
	t.Run("assignable value is kept", func(t *testing.T) {
		if got := mustCoerce(t, "hello", typeOf[string]()); got != "hello" {
			t.Fatalf("got %v want hello", got)
		}
		if got := mustCoerce(t, 3, typeOf[any]()); got != 3 {
			t.Fatalf("got %v want 3", got)
		}
	})

	t.Run("nil: nilable kinds get zero", func(t *testing.T) {
		for _, typ := range []reflect.Type{
			typeOf[*int](), typeOf[map[string]int](), typeOf[[]int](), typeOf[any](), typeOf[func()]()} {
			v, err := coerce(nil, typ)
			if err != nil {
				t.Fatalf("%s: unexpected err: %v", typ, err)
			}
			if !v.IsZero() {
				t.Fatalf("%s: got non-zero value", typ)
			}
		}
	})

	t.Run("nil: non-nilable kinds fail", func(t *testing.T) {
		if _, err := coerce(nil, typeOf[int]()); err == nil {
			t.Fatalf("expected error for nil -> int")
		}
	})

	t.Run("bool: true literals", func(t *testing.T) {
		for _, lit := range []string{"1", "true", "t", "yes", "y", "on", "TRUE", " On "} {
			if got := mustCoerce(t, lit, typeOf[bool]()); got != true {
				t.Fatalf("%s: got %v want true", lit, got)
			}
		}
	})

	t.Run("bool: false literals", func(t *testing.T) {
		for _, lit := range []string{"0", "false", "f", "no", "n", "off"} {
			if got := mustCoerce(t, lit, typeOf[bool]()); got != false {
				t.Fatalf("%s: got %v want false", lit, got)
			}
		}
	})

	t.Run("bool: invalid literal", func(t *testing.T) {
		if _, err := coerce("maybe", typeOf[bool]()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("int literals", func(t *testing.T) {
		if got := mustCoerce(t, " 42 ", typeOf[int]()); got != 42 {
			t.Fatalf("got %v want 42", got)
		}
		if _, err := coerce("300", typeOf[int8]()); err == nil {
			t.Fatalf("expected overflow error for int8")
		}
		if _, err := coerce("x", typeOf[int]()); err == nil {
			t.Fatalf("expected parse error")
		}
	})

	t.Run("uint and float literals", func(t *testing.T) {
		if got := mustCoerce(t, "7", typeOf[uint16]()); got != uint16(7) {
			t.Fatalf("got %v want 7", got)
		}
		if _, err := coerce("-1", typeOf[uint]()); err == nil {
			t.Fatalf("expected parse error for negative uint")
		}
		if got := mustCoerce(t, "1.5", typeOf[float64]()); got != 1.5 {
			t.Fatalf("got %v want 1.5", got)
		}
	})

	t.Run("duration literal", func(t *testing.T) {
		if got := mustCoerce(t, "1500ms", typeOf[time.Duration]()); got != 1500*time.Millisecond {
			t.Fatalf("got %v want 1.5s", got)
		}
		if _, err := coerce("soon", typeOf[time.Duration]()); err == nil {
			t.Fatalf("expected parse error")
		}
	})

	t.Run("string literal into unsupported kind", func(t *testing.T) {
		if _, err := coerce("x", typeOf[[]int]()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("numbers convert within range", func(t *testing.T) {
		if got := mustCoerce(t, 3, typeOf[int64]()); got != int64(3) {
			t.Fatalf("got %v", got)
		}
		if got := mustCoerce(t, uint8(3), typeOf[int]()); got != 3 {
			t.Fatalf("got %v", got)
		}
		if got := mustCoerce(t, 3.0, typeOf[int]()); got != 3 {
			t.Fatalf("got %v", got)
		}
		if got := mustCoerce(t, 2, typeOf[float32]()); got != float32(2) {
			t.Fatalf("got %v", got)
		}
		if got := mustCoerce(t, int64(5), typeOf[time.Duration]()); got != time.Duration(5) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("numbers reject overflow and fractions", func(t *testing.T) {
		cases := []struct {
			value any
			to    reflect.Type
		}{
			{300, typeOf[int8]()},
			{-1, typeOf[uint]()},
			{uint64(math.MaxUint64), typeOf[int64]()},
			{1.5, typeOf[int]()},
			{math.NaN(), typeOf[int]()},
			{1e300, typeOf[float32]()},
			{1e20, typeOf[int64]()},
		}
		for _, tc := range cases {
			if _, err := coerce(tc.value, tc.to); err == nil {
				t.Fatalf("%v -> %s: expected error", tc.value, tc.to)
			}
		}
	})

	t.Run("pointer field is allocated", func(t *testing.T) {
		got := mustCoerce(t, "9", typeOf[*int]())
		p, ok := got.(*int)
		if !ok || p == nil || *p != 9 {
			t.Fatalf("got %#v want *int(9)", got)
		}
	})

	t.Run("pointer value is dereferenced", func(t *testing.T) {
		n := int32(4)
		if got := mustCoerce(t, &n, typeOf[int]()); got != 4 {
			t.Fatalf("got %v want 4", got)
		}
		var nilPtr *int32
		if _, err := coerce(nilPtr, typeOf[int]()); err == nil {
			t.Fatalf("expected error for nil pointer")
		}
	})

	t.Run("same kind conversion", func(t *testing.T) {
		if got := mustCoerce(t, "dark", typeOf[myString]()); got != myString("dark") {
			t.Fatalf("got %v", got)
		}
		got := mustCoerce(t, map[string]any{"a": 1}, typeOf[myMap]())
		if m, ok := got.(myMap); !ok || m["a"] != 1 {
			t.Fatalf("got %#v", got)
		}
	})

	t.Run("incompatible types fail", func(t *testing.T) {
		if _, err := coerce(struct{}{}, typeOf[int]()); err == nil {
			t.Fatalf("expected error")
		}
		if _, err := coerce(true, typeOf[string]()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
