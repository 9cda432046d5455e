package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBinding(t *testing.T) {
	t.Run("struct type", func(t *testing.T) {
		b, err := NewBinding[Widget]()
		require.NoError(t, err)

		var w Widget
		require.NoError(t, b.Bind(&w, Parameters{Ordinary("Label", "x"), Cascading("Theme", "dark")}))
		assert.Equal(t, Widget{Label: "x", Theme: "dark"}, w)
	})

	t.Run("non-struct type", func(t *testing.T) {
		_, err := NewBinding[int]()
		require.ErrorIs(t, err, ErrNotStructPtr)
	})

	t.Run("type-shape errors surface at construction", func(t *testing.T) {
		type broken struct {
			Extra []string `param:"unmatched"`
		}
		_, err := NewBinding[broken]()
		require.ErrorIs(t, err, ErrInvalidCatchAllType)
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := NewBinding[Widget](WithLookupCacheLimit(-5))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestNewBindingFor(t *testing.T) {
	binder := newTestBinder(t)
	b, err := NewBindingFor[Panel](binder)
	require.NoError(t, err)

	var p Panel
	require.NoError(t, b.Bind(&p, Parameters{Ordinary("a", 1)}))
	assert.Equal(t, map[string]any{"a": 1}, p.Extra)

	// the binder reuses the table built for the binding
	var q Panel
	require.NoError(t, binder.Bind(&q, Parameters{Ordinary("b", 2)}))
	assert.Equal(t, map[string]any{"b": 2}, q.Extra)
}

func TestBinding_Bind(t *testing.T) {
	b, err := NewBinding[Widget]()
	require.NoError(t, err)

	require.ErrorIs(t, b.Bind(nil, nil), ErrNilTarget)

	var w Widget
	err = b.Bind(&w, Parameters{Ordinary("Count", "NaN")})
	require.ErrorIs(t, err, ErrFieldAssignment)

	var be *BindError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "Count", be.Name)
	assert.Equal(t, Widget{}, w)
}

func TestBinding_BindAny(t *testing.T) {
	b, err := NewBinding[Widget]()
	require.NoError(t, err)

	var w Widget
	require.NoError(t, b.BindAny(&w, Parameters{Ordinary("Label", "x")}))
	assert.Equal(t, "x", w.Label)

	require.ErrorIs(t, b.BindAny(&Panel{}, nil), ErrTypeMismatch)
	require.ErrorIs(t, b.BindAny(w, nil), ErrTypeMismatch)
}
