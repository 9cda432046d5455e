package params

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	assert.Equal(t, Config{LookupCacheLimit: 100, ParamTag: "param", CascadeTag: "cascade"}, DefaultConfig())
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PARAMS_LOOKUP_CACHE_LIMIT", "")
		t.Setenv("PARAMS_PARAM_TAG", "")
		t.Setenv("PARAMS_CASCADE_TAG", "")
		cfg, err := ConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PARAMS_LOOKUP_CACHE_LIMIT", "7")
		t.Setenv("PARAMS_PARAM_TAG", "in")
		t.Setenv("PARAMS_CASCADE_TAG", "inherit")
		cfg, err := ConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, Config{LookupCacheLimit: 7, ParamTag: "in", CascadeTag: "inherit"}, cfg)
	})

	t.Run("malformed number", func(t *testing.T) {
		t.Setenv("PARAMS_LOOKUP_CACHE_LIMIT", "lots")
		_, err := ConfigFromEnv()
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("negative limit", func(t *testing.T) {
		t.Setenv("PARAMS_LOOKUP_CACHE_LIMIT", "-1")
		_, err := ConfigFromEnv()
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("partial document keeps defaults", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader("lookup_cache_limit: 0\n"))
		require.NoError(t, err)
		assert.Equal(t, Config{LookupCacheLimit: 0, ParamTag: "param", CascadeTag: "cascade"}, cfg)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("all keys", func(t *testing.T) {
		doc := "lookup_cache_limit: 12\nparam_tag: in\ncascade_tag: from\n"
		cfg, err := LoadConfig(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, Config{LookupCacheLimit: 12, ParamTag: "in", CascadeTag: "from"}, cfg)

		b := newTestBinder(t, WithConfig(cfg))
		assert.Equal(t, cfg, b.Config())
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := LoadConfig(strings.NewReader("cache: 1\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("same tags", func(t *testing.T) {
		_, err := LoadConfig(strings.NewReader("param_tag: p\ncascade_tag: p\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("empty tag colliding with a default", func(t *testing.T) {
		_, err := LoadConfig(strings.NewReader("param_tag: \"\"\ncascade_tag: param\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
