package params

import (
	"errors"
	"fmt"
	"io"

	"github.com/joeshaw/envdecode"
	"github.com/ygrebnov/errorc"
	"gopkg.in/yaml.v3"

	"github.com/ygrebnov/params/constants"
	paramserrors "github.com/ygrebnov/params/errors"
)

// Config holds the tunables of a Binder.
type Config struct {
	// LookupCacheLimit bounds the identity keyed name cache of each type.
	// Zero disables the cache. Cached names pin their backing bytes, see
	// WithLookupCacheLimit. ENV: PARAMS_LOOKUP_CACHE_LIMIT
	LookupCacheLimit int `env:"PARAMS_LOOKUP_CACHE_LIMIT,default=100,strict" yaml:"lookup_cache_limit"`
	// ParamTag is the struct tag declaring ordinary parameters. ENV: PARAMS_PARAM_TAG
	ParamTag string `env:"PARAMS_PARAM_TAG,default=param" yaml:"param_tag"`
	// CascadeTag is the struct tag declaring cascading parameters. ENV: PARAMS_CASCADE_TAG
	CascadeTag string `env:"PARAMS_CASCADE_TAG,default=cascade" yaml:"cascade_tag"`
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		LookupCacheLimit: constants.DefaultLookupCacheLimit,
		ParamTag:         constants.TagParam,
		CascadeTag:       constants.TagCascade,
	}
}

// ConfigFromEnv reads a Config from PARAMS_* environment variables.
// Unset variables keep their defaults.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, errorc.With(paramserrors.ErrInvalidConfig, errorc.Error(paramserrors.ErrorFieldCause, err))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML document into a Config. Keys that are absent keep
// their defaults; unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errorc.With(paramserrors.ErrInvalidConfig, errorc.Error(paramserrors.ErrorFieldCause, err))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.LookupCacheLimit < 0 {
		return errorc.With(
			paramserrors.ErrInvalidConfig,
			errorc.Error(paramserrors.ErrorFieldCause, fmt.Errorf("negative lookup cache limit %d", c.LookupCacheLimit)),
		)
	}
	if param, cascade := c.tags(); param == cascade {
		return errorc.With(
			paramserrors.ErrInvalidConfig,
			errorc.Error(paramserrors.ErrorFieldCause, fmt.Errorf("param and cascade tags are both %q", param)),
		)
	}
	return nil
}

// tags returns the struct tags in effect, an empty tag meaning the default one.
func (c Config) tags() (param, cascade string) {
	param, cascade = c.ParamTag, c.CascadeTag
	if param == "" {
		param = constants.TagParam
	}
	if cascade == "" {
		cascade = constants.TagCascade
	}
	return param, cascade
}
