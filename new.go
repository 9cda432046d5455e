package params

import (
	"log/slog"

	"github.com/ygrebnov/params/descriptor"
	"github.com/ygrebnov/params/internal/core"
)

// NewBinder creates a Binder with its own, empty binding registry.
// Without options it reads `param` and `cascade` tags, caches up to 100 name
// identities per type and logs nothing.
func NewBinder(opts ...Option) (*Binder, error) {
	o := options{config: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.validate(); err != nil {
		return nil, err
	}

	d := o.descriptor
	if d == nil {
		param, cascade := o.config.tags()
		d = &descriptor.Reflection{ParamTag: param, CascadeTag: cascade}
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	registry := core.NewRegistry(d, o.config.LookupCacheLimit, logger)
	return &Binder{
		config:  o.config,
		service: core.NewService(registry, logger),
	}, nil
}

type options struct {
	config     Config
	descriptor descriptor.TypeDescriptor
	logger     *slog.Logger
}

// Option configures a Binder at construction time.
type Option func(*options)

// WithConfig replaces the whole configuration. Options applied after it
// still override individual settings.
func WithConfig(c Config) Option {
	return func(o *options) {
		o.config = c
	}
}

// WithLookupCacheLimit bounds the identity keyed name cache of each type.
// Zero disables the cache.
//
// A cached entry references the bytes of the parameter name it was keyed by
// for as long as the Binder lives. A name sliced from a larger buffer, such as
// a request body, keeps that whole buffer reachable. Callers deriving names
// that way should clone them (strings.Clone) or disable the cache.
func WithLookupCacheLimit(n int) Option {
	return func(o *options) {
		o.config.LookupCacheLimit = n
	}
}

// WithTags sets the struct tags declaring ordinary and cascading parameters.
// It has no effect together with WithTypeDescriptor.
func WithTags(param, cascade string) Option {
	return func(o *options) {
		o.config.ParamTag = param
		o.config.CascadeTag = cascade
	}
}

// WithTypeDescriptor replaces the reflection based field enumeration.
func WithTypeDescriptor(d descriptor.TypeDescriptor) Option {
	return func(o *options) {
		o.descriptor = d
	}
}

// WithLogger sets the logger receiving debug records about built bindings
// and failed binds.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
