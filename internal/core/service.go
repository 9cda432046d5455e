package core

import (
	"context"
	"log/slog"
	"reflect"

	"github.com/davecgh/go-spew/spew"
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/params/errors"
	"github.com/ygrebnov/params/paramset"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

type Service struct {
	registry *Registry
	logger   *slog.Logger
}

// NewService creates a Service binding through the given registry.
func NewService(r *Registry, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{registry: r, logger: logger}
}

func (s *Service) Registry() *Registry { return s.registry }

// Bind validates that target is a non-nil pointer to struct and binds ps into it.
func (s *Service) Bind(target any, ps paramset.ParameterSet) error {
	rv, err := StructValue(target)
	if err != nil {
		return err
	}
	return s.BindValue(rv, ps)
}

// BindValue binds ps into rv, an addressable struct value.
func (s *Service) BindValue(rv reflect.Value, ps paramset.ParameterSet) error {
	tb, err := s.registry.Get(rv.Type())
	if err != nil {
		return err
	}
	if ps == nil {
		ps = paramset.Parameters(nil)
	}
	if err = tb.Bind(rv, ps); err != nil {
		s.logFailure(rv.Type(), ps, err)
		return err
	}
	return nil
}

func (s *Service) logFailure(t reflect.Type, ps paramset.ParameterSet, err error) {
	ctx := context.Background()
	if !s.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "bind failed",
		slog.String("type", t.String()),
		slog.String("err", err.Error()),
		slog.String("parameters", dumper.Sdump(ps.ToMap())),
	)
}

// StructValue returns the struct value target points to.
func StructValue(target any) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, errors.ErrNilTarget
	}
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Type().Elem().Kind() != reflect.Struct {
		return reflect.Value{}, errorc.With(
			errors.ErrNotStructPtr,
			errorc.String(errors.ErrorFieldTargetType, v.Type().String()),
		)
	}
	if v.IsNil() {
		return reflect.Value{}, errors.ErrNilTarget
	}
	return v.Elem(), nil
}
