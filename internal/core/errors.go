package core

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/params/errors"
)

// newBindError wraps a structured error built around kind into a BindError.
func newBindError(kind error, t reflect.Type, name string, err error) *errors.BindError {
	return &errors.BindError{
		Kind:       kind,
		TargetType: typeName(t),
		Name:       name,
		Err:        err,
	}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// fieldError reports a per-field failure: a type-shape violation or an origin mismatch.
func fieldError(kind error, t reflect.Type, name string) *errors.BindError {
	return newBindError(kind, t, name, errorc.With(
		kind,
		errorc.String(errors.ErrorFieldTargetType, typeName(t)),
		errorc.String(errors.ErrorFieldFieldName, name),
	))
}

func unknownParameterError(t reflect.Type, name string) *errors.BindError {
	return newBindError(errors.ErrUnknownParameter, t, name, errorc.With(
		errors.ErrUnknownParameter,
		errorc.String(errors.ErrorFieldTargetType, typeName(t)),
		errorc.String(errors.ErrorFieldParameterName, name),
	))
}

func originError(kind error, t reflect.Type, name string) *errors.BindError {
	return newBindError(kind, t, name, errorc.With(
		kind,
		errorc.String(errors.ErrorFieldTargetType, typeName(t)),
		errorc.String(errors.ErrorFieldParameterName, name),
	))
}

func requiredCountError(t reflect.Type, name string) *errors.BindError {
	return newBindError(errors.ErrRequiredCountExceeded, t, name, errorc.With(
		errors.ErrRequiredCountExceeded,
		errorc.String(errors.ErrorFieldTargetType, typeName(t)),
		errorc.String(errors.ErrorFieldFieldName, name),
		errorc.String(errors.ErrorFieldRequiredLimit, fmt.Sprint(maxRequired)),
	))
}

func invalidCatchAllTypeError(t reflect.Type, name string, ft reflect.Type) *errors.BindError {
	return newBindError(errors.ErrInvalidCatchAllType, t, name, errorc.With(
		errors.ErrInvalidCatchAllType,
		errorc.String(errors.ErrorFieldTargetType, typeName(t)),
		errorc.String(errors.ErrorFieldFieldName, name),
		errorc.String(errors.ErrorFieldFieldType, typeName(ft)),
	))
}

func descriptorError(t reflect.Type, cause error) *errors.BindError {
	be := newBindError(errors.ErrDescriptor, t, "", errorc.With(
		errors.ErrDescriptor,
		errorc.String(errors.ErrorFieldTargetType, typeName(t)),
		errorc.Error(errors.ErrorFieldCause, cause),
	))
	be.Cause = cause
	return be
}

// missingError lists every unsatisfied required field, cascading and ordinary separately.
func missingError(t reflect.Type, ordinary, cascading []string) *errors.BindError {
	// errorc.With drops nil fields.
	missing := errorc.String(errors.ErrorFieldMissing, strings.Join(ordinary, ","))
	if len(ordinary) == 0 {
		missing = nil
	}
	missingCascading := errorc.String(errors.ErrorFieldMissingCascading, strings.Join(cascading, ","))
	if len(cascading) == 0 {
		missingCascading = nil
	}
	be := newBindError(errors.ErrRequiredParameterMissing, t, "", errorc.With(
		errors.ErrRequiredParameterMissing,
		errorc.String(errors.ErrorFieldTargetType, typeName(t)),
		missing,
		missingCascading,
	))
	be.Missing = ordinary
	be.MissingCascading = cascading
	return be
}

func unmatchedConflictError(t reflect.Type, catchAll string, unmatched []string) *errors.BindError {
	be := newBindError(errors.ErrCaptureUnmatchedValuesConflict, t, catchAll, errorc.With(
		errors.ErrCaptureUnmatchedValuesConflict,
		errorc.String(errors.ErrorFieldTargetType, typeName(t)),
		errorc.String(errors.ErrorFieldCatchAllName, catchAll),
		errorc.String(errors.ErrorFieldUnmatched, strings.Join(unmatched, ",")),
	))
	be.Unmatched = unmatched
	return be
}

func assignmentError(t reflect.Type, f *Field, value any, cause error) *errors.BindError {
	be := newBindError(errors.ErrFieldAssignment, t, f.name, errorc.With(
		errors.ErrFieldAssignment,
		errorc.String(errors.ErrorFieldTargetType, typeName(t)),
		errorc.String(errors.ErrorFieldFieldName, f.name),
		errorc.String(errors.ErrorFieldFieldType, typeName(f.typ)),
		errorc.String(errors.ErrorFieldValueType, fmt.Sprintf("%T", value)),
		errorc.Error(errors.ErrorFieldCause, cause),
	))
	be.Cause = cause
	return be
}
