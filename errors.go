package params

import "github.com/ygrebnov/params/errors"

// Sentinel errors, re-exported from the errors package. Use errors.Is to match.
var (
	ErrNilTarget     = errors.ErrNilTarget
	ErrNotStructPtr  = errors.ErrNotStructPtr
	ErrTypeMismatch  = errors.ErrTypeMismatch
	ErrDescriptor    = errors.ErrDescriptor
	ErrInvalidConfig = errors.ErrInvalidConfig

	ErrUnknownParameter                           = errors.ErrUnknownParameter
	ErrCascadingParameterSetWithNonCascadingValue = errors.ErrCascadingParameterSetWithNonCascadingValue
	ErrOrdinaryParameterSetWithCascadingValue     = errors.ErrOrdinaryParameterSetWithCascadingValue
	ErrRequiredParameterMissing                   = errors.ErrRequiredParameterMissing
	ErrCaptureUnmatchedValuesConflict             = errors.ErrCaptureUnmatchedValuesConflict
	ErrFieldAssignment                            = errors.ErrFieldAssignment

	ErrDuplicateParameterName     = errors.ErrDuplicateParameterName
	ErrDuplicateCatchAll          = errors.ErrDuplicateCatchAll
	ErrInvalidCatchAllType        = errors.ErrInvalidCatchAllType
	ErrCatchAllCannotBeRequired   = errors.ErrCatchAllCannotBeRequired
	ErrRequiredCountExceeded      = errors.ErrRequiredCountExceeded
	ErrNonPublicParameterSetter   = errors.ErrNonPublicParameterSetter
	ErrConflictingParameterOrigin = errors.ErrConflictingParameterOrigin
)
