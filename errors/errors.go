package errors

import (
	"strings"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/params/constants"
)

// newError returns a sentinel whose message is prefixed with the package namespace.
func newError(msg string) error {
	return errorc.New(constants.Namespace + ": " + msg)
}

// Key is a structured error field key. errorc accepts any ~string key.
type Key string

// newKey builds a dotted key: namespace, then segments, then name.
func newKey(name string, segments ...string) Key {
	parts := make([]string, 0, len(segments)+2)
	parts = append(parts, constants.ErrorFieldNamespace)
	parts = append(parts, segments...)
	return Key(strings.Join(append(parts, name), "."))
}

// Sentinel errors for target misuses. Use errors.Is to match.
var (
	ErrNilTarget     = newError("nil target")
	ErrNotStructPtr  = newError("target must be a non-nil pointer to struct")
	ErrTypeMismatch  = newError("target type does not match binding type")
	ErrDescriptor    = newError("type descriptor failed")
	ErrInvalidTag    = newError("invalid parameter tag")
	ErrInvalidConfig = newError("invalid configuration")
)

// Sentinel errors reported while binding a parameter set.
var (
	ErrUnknownParameter                           = newError("unknown parameter")
	ErrCascadingParameterSetWithNonCascadingValue = newError("cascading parameter set with non-cascading value")
	ErrOrdinaryParameterSetWithCascadingValue     = newError("ordinary parameter set with cascading value")
	ErrRequiredParameterMissing                   = newError("required parameter missing")
	ErrCaptureUnmatchedValuesConflict             = newError("unmatched values conflict with explicit catch-all value")
	ErrFieldAssignment                            = newError("cannot assign parameter value")
)

// Sentinel errors reported once per type when its binding table cannot be built.
// They are cached: every later bind against the same type fails identically.
var (
	ErrDuplicateParameterName     = newError("duplicate parameter name")
	ErrDuplicateCatchAll          = newError("type declares more than one catch-all parameter")
	ErrInvalidCatchAllType        = newError("catch-all parameter must accept map[string]any")
	ErrCatchAllCannotBeRequired   = newError("catch-all parameter cannot be required")
	ErrRequiredCountExceeded      = newError("type declares more than 32 required parameters")
	ErrNonPublicParameterSetter   = newError("parameter field is not publicly settable")
	ErrConflictingParameterOrigin = newError("field is declared both ordinary and cascading")
)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentParameter = "parameter"
	keySegmentField     = "field"
	keySegmentRequired  = "required"
	keySegmentCatchAll  = "catch_all"
)

// Exported structured error field keys
var (
	ErrorFieldParameterName = newKey("name", keySegmentParameter)       // params.parameter.name
	ErrorFieldValueType     = newKey("value_type", keySegmentParameter) // params.parameter.value_type
)

var (
	ErrorFieldFieldName = newKey("name", keySegmentField) // params.field.name
	ErrorFieldFieldType = newKey("type", keySegmentField) // params.field.type
)

var (
	ErrorFieldMissing          = newKey("missing", keySegmentRequired)           // params.required.missing
	ErrorFieldMissingCascading = newKey("missing_cascading", keySegmentRequired) // params.required.missing_cascading
	ErrorFieldRequiredLimit    = newKey("limit", keySegmentRequired)             // params.required.limit
)

var (
	ErrorFieldCatchAllName = newKey("name", keySegmentCatchAll)      // params.catch_all.name
	ErrorFieldUnmatched    = newKey("unmatched", keySegmentCatchAll) // params.catch_all.unmatched
)

var (
	ErrorFieldTargetType = newKey("target_type")
	ErrorFieldTag        = newKey("tag")
	ErrorFieldCause      = newKey("cause")
)
