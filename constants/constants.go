package constants

const Namespace = "params"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// Struct tags read by the reflection type descriptor.
const (
	TagParam   = "param"
	TagCascade = "cascade"
)

// Tag options.
const (
	OptionRequired  = "required"
	OptionUnmatched = "unmatched"
	OptionName      = "name"
	OptionSkip      = "-"
)

const (
	// MaxRequiredParameters is the hard limit of required parameters a single
	// type may declare. Required parameters are tracked in a uint32 bitmask.
	MaxRequiredParameters = 32

	// DefaultLookupCacheLimit bounds the identity-keyed name cache of a type binding.
	DefaultLookupCacheLimit = 100
)
