package errors

import (
	"encoding/json"
)

// BindError describes a single bind or type-shape failure.
// Kind is one of the sentinels of this package; Err is the structured error
// built around it. BindError unwraps to both Err and Cause, so callers can use
// errors.Is with the sentinel and errors.As with a cause type.
type BindError struct {
	Kind             error    // sentinel, e.g. ErrUnknownParameter
	TargetType       string   // binding target type, e.g. "ui.Widget"
	Name             string   // offending parameter or field name, if any
	Missing          []string // missing required ordinary parameters, sorted
	MissingCascading []string // missing required cascading parameters, sorted
	Unmatched        []string // unmatched parameter names on catch-all conflict, sorted
	Cause            error    // underlying coercion or setter failure
	Err              error    // structured error around Kind
}

func (e *BindError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Kind != nil {
		return e.Kind.Error()
	}
	return ""
}

func (e *BindError) Unwrap() []error {
	errs := make([]error, 0, 3)
	for _, err := range []error{e.Err, e.Kind, e.Cause} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// MarshalJSON exports BindError as an object with kind, target and message fields.
func (e *BindError) MarshalJSON() ([]byte, error) {
	kind, cause := "", ""
	if e.Kind != nil {
		kind = e.Kind.Error()
	}
	if e.Cause != nil {
		cause = e.Cause.Error()
	}
	return json.Marshal(struct {
		Kind             string   `json:"kind"`
		TargetType       string   `json:"target_type,omitempty"`
		Name             string   `json:"name,omitempty"`
		Missing          []string `json:"missing,omitempty"`
		MissingCascading []string `json:"missing_cascading,omitempty"`
		Unmatched        []string `json:"unmatched,omitempty"`
		Cause            string   `json:"cause,omitempty"`
		Message          string   `json:"message"`
	}{
		Kind:             kind,
		TargetType:       e.TargetType,
		Name:             e.Name,
		Missing:          e.Missing,
		MissingCascading: e.MissingCascading,
		Unmatched:        e.Unmatched,
		Cause:            cause,
		Message:          e.Error(),
	})
}
