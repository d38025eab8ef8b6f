package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldError describes a single violated constraint on a submitted field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Violations collects every field error found in a submission. It is
// returned as a single error value so callers see the full list at once
// instead of the first failing field.
type Violations []FieldError

func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Reason))
	}
	return strings.Join(parts, "; ")
}

func (v *Violations) Add(field, reason string) {
	*v = append(*v, FieldError{Field: field, Reason: reason})
}

// OrNil returns the collected violations as an error, or nil when the
// submission passed every check.
func (v Violations) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// As reports whether err is a set of field violations.
func As(err error) (Violations, bool) {
	v, ok := err.(Violations)
	return v, ok
}

// Length checks that value has between min and max characters inclusive
// and records a violation against field otherwise.
func Length(v *Violations, field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		v.Add(field, fmt.Sprintf("must be between %d and %d characters", min, max))
	}
}
