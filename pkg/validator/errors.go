package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRule is returned when a rule map references a rule name that is
	// not registered.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidArgument is returned when a rule receives missing or
	// ill-typed arguments.
	ErrInvalidArgument = errors.New("invalid rule argument")

	// ErrInvalidValue is returned when an attribute value has no string form.
	ErrInvalidValue = errors.New("value cannot be converted to string")

	// ErrValidationFailed is reported by ValidationErrors when it carries no entries.
	ErrValidationFailed = errors.New("validation failed")
)

// RuleError is a configuration fault raised while evaluating a rule map.
// It names the field and, when known, the rule that caused it.
type RuleError struct {
	Field string
	Rule  string
	Err   error
}

func (e *RuleError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("validator: field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("validator: field %q, rule %q: %v", e.Field, e.Rule, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is a configuration fault rather than a
// data problem.
func IsConfigError(err error) bool {
	var ruleErr *RuleError
	return errors.As(err, &ruleErr)
}
