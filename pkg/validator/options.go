package validator

import "log/slog"

// Option configures a Validator.
type Option func(*Validator)

// WithRegistry makes the Validator resolve rules through reg instead of a
// fresh built-in registry. Nil is ignored.
func WithRegistry(reg *Registry) Option {
	return func(v *Validator) {
		if reg != nil {
			v.registry = reg
		}
	}
}

// WithLogger sets the logger used for rule tracing (debug) and configuration
// faults (error). Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithAbsentFields also validates fields that have rules but are missing from
// attrs, using an empty value. Those fields then appear in the result too.
func WithAbsentFields() Option {
	return func(v *Validator) { v.absent = true }
}
