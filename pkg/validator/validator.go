package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/url"
	"slices"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

// Invocation is a single rule call inside a RuleMap.
type Invocation struct {
	Rule string
	Args Args
}

// Rule builds an Invocation.
func Rule(name string, args ...any) Invocation {
	return Invocation{Rule: name, Args: args}
}

// RuleMap lists the rules of every field. Rules run in slice order.
type RuleMap map[string][]Invocation

// Attrs holds the candidate values, keyed by field name. Values are
// converted to their string form before any rule sees them; nil becomes "".
type Attrs map[string]any

// AttrsFromValues converts form values to Attrs, keeping the first value of
// every key.
func AttrsFromValues(values url.Values) Attrs {
	attrs := make(Attrs, len(values))
	for field := range values {
		attrs[field] = values.Get(field)
	}
	return attrs
}

// Validator evaluates a fixed RuleMap against attribute sets.
// It is safe for concurrent use once constructed.
type Validator struct {
	rules    RuleMap
	registry *Registry
	logger   *slog.Logger
	absent   bool
}

// New creates a Validator for rules. The rule map is not checked here; use
// Verify to catch unknown rules before the first Validate call.
func New(rules RuleMap, opts ...Option) *Validator {
	v := &Validator{rules: rules}
	for _, opt := range opts {
		opt(v)
	}
	if v.registry == nil {
		v.registry = NewRegistry()
	}
	if v.logger == nil {
		v.logger = slog.New(slog.DiscardHandler)
	}
	return v
}

// Validate runs every configured rule for every field in attrs and returns
// the failure messages per field. Each attrs key is present in the result,
// with an empty slice when the field is clean.
//
// A configuration fault aborts the whole run: the result is nil and the
// error is a *RuleError naming the field and rule.
func (v *Validator) Validate(attrs Attrs) (Errors, error) {
	fields := v.fields(attrs)
	result := make(Errors, len(fields))

	for _, field := range fields {
		value, err := stringValue(attrs[field])
		if err != nil {
			return nil, v.fault(&RuleError{Field: field, Err: err})
		}

		messages := make([]string, 0, len(v.rules[field]))
		for _, inv := range v.rules[field] {
			msg, err := v.registry.Invoke(inv.Rule, value, inv.Args)
			if err != nil {
				return nil, v.fault(&RuleError{Field: field, Rule: inv.Rule, Err: err})
			}
			v.logger.Debug("rule evaluated",
				logger.Field(field),
				logger.Rule(inv.Rule),
				slog.Bool("passed", msg == ""),
			)
			if msg != "" {
				messages = append(messages, msg)
			}
		}
		result[field] = messages
	}

	return result, nil
}

// Verify checks the rule map against the registry without any input: every
// rule must exist and accept its arguments. All faults are joined.
func (v *Validator) Verify() error {
	var errs []error
	for _, field := range slices.Sorted(maps.Keys(v.rules)) {
		for _, inv := range v.rules[field] {
			// Rules are pure, so a dry run on "" surfaces argument errors.
			if _, err := v.registry.Invoke(inv.Rule, "", inv.Args); err != nil {
				errs = append(errs, &RuleError{Field: field, Rule: inv.Rule, Err: err})
			}
		}
	}
	return errors.Join(errs...)
}

// Fields returns the fields that have rules configured, sorted.
func (v *Validator) Fields() []string {
	return slices.Sorted(maps.Keys(v.rules))
}

func (v *Validator) fields(attrs Attrs) []string {
	seen := make(map[string]struct{}, len(attrs)+len(v.rules))
	for field := range attrs {
		seen[field] = struct{}{}
	}
	if v.absent {
		for field := range v.rules {
			seen[field] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

func (v *Validator) fault(err *RuleError) error {
	v.logger.Error("rule map misconfigured",
		logger.Field(err.Field),
		logger.Rule(err.Rule),
		logger.Error(err.Err),
	)
	return err
}

func stringValue(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%w: %T", ErrInvalidValue, v)
	}
	return s, nil
}
