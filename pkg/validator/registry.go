package validator

import (
	"maps"
	"slices"
	"sync"
)

// RuleFunc checks a value against rule-specific arguments. It returns an
// empty string when the value passes and a human-readable message when it
// fails. A non-nil error is reserved for malformed arguments.
type RuleFunc func(value string, args Args) (string, error)

// Registry maps rule names to RuleFuncs.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]RuleFunc
}

// NewRegistry returns a registry pre-loaded with the built-in core and
// format rules.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	registerBuiltins(r)
	registerFormatRules(r)
	return r
}

// NewEmptyRegistry returns a registry with no rules at all.
func NewEmptyRegistry() *Registry {
	return &Registry{rules: make(map[string]RuleFunc)}
}

// Register adds fn under name, replacing any rule already registered with
// that name. Panics on an empty name or nil fn: both are programming errors.
func (r *Registry) Register(name string, fn RuleFunc) {
	if name == "" {
		panic("validator: Register called with empty rule name")
	}
	if fn == nil {
		panic("validator: Register called with nil rule for " + name)
	}

	r.mu.Lock()
	r.rules[name] = fn
	r.mu.Unlock()
}

// Has reports whether a rule is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	_, ok := r.rules[name]
	r.mu.RUnlock()
	return ok
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.rules))
}

// Invoke runs the rule registered under name. It returns ErrUnknownRule when
// no such rule exists.
func (r *Registry) Invoke(name, value string, args Args) (string, error) {
	r.mu.RLock()
	fn, ok := r.rules[name]
	r.mu.RUnlock()
	if !ok {
		return "", ErrUnknownRule
	}
	return fn(value, args)
}
