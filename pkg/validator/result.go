package validator

import (
	"maps"
	"slices"
)

// Errors maps every validated field to its failure messages, in rule order.
// A field with an empty slice is clean.
type Errors map[string][]string

// Valid reports whether no field has a failure.
func (e Errors) Valid() bool {
	for _, messages := range e {
		if len(messages) > 0 {
			return false
		}
	}
	return true
}

// Has reports whether field has at least one failure.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// Get returns the failure messages of field.
func (e Errors) Get(field string) []string {
	return e[field]
}

// Fields returns the failing fields, sorted.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, field := range slices.Sorted(maps.Keys(e)) {
		if len(e[field]) > 0 {
			fields = append(fields, field)
		}
	}
	return fields
}

// Err flattens the failures into a ValidationErrors value, or returns nil
// when every field is clean.
func (e Errors) Err() error {
	if e.Valid() {
		return nil
	}
	var verrs ValidationErrors
	for _, field := range e.Fields() {
		for _, msg := range e[field] {
			verrs.Add(ValidationError{Field: field, Message: msg})
		}
	}
	return verrs
}
