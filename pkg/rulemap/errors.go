package rulemap

import "errors"

var (
	// ErrInvalidDocument is returned when a document does not describe a rule map.
	ErrInvalidDocument = errors.New("invalid rule map document")

	// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported rule map format")

	// ErrDuplicateForm is returned when two files in a directory share a form name.
	ErrDuplicateForm = errors.New("duplicate form name")

	// ErrReadFailed is returned when a rule map file cannot be read.
	ErrReadFailed = errors.New("failed to read rule map")
)
