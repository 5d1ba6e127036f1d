package formapi

import "errors"

var (
	ErrFormNotFound         = errors.New("form not found")
	ErrInvalidBody          = errors.New("invalid request body")
	ErrUnsupportedMediaType = errors.New("unsupported content type")
	ErrMisconfiguredForm    = errors.New("form is misconfigured")
)
