package formapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// decodeAttrs reads the submitted attributes from a JSON object, a
// url-encoded form or a multipart form. Form fields keep their first value.
func decodeAttrs(r *http.Request, maxMemory int64) (validator.Attrs, error) {
	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/json":
		return decodeJSON(r.Body)
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, errors.Join(ErrInvalidBody, err)
		}
		return validator.AttrsFromValues(r.PostForm), nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return nil, errors.Join(ErrInvalidBody, err)
		}
		return validator.AttrsFromValues(r.PostForm), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
}

func decodeJSON(body io.Reader) (validator.Attrs, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return validator.Attrs{}, nil
		}
		return nil, errors.Join(ErrInvalidBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidBody)
	}

	attrs := make(validator.Attrs, len(raw))
	for field, value := range raw {
		switch value.(type) {
		case map[string]any, []any:
			return nil, fmt.Errorf("%w: field %q must be a scalar", ErrInvalidBody, field)
		}
		attrs[field] = value
	}
	return attrs, nil
}
