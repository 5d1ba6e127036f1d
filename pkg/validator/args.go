package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Args holds the positional arguments of one rule invocation. Values are
// primitives as decoded from Go literals, YAML or JSON (ints, floats, strings,
// bools), so accessors coerce instead of asserting.
type Args []any

// Int returns argument i as an int. Fractional numbers are rejected and
// strings are read as base-10, so "010" is ten.
func (a Args) Int(i int) (int, error) {
	v, err := a.at(i)
	if err != nil {
		return 0, err
	}

	switch x := v.(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, fmt.Errorf("%w: argument %d: %q is not an integer", ErrInvalidArgument, i, x)
		}
		return n, nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: argument %d: %v", ErrInvalidArgument, i, err)
		}
		v = f
	case float32:
		v = float64(x)
	}
	if f, ok := v.(float64); ok && f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: argument %d: %v is not a whole number", ErrInvalidArgument, i, f)
	}

	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: argument %d: %v", ErrInvalidArgument, i, err)
	}
	return n, nil
}

// Bool returns argument i as a bool.
func (a Args) Bool(i int) (bool, error) {
	v, err := a.at(i)
	if err != nil {
		return false, err
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("%w: argument %d: %v", ErrInvalidArgument, i, err)
	}
	return b, nil
}

// BoolOr is like Bool but returns def when argument i is absent.
func (a Args) BoolOr(i int, def bool) (bool, error) {
	if i >= len(a) {
		return def, nil
	}
	return a.Bool(i)
}

// String returns argument i in its string form.
func (a Args) String(i int) (string, error) {
	v, err := a.at(i)
	if err != nil {
		return "", err
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%w: argument %d: %v", ErrInvalidArgument, i, err)
	}
	return s, nil
}

func (a Args) at(i int) (any, error) {
	if i < 0 || i >= len(a) {
		return nil, fmt.Errorf("%w: missing argument %d", ErrInvalidArgument, i)
	}
	return a[i], nil
}
