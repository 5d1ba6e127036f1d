package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Built-in rule names.
const (
	RuleRequired     = "required"
	RuleAtMost       = "atMost"
	RuleAtLeast      = "atLeast"
	RuleLengthEquals = "lengthEquals"
	RuleCheckLength  = "checkLength"
	RuleIsNumeric    = "isNumeric"
	RuleIsPhone      = "isPhone"
)

// Failure messages of the built-in rules. Formats take the rule's bound.
const (
	MsgRequired     = "This field is required."
	MsgAtMost       = "At most %d characters."
	MsgAtLeast      = "At least %d characters."
	MsgLengthEquals = "Exactly %d characters."
	MsgNumeric      = "Can only contain numbers."
	MsgPhone        = "Enter a valid phone number."
)

var (
	numericRegex = regexp.MustCompile(`^[0-9]+$`)
	phoneRegex   = regexp.MustCompile(`^(\([0-9]{3}\) |[0-9]{3}-)[0-9]{3}-[0-9]{4}$`)
)

func registerBuiltins(r *Registry) {
	r.Register(RuleRequired, Required)
	r.Register(RuleAtMost, AtMost)
	r.Register(RuleAtLeast, AtLeast)
	r.Register(RuleLengthEquals, LengthEquals)
	r.Register(RuleCheckLength, CheckLength)
	r.Register(RuleIsNumeric, IsNumeric)
	r.Register(RuleIsPhone, IsPhone)
}

// Required fails on an empty value. The optional first argument turns the
// rule off when false.
func Required(value string, args Args) (string, error) {
	required, err := args.BoolOr(0, true)
	if err != nil {
		return "", err
	}
	if !required || value != "" {
		return "", nil
	}
	return MsgRequired, nil
}

func AtMost(value string, args Args) (string, error) {
	limit, err := args.Int(0)
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(value) <= limit {
		return "", nil
	}
	return fmt.Sprintf(MsgAtMost, limit), nil
}

func AtLeast(value string, args Args) (string, error) {
	limit, err := args.Int(0)
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(value) >= limit {
		return "", nil
	}
	return fmt.Sprintf(MsgAtLeast, limit), nil
}

func LengthEquals(value string, args Args) (string, error) {
	exact, err := args.Int(0)
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(value) == exact {
		return "", nil
	}
	return fmt.Sprintf(MsgLengthEquals, exact), nil
}

// CheckLength requires the value to be within [min, max] characters. When both
// bounds fail only the atLeast message is reported.
func CheckLength(value string, args Args) (string, error) {
	if _, err := args.Int(1); err != nil {
		return "", err
	}
	if msg, err := AtLeast(value, args[:1]); msg != "" || err != nil {
		return msg, err
	}
	return AtMost(value, args[1:2])
}

func IsNumeric(value string, _ Args) (string, error) {
	if numericRegex.MatchString(value) {
		return "", nil
	}
	return MsgNumeric, nil
}

func IsPhone(value string, _ Args) (string, error) {
	if phoneRegex.MatchString(value) {
		return "", nil
	}
	return MsgPhone, nil
}
