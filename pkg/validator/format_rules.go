package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/google/uuid"
)

// Format rule names, registered by NewRegistry next to the core set.
const (
	RuleIsEmail        = "isEmail"
	RuleIsURL          = "isURL"
	RuleIsAlpha        = "isAlpha"
	RuleIsAlphanumeric = "isAlphanumeric"
	RuleIsUUID         = "isUUID"
	RuleNoWhitespace   = "noWhitespace"
	RuleOneOf          = "oneOf"
	RuleMatches        = "matches"
)

const (
	MsgEmail        = "Enter a valid email address."
	MsgURL          = "Enter a valid URL."
	MsgAlpha        = "Can only contain letters."
	MsgAlphanumeric = "Can only contain letters and numbers."
	MsgUUID         = "Enter a valid UUID."
	MsgNoWhitespace = "Cannot contain spaces."
	MsgOneOf        = "Must be one of: %s."
	MsgMatches      = "Invalid format."
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	// compiled patterns of the matches rule, keyed by source
	patternCache sync.Map
)

func registerFormatRules(r *Registry) {
	r.Register(RuleIsEmail, IsEmail)
	r.Register(RuleIsURL, IsURL)
	r.Register(RuleIsAlpha, IsAlpha)
	r.Register(RuleIsAlphanumeric, IsAlphanumeric)
	r.Register(RuleIsUUID, IsUUID)
	r.Register(RuleNoWhitespace, NoWhitespace)
	r.Register(RuleOneOf, OneOf)
	r.Register(RuleMatches, Matches)
}

// IsEmail accepts a bare address (no display name) whose domain has at least
// one dot and no empty labels.
func IsEmail(value string, _ Args) (string, error) {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return MsgEmail, nil
	}
	_, domain, _ := strings.Cut(addr.Address, "@")
	if !strings.Contains(domain, ".") {
		return MsgEmail, nil
	}
	for label := range strings.SplitSeq(domain, ".") {
		if label == "" {
			return MsgEmail, nil
		}
	}
	return "", nil
}

// IsURL accepts absolute URLs with a scheme and host.
func IsURL(value string, _ Args) (string, error) {
	u, err := url.ParseRequestURI(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return MsgURL, nil
	}
	return "", nil
}

func IsAlpha(value string, _ Args) (string, error) {
	if alphaRegex.MatchString(value) {
		return "", nil
	}
	return MsgAlpha, nil
}

func IsAlphanumeric(value string, _ Args) (string, error) {
	if alphanumericRegex.MatchString(value) {
		return "", nil
	}
	return MsgAlphanumeric, nil
}

// IsUUID accepts the canonical 36-character hyphenated form only.
func IsUUID(value string, _ Args) (string, error) {
	if len(value) != 36 {
		return MsgUUID, nil
	}
	if _, err := uuid.Parse(value); err != nil {
		return MsgUUID, nil
	}
	return "", nil
}

func NoWhitespace(value string, _ Args) (string, error) {
	if strings.ContainsFunc(value, unicode.IsSpace) {
		return MsgNoWhitespace, nil
	}
	return "", nil
}

// OneOf passes when the value equals the string form of any argument.
func OneOf(value string, args Args) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: oneOf needs at least one option", ErrInvalidArgument)
	}
	options := make([]string, 0, len(args))
	for i := range args {
		opt, err := args.String(i)
		if err != nil {
			return "", err
		}
		options = append(options, opt)
	}
	if slices.Contains(options, value) {
		return "", nil
	}
	return fmt.Sprintf(MsgOneOf, strings.Join(options, ", ")), nil
}

// Matches checks the value against a regular expression given as the first
// argument. An optional second argument replaces the failure message.
func Matches(value string, args Args) (string, error) {
	pattern, err := args.String(0)
	if err != nil {
		return "", err
	}
	re, err := compilePattern(pattern)
	if err != nil {
		return "", err
	}
	if re.MatchString(value) {
		return "", nil
	}
	if len(args) > 1 {
		return args.String(1)
	}
	return MsgMatches, nil
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if cached, ok := patternCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", ErrInvalidArgument, pattern, err)
	}
	patternCache.Store(pattern, re)
	return re, nil
}
