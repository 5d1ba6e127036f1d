// Package validator implements a declarative, name-dispatched field validator.
//
// A RuleMap describes, for every field, an ordered list of rule invocations:
// a rule name plus positional arguments. Because a RuleMap is plain data it can
// be written by hand in Go, or decoded from a YAML/JSON document (see package
// rulemap). The Validator resolves each rule name through a Registry at
// evaluation time and collects every failure message per field.
//
// # Architecture
//
//   - Registry      – name -> RuleFunc table, pre-loaded with the built-in rules
//   - RuleFunc      – func(value string, args Args) (message string, err error)
//   - Validator     – runs a fixed RuleMap against per-call Attrs
//   - Errors        – field -> ordered failure messages; the only output channel
//   - RuleError     – configuration fault (unknown rule, bad arguments)
//
// Validation failures and configuration faults are never mixed. A value that
// breaks a rule produces a message in Errors; a RuleMap that names a rule the
// Registry does not know produces a *RuleError and no Errors at all.
//
// # Built-in rules
//
//	required(isRequired)   value is non-empty unless isRequired is false
//	atMost(max)            at most max characters
//	atLeast(min)           at least min characters
//	lengthEquals(n)        exactly n characters
//	checkLength(min, max)  atLeast(min) then atMost(max), first failure wins
//	isNumeric()            digits only, non-empty
//	isPhone()              "(206) 555-1234" or "206-555-1234"
//
// Format rules registered alongside them: isEmail, isURL, isAlpha,
// isAlphanumeric, isUUID, noWhitespace, oneOf(options...) and
// matches(pattern[, message]).
//
// Lengths are counted in Unicode characters, not bytes.
//
// # Usage
//
//	v := validator.New(validator.RuleMap{
//	    "zip": {
//	        validator.Rule("isNumeric"),
//	        validator.Rule("checkLength", 5, 5),
//	    },
//	    "phone": {validator.Rule("required", true), validator.Rule("isPhone")},
//	})
//
//	errs, err := v.Validate(validator.Attrs{"zip": "98103", "phone": "xyz"})
//	if err != nil {
//	    // misconfigured rule map, see RuleError
//	}
//	if !errs.Valid() {
//	    fmt.Println(errs.Get("phone")) // [Enter a valid phone number.]
//	}
//
// # Custom rules
//
//	reg := validator.NewRegistry()
//	reg.Register("startsWith", func(value string, args validator.Args) (string, error) {
//	    prefix, err := args.String(0)
//	    if err != nil {
//	        return "", err
//	    }
//	    if strings.HasPrefix(value, prefix) {
//	        return "", nil
//	    }
//	    return "Must start with " + prefix + ".", nil
//	})
//	v := validator.New(rules, validator.WithRegistry(reg))
//
// Register every custom rule before validators start serving concurrent
// requests. The Registry is safe for concurrent use, but a rule that appears
// mid-flight makes results depend on timing.
package validator
