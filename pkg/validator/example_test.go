package validator_test

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func ExampleValidator_Validate() {
	v := validator.New(validator.RuleMap{
		"zip":   {validator.Rule("isNumeric"), validator.Rule("lengthEquals", 5)},
		"phone": {validator.Rule("required", true), validator.Rule("isPhone")},
	})

	errs, err := v.Validate(validator.Attrs{
		"zip":   "98103",
		"city":  "Seattle",
		"phone": "xyz",
	})
	if err != nil {
		panic(err)
	}

	for _, field := range []string{"city", "phone", "zip"} {
		fmt.Println(field, errs[field])
	}
	fmt.Println("valid:", errs.Valid())
	// Output:
	// city []
	// phone [Enter a valid phone number.]
	// zip []
	// valid: false
}

func ExampleRegistry_Register() {
	reg := validator.NewRegistry()
	reg.Register("startsWith", func(value string, args validator.Args) (string, error) {
		prefix, err := args.String(0)
		if err != nil {
			return "", err
		}
		if strings.HasPrefix(value, prefix) {
			return "", nil
		}
		return "Must start with " + prefix + ".", nil
	})

	v := validator.New(validator.RuleMap{
		"sku": {validator.Rule("startsWith", "SKU-")},
	}, validator.WithRegistry(reg))

	errs, _ := v.Validate(validator.Attrs{"sku": "ABC-1"})
	fmt.Println(errs.Get("sku"))
	// Output: [Must start with SKU-.]
}
