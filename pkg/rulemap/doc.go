// Package rulemap decodes validator rule maps from YAML or JSON documents.
//
// A document maps field names to their rules. Each field takes either a list,
// where an entry is a bare rule name or a single-key mapping of name to
// arguments, or a mapping of rule names to arguments. Arguments are null, one
// scalar, or a list of scalars. Both forms keep document order.
//
//	zip:
//	  - isNumeric
//	  - atMost: 5
//	  - checkLength: [1, 5]
//	phone:
//	  required: [true]
//	  isPhone: []
//
// JSON is accepted as-is because it is a subset of YAML:
//
//	{"zip": [{"isNumeric": []}, {"lengthEquals": [5]}]}
//
// LoadFS and LoadDir read one form per file and key the result by file name
// without extension, so forms/signup.yaml becomes the "signup" form.
//
// Parsing checks structure only. Rule names are resolved by the validator;
// call (*validator.Validator).Verify after loading to reject unknown rules.
package rulemap
