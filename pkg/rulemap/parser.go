package rulemap

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// Parse decodes a YAML or JSON document into a RuleMap. Rule order is taken
// from the document, including the mapping form.
func Parse(data []byte) (validator.RuleMap, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	rules := make(validator.RuleMap)
	if len(doc.Content) == 0 {
		return rules, nil
	}

	root := resolve(doc.Content[0])
	if isNull(root) {
		return rules, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level must map field names to rules", ErrInvalidDocument, root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := resolve(root.Content[i]), resolve(root.Content[i+1])
		field := key.Value
		if _, dup := rules[field]; dup {
			return nil, fmt.Errorf("%w: line %d: field %q defined twice", ErrInvalidDocument, key.Line, field)
		}
		invocations, err := parseField(value)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidDocument, field, err)
		}
		rules[field] = invocations
	}

	return rules, nil
}

// parseField accepts a list of rules, an ordered {rule: args} mapping, or
// null for a field without rules.
func parseField(n *yaml.Node) ([]validator.Invocation, error) {
	switch {
	case isNull(n):
		return []validator.Invocation{}, nil

	case n.Kind == yaml.SequenceNode:
		invocations := make([]validator.Invocation, 0, len(n.Content))
		for _, item := range n.Content {
			inv, err := parseItem(resolve(item))
			if err != nil {
				return nil, err
			}
			invocations = append(invocations, inv)
		}
		return invocations, nil

	case n.Kind == yaml.MappingNode:
		invocations := make([]validator.Invocation, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			inv, err := parseRule(resolve(n.Content[i]), resolve(n.Content[i+1]))
			if err != nil {
				return nil, err
			}
			invocations = append(invocations, inv)
		}
		return invocations, nil
	}

	return nil, fmt.Errorf("line %d: expected a list or mapping of rules", n.Line)
}

// parseItem handles one list entry: "isNumeric" or {atMost: 5}.
func parseItem(n *yaml.Node) (validator.Invocation, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() != "!!str" {
			return validator.Invocation{}, fmt.Errorf("line %d: rule name must be a string", n.Line)
		}
		return parseRule(n, nil)
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return validator.Invocation{}, fmt.Errorf("line %d: each list entry must name exactly one rule", n.Line)
		}
		return parseRule(resolve(n.Content[0]), resolve(n.Content[1]))
	}
	return validator.Invocation{}, fmt.Errorf("line %d: expected a rule name or a single-key mapping", n.Line)
}

func parseRule(name, args *yaml.Node) (validator.Invocation, error) {
	if name.Value == "" {
		return validator.Invocation{}, fmt.Errorf("line %d: empty rule name", name.Line)
	}
	parsed, err := parseArgs(args)
	if err != nil {
		return validator.Invocation{}, fmt.Errorf("rule %q: %w", name.Value, err)
	}
	return validator.Invocation{Rule: name.Value, Args: parsed}, nil
}

// parseArgs accepts null, a single scalar, or a list of scalars.
func parseArgs(n *yaml.Node) (validator.Args, error) {
	if n == nil || isNull(n) {
		return nil, nil
	}

	switch n.Kind {
	case yaml.ScalarNode:
		v, err := scalar(n)
		if err != nil {
			return nil, err
		}
		return validator.Args{v}, nil
	case yaml.SequenceNode:
		args := make(validator.Args, 0, len(n.Content))
		for _, item := range n.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: arguments must be scalar values", item.Line)
			}
			v, err := scalar(item)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
		}
		return args, nil
	}

	return nil, fmt.Errorf("line %d: arguments must be a scalar or a list of scalars", n.Line)
}

func scalar(n *yaml.Node) (any, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("line %d: %v", n.Line, err)
	}
	return v, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
