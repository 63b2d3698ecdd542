package processor

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/nerrad567/gray-logic-input/internal/intern"
)

// Spec is one entry of a processors string: a processor name and its
// parameters.
type Spec struct {
	Name   string
	Params Params
}

// ParseSpecs parses a processors string such as
//
//	scale(factor=4), clamp(min=-1, max=1), invert
//
// Entries are separated by commas; parameters are optional. Parameter values
// are HCL expressions, so numbers, negative numbers, booleans and quoted
// strings are all accepted. A bare word is taken as a string. An empty or
// blank string yields no specs.
func ParseSpecs(s string) ([]Spec, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	items, err := splitTopLevel(s)
	if err != nil {
		return nil, err
	}

	specs := make([]Spec, 0, len(items))
	for _, item := range items {
		spec, err := parseSpec(item)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// parseSpec parses a single "name" or "name(k=v, ...)" entry.
func parseSpec(item string) (Spec, error) {
	item = strings.TrimSpace(item)
	name, args, hasArgs := strings.Cut(item, "(")
	name = strings.TrimSpace(name)
	if !validName(name) {
		return Spec{}, fmt.Errorf("%w: invalid processor name %q", ErrInvalidSpec, name)
	}

	spec := Spec{Name: name}
	if !hasArgs {
		return spec, nil
	}

	args = strings.TrimSpace(args)
	if !strings.HasSuffix(args, ")") {
		return Spec{}, fmt.Errorf("%w: %q: missing closing parenthesis", ErrInvalidSpec, item)
	}
	args = strings.TrimSuffix(args, ")")
	if strings.TrimSpace(args) == "" {
		return spec, nil
	}

	pairs, err := splitTopLevel(args)
	if err != nil {
		return Spec{}, fmt.Errorf("%q: %w", item, err)
	}

	spec.Params = make(Params, len(pairs))
	seen := make(map[intern.Key]string, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || !validName(key) {
			return Spec{}, fmt.Errorf("%w: %q: expected name=value, got %q", ErrInvalidSpec, item, strings.TrimSpace(pair))
		}
		k := intern.Make(key).Key()
		if prev, dup := seen[k]; dup {
			return Spec{}, fmt.Errorf("%w: %q: parameter %q given twice (as %q)", ErrInvalidSpec, item, key, prev)
		}
		seen[k] = key
		val, err := parseValue(raw)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: %q: parameter %q: %w", ErrInvalidSpec, item, key, err)
		}
		spec.Params[key] = val
	}
	return spec, nil
}

// parseValue evaluates a parameter value as a constant HCL expression.
func parseValue(raw string) (cty.Value, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return cty.NilVal, fmt.Errorf("empty value")
	}

	expr, diags := hclsyntax.ParseExpression([]byte(raw), "processors", hcl.InitialPos)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("%s", diags.Error())
	}
	if kw := hcl.ExprAsKeyword(expr); kw != "" {
		return cty.StringVal(kw), nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("%s", diags.Error())
	}
	return val, nil
}

// splitTopLevel splits s on commas that are not nested in brackets or
// quotes. Empty entries are rejected.
func splitTopLevel(s string) ([]string, error) {
	var (
		items   []string
		depth   int
		inQuote bool
		escaped bool
		start   int
	)

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inQuote:
			switch c {
			case '\\':
				escaped = true
			case '"':
				inQuote = false
			}
		case c == '"':
			inQuote = true
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced %q at offset %d", ErrInvalidSpec, c, i)
			}
		case c == ',' && depth == 0:
			items = append(items, s[start:i])
			start = i + 1
		}
	}
	if inQuote {
		return nil, fmt.Errorf("%w: unterminated string", ErrInvalidSpec)
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced brackets", ErrInvalidSpec)
	}
	items = append(items, s[start:])

	for i, item := range items {
		if strings.TrimSpace(item) == "" {
			return nil, fmt.Errorf("%w: empty entry at position %d", ErrInvalidSpec, i+1)
		}
	}
	return items, nil
}

// validName reports whether s is a usable processor or parameter name.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.':
		default:
			return false
		}
	}
	return true
}
