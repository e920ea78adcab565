package typedef

import (
	"fmt"
	"regexp"

	"github.com/seyale/rectuple/pkg/record"
	"github.com/seyale/rectuple/pkg/validate"
)

// Build compiles every type in the document, in document order.
func (d *Document) Build() ([]*record.Type, error) {
	types := make([]*record.Type, 0, len(d.Types))
	for _, spec := range d.Types {
		t, err := spec.Build()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// Build compiles the type spec into a record type. Field constraints
// become per-slot checks and `default` keys become trailing defaults.
func (s *TypeSpec) Build() (*record.Type, error) {
	fields := make([]string, len(s.Fields))
	checks := make([]validate.Check, len(s.Fields))
	hasChecks := false

	for i, f := range s.Fields {
		fields[i] = f.Name

		check, err := f.check()
		if err != nil {
			return nil, &record.SchemaError{
				TypeName: s.Name,
				Reason:   fmt.Sprintf("field %q: %s", f.Name, err),
			}
		}
		if check != nil {
			checks[i] = check
			hasChecks = true
		}
	}

	defaults, err := s.defaults()
	if err != nil {
		return nil, err
	}

	var v record.Validator
	if hasChecks {
		v = validate.Fields(checks...)
	}

	return record.NewType(s.Name, fields, defaults, v)
}

// defaults extracts the trailing default values, rejecting gaps: once a
// field carries a default, every later field must too.
func (s *TypeSpec) defaults() ([]any, error) {
	first := -1
	for i, f := range s.Fields {
		if f.Default != nil {
			if first == -1 {
				first = i
			}
			continue
		}
		if first != -1 {
			return nil, &record.SchemaError{
				TypeName: s.Name,
				Reason: fmt.Sprintf("field %q has no default but %q before it does; defaults must cover the trailing fields",
					f.Name, s.Fields[first].Name),
			}
		}
	}

	if first == -1 {
		return nil, nil
	}
	defaults := make([]any, 0, len(s.Fields)-first)
	for _, f := range s.Fields[first:] {
		defaults = append(defaults, *f.Default)
	}
	return defaults, nil
}

// check compiles the field's constraints into a single check, or nil
// when the field is unconstrained.
func (f *FieldSpec) check() (validate.Check, error) {
	var checks []validate.Check

	if f.Type != "" && f.Type != "any" {
		base, err := validate.Parse(f.Type)
		if err != nil {
			return nil, err
		}
		checks = append(checks, base)
	}

	switch {
	case f.Clamp:
		if f.Min == nil || f.Max == nil {
			return nil, fmt.Errorf("clamp requires both min and max")
		}
		checks = append(checks, validate.Clamp(*f.Min, *f.Max))
	case f.Min != nil && f.Max != nil:
		checks = append(checks, validate.Between(*f.Min, *f.Max))
	case f.Min != nil:
		checks = append(checks, validate.Min(*f.Min))
	case f.Max != nil:
		checks = append(checks, validate.Max(*f.Max))
	}

	if len(f.OneOf) > 0 {
		checks = append(checks, validate.OneOf(f.OneOf...))
	}

	if f.Pattern != "" {
		re, err := regexp.Compile(f.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern: %v", err)
		}
		checks = append(checks, validate.Match(re))
	}

	switch len(checks) {
	case 0:
		return nil, nil
	case 1:
		return checks[0], nil
	default:
		return validate.All(checks...), nil
	}
}
