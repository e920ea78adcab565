package rectuple

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/seyale/rectuple/pkg/record"
	"github.com/seyale/rectuple/pkg/validate"
)

// Core types re-exported so most consumers only import rectuple.
type (
	// Type describes a runtime-defined record type.
	Type = record.Type
	// Record is a mutable instance of a Type.
	Record = record.Record
	// Validator inspects one slot assignment and returns the value to store.
	Validator = record.Validator
)

// Error types callers match with errors.As, re-exported from pkg/record.
type (
	SchemaError       = record.SchemaError
	ConstructionError = record.ConstructionError
	ValidationError   = record.ValidationError
)

// Sentinel errors callers match with errors.Is, re-exported from pkg/record.
var (
	ErrIndexOutOfRange = record.ErrIndexOutOfRange
	ErrUnknownField    = record.ErrUnknownField
	ErrTypeMismatch    = record.ErrTypeMismatch
	ErrNotOrdered      = record.ErrNotOrdered
)

// config collects definition options until the type is built.
type config struct {
	defaults  []any
	validator record.Validator
	checks    map[string]validate.Check
}

// Option defines a functional option for Define.
type Option func(*config)

// WithDefaults binds default values to the trailing fields: the last value
// to the last field, and so on. Fields before the defaulted tail are
// mandatory at construction.
func WithDefaults(values ...any) Option {
	return func(c *config) {
		c.defaults = values
	}
}

// WithValidator sets the validator invoked for every slot assignment.
func WithValidator(v Validator) Option {
	return func(c *config) {
		c.validator = v
	}
}

// WithChecks binds per-field checks by field name, resolved to slot
// positions when the type is built. A name not in the field list is a
// schema error. When combined with WithValidator, checks run first and
// the validator receives each check's accepted value.
func WithChecks(checks map[string]validate.Check) Option {
	return func(c *config) {
		c.checks = checks
	}
}

// Define creates a record type from a delimited field list. The list
// splits on whitespace and commas, so "red green blue" and
// "red, green, blue" describe the same fields.
func Define(name, fieldSpec string, opts ...Option) (*Type, error) {
	return DefineFields(name, splitFields(fieldSpec), opts...)
}

// DefineFields creates a record type from a sequence of field names.
// A single-element sequence containing delimiters is treated as a
// delimited list, so both calling shapes of Define are honored here.
func DefineFields(name string, fields []string, opts ...Option) (*Type, error) {
	if len(fields) == 1 {
		if split := splitFields(fields[0]); len(split) > 1 {
			fields = split
		}
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	validator, err := cfg.buildValidator(name, fields)
	if err != nil {
		return nil, err
	}

	return record.NewType(name, fields, cfg.defaults, validator)
}

// MustDefine is like Define but panics on error. It simplifies
// package-level type declarations.
func MustDefine(name, fieldSpec string, opts ...Option) *Type {
	t, err := Define(name, fieldSpec, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// buildValidator resolves named checks to slot positions and composes
// them with any user validator, checks first.
func (c *config) buildValidator(typeName string, fields []string) (record.Validator, error) {
	if len(c.checks) == 0 {
		return c.validator, nil
	}

	index := make(map[string]int, len(fields))
	for i, field := range fields {
		index[field] = i
	}

	positional := make([]validate.Check, len(fields))
	for field, check := range c.checks {
		i, ok := index[field]
		if !ok {
			return nil, &record.SchemaError{
				TypeName: typeName,
				Reason:   fmt.Sprintf("check bound to unknown field %q", field),
			}
		}
		positional[i] = check
	}

	checked := validate.Fields(positional...)
	if c.validator == nil {
		return checked, nil
	}

	user := c.validator
	return func(i int, value any) (any, error) {
		accepted, err := checked(i, value)
		if err != nil {
			return nil, err
		}
		return user(i, accepted)
	}, nil
}

// splitFields breaks a field list on whitespace and commas.
func splitFields(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
