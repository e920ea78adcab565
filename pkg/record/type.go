package record

import (
	"fmt"
	"strings"
	"unicode"
)

// Validator checks a value about to be bound to the slot at index. It
// returns the value to store, which may differ from the input (a coercion),
// or a non-nil error to reject the assignment. It runs on every bind: at
// construction (defaults included) and on every later set.
//
// This is the only supported calling convention. The legacy mutate-style
// shape, where the callback receives the instance and writes the slot
// itself, is deliberately not supported.
type Validator func(index int, value any) (any, error)

// Type is the descriptor produced by the factory: an ordered field layout,
// optional trailing defaults, and an optional validator. It is immutable
// once created and safe to share across any number of records and
// goroutines. Records, by contrast, are not synchronized.
//
// Two types built from identical parameters are still distinct: record
// equality and ordering require the same *Type.
type Type struct {
	name      string
	fields    []string
	index     map[string]int
	defaults  []any
	validator Validator
}

// NewType builds a Type from an ordered field list. Defaults are
// right-aligned: they bind to the last len(defaults) fields, and every
// field before that tail is mandatory at construction. A *SchemaError is
// returned for an invalid type name, an empty field list, empty, duplicate
// or non-identifier field names, or more defaults than fields.
func NewType(name string, fields []string, defaults []any, validator Validator) (*Type, error) {
	if !isIdentifier(name) {
		return nil, &SchemaError{TypeName: name, Reason: "type name must be a valid identifier"}
	}
	if len(fields) == 0 {
		return nil, &SchemaError{TypeName: name, Reason: "at least one field is required"}
	}
	if len(defaults) > len(fields) {
		return nil, &SchemaError{TypeName: name, Reason: fmt.Sprintf("%d defaults for %d fields", len(defaults), len(fields))}
	}

	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if !isIdentifier(f) {
			return nil, &SchemaError{TypeName: name, Reason: fmt.Sprintf("field %q is not a valid identifier", f)}
		}
		if _, dup := index[f]; dup {
			return nil, &SchemaError{TypeName: name, Reason: fmt.Sprintf("duplicate field %q", f)}
		}
		index[f] = i
	}

	t := &Type{
		name:      name,
		fields:    append([]string(nil), fields...),
		index:     index,
		validator: validator,
	}
	if len(defaults) > 0 {
		t.defaults = append([]any(nil), defaults...)
	}
	return t, nil
}

// Name returns the type's display identifier.
func (t *Type) Name() string { return t.name }

// Fields returns the declared field names in slot order.
func (t *Type) Fields() []string {
	return append([]string(nil), t.fields...)
}

// NumFields returns the number of fields (the length of every record).
func (t *Type) NumFields() int { return len(t.fields) }

// NumMandatory returns how many leading fields have no default and must
// receive a value at construction.
func (t *Type) NumMandatory() int { return len(t.fields) - len(t.defaults) }

// Defaults returns the trailing default values, aligned to the last
// len(defaults) fields.
func (t *Type) Defaults() []any {
	return append([]any(nil), t.defaults...)
}

// Index returns the slot position for a field name.
func (t *Type) Index(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// String renders the type's signature, marking defaulted fields:
// "Rgb(red=0, green=0, blue=0)", "Options(maxcolors, shape, zoom, restore)".
func (t *Type) String() string {
	var b strings.Builder
	b.WriteString(t.name)
	b.WriteByte('(')
	for i, f := range t.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f)
		if d, ok := t.defaultFor(i); ok {
			b.WriteByte('=')
			b.WriteString(formatValue(d))
		}
	}
	b.WriteByte(')')
	return b.String()
}

// New builds a record from positional values only; unsupplied trailing
// fields take their defaults. See Make for the full contract.
func (t *Type) New(values ...any) (*Record, error) {
	return t.Make(values, nil)
}

// MustNew is New that panics on error, for fixtures and package-level
// declarations.
func (t *Type) MustNew(values ...any) *Record {
	r, err := t.New(values...)
	if err != nil {
		panic(err)
	}
	return r
}

// Make builds a record by merging positional and named values into one
// resolved value per field, then running every resolved value through the
// validator in slot order. The merge fails with a *ConstructionError when
// more positional values than fields are given, a field is bound both
// positionally and by name, a named value targets an unknown field, or a
// mandatory field ends up with no value. A validator rejection surfaces as
// a *ValidationError and no instance is produced; construction is atomic.
func (t *Type) Make(positional []any, named map[string]any) (*Record, error) {
	n := len(t.fields)
	if len(positional) > n {
		return nil, &ConstructionError{
			TypeName: t.name,
			Reason:   fmt.Sprintf("accepts at most %d positional values, got %d", n, len(positional)),
		}
	}

	slots := make([]any, n)
	bound := make([]bool, n)
	for i, v := range positional {
		slots[i] = v
		bound[i] = true
	}
	for name, v := range named {
		i, ok := t.index[name]
		if !ok {
			return nil, &ConstructionError{TypeName: t.name, Field: name, Reason: "unknown field"}
		}
		if bound[i] {
			return nil, &ConstructionError{TypeName: t.name, Field: name, Reason: "supplied both positionally and by name"}
		}
		slots[i] = v
		bound[i] = true
	}
	for i := range slots {
		if bound[i] {
			continue
		}
		d, ok := t.defaultFor(i)
		if !ok {
			return nil, &ConstructionError{TypeName: t.name, Field: t.fields[i], Reason: "missing value"}
		}
		slots[i] = d
	}

	// Validate in slot order so earlier fields are settled before later
	// ones. The slice stays private until every slot has passed.
	for i, v := range slots {
		accepted, err := t.check(i, v)
		if err != nil {
			return nil, err
		}
		slots[i] = accepted
	}

	return &Record{typ: t, slots: slots}, nil
}

// check runs the validator for one slot and wraps a rejection with the
// field's name, position and offending value.
func (t *Type) check(i int, v any) (any, error) {
	if t.validator == nil {
		return v, nil
	}
	accepted, err := t.validator(i, v)
	if err != nil {
		return nil, &ValidationError{Field: t.fields[i], Index: i, Value: v, Err: err}
	}
	return accepted, nil
}

// defaultFor returns the default bound to slot i, if i falls in the
// defaulted trailing range.
func (t *Type) defaultFor(i int) (any, bool) {
	mandatory := len(t.fields) - len(t.defaults)
	if i < mandatory {
		return nil, false
	}
	return t.defaults[i-mandatory], true
}

// isIdentifier reports whether s is usable as a type or field name: a
// letter or underscore followed by letters, digits or underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
