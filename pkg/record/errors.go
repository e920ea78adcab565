package record

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by index-based access when the position,
// after negative-index normalization, falls outside the slot range.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrUnknownField is returned by name-based access for names that are not
// declared fields of the generated type.
var ErrUnknownField = errors.New("unknown field")

// ErrTypeMismatch is returned when two records of different generated types
// are compared for order.
var ErrTypeMismatch = errors.New("mismatched record types")

// ErrNotOrdered is returned when slot values have no defined ordering
// (mixed or non-comparable kinds).
var ErrNotOrdered = errors.New("values are not orderable")

// SchemaError reports a malformed type definition. It is returned by the
// factory at define time and never deferred to instance construction.
type SchemaError struct {
	TypeName string // Name passed to the factory (may be the offending part)
	Reason   string // Human-readable reason for rejection
}

func (e *SchemaError) Error() string {
	if e.TypeName == "" {
		return fmt.Sprintf("invalid record type: %s", e.Reason)
	}
	return fmt.Sprintf("invalid record type %q: %s", e.TypeName, e.Reason)
}

// ConstructionError reports an argument/field mismatch while building an
// instance: excess positional values, a field bound twice, a missing
// mandatory field, or an unknown field name.
type ConstructionError struct {
	TypeName string
	Field    string // Empty when the problem is not tied to one field
	Reason   string
}

func (e *ConstructionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.TypeName, e.Reason)
	}
	return fmt.Sprintf("%s: field %q: %s", e.TypeName, e.Field, e.Reason)
}

// ValidationError reports a value rejected by the type's validator, at
// construction or on a later set. It wraps the validator's own error.
type ValidationError struct {
	Field string // Field name
	Index int    // Slot position
	Value any    // The value that failed validation
	Err   error  // The validator's rejection
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s (got %T)", e.Field, e.Err, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
