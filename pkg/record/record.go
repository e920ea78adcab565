package record

import (
	"fmt"
	"reflect"
	"strings"
)

// Record is a mutable instance of a generated Type: one value per field in
// a fixed-size slot array. Every slot has passed the type's validator.
// A record belongs to its creator; share it across goroutines only with
// external locking.
type Record struct {
	typ   *Type
	slots []any
}

// Type returns the descriptor this record was built from.
func (r *Record) Type() *Type { return r.typ }

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.slots) }

// Get returns the value at slot i. Negative indexes count from the end
// (-1 is the last field). An index outside the normalized range wraps
// ErrIndexOutOfRange.
func (r *Record) Get(i int) (any, error) {
	idx, err := r.norm(i)
	if err != nil {
		return nil, err
	}
	return r.slots[idx], nil
}

// Set stores a value at slot i after running it through the validator.
// Indexes normalize as in Get. On rejection the prior value is retained
// and the *ValidationError is returned.
func (r *Record) Set(i int, value any) error {
	idx, err := r.norm(i)
	if err != nil {
		return err
	}
	accepted, err := r.typ.check(idx, value)
	if err != nil {
		return err
	}
	r.slots[idx] = accepted
	return nil
}

// Field returns the value of the named field. Unknown names wrap
// ErrUnknownField.
func (r *Record) Field(name string) (any, error) {
	i, ok := r.typ.index[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", r.typ.name, ErrUnknownField, name)
	}
	return r.slots[i], nil
}

// SetField stores a value in the named field after validation, with the
// same retention guarantee as Set.
func (r *Record) SetField(name string, value any) error {
	i, ok := r.typ.index[name]
	if !ok {
		return fmt.Errorf("%s: %w: %q", r.typ.name, ErrUnknownField, name)
	}
	accepted, err := r.typ.check(i, value)
	if err != nil {
		return err
	}
	r.slots[i] = accepted
	return nil
}

// Values returns a copy of all slot values in field order. Ranging over it
// is the iteration surface of a record.
func (r *Record) Values() []any {
	out := make([]any, len(r.slots))
	copy(out, r.slots)
	return out
}

// AsMap returns the record as a field-name-to-value map.
func (r *Record) AsMap() map[string]any {
	out := make(map[string]any, len(r.slots))
	for i, f := range r.typ.fields {
		out[f] = r.slots[i]
	}
	return out
}

// Contains reports whether any slot holds the given value. Values compare
// with reflect.DeepEqual, so cross-kind numeric matches (5 vs 5.0) do not
// count.
func (r *Record) Contains(value any) bool {
	for _, v := range r.slots {
		if reflect.DeepEqual(v, value) {
			return true
		}
	}
	return false
}

// Equal reports whether both records were built by the same Type and all
// slots compare equal pairwise in field order (reflect.DeepEqual per slot).
func (r *Record) Equal(other *Record) bool {
	if other == nil || r.typ != other.typ {
		return false
	}
	for i, v := range r.slots {
		if !reflect.DeepEqual(v, other.slots[i]) {
			return false
		}
	}
	return true
}

// Compare orders two records of the same Type lexicographically by slot:
// -1 if r sorts before other, +1 after, 0 if equal. Deep-equal slot pairs
// (the Equal relation) are ties whatever their kind, so equal unordered
// values pass through to the next slot; only unequal slots without a
// defined ordering wrap ErrNotOrdered. Records of different types wrap
// ErrTypeMismatch. Numeric kinds compare as one family, strings lexically,
// bools false before true.
func (r *Record) Compare(other *Record) (int, error) {
	if other == nil || r.typ != other.typ {
		return 0, fmt.Errorf("%s: %w", r.typ.name, ErrTypeMismatch)
	}
	for i, v := range r.slots {
		if reflect.DeepEqual(v, other.slots[i]) {
			continue
		}
		c, err := compareValue(v, other.slots[i])
		if err != nil {
			return 0, fmt.Errorf("field %q: %w", r.typ.fields[i], err)
		}
		if c != 0 {
			return c, nil
		}
	}
	return 0, nil
}

// Slice returns a copy of the slots in [i, j). Negative bounds count from
// the end and out-of-range bounds clamp, so it never fails; an inverted
// range yields an empty slice.
func (r *Record) Slice(i, j int) []any {
	i, j = r.clampRange(i, j)
	out := make([]any, j-i)
	copy(out, r.slots[i:j])
	return out
}

// SetSlice assigns consecutive slots [i, j), with the bounds normalized
// and clamped as in Slice. Exactly j-i values are required. All values are
// validated before any slot is written, so a rejection leaves the record
// unchanged.
func (r *Record) SetSlice(i, j int, values []any) error {
	lo, hi := r.clampRange(i, j)
	if len(values) != hi-lo {
		return fmt.Errorf("%s: slice [%d:%d] takes %d values, got %d",
			r.typ.name, i, j, hi-lo, len(values))
	}
	accepted := make([]any, len(values))
	for k, v := range values {
		a, err := r.typ.check(lo+k, v)
		if err != nil {
			return err
		}
		accepted[k] = a
	}
	copy(r.slots[lo:hi], accepted)
	return nil
}

// Clone returns a new record of the same Type with a copied slot array.
// The copy is shallow: slot values themselves are shared.
func (r *Record) Clone() *Record {
	slots := make([]any, len(r.slots))
	copy(slots, r.slots)
	return &Record{typ: r.typ, slots: slots}
}

// String renders the record for debugging as
// "TypeName(field1=value1, field2=value2, ...)" in field order. Strings
// are quoted; everything else uses its default formatting.
func (r *Record) String() string {
	var b strings.Builder
	b.WriteString(r.typ.name)
	b.WriteByte('(')
	for i, f := range r.typ.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f)
		b.WriteByte('=')
		b.WriteString(formatValue(r.slots[i]))
	}
	b.WriteByte(')')
	return b.String()
}

// norm maps a possibly negative index onto [0, len) or fails.
func (r *Record) norm(i int) (int, error) {
	n := len(r.slots)
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("%s: %w: %d (%d fields)", r.typ.name, ErrIndexOutOfRange, i, n)
	}
	return idx, nil
}

// clampRange normalizes slice bounds: negatives count from the end,
// everything clamps into [0, len], and an inverted range collapses to
// empty.
func (r *Record) clampRange(i, j int) (int, int) {
	n := len(r.slots)
	if i < 0 {
		i += n
	}
	if j < 0 {
		j += n
	}
	i = min(max(i, 0), n)
	j = min(max(j, 0), n)
	if j < i {
		j = i
	}
	return i, j
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

// compareValue orders two slot values within the supported families.
func compareValue(a, b any) (int, error) {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return strings.Compare(as, bs), nil
		}
		return 0, fmt.Errorf("%w: %T and %T", ErrNotOrdered, a, b)
	}
	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ab == bb:
				return 0, nil
			case !ab:
				return -1, nil
			default:
				return 1, nil
			}
		}
		return 0, fmt.Errorf("%w: %T and %T", ErrNotOrdered, a, b)
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	return 0, fmt.Errorf("%w: %T and %T", ErrNotOrdered, a, b)
}

// toFloat widens any numeric kind to float64 for ordering.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
