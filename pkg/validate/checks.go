package validate

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
)

// --- Constraint Checks ---

// Min accepts numeric values greater than or equal to bound.
func Min(bound float64) Check {
	return func(value any) (any, error) {
		f, err := orderedFloat(value)
		if err != nil {
			return nil, err
		}
		if f < bound {
			return nil, fmt.Errorf("must be >= %v", bound)
		}
		return value, nil
	}
}

// Max accepts numeric values less than or equal to bound.
func Max(bound float64) Check {
	return func(value any) (any, error) {
		f, err := orderedFloat(value)
		if err != nil {
			return nil, err
		}
		if f > bound {
			return nil, fmt.Errorf("must be <= %v", bound)
		}
		return value, nil
	}
}

// Between accepts numeric values in the inclusive range [lo, hi].
func Between(lo, hi float64) Check {
	return func(value any) (any, error) {
		f, err := orderedFloat(value)
		if err != nil {
			return nil, err
		}
		if f < lo || f > hi {
			return nil, fmt.Errorf("must be between %v and %v", lo, hi)
		}
		return value, nil
	}
}

// Clamp coerces numeric values into the inclusive range [lo, hi]: in-range
// values pass unchanged, out-of-range values become the nearest bound. The
// bound keeps the input's integer kind when it is representable as one.
// NaN is rejected, not clamped.
func Clamp(lo, hi float64) Check {
	return func(value any) (any, error) {
		f, err := orderedFloat(value)
		if err != nil {
			return nil, err
		}
		switch {
		case f < lo:
			return clampedBound(value, lo), nil
		case f > hi:
			return clampedBound(value, hi), nil
		default:
			return value, nil
		}
	}
}

// OneOf accepts values deep-equal to one of the allowed values.
func OneOf(allowed ...any) Check {
	return func(value any) (any, error) {
		for _, a := range allowed {
			if reflect.DeepEqual(value, a) {
				return value, nil
			}
		}
		return nil, fmt.Errorf("must be one of %v", allowed)
	}
}

// NonEmpty accepts non-empty strings.
func NonEmpty() Check {
	return func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", value)
		}
		if s == "" {
			return nil, fmt.Errorf("must not be empty")
		}
		return s, nil
	}
}

// Match accepts strings matching the regular expression.
func Match(re *regexp.Regexp) Check {
	return func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", value)
		}
		if !re.MatchString(s) {
			return nil, fmt.Errorf("must match %q", re.String())
		}
		return s, nil
	}
}

// Each accepts slices whose elements all pass the element check. The
// accepted value is a fresh []any holding each element's accepted value.
func Each(elem Check) Check {
	return func(value any) (any, error) {
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, fmt.Errorf("expected slice, got %T", value)
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			accepted, err := elem(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = accepted
		}
		return out, nil
	}
}

// clampedBound renders an out-of-range replacement in the same numeric
// family as the rejected value where possible.
func clampedBound(value any, bound float64) any {
	if isIntKind(value) && bound == math.Trunc(bound) {
		return int(bound)
	}
	return bound
}

// orderedFloat widens numeric values for the bounds checks, rejecting
// NaN, which compares false against every bound.
func orderedFloat(value any) (float64, error) {
	f, ok := asFloat(value)
	if !ok {
		return 0, fmt.Errorf("expected a number, got %T", value)
	}
	if math.IsNaN(f) {
		return 0, fmt.Errorf("must not be NaN")
	}
	return f, nil
}
