package validate

import (
	"fmt"

	"github.com/seyale/rectuple/pkg/record"
)

// Check validates a single field value and returns the value to store.
// The returned value may differ from the input (normalization, clamping);
// a non-nil error rejects the value.
type Check func(value any) (any, error)

// Fields adapts one Check per slot position into a record.Validator.
// Positions without a check (nil entry, or beyond the list) pass values
// through unchanged.
func Fields(checks ...Check) record.Validator {
	return func(index int, value any) (any, error) {
		if index < 0 || index >= len(checks) || checks[index] == nil {
			return value, nil
		}
		return checks[index](value)
	}
}

// All composes checks left to right, feeding each accepted value into the
// next. Nil checks are skipped.
func All(checks ...Check) Check {
	return func(value any) (any, error) {
		var err error
		for _, check := range checks {
			if check == nil {
				continue
			}
			value, err = check(value)
			if err != nil {
				return nil, err
			}
		}
		return value, nil
	}
}

// --- Base Type Checks ---

// String accepts string values.
func String() Check {
	return func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", value)
		}
		return s, nil
	}
}

// Int accepts integer values. Integer kinds and whole floats normalize
// to int, so values arriving from JSON or YAML decoding store uniformly.
func Int() Check {
	return func(value any) (any, error) {
		switch v := value.(type) {
		case int:
			return v, nil
		case int8:
			return int(v), nil
		case int16:
			return int(v), nil
		case int32:
			return int(v), nil
		case int64:
			return int(v), nil
		case uint:
			return int(v), nil
		case uint8:
			return int(v), nil
		case uint16:
			return int(v), nil
		case uint32:
			return int(v), nil
		case uint64:
			return int(v), nil
		case float64:
			if v == float64(int64(v)) {
				return int(v), nil
			}
			return nil, fmt.Errorf("expected int, got float (not a whole number)")
		case float32:
			if float64(v) == float64(int64(v)) {
				return int(v), nil
			}
			return nil, fmt.Errorf("expected int, got float (not a whole number)")
		default:
			return nil, fmt.Errorf("expected int, got %T", value)
		}
	}
}

// Float accepts floating-point and integer values, normalized to float64.
func Float() Check {
	return func(value any) (any, error) {
		f, ok := asFloat(value)
		if !ok {
			return nil, fmt.Errorf("expected float, got %T", value)
		}
		return f, nil
	}
}

// Bool accepts boolean values.
func Bool() Check {
	return func(value any) (any, error) {
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", value)
		}
		return b, nil
	}
}

// Any accepts every value unchanged.
func Any() Check {
	return func(value any) (any, error) {
		return value, nil
	}
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func isIntKind(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}
