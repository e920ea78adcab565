package validate

import "fmt"

// Parse converts a type expression to a Check.
// Supports the scalar types "int", "float", "string", "bool" and "any",
// plus element lists: "[string]", "[int]", "[[float]]", etc.
func Parse(expr string) (Check, error) {
	// Handle list types: [string], [int], etc.
	if len(expr) > 2 && expr[0] == '[' && expr[len(expr)-1] == ']' {
		elem, err := Parse(expr[1 : len(expr)-1])
		if err != nil {
			return nil, err
		}
		return Each(elem), nil
	}

	switch expr {
	case "int":
		return Int(), nil
	case "float":
		return Float(), nil
	case "string":
		return String(), nil
	case "bool":
		return Bool(), nil
	case "any":
		return Any(), nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", expr)
	}
}
