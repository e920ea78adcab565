// Package validate provides composable per-field checks for record types.
//
// A Check validates one value and returns the value to store, so checks
// can normalize as well as reject: Int coerces whole floats, Clamp pulls
// out-of-range numbers to the nearest bound, Each rebuilds list elements.
// Checks compose with All and bind to slot positions with Fields, which
// produces a record.Validator:
//
//	rgb, err := record.NewType("Rgb",
//	    []string{"red", "green", "blue"},
//	    []any{0, 0, 0},
//	    validate.Fields(
//	        validate.All(validate.Int(), validate.Between(0, 255)),
//	        validate.All(validate.Int(), validate.Between(0, 255)),
//	        validate.All(validate.Int(), validate.Between(0, 255)),
//	    ),
//	)
//
// Checks can also be parsed from type expressions, which is how the
// definition file formats bind field types:
//
//	check, err := validate.Parse("[int]")
//
// The grammar covers "int", "float", "string", "bool", "any" and "[T]"
// for lists of T.
package validate
