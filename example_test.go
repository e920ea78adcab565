package rectuple_test

import (
	"fmt"
	"log"

	"github.com/seyale/rectuple"
	"github.com/seyale/rectuple/pkg/validate"
)

// ExampleDefine demonstrates defining a type with trailing defaults and
// constructing records positionally, by name, and with no arguments.
func ExampleDefine() {
	rgb, err := rectuple.Define("Rgb", "red green blue",
		rectuple.WithDefaults(0, 0, 0),
	)
	if err != nil {
		log.Fatal(err)
	}

	black, err := rgb.New()
	if err != nil {
		log.Fatal(err)
	}

	blue, err := rgb.Make(nil, map[string]any{"blue": 128})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(black)
	fmt.Println(blue)
	// Output:
	// Rgb(red=0, green=0, blue=0)
	// Rgb(red=0, green=0, blue=128)
}

// ExampleRecord_Set demonstrates index- and name-based mutation, including
// negative positions counting from the end.
func ExampleRecord_Set() {
	options := rectuple.MustDefine("Options", "maxcolors shape zoom restore")

	opts, err := options.New(5, "square", 0.9, true)
	if err != nil {
		log.Fatal(err)
	}

	if err := opts.SetField("maxcolors", 7); err != nil {
		log.Fatal(err)
	}
	if err := opts.Set(-1, false); err != nil {
		log.Fatal(err)
	}

	fmt.Println(opts)
	// Output:
	// Options(maxcolors=7, shape="square", zoom=0.9, restore=false)
}

// ExampleWithChecks demonstrates declarative per-field checks: the red,
// green and blue channels reject out-of-range ints, and the check's
// accepted value is what the record stores.
func ExampleWithChecks() {
	channel := validate.All(validate.Int(), validate.Between(0, 255))

	rgb, err := rectuple.Define("Rgb", "red green blue",
		rectuple.WithDefaults(0, 0, 0),
		rectuple.WithChecks(map[string]validate.Check{
			"red": channel, "green": channel, "blue": channel,
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	violet := rgb.MustNew(238, 130, 238)

	if err := violet.Set(1, 299); err != nil {
		fmt.Println(err)
	}
	fmt.Println(violet)
	// Output:
	// field "green": must be between 0 and 255 (got int)
	// Rgb(red=238, green=130, blue=238)
}

// ExampleWithValidator demonstrates the coercion path: a validator may
// replace an out-of-range value instead of rejecting it.
func ExampleWithValidator() {
	rgba, err := rectuple.Define("Rgba", "red green blue alpha",
		rectuple.WithDefaults(0, 0, 0, 1.0),
		rectuple.WithValidator(func(i int, value any) (any, error) {
			if i < 3 {
				return value, nil
			}
			if f, ok := value.(float64); ok && f >= 0.0 && f <= 1.0 {
				return f, nil
			}
			return 1.0, nil
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	violet, err := rgba.Make([]any{238, 130, 238}, map[string]any{"alpha": 2.5})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(violet)
	// Output:
	// Rgba(red=238, green=130, blue=238, alpha=1)
}
