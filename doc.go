/*
Package rectuple generates record-like data types at runtime: named, ordered,
mutable field collections with per-field validation, for programs whose shapes
are only known from configuration, schemas, or user input.

It implements an "editable tuple" model: a Type describes the fields once, and
every Record made from it holds exactly one value per field, addressable by
position (negative positions count from the end) or by name.

# Concept

A Type is defined once from a name and an ordered field list, optionally with
trailing defaults and a validator. The Type is immutable and safely shared;
Records are cheap mutable instances. Every value entering a Record, at
construction or through a later set, passes through the validator, which can
reject it or replace it with a normalized value. Construction is atomic: if
any field fails validation, no instance exists.

# Key Features

  - Runtime definition: field layouts come from data, not struct declarations.
  - Dual addressing: positional access with negative-index support, plus
    name-based access over the same slots.
  - Trailing defaults: the last N fields may carry defaults, so zero-argument
    and partial construction work the way configuration records expect.
  - Validation with coercion: validators return the value to store, enabling
    clamping and normalization, not just accept/reject.
  - Definition files: the typedef and adapter packages load the same types
    from YAML documents, front-matter directories, and OpenAPI schemas.

# Usage

Define a type, construct records, and mutate them through the checked
accessors:

	package main

	import (
		"fmt"
		"log"

		"github.com/seyale/rectuple"
		"github.com/seyale/rectuple/pkg/validate"
	)

	func main() {
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

		// Defaults fill unbound fields.
		violet, err := rgb.Make([]any{238}, map[string]any{"blue": 238})
		if err != nil {
			log.Fatal(err)
		}

		if err := violet.SetField("green", 130); err != nil {
			log.Fatal(err)
		}

		fmt.Println(violet) // Rgb(red=238, green=130, blue=238)

		// Out-of-range values are rejected; the record keeps its value.
		if err := violet.Set(1, 299); err != nil {
			fmt.Println("rejected:", err)
		}
	}
*/
package rectuple
