package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var newCmd = &cobra.Command{
	Use:   "new <path> <type> [values...]",
	Short: "Construct a record instance from the command line",
	Long: `Builds the named type from its definitions and constructs one record.
Bare arguments bind positionally, name=value arguments bind by field name.
Values parse as YAML scalars, so 42, 0.5, true and quoted strings all work.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runNew(args); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}

func runNew(args []string) error {
	specs, err := loadSpecs(context.Background(), args[0])
	if err != nil {
		return err
	}

	reg, err := buildRegistry(specs)
	if err != nil {
		return err
	}

	rt, err := reg.Lookup(args[1])
	if err != nil {
		return err
	}

	var positional []any
	named := make(map[string]any)
	for _, arg := range args[2:] {
		name, raw, isNamed := splitAssignment(arg)
		value, err := parseScalar(raw)
		if err != nil {
			return fmt.Errorf("cannot parse %q: %w", arg, err)
		}
		if isNamed {
			named[name] = value
		} else {
			positional = append(positional, value)
		}
	}

	rec, err := rt.Make(positional, named)
	if err != nil {
		return err
	}

	fmt.Println(rec)
	return nil
}

// splitAssignment splits a name=value argument. Anything without '=' up
// front stays positional.
func splitAssignment(arg string) (name, value string, ok bool) {
	i := strings.Index(arg, "=")
	if i <= 0 {
		return "", arg, false
	}
	return arg[:i], arg[i+1:], true
}

// parseScalar interprets a command line value as a YAML scalar, which
// covers numbers, booleans, null, quoted strings and inline lists.
func parseScalar(raw string) (any, error) {
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return nil, err
	}
	return value, nil
}
