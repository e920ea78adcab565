package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/seyale/rectuple/internal/describe"
	"github.com/seyale/rectuple/internal/tui"
)

var describeCmd = &cobra.Command{
	Use:   "describe <path>",
	Short: "Show type definitions as formatted documentation",
	Long: `Loads type definitions from a document or directory and renders each
type with its field table, constraints and defaults.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		typeName, _ := cmd.Flags().GetString("type")
		if err := runDescribe(args[0], typeName); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().StringP("type", "t", "", "Describe a single type by name")
}

func runDescribe(path, typeName string) error {
	specs, err := loadSpecs(context.Background(), path)
	if err != nil {
		return err
	}

	if typeName != "" {
		kept := specs[:0]
		for _, spec := range specs {
			if spec.Name == typeName {
				kept = append(kept, spec)
			}
		}
		if len(kept) == 0 {
			return fmt.Errorf("type not found: %s", typeName)
		}
		specs = kept
	}

	markdown := describe.Markdown(specs)

	// Styled output only on an interactive terminal; piped output stays
	// plain markdown.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		render := tui.NewRenderer()
		if out, err := render(markdown); err == nil {
			fmt.Print(out)
			return nil
		}
	}

	fmt.Print(markdown)
	return nil
}
