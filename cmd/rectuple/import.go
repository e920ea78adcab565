package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/seyale/rectuple/pkg/adapters/openapi"
	"github.com/seyale/rectuple/pkg/typedef"
)

var importCmd = &cobra.Command{
	Use:   "import <openapi-file>",
	Short: "Import OpenAPI component schemas as type definitions",
	Long: `Reads an OpenAPI document and converts its object schemas into a type
definition document. Required properties become mandatory fields; optional
properties follow with their schema default or a zero value.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		resolveRefs, _ := cmd.Flags().GetBool("resolve-refs")
		if err := runImport(args[0], output, resolveRefs); err != nil {
			fmt.Printf("Import failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("output", "o", "", "Write the definition document to a file instead of stdout")
	importCmd.Flags().Bool("resolve-refs", false, "Allow resolving external $ref targets")
}

func runImport(path, output string, resolveRefs bool) error {
	imp := &openapi.Importer{AllowExternalRefs: resolveRefs}
	specs, err := imp.ImportFile(context.Background(), path)
	if err != nil {
		return err
	}

	doc := typedef.Document{Types: specs}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to encode definitions: %w", err)
	}

	if output == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Printf("Wrote %d type(s) to %s\n", len(specs), output)
	return nil
}
