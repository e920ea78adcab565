// Package describe renders type definitions as markdown documentation.
package describe

import (
	"fmt"
	"strings"

	"github.com/seyale/rectuple/pkg/typedef"
)

// Markdown produces a markdown document for the given type specs. Each
// type becomes a section with its prose doc followed by a field table
// listing position, name, type, constraints and default.
func Markdown(specs []typedef.TypeSpec) string {
	var sb strings.Builder
	for i, spec := range specs {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeType(&sb, spec)
	}
	return sb.String()
}

func writeType(sb *strings.Builder, spec typedef.TypeSpec) {
	sb.WriteString(fmt.Sprintf("# %s\n\n", spec.Name))
	if spec.Doc != "" {
		sb.WriteString(spec.Doc)
		sb.WriteString("\n\n")
	}

	sb.WriteString("| # | Field | Type | Constraints | Default |\n")
	sb.WriteString("|---|-------|------|-------------|---------|\n")
	for i, field := range spec.Fields {
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s |\n",
			i, field.Name, fieldType(field), constraints(field), defaultCell(field)))
	}
}

func fieldType(field typedef.FieldSpec) string {
	if field.Type == "" {
		return "any"
	}
	return field.Type
}

func constraints(field typedef.FieldSpec) string {
	var parts []string

	switch {
	case field.Clamp && field.Min != nil && field.Max != nil:
		parts = append(parts, fmt.Sprintf("clamped to [%v, %v]", *field.Min, *field.Max))
	case field.Min != nil && field.Max != nil:
		parts = append(parts, fmt.Sprintf("between %v and %v", *field.Min, *field.Max))
	case field.Min != nil:
		parts = append(parts, fmt.Sprintf(">= %v", *field.Min))
	case field.Max != nil:
		parts = append(parts, fmt.Sprintf("<= %v", *field.Max))
	}

	if len(field.OneOf) > 0 {
		parts = append(parts, fmt.Sprintf("one of %v", field.OneOf))
	}
	if field.Pattern != "" {
		parts = append(parts, fmt.Sprintf("matches `%s`", field.Pattern))
	}

	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func defaultCell(field typedef.FieldSpec) string {
	if field.Default == nil {
		return "required"
	}
	return formatValue(*field.Default)
}

func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
