// Package openapi imports OpenAPI component schemas as record type
// definitions. Object schemas become type specs: required properties map
// to mandatory fields in their declared order, optional properties follow
// sorted by name, each carrying its schema default or the zero value of
// its mapped type so the trailing-defaults rule always holds.
package openapi

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/seyale/rectuple/pkg/typedef"
)

// Importer converts OpenAPI documents into type specs.
type Importer struct {
	// AllowExternalRefs permits resolving $ref targets outside the
	// document itself.
	AllowExternalRefs bool
}

// ImportFile loads and converts an OpenAPI document from disk.
func (imp *Importer) ImportFile(ctx context.Context, path string) ([]typedef.TypeSpec, error) {
	loader := imp.loader(ctx)
	spec, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	return imp.convert(ctx, spec)
}

// ImportData converts an OpenAPI document held in memory (JSON or YAML).
func (imp *Importer) ImportData(ctx context.Context, data []byte) ([]typedef.TypeSpec, error) {
	loader := imp.loader(ctx)
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	return imp.convert(ctx, spec)
}

func (imp *Importer) loader(ctx context.Context) *openapi3.Loader {
	return &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: imp.AllowExternalRefs,
	}
}

func (imp *Importer) convert(ctx context.Context, spec *openapi3.T) ([]typedef.TypeSpec, error) {
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, fmt.Errorf("document has no component schemas")
	}

	names := make([]string, 0, len(spec.Components.Schemas))
	for name := range spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	specs := make([]typedef.TypeSpec, 0, len(names))
	for _, name := range names {
		ref := spec.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		if !isObject(ref.Value) {
			continue
		}
		specs = append(specs, convertObject(name, ref.Value))
	}

	if len(specs) == 0 {
		return nil, fmt.Errorf("document has no object schemas to import")
	}
	return specs, nil
}

// convertObject maps one object schema onto a type spec. Required
// properties keep the schema's required order; optional properties
// follow sorted by name, every one defaulted.
func convertObject(name string, src *openapi3.Schema) typedef.TypeSpec {
	spec := typedef.TypeSpec{
		Name: name,
		Doc:  src.Description,
	}

	required := make(map[string]bool, len(src.Required))
	for _, propName := range src.Required {
		required[propName] = true
	}

	for _, propName := range src.Required {
		prop, ok := src.Properties[propName]
		if !ok || prop == nil || prop.Value == nil {
			continue
		}
		spec.Fields = append(spec.Fields, convertField(propName, prop.Value, false))
	}

	optional := make([]string, 0, len(src.Properties))
	for propName := range src.Properties {
		if !required[propName] {
			optional = append(optional, propName)
		}
	}
	sort.Strings(optional)
	for _, propName := range optional {
		prop := src.Properties[propName]
		if prop == nil || prop.Value == nil {
			continue
		}
		spec.Fields = append(spec.Fields, convertField(propName, prop.Value, true))
	}

	return spec
}

func convertField(name string, src *openapi3.Schema, optional bool) typedef.FieldSpec {
	field := typedef.FieldSpec{
		Name: name,
		Type: mapType(src),
	}

	if len(src.Enum) > 0 {
		field.OneOf = make([]any, len(src.Enum))
		for i, v := range src.Enum {
			field.OneOf[i] = alignNumber(field.Type, v)
		}
	}
	if src.Min != nil {
		v := *src.Min
		field.Min = &v
	}
	if src.Max != nil {
		v := *src.Max
		field.Max = &v
	}
	if src.Pattern != "" {
		field.Pattern = src.Pattern
	}

	// Schema defaults on required properties are ignored: required means
	// the caller supplies the value.
	if optional {
		value := src.Default
		if value == nil {
			value = zeroValue(field.Type)
		}
		value = alignNumber(field.Type, value)
		field.Default = &value
	}

	return field
}

// mapType reduces an OpenAPI schema type to the validate.Parse grammar.
// Nested objects (and anything unrecognized) become any.
func mapType(src *openapi3.Schema) string {
	switch firstType(src.Type) {
	case "string":
		return "string"
	case "integer":
		return "int"
	case "number":
		return "float"
	case "boolean":
		return "bool"
	case "array":
		elem := "any"
		if src.Items != nil && src.Items.Value != nil {
			elem = mapType(src.Items.Value)
		}
		return "[" + elem + "]"
	default:
		return "any"
	}
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	if values := types.Slice(); len(values) > 0 {
		return values[0]
	}
	return ""
}

func isObject(src *openapi3.Schema) bool {
	switch firstType(src.Type) {
	case "object":
		return true
	case "":
		// Schemas that declare properties without an explicit type are
		// treated as objects, which real documents do frequently.
		return len(src.Properties) > 0
	default:
		return false
	}
}

func zeroValue(mapped string) any {
	switch {
	case mapped == "int":
		return 0
	case mapped == "float":
		return 0.0
	case mapped == "string":
		return ""
	case mapped == "bool":
		return false
	case strings.HasPrefix(mapped, "["):
		return []any{}
	default:
		return nil
	}
}

// alignNumber rewrites whole float64 values as int for int fields. JSON
// decoding yields float64 for every number; without this, records built
// from imported specs would hold enum and default values the int type
// check cannot match.
func alignNumber(mapped string, v any) any {
	if mapped != "int" {
		return v
	}
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return int(f)
	}
	return v
}
