// Package typedef loads record type definitions from declarative
// documents and compiles them into usable types.
//
// A document lists one or more types, each with ordered fields. Field
// constraints (type expression, bounds, enumeration, pattern) compile to
// validate checks, and `default` keys bind trailing defaults, so types
// built from files behave exactly like types defined through the API:
//
//	types:
//	  - name: Rgb
//	    fields:
//	      - name: red
//	        type: int
//	        min: 0
//	        max: 255
//	        default: 0
package typedef

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldSpec describes a single field of a type definition.
type FieldSpec struct {
	Name string `yaml:"name" json:"name" mapstructure:"name"`
	// Type is a validate.Parse expression ("int", "float", "string",
	// "bool", "any", "[T]"). Empty means any.
	Type string `yaml:"type,omitempty" json:"type,omitempty" mapstructure:"type"`
	// Min and Max bound numeric fields. With Clamp set, out-of-range
	// values coerce to the nearest bound instead of failing.
	Min   *float64 `yaml:"min,omitempty" json:"min,omitempty" mapstructure:"min"`
	Max   *float64 `yaml:"max,omitempty" json:"max,omitempty" mapstructure:"max"`
	Clamp bool     `yaml:"clamp,omitempty" json:"clamp,omitempty" mapstructure:"clamp"`
	// OneOf restricts the field to an enumeration.
	OneOf []any `yaml:"one_of,omitempty" json:"one_of,omitempty" mapstructure:"one_of"`
	// Pattern restricts string fields to a regular expression.
	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty" mapstructure:"pattern"`
	// Default makes the field optional at construction. Defaults must
	// cover a contiguous block of trailing fields. A literal null is not
	// distinguishable from an absent key; use the API for nil defaults.
	Default *any `yaml:"default,omitempty" json:"default,omitempty" mapstructure:"default"`
}

// TypeSpec describes one record type.
type TypeSpec struct {
	Name   string      `yaml:"name" json:"name" mapstructure:"name"`
	Doc    string      `yaml:"doc,omitempty" json:"doc,omitempty" mapstructure:"doc"`
	Fields []FieldSpec `yaml:"fields" json:"fields" mapstructure:"fields"`
}

// Document is the root of a definition file.
type Document struct {
	Types []TypeSpec `yaml:"types" json:"types"`
}

// Parse reads a definition document from YAML bytes.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse type definitions: %w", err)
	}
	return &doc, nil
}

// Load reads a definition file (YAML or JSON, by extension).
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read type definitions: %w", err)
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext == ".json" {
		// json.Number keeps integer defaults and enum values distinct
		// from floats until NormalizeNumbers rewrites them.
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var doc Document
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		for i := range doc.Types {
			for j := range doc.Types[i].Fields {
				doc.Types[i].Fields[j].NormalizeNumbers()
			}
		}
		return &doc, nil
	}

	return Parse(data)
}

// NormalizeNumbers rewrites json.Number values in the field's default and
// enumeration into int or float64, recursing through containers, so
// file-loaded values match API-supplied ones. Load applies it to every
// JSON-decoded field; adapters that decode front matter themselves should
// do the same.
func (f *FieldSpec) NormalizeNumbers() {
	if f.Default != nil {
		normalized := normalizeValue(*f.Default)
		f.Default = &normalized
	}
	for i, v := range f.OneOf {
		f.OneOf[i] = normalizeValue(v)
	}
}

func normalizeValue(v any) any {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	case []any:
		out := make([]any, len(n))
		for i, item := range n {
			out[i] = normalizeValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, item := range n {
			out[k] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}
