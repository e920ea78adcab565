package loam

// TypeMeta represents the front matter of a type definition document.
// It uses "mapstructure" tags to match standard frontmatter/YAML keys.
// Fields stays raw here; entries are decoded into typedef.FieldSpec when
// the document is read, so constraint keys keep their declared shapes.
type TypeMeta struct {
	Name   string `json:"name" mapstructure:"name"`
	Fields []any  `json:"fields" mapstructure:"fields"`
}
