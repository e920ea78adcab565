// Package loam adapts directories of definition documents, managed by the
// Loam library, into record type definitions. One document describes one
// type: the front matter carries the name and fields, and the markdown
// body becomes the type's prose documentation.
package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/loam"
	"github.com/mitchellh/mapstructure"

	"github.com/seyale/rectuple/pkg/typedef"
)

// Loader reads type definitions from a Loam repository.
type Loader struct {
	Repo *loam.TypedRepository[TypeMeta]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[TypeMeta]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository rooted at dir.
// Strict mode keeps numeric front-matter values consistent across the
// JSON and Markdown/YAML adapters; values are normalized on read.
func Open(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return New(loam.NewTypedRepository[TypeMeta](repo)), nil
}

// List returns the type specs of every document in the repository, in
// repository order. Type names must be unique across documents.
func (l *Loader) List(ctx context.Context) ([]typedef.TypeSpec, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	specs := make([]typedef.TypeSpec, 0, len(docs))

	for _, doc := range docs {
		spec, err := buildSpec(doc.ID, doc.Data, doc.Content)
		if err != nil {
			return nil, err
		}

		// Collision Detection
		if existingPath, ok := seen[spec.Name]; ok {
			return nil, fmt.Errorf("collision detected: type '%s' is defined in both '%s' and '%s'", spec.Name, existingPath, doc.ID)
		}
		seen[spec.Name] = doc.ID
		specs = append(specs, spec)
	}
	return specs, nil
}

// Get returns the spec of one type by its type name (which may differ
// from the document's filename).
func (l *Loader) Get(ctx context.Context, name string) (typedef.TypeSpec, error) {
	specs, err := l.List(ctx)
	if err != nil {
		return typedef.TypeSpec{}, err
	}
	for _, spec := range specs {
		if spec.Name == name {
			return spec, nil
		}
	}
	return typedef.TypeSpec{}, fmt.Errorf("type not found: %s", name)
}

// buildSpec converts one document into a type spec. The front-matter
// name falls back to the document's filename ID, extension stripped.
func buildSpec(docID string, meta TypeMeta, content string) (typedef.TypeSpec, error) {
	name := meta.Name
	if name == "" {
		name = trimExtension(docID)
	}

	spec := typedef.TypeSpec{
		Name: name,
		Doc:  strings.TrimSpace(content),
	}

	for i, raw := range meta.Fields {
		field, err := decodeField(raw)
		if err != nil {
			return typedef.TypeSpec{}, fmt.Errorf("%s: failed to decode field %d: %w", name, i, err)
		}
		spec.Fields = append(spec.Fields, field)
	}

	return spec, nil
}

// decodeField maps one raw front-matter entry onto a field spec. Weak
// typing absorbs the json.Number values that strict Loam mode produces
// for the float bounds; enum and default values are normalized after.
func decodeField(raw any) (typedef.FieldSpec, error) {
	var field typedef.FieldSpec

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &field,
	})
	if err != nil {
		return field, err
	}
	if err := dec.Decode(raw); err != nil {
		return field, err
	}

	field.NormalizeNumbers()
	return field, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
