package main

import (
	"context"
	"fmt"
	"os"

	loamAdapter "github.com/seyale/rectuple/pkg/adapters/loam"
	"github.com/seyale/rectuple/pkg/registry"
	"github.com/seyale/rectuple/pkg/typedef"
)

// loadSpecs reads type definitions from a single document, or from a
// loam repository of per-type documents when path is a directory.
func loadSpecs(ctx context.Context, path string) ([]typedef.TypeSpec, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	if info.IsDir() {
		loader, err := loamAdapter.Open(path)
		if err != nil {
			return nil, err
		}
		return loader.List(ctx)
	}

	doc, err := typedef.Load(path)
	if err != nil {
		return nil, err
	}
	return doc.Types, nil
}

// buildRegistry compiles every spec and registers the resulting types,
// so duplicate names across documents surface as errors.
func buildRegistry(specs []typedef.TypeSpec) (*registry.Registry, error) {
	reg := registry.New()
	for _, spec := range specs {
		rt, err := spec.Build()
		if err != nil {
			return nil, err
		}
		if err := reg.Register(rt); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
