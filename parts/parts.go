// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parts composes scenes from a data-driven registry of parts.
// A [Registry] maps part names to model paths plus optional metadata of
// a caller-defined type. It is populated from a registry file by a
// [ConfigLoader] and queried by name. A [Loader] instantiates a part in
// a [scene.Graph], optionally tagging it so that a [Resolver] extends
// the materials of the whole model once it has streamed in.
package parts

import (
	"fmt"

	"cogentcore.org/composer/materials"
)

// Part is one loadable model, described by its path and optional
// metadata of type M.
type Part[M any] struct {

	// Path is the asset path of the model.
	Path string `json:"path" yaml:"path" toml:"path"`

	// Data is the optional metadata of the part.
	Data *M `json:"data,omitempty" yaml:"data,omitempty" toml:"data,omitempty"`

	name string
}

// Map is the serialized form of a registry: part name to part.
type Map[M any] map[string]*Part[M]

// Name returns the name of the part in its registry.
func (p *Part[M]) Name() string {
	return p.name
}

// HasMetadata returns whether the part has metadata.
func (p *Part[M]) HasMetadata() bool {
	return p.Data != nil
}

// Metadata returns the metadata of the part, and a
// [*MissingMetadataError] if the part has none.
func (p *Part[M]) Metadata() (M, error) {
	if p.Data == nil {
		var zero M
		return zero, &MissingMetadataError{Name: p.name}
	}
	return *p.Data, nil
}

// Load returns a new [Loader] for the model of the part.
func (p *Part[M]) Load() Loader[materials.EmptyExtension] {
	return NewLoader(p.Path)
}

func (p *Part[M]) String() string {
	return fmt.Sprintf("%s (%s)", p.name, p.Path)
}

// NotFoundError is returned when a part is not in a registry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unable to read %s part", e.Name)
}

// MissingMetadataError is returned when metadata is required
// from a part that has none.
type MissingMetadataError struct {
	Name string
}

func (e *MissingMetadataError) Error() string {
	return fmt.Sprintf("part %s has no metadata", e.Name)
}

// EmptyData is the metadata of registries that carry none.
type EmptyData struct{}

// SimpleRegistry is a [Registry] without metadata.
type SimpleRegistry = Registry[EmptyData]
