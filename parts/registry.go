// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parts

import (
	"iter"
	"maps"
	"slices"
	"sync/atomic"

	"cogentcore.org/composer/base/errors"
)

// Registry is the set of parts available to an application, with
// metadata of type M. It is empty until it is replaced wholesale by a
// completed load. It is safe for concurrent readers: each read sees
// either the previous or the new set of parts, never a mix.
type Registry[M any] struct {
	parts atomic.Pointer[Map[M]]
}

// NewRegistry returns a new empty [Registry].
func NewRegistry[M any]() *Registry[M] {
	return &Registry[M]{}
}

// snapshot returns the current parts, which must not be modified.
func (r *Registry[M]) snapshot() Map[M] {
	if m := r.parts.Load(); m != nil {
		return *m
	}
	return nil
}

// Part returns a copy of the part with the given name, and a
// [*NotFoundError] if there is none. Changing the copy does not
// change the registry; its metadata is shared and must not be modified.
func (r *Registry[M]) Part(name string) (*Part[M], error) {
	p, ok := r.snapshot()[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	cp := *p
	return &cp, nil
}

// MustPart returns the part with the given name, panicking if there is none.
func (r *Registry[M]) MustPart(name string) *Part[M] {
	p, err := r.Part(name)
	errors.Must(err)
	return p
}

// Contains returns whether the registry has a part with the given name.
func (r *Registry[M]) Contains(name string) bool {
	_, ok := r.snapshot()[name]
	return ok
}

// Len returns the number of parts.
func (r *Registry[M]) Len() int {
	return len(r.snapshot())
}

// Names returns the sorted names of all parts.
func (r *Registry[M]) Names() []string {
	return slices.Sorted(maps.Keys(r.snapshot()))
}

// All returns an iterator over copies of all parts by name, in sorted
// name order. It iterates over a single snapshot of the registry.
func (r *Registry[M]) All() iter.Seq2[string, *Part[M]] {
	m := r.snapshot()
	return func(yield func(string, *Part[M]) bool) {
		for _, name := range slices.Sorted(maps.Keys(m)) {
			cp := *m[name]
			if !yield(name, &cp) {
				return
			}
		}
	}
}

// replace installs the given parts, replacing all current ones.
// Null entries are dropped. The given map and parts are not retained.
func (r *Registry[M]) replace(m Map[M]) {
	nm := make(Map[M], len(m))
	for name, p := range m {
		if p == nil {
			continue
		}
		cp := *p
		cp.name = name
		nm[name] = &cp
	}
	r.parts.Store(&nm)
}
