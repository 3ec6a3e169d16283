// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package materials

import (
	"fmt"
	"iter"
	"reflect"
	"sync"
)

// Handle is a reference to a material of type T held in [Assets].
// The zero Handle is invalid.
type Handle[T any] struct {
	id uint32
}

// IsValid returns whether the handle was returned by [Assets.Add].
func (h Handle[T]) IsValid() bool {
	return h.id != 0
}

// ID returns the numeric id of the handle, unique within its [Assets].
func (h Handle[T]) ID() uint32 {
	return h.id
}

func (h Handle[T]) String() string {
	var zero T
	return fmt.Sprintf("%T#%d", zero, h.id)
}

// Assets stores materials of one type, addressed by [Handle].
// It is safe for concurrent use.
type Assets[T any] struct {
	mu     sync.RWMutex
	items  map[uint32]T
	nextID uint32
}

// NewAssets returns a new empty [Assets].
func NewAssets[T any]() *Assets[T] {
	return &Assets[T]{items: make(map[uint32]T)}
}

// Add adds the given material and returns a handle to it.
// Registration always succeeds.
func (as *Assets[T]) Add(mat T) Handle[T] {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.nextID++
	as.items[as.nextID] = mat
	return Handle[T]{id: as.nextID}
}

// Get returns a pointer to the material for the given handle,
// and false if there is no such material.
// The pointer refers to a copy; use [Assets.Set] to update.
func (as *Assets[T]) Get(h Handle[T]) (*T, bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	mat, ok := as.items[h.id]
	if !ok {
		return nil, false
	}
	return &mat, true
}

// Set replaces the material for the given handle, returning false
// if the handle is not present.
func (as *Assets[T]) Set(h Handle[T], mat T) bool {
	as.mu.Lock()
	defer as.mu.Unlock()
	if _, ok := as.items[h.id]; !ok {
		return false
	}
	as.items[h.id] = mat
	return true
}

// Remove removes and returns the material for the given handle.
func (as *Assets[T]) Remove(h Handle[T]) (T, bool) {
	as.mu.Lock()
	defer as.mu.Unlock()
	mat, ok := as.items[h.id]
	delete(as.items, h.id)
	return mat, ok
}

// Len returns the number of stored materials.
func (as *Assets[T]) Len() int {
	as.mu.RLock()
	defer as.mu.RUnlock()
	return len(as.items)
}

// All iterates over a snapshot of all stored materials.
func (as *Assets[T]) All() iter.Seq2[Handle[T], T] {
	as.mu.RLock()
	snap := make(map[uint32]T, len(as.items))
	for id, mat := range as.items {
		snap[id] = mat
	}
	as.mu.RUnlock()
	return func(yield func(Handle[T], T) bool) {
		for id, mat := range snap {
			if !yield(Handle[T]{id: id}, mat) {
				return
			}
		}
	}
}

// Store holds one [Assets] per material type.
type Store struct {
	mu     sync.Mutex
	assets map[reflect.Type]any
}

// NewStore returns a new empty [Store].
func NewStore() *Store {
	return &Store{assets: make(map[reflect.Type]any)}
}

// For returns the [Assets] for material type T in the given store,
// making it if it does not exist yet.
func For[T any](st *Store) *Assets[T] {
	st.mu.Lock()
	defer st.mu.Unlock()
	typ := reflect.TypeFor[T]()
	if as, ok := st.assets[typ]; ok {
		return as.(*Assets[T])
	}
	as := NewAssets[T]()
	st.assets[typ] = as
	return as
}

// Binding binds a mesh to a material of type T.
// It is stored as a component on scene nodes.
type Binding[T any] struct {
	Material Handle[T]
}
