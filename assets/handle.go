// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

// Handle is an opaque reference to a requested asset of type T.
type Handle[T any] struct {
	path string
}

// Path returns the full requested path, including any label.
func (h Handle[T]) Path() string {
	return h.path
}

// File returns the file system path of the asset.
func (h Handle[T]) File() string {
	file, _ := SplitLabel(h.path)
	return file
}

// Label returns the sub-content label of the asset, if any.
func (h Handle[T]) Label() string {
	_, label := SplitLabel(h.path)
	return label
}

// IsValid returns whether the handle was returned by [Load].
func (h Handle[T]) IsValid() bool {
	return h.path != ""
}

func (h Handle[T]) String() string {
	return h.path
}
