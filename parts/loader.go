// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parts

import (
	"log/slog"
	"path"

	"cogentcore.org/composer/base/errors"
	"cogentcore.org/composer/materials"
	"cogentcore.org/composer/math32"
	"cogentcore.org/composer/scene"
)

// Loader configures the instantiation of one model in a [scene.Graph].
// It is a value: every method returns a new Loader with the added
// configuration and leaves the receiver unchanged. X is the type
// of the material extension applied to the model, if any; see
// [ExtendMaterial] and [WithMaterialType] for changing it.
type Loader[X materials.Extension] struct {
	path string

	target    scene.NodeID
	hasTarget bool

	offset    math32.Pose
	hasOffset bool

	label string

	ext    X
	hasExt bool
}

// NewLoader returns a new [Loader] for the model at the given path,
// instantiated as a new top-level node with the primary scene of the
// model and no material extension.
func NewLoader(path string) Loader[materials.EmptyExtension] {
	return Loader[materials.EmptyExtension]{path: path}
}

// On returns a loader that creates the model node as a child of the given node.
func (l Loader[X]) On(node scene.NodeID) Loader[X] {
	l.target = node
	l.hasTarget = true
	return l
}

// Offset returns a loader that sets the given pose on the model node.
func (l Loader[X]) Offset(pose math32.Pose) Loader[X] {
	l.offset = pose
	l.hasOffset = true
	return l
}

// Label returns a loader that instantiates the scene of the model with
// the given label (a name, or [scene.SceneLabel] of an index) instead
// of the primary one.
func (l Loader[X]) Label(label string) Loader[X] {
	l.label = label
	return l
}

// Path returns the model path.
func (l Loader[X]) Path() string {
	return l.path
}

// Target returns the node the model is created under, if any.
func (l Loader[X]) Target() (scene.NodeID, bool) {
	return l.target, l.hasTarget
}

// Pose returns the offset of the model node, if any.
func (l Loader[X]) Pose() (math32.Pose, bool) {
	return l.offset, l.hasOffset
}

// Extension returns the material extension, if any.
func (l Loader[X]) Extension() (X, bool) {
	return l.ext, l.hasExt
}

// AssetPath returns the asset path requested by [Loader.Build],
// which includes the scene label.
func (l Loader[X]) AssetPath() string {
	label := l.label
	if label == "" {
		label = scene.DefaultLabel
	}
	return l.path + "#" + label
}

// WithMaterialType returns a loader for material extensions of type Y
// without setting one; any extension already set is dropped.
func WithMaterialType[Y materials.Extension, X materials.Extension](l Loader[X]) Loader[Y] {
	return Loader[Y]{
		path:      l.path,
		target:    l.target,
		hasTarget: l.hasTarget,
		offset:    l.offset,
		hasOffset: l.hasOffset,
		label:     l.label,
	}
}

// ExtendMaterial returns a loader that extends every material of the
// model with the given extension once the model is ready. This requires
// a [Resolver] for Y, see [RegisterMaterialExtension].
func ExtendMaterial[X, Y materials.Extension](l Loader[X], ext Y) Loader[Y] {
	nl := WithMaterialType[Y](l)
	nl.ext = ext
	nl.hasExt = true
	return nl
}

// Build spawns the model node, attaching it under the target node if
// one is set, and requests the instantiation of the model under it. If
// a material extension is set, the node is tagged with it. It returns
// the new node. Loading failures are reported by the asset server.
func (l Loader[X]) Build(g *scene.Graph) scene.NodeID {
	id := g.Spawn(path.Base(l.path))
	if l.hasTarget {
		if err := g.AddChild(l.target, id); err != nil {
			slog.Error("parts: cannot attach model", "path", l.path, "node", l.target, "err", err)
		}
	}
	if l.hasOffset {
		errors.Log(g.Insert(id, l.offset))
	}
	errors.Log(g.Instantiate(id, l.AssetPath()))
	if l.hasExt {
		errors.Log(g.Insert(id, MaterialExtensionTag[X]{Extension: l.ext}))
	}
	slog.Debug("parts: model requested", "path", l.AssetPath(), "node", id)
	return id
}
