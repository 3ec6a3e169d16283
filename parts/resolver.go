// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parts

import (
	"log/slog"

	"cogentcore.org/composer/base/errors"
	"cogentcore.org/composer/materials"
	"cogentcore.org/composer/scene"
)

// MaterialExtensionTag is the component of a model node whose
// materials are to be extended with Extension once it is ready.
type MaterialExtensionTag[X materials.Extension] struct {
	Extension X
}

// Resolver extends the materials of models tagged with a
// [MaterialExtensionTag] of type X when they become ready.
type Resolver[X materials.Extension] struct {

	// Rebound is the total number of mesh nodes rebound so far.
	Rebound int
}

// RegisterMaterialExtension adds a [Resolver] for extensions of type X
// to the graph and returns it. Each extension type needs its own.
func RegisterMaterialExtension[X materials.Extension](g *scene.Graph) *Resolver[X] {
	rs := &Resolver[X]{}
	g.OnInstanceReady(func(g *scene.Graph, ev scene.InstanceReady) {
		rs.Rebound += rs.Resolve(g, ev.Root)
	})
	return rs
}

// Resolve extends the materials below the given root if it has a
// [MaterialExtensionTag] of type X, returning the number of mesh nodes
// rebound. The tag is removed first, so a second call does nothing.
// Every mesh node bound to a [materials.Standard] is rebound to a new
// [materials.Extended] with a copy of its base material; other nodes
// are left as they are, but their children are still visited.
func (rs *Resolver[X]) Resolve(g *scene.Graph, root scene.NodeID) int {
	tag, ok := scene.Get[MaterialExtensionTag[X]](g, root)
	if !ok {
		return 0
	}
	scene.Remove[MaterialExtensionTag[X]](g, root)
	base := materials.For[materials.Standard](g.Materials)
	ext := materials.For[materials.Extended[X]](g.Materials)
	n := 0
	g.WalkDown(root, func(id scene.NodeID) bool {
		bind, ok := scene.Get[materials.Binding[materials.Standard]](g, id)
		if !ok || !scene.Has[scene.Mesh](g, id) {
			return scene.Continue
		}
		mat, ok := base.Get(bind.Material)
		if !ok {
			return scene.Continue
		}
		em, err := materials.Extend(mat, tag.Extension)
		if errors.Log(err) != nil {
			return scene.Continue
		}
		scene.Remove[materials.Binding[materials.Standard]](g, id)
		errors.Log(g.Insert(id, materials.Binding[materials.Extended[X]]{Material: ext.Add(em)}))
		n++
		return scene.Continue
	})
	slog.Debug("parts: materials extended", "root", root, "nodes", n)
	return n
}
