// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"

	"cogentcore.org/composer/assets"
	"cogentcore.org/composer/base/errors"
	"cogentcore.org/composer/materials"
)

// SceneRoot is the component of nodes that a model scene was requested under.
type SceneRoot struct {
	Path string
}

// InstanceReady is signaled once the model scene requested under
// Root has been instantiated as its sub-tree.
type InstanceReady struct {
	Root NodeID
}

// instanceRequest is a pending request to instantiate a model scene.
type instanceRequest struct {
	root   NodeID
	handle assets.Handle[*Model]
}

// Instantiate requests that the model scene at the given path
// (with an optional "#label", see [SceneLabel]) be instantiated
// under the given node once it has streamed in. It returns immediately;
// [Graph.Update] does the instancing and signals [InstanceReady].
func (g *Graph) Instantiate(root NodeID, path string) error {
	if err := g.Insert(root, SceneRoot{Path: path}); err != nil {
		return err
	}
	h := assets.Load[*Model](g.Assets, path)
	g.pending = append(g.pending, &instanceRequest{root: root, handle: h})
	return nil
}

// Pending returns the number of instance requests still waiting.
func (g *Graph) Pending() int {
	return len(g.pending)
}

// OnInstanceReady adds a function called when an instance is ready.
func (g *Graph) OnInstanceReady(fn func(g *Graph, ev InstanceReady)) {
	g.onReady = append(g.onReady, fn)
}

// Trigger signals the given event to all [Graph.OnInstanceReady] functions.
func (g *Graph) Trigger(ev InstanceReady) {
	for _, fn := range g.onReady {
		fn(g, ev)
	}
}

// Update instantiates every pending model scene whose model has
// streamed in, signaling [InstanceReady] for each. Requests whose node
// was despawned or whose model failed to load are dropped; the others
// wait for the next call. It never blocks.
func (g *Graph) Update() {
	pending := g.pending
	g.pending = nil
	var keep []*instanceRequest
	for _, req := range pending {
		if !g.Exists(req.root) {
			slog.Debug("scene: dropping instance of despawned node", "node", req.root, "path", req.handle.Path())
			continue
		}
		if g.Assets.State(req.handle.Path()) == assets.Failed {
			continue // reported by the asset server
		}
		model, ok := assets.Get(g.Assets, req.handle)
		if !ok {
			keep = append(keep, req)
			continue
		}
		sc, err := model.Scene(req.handle.Label())
		if err != nil {
			slog.Error(err.Error(), "path", req.handle.Path())
			continue
		}
		g.instance(req.root, sc)
		g.Trigger(InstanceReady{Root: req.root})
	}
	g.pending = append(keep, g.pending...)
}

// instance creates the nodes of the model scene under root.
func (g *Graph) instance(root NodeID, sc *ModelScene) {
	type item struct {
		parent NodeID
		tmpl   *Template
	}
	stack := make([]item, 0, len(sc.Nodes))
	for i := len(sc.Nodes) - 1; i >= 0; i-- {
		stack = append(stack, item{root, sc.Nodes[i]})
	}
	std := materials.For[materials.Standard](g.Materials)
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		id := g.Spawn(it.tmpl.Name)
		errors.Log(g.AddChild(it.parent, id))
		if it.tmpl.Pose != nil {
			ps := *it.tmpl.Pose
			ps.Defaults()
			errors.Log(g.Insert(id, ps))
		}
		if it.tmpl.Mesh != "" {
			mat := materials.NewStandard()
			if it.tmpl.Material != nil {
				mat = *it.tmpl.Material
				mat.Validate()
			}
			errors.Log(g.Insert(id, Mesh{Name: it.tmpl.Mesh}))
			errors.Log(g.Insert(id, materials.Binding[materials.Standard]{Material: std.Add(mat)}))
		}
		for i := len(it.tmpl.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{id, it.tmpl.Children[i]})
		}
	}
}
