// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides an in-memory scene graph runtime: nodes with
// stable ids arranged in a parent / child hierarchy, typed components
// stored on nodes, and instancing of streamed [Model] templates with
// an [InstanceReady] signal once a requested sub-tree has materialized.
//
// A Graph is driven by a single goroutine (the tick loop) and is not
// safe for concurrent use.
package scene

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"cogentcore.org/composer/assets"
	"cogentcore.org/composer/base/errors"
	"cogentcore.org/composer/materials"
)

// NodeID is a stable handle for a node in a [Graph].
// The zero NodeID is never a valid node.
type NodeID uint64

func (id NodeID) String() string {
	return fmt.Sprintf("#%d", uint64(id))
}

// ErrNoNode is returned for operations on nodes that do not exist.
var ErrNoNode = errors.New("scene: no such node")

// node is the storage for one node.
type node struct {
	name     string
	parent   NodeID
	children []NodeID
	comps    map[reflect.Type]any
}

// Graph is a scene graph of nodes with components.
type Graph struct {

	// Assets is the server that model templates are streamed from.
	Assets *assets.Server

	// Materials is the storage for materials bound to meshes.
	Materials *materials.Store

	nodes   map[NodeID]*node
	lastID  NodeID
	pending []*instanceRequest
	onReady []func(g *Graph, ev InstanceReady)
}

// NewGraph returns a new empty graph instancing models from srv
// and registering their materials in store.
func NewGraph(srv *assets.Server, store *materials.Store) *Graph {
	return &Graph{
		Assets:    srv,
		Materials: store,
		nodes:     make(map[NodeID]*node),
	}
}

// Spawn creates a new top-level node with the given optional name
// and returns its id.
func (g *Graph) Spawn(name ...string) NodeID {
	g.lastID++
	nd := &node{comps: make(map[reflect.Type]any)}
	if len(name) > 0 {
		nd.name = name[0]
	}
	g.nodes[g.lastID] = nd
	return g.lastID
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Exists returns whether the given node exists.
func (g *Graph) Exists(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Name returns the name of the given node.
func (g *Graph) Name(id NodeID) string {
	if nd, ok := g.nodes[id]; ok {
		return nd.name
	}
	return ""
}

// SetName sets the name of the given node.
func (g *Graph) SetName(id NodeID, name string) error {
	nd, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("SetName %v: %w", id, ErrNoNode)
	}
	nd.name = name
	return nil
}

// Parent returns the parent of the given node, and false if it
// is a top-level node or does not exist.
func (g *Graph) Parent(id NodeID) (NodeID, bool) {
	nd, ok := g.nodes[id]
	if !ok || nd.parent == 0 {
		return 0, false
	}
	return nd.parent, true
}

// Children returns a copy of the children of the given node,
// which is empty for leaves and for nodes that do not exist.
func (g *Graph) Children(id NodeID) []NodeID {
	nd, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return slices.Clone(nd.children)
}

// Roots returns the top-level nodes, in creation order.
func (g *Graph) Roots() []NodeID {
	var roots []NodeID
	for id, nd := range g.nodes {
		if nd.parent == 0 {
			roots = append(roots, id)
		}
	}
	slices.Sort(roots)
	return roots
}

// AddChild makes child the last child of parent, removing it
// from any previous parent. It keeps the child's local pose.
func (g *Graph) AddChild(parent, child NodeID) error {
	pn, ok := g.nodes[parent]
	if !ok {
		return fmt.Errorf("AddChild parent %v: %w", parent, ErrNoNode)
	}
	cn, ok := g.nodes[child]
	if !ok {
		return fmt.Errorf("AddChild child %v: %w", child, ErrNoNode)
	}
	if parent == child {
		return fmt.Errorf("AddChild: %v cannot be its own child", child)
	}
	// a node without children is no ancestor of another node
	if len(cn.children) > 0 {
		for p := pn.parent; p != 0; p = g.nodes[p].parent {
			if p == child {
				return fmt.Errorf("AddChild: %v is an ancestor of %v", child, parent)
			}
		}
	}
	g.detach(child, cn)
	cn.parent = parent
	pn.children = append(pn.children, child)
	return nil
}

// detach removes the node from its parent's children.
func (g *Graph) detach(id NodeID, nd *node) {
	if nd.parent == 0 {
		return
	}
	if pn, ok := g.nodes[nd.parent]; ok {
		pn.children = slices.DeleteFunc(pn.children, func(c NodeID) bool { return c == id })
	}
	nd.parent = 0
}

// Despawn removes the given node and its entire sub-tree.
func (g *Graph) Despawn(id NodeID) {
	nd, ok := g.nodes[id]
	if !ok {
		return
	}
	g.detach(id, nd)
	g.WalkDown(id, func(n NodeID) bool {
		delete(g.nodes, n)
		return Continue
	})
}

// Insert stores the given component on the node, replacing any
// component of the same type.
func (g *Graph) Insert(id NodeID, comp any) error {
	nd, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("Insert %T on %v: %w", comp, id, ErrNoNode)
	}
	nd.comps[reflect.TypeOf(comp)] = comp
	return nil
}

// Components returns the components of the given node, sorted by type name.
func (g *Graph) Components(id NodeID) []any {
	nd, ok := g.nodes[id]
	if !ok {
		return nil
	}
	comps := make([]any, 0, len(nd.comps))
	for _, c := range nd.comps {
		comps = append(comps, c)
	}
	slices.SortFunc(comps, func(a, b any) int {
		return cmp.Compare(fmt.Sprintf("%T", a), fmt.Sprintf("%T", b))
	})
	return comps
}

// Get returns the component of type T on the given node,
// and false if the node does not exist or has no such component.
func Get[T any](g *Graph, id NodeID) (T, bool) {
	var zero T
	nd, ok := g.nodes[id]
	if !ok {
		return zero, false
	}
	c, ok := nd.comps[reflect.TypeFor[T]()]
	if !ok {
		return zero, false
	}
	return c.(T), true
}

// Has returns whether the given node has a component of type T.
func Has[T any](g *Graph, id NodeID) bool {
	_, ok := Get[T](g, id)
	return ok
}

// Remove removes the component of type T from the given node,
// returning whether there was one. Removing a missing component
// is not an error.
func Remove[T any](g *Graph, id NodeID) bool {
	nd, ok := g.nodes[id]
	if !ok {
		return false
	}
	typ := reflect.TypeFor[T]()
	if _, ok := nd.comps[typ]; !ok {
		return false
	}
	delete(nd.comps, typ)
	return true
}
