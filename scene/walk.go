// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/composer/math32"

const (
	// Continue = true can be returned from walk functions to continue into children.
	Continue = true

	// Break = false can be returned from walk functions to skip the children of a node.
	Break = false
)

// WalkDown calls the given function on the node and all of its
// descendants in a depth-first manner. It stops descending below a node
// if the function returns [Break]. It is non-recursive, so depth is not
// limited by the goroutine stack. Nodes removed during the walk are
// skipped rather than treated as an error.
func (g *Graph) WalkDown(root NodeID, fun func(id NodeID) bool) {
	stack := []NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd, ok := g.nodes[id]
		if !ok {
			continue
		}
		kids := nd.children
		if !fun(id) {
			continue
		}
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
}

// Pose returns the local pose of the node, which is the identity
// pose if none has been set.
func (g *Graph) Pose(id NodeID) math32.Pose {
	ps, _ := Get[math32.Pose](g, id)
	ps.Defaults()
	return ps
}

// WorldPose returns the pose of the node relative to the top of the graph.
func (g *Graph) WorldPose(id NodeID) math32.Pose {
	ps := g.Pose(id)
	for p, ok := g.Parent(id); ok; p, ok = g.Parent(p) {
		ps = g.Pose(p).Mul(ps)
	}
	return ps
}

// Path returns the slash-separated names from the top of the graph to the node.
func (g *Graph) Path(id NodeID) string {
	path := "/" + g.Name(id)
	for p, ok := g.Parent(id); ok; p, ok = g.Parent(p) {
		path = "/" + g.Name(p) + path
	}
	return path
}
