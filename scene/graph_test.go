// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/composer/base/errors"
	"cogentcore.org/composer/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type health struct{ hp int }

func testGraph(t *testing.T) (*Graph, map[string]NodeID) {
	t.Helper()
	g := NewGraph(nil, nil)
	ids := map[string]NodeID{}
	for _, nm := range []string{"root", "child0", "child1", "subchild1", "subsubchild1", "child2"} {
		ids[nm] = g.Spawn(nm)
	}
	require.NoError(t, g.AddChild(ids["root"], ids["child0"]))
	require.NoError(t, g.AddChild(ids["root"], ids["child1"]))
	require.NoError(t, g.AddChild(ids["child1"], ids["subchild1"]))
	require.NoError(t, g.AddChild(ids["subchild1"], ids["subsubchild1"]))
	require.NoError(t, g.AddChild(ids["root"], ids["child2"]))
	return g, ids
}

func TestWalkDown(t *testing.T) {
	g, ids := testGraph(t)
	var res []string
	g.WalkDown(ids["root"], func(id NodeID) bool {
		res = append(res, g.Path(id))
		return Continue
	})
	assert.Equal(t, []string{"/root", "/root/child0", "/root/child1", "/root/child1/subchild1", "/root/child1/subchild1/subsubchild1", "/root/child2"}, res)

	res = nil
	g.WalkDown(ids["root"], func(id NodeID) bool {
		res = append(res, g.Name(id))
		return g.Name(id) != "child1"
	})
	assert.Equal(t, []string{"root", "child0", "child1", "child2"}, res)

	res = nil
	g.WalkDown(NodeID(999), func(id NodeID) bool {
		res = append(res, g.Name(id))
		return Continue
	})
	assert.Empty(t, res)
}

func TestWalkDownDeep(t *testing.T) {
	g := NewGraph(nil, nil)
	root := g.Spawn("root")
	cur := root
	for range 20000 {
		kid := g.Spawn()
		require.NoError(t, g.AddChild(cur, kid))
		cur = kid
	}
	n := 0
	g.WalkDown(root, func(id NodeID) bool {
		n++
		return Continue
	})
	assert.Equal(t, 20001, n)
}

func TestHierarchy(t *testing.T) {
	g, ids := testGraph(t)
	assert.Equal(t, []NodeID{ids["child0"], ids["child1"], ids["child2"]}, g.Children(ids["root"]))
	assert.Empty(t, g.Children(ids["child0"]))
	assert.Nil(t, g.Children(NodeID(999)))
	assert.Equal(t, []NodeID{ids["root"]}, g.Roots())

	p, ok := g.Parent(ids["subchild1"])
	assert.True(t, ok)
	assert.Equal(t, ids["child1"], p)
	_, ok = g.Parent(ids["root"])
	assert.False(t, ok)

	// reparent
	require.NoError(t, g.AddChild(ids["child0"], ids["subchild1"]))
	assert.Empty(t, g.Children(ids["child1"]))
	assert.Equal(t, "/root/child0/subchild1/subsubchild1", g.Path(ids["subsubchild1"]))

	err := g.AddChild(ids["subsubchild1"], ids["root"])
	assert.Error(t, err, "cycles are rejected")
	assert.Error(t, g.AddChild(ids["child2"], ids["child2"]), "a leaf is not its own child")
	assert.Equal(t, []NodeID{ids["child0"], ids["child1"], ids["child2"]}, g.Children(ids["root"]))
	err = g.AddChild(NodeID(999), ids["root"])
	assert.True(t, errors.Is(err, ErrNoNode))

	g.Despawn(ids["child0"])
	assert.False(t, g.Exists(ids["child0"]))
	assert.False(t, g.Exists(ids["subchild1"]))
	assert.False(t, g.Exists(ids["subsubchild1"]))
	assert.Equal(t, []NodeID{ids["child1"], ids["child2"]}, g.Children(ids["root"]))
	assert.Equal(t, 3, g.Len())
	g.Despawn(ids["child0"])
}

func TestComponents(t *testing.T) {
	g := NewGraph(nil, nil)
	id := g.Spawn("n")
	require.NoError(t, g.Insert(id, health{hp: 3}))
	require.NoError(t, g.Insert(id, Mesh{Name: "cube"}))
	h, ok := Get[health](g, id)
	assert.True(t, ok)
	assert.Equal(t, 3, h.hp)
	assert.True(t, Has[Mesh](g, id))
	assert.Len(t, g.Components(id), 2)

	require.NoError(t, g.Insert(id, health{hp: 4}))
	h, _ = Get[health](g, id)
	assert.Equal(t, 4, h.hp)

	assert.True(t, Remove[health](g, id))
	assert.False(t, Remove[health](g, id))
	assert.False(t, Has[health](g, id))
	assert.False(t, Remove[health](g, NodeID(999)))
	_, ok = Get[Mesh](g, NodeID(999))
	assert.False(t, ok)
	assert.True(t, errors.Is(g.Insert(NodeID(999), Mesh{}), ErrNoNode))
	assert.True(t, errors.Is(g.SetName(NodeID(999), "x"), ErrNoNode))
}

func TestWorldPose(t *testing.T) {
	g := NewGraph(nil, nil)
	parent := g.Spawn("parent")
	child := g.Spawn("child")
	require.NoError(t, g.AddChild(parent, child))
	require.NoError(t, g.Insert(parent, math32.NewPose(1, 0, 0)))
	require.NoError(t, g.Insert(child, math32.NewPose(0, 2, 0)))
	assert.Equal(t, math32.Vec3(1, 2, 0), g.WorldPose(child).Pos)
	assert.Equal(t, math32.Vec3(1, 1, 1), g.Pose(g.Spawn()).Scale)
}
