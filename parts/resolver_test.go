// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parts

import (
	"testing"
	"testing/fstest"

	"cogentcore.org/composer/app"
	"cogentcore.org/composer/assets"
	"cogentcore.org/composer/materials"
	"cogentcore.org/composer/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseMaterials returns the base materials of all mesh nodes below root.
func baseMaterials(g *scene.Graph, root scene.NodeID) map[scene.NodeID]materials.Standard {
	std := materials.For[materials.Standard](g.Materials)
	mats := map[scene.NodeID]materials.Standard{}
	g.WalkDown(root, func(id scene.NodeID) bool {
		if bind, ok := scene.Get[materials.Binding[materials.Standard]](g, id); ok {
			mat, _ := std.Get(bind.Material)
			mats[id] = *mat
		}
		return scene.Continue
	})
	return mats
}

func TestResolverScenario(t *testing.T) {
	reg := loadRegistry(t, "parts.json", ".json")
	a := newTestApp(t)
	g := a.Scene

	var before map[scene.NodeID]materials.Standard
	g.OnInstanceReady(func(g *scene.Graph, ev scene.InstanceReady) {
		before = baseMaterials(g, ev.Root)
	})
	rs := RegisterMaterialExtension[toon](g)
	other := RegisterMaterialExtension[outline](g)

	lamp := reg.MustPart("Lamp")
	id := ExtendMaterial(lamp.Load(), toon{Steps: 6}).Build(g)
	require.NoError(t, a.Assets.Wait())
	a.Tick()

	require.Len(t, before, 3)
	assert.Equal(t, 3, rs.Rebound)
	assert.Equal(t, 0, other.Rebound)
	assert.False(t, scene.Has[MaterialExtensionTag[toon]](g, id))

	ext := materials.For[materials.Extended[toon]](g.Materials)
	assert.Equal(t, 3, ext.Len())
	meshes := 0
	g.WalkDown(id, func(nid scene.NodeID) bool {
		if !scene.Has[scene.Mesh](g, nid) {
			assert.False(t, scene.Has[materials.Binding[materials.Extended[toon]]](g, nid))
			return scene.Continue
		}
		meshes++
		assert.False(t, scene.Has[materials.Binding[materials.Standard]](g, nid))
		bind, ok := scene.Get[materials.Binding[materials.Extended[toon]]](g, nid)
		require.True(t, ok)
		mat, ok := ext.Get(bind.Material)
		require.True(t, ok)
		assert.Equal(t, toon{Steps: 6}, mat.Extension)
		assert.Equal(t, before[nid], mat.Base)
		return scene.Continue
	})
	assert.Equal(t, 3, meshes)

	bulb := g.Children(g.Children(g.Children(g.Children(id)[0])[0])[0])[0]
	assert.Equal(t, "bulb", g.Name(bulb))
	bind, _ := scene.Get[materials.Binding[materials.Extended[toon]]](g, bulb)
	mat, _ := ext.Get(bind.Material)
	assert.Equal(t, uint8(250), mat.Base.Emissive.R)
}

func TestResolverTwice(t *testing.T) {
	a := newTestApp(t)
	g := a.Scene
	rs := RegisterMaterialExtension[toon](g)
	id := ExtendMaterial(NewLoader("lamp.model"), toon{Steps: 2}).Build(g)
	require.NoError(t, a.Assets.Wait())
	a.Tick()
	assert.Equal(t, 3, rs.Rebound)

	assert.NotPanics(t, func() { g.Trigger(scene.InstanceReady{Root: id}) })
	assert.Equal(t, 3, rs.Rebound)
	assert.Equal(t, 0, rs.Resolve(g, id))
	assert.Equal(t, 3, materials.For[materials.Extended[toon]](g.Materials).Len())
}

func TestResolverUntagged(t *testing.T) {
	a := newTestApp(t)
	g := a.Scene
	rs := RegisterMaterialExtension[toon](g)
	id := NewLoader("lamp.model").Build(g)
	require.NoError(t, a.Assets.Wait())
	a.Tick()
	assert.Equal(t, 0, rs.Rebound)
	assert.Len(t, baseMaterials(g, id), 3)

	// a tag of another extension type is left for its own resolver
	other := ExtendMaterial(NewLoader("door.model"), outline{Width: 2}).Build(g)
	require.NoError(t, a.Assets.Wait())
	a.Tick()
	assert.Equal(t, 0, rs.Rebound)
	assert.True(t, scene.Has[MaterialExtensionTag[outline]](g, other))
	assert.Len(t, baseMaterials(g, other), 1)
}

func TestResolverMissingNodes(t *testing.T) {
	a := newTestApp(t)
	g := a.Scene
	rs := &Resolver[toon]{}
	root := g.Spawn("root")
	require.NoError(t, g.Insert(root, MaterialExtensionTag[toon]{Extension: toon{Steps: 1}}))
	// a mesh whose material is not in the store is skipped
	mesh := g.Spawn("mesh")
	require.NoError(t, g.AddChild(root, mesh))
	require.NoError(t, g.Insert(mesh, scene.Mesh{Name: "cube"}))
	require.NoError(t, g.Insert(mesh, materials.Binding[materials.Standard]{}))
	assert.Equal(t, 0, rs.Resolve(g, root))
	assert.True(t, scene.Has[materials.Binding[materials.Standard]](g, mesh))

	gone := g.Spawn("gone")
	require.NoError(t, g.Insert(gone, MaterialExtensionTag[toon]{}))
	g.Despawn(gone)
	assert.Equal(t, 0, rs.Resolve(g, gone))
}

func TestResolverDeep(t *testing.T) {
	a := newTestApp(t)
	g := a.Scene
	std := materials.For[materials.Standard](g.Materials)
	root := g.Spawn("root")
	require.NoError(t, g.Insert(root, MaterialExtensionTag[toon]{Extension: toon{Steps: 4}}))
	const depth = 5000
	parent := root
	k := 0
	for i := range depth {
		id := g.Spawn()
		require.NoError(t, g.AddChild(parent, id))
		if i%7 == 0 {
			k++
			require.NoError(t, g.Insert(id, scene.Mesh{Name: "cube"}))
			require.NoError(t, g.Insert(id, materials.Binding[materials.Standard]{Material: std.Add(materials.NewStandard())}))
		} else if i%11 == 0 {
			// a material without a mesh is not rebound
			require.NoError(t, g.Insert(id, materials.Binding[materials.Standard]{Material: std.Add(materials.NewStandard())}))
		}
		parent = id
	}
	rs := &Resolver[toon]{}
	assert.Equal(t, k, rs.Resolve(g, root))
	assert.Equal(t, k, materials.For[materials.Extended[toon]](g.Materials).Len())
}

func TestResolverEmptyModels(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.model": {Data: []byte("")},
		"scene.model": {Data: []byte("scenes: [~]")},
		"node.model":  {Data: []byte("scenes:\n  - nodes: [~]\n")},
		"child.model": {Data: []byte("scenes:\n  - nodes:\n      - name: a\n        children: [~]\n")},
	}
	a := app.New(fsys, 2)
	t.Cleanup(func() { a.Close() })
	g := a.Scene
	RegisterMaterialExtension[toon](g)

	var ids []scene.NodeID
	for name := range fsys {
		ids = append(ids, ExtendMaterial(NewLoader(name), toon{Steps: 6}).Build(g))
	}
	require.NoError(t, a.Assets.Wait())
	assert.NotPanics(t, a.Tick)
	assert.Len(t, a.Assets.Errors(), len(fsys))
	for name := range fsys {
		assert.Equal(t, assets.Failed, a.Assets.State(name))
	}
	for _, id := range ids {
		assert.Empty(t, g.Children(id))
	}
}
