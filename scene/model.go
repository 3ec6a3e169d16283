// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/composer/assets"
	"cogentcore.org/composer/base/errors"
	"cogentcore.org/composer/materials"
	"cogentcore.org/composer/math32"
)

// ModelEnding is the file ending of model template files.
const ModelEnding = ".model"

// Mesh is the component of nodes that render a mesh.
// The mesh data itself lives in the renderer; only its name is kept.
type Mesh struct {
	Name string
}

// Template is one node of a model scene, instantiated as a node
// of the graph with the same hierarchy.
type Template struct {
	Name string `yaml:"name"`

	// Mesh is the name of the mesh rendered by the node, if any.
	Mesh string `yaml:"mesh"`

	// Material is the base material of the mesh; the default
	// [materials.Standard] is used when it is nil.
	Material *materials.Standard `yaml:"material"`

	// Pose is the pose of the node relative to its parent.
	Pose *math32.Pose `yaml:"pose"`

	Children []*Template `yaml:"children"`
}

// ModelScene is a named scene of a [Model]: the nodes placed at the top
// of an instance.
type ModelScene struct {
	Name  string      `yaml:"name"`
	Nodes []*Template `yaml:"nodes"`
}

// Model is a streamed model: a set of scenes that can be instantiated.
type Model struct {
	Scenes []*ModelScene `yaml:"scenes"`
}

// SceneLabel returns the content label selecting the scene
// at the given index of a model, as in "door.model#Scene0".
func SceneLabel(index int) string {
	return "Scene" + strconv.Itoa(index)
}

// DefaultLabel is the label of the primary scene of a model.
var DefaultLabel = SceneLabel(0)

// Validate returns an error if the model is nil or has a nil
// scene or node, which an empty or partial file decodes into.
func (m *Model) Validate() error {
	if m == nil {
		return errors.New("scene: empty model")
	}
	var stack []*Template
	for i, sc := range m.Scenes {
		if sc == nil {
			return fmt.Errorf("scene: model scene %d is empty", i)
		}
		stack = append(stack[:0], sc.Nodes...)
		for len(stack) > 0 {
			tmpl := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if tmpl == nil {
				return fmt.Errorf("scene: model scene %d (%s) has an empty node", i, sc.Name)
			}
			stack = append(stack, tmpl.Children...)
		}
	}
	return nil
}

// Scene returns the scene of the model selected by the given label:
// "" and "SceneN" select by index, anything else selects by scene name.
func (m *Model) Scene(label string) (*ModelScene, error) {
	if label == "" {
		label = DefaultLabel
	}
	if num, ok := strings.CutPrefix(label, "Scene"); ok {
		if i, err := strconv.Atoi(num); err == nil {
			if i < 0 || i >= len(m.Scenes) {
				return nil, fmt.Errorf("scene: label %q: model has %d scenes", label, len(m.Scenes))
			}
			return m.Scenes[i], nil
		}
	}
	for _, sc := range m.Scenes {
		if sc.Name == label {
			return sc, nil
		}
	}
	return nil, fmt.Errorf("scene: label %q: no such scene", label)
}

// RegisterModels registers the [Model] decoder for [ModelEnding]
// files (YAML) on the given server.
func RegisterModels(srv *assets.Server) {
	assets.Register(srv, ModelEnding, func(data []byte) (*Model, error) {
		m, err := assets.Decode[*Model](assets.YAML, data)
		if err != nil {
			return nil, err
		}
		return m, m.Validate()
	})
}
