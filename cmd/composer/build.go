// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/composer/base/errors"
	"cogentcore.org/composer/materials"
	"cogentcore.org/composer/math32"
	"cogentcore.org/composer/parts"
	"cogentcore.org/composer/scene"
	"github.com/spf13/cobra"
)

// buildOptions are the flags of the build command.
type buildOptions struct {
	steps  int
	label  string
	offset []float32
	rotate float32
}

func newBuildCmd(opts *options) *cobra.Command {
	bo := &buildOptions{}
	cmd := &cobra.Command{
		Use:   "build <part>...",
		Short: "Compose a scene from parts",
		Long: `The build command instantiates the given parts under a world node,
waits for their models to stream in and prints the resulting scene.
With --steps, the materials of the models are extended with cel shading.

Example:
  composer build Lamp
  composer build Door Lamp --steps 6 --offset 0,1,0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, bo, args)
		},
	}
	cmd.Flags().IntVar(&bo.steps, "steps", 0, "Extend materials with cel shading of this many steps")
	cmd.Flags().StringVar(&bo.label, "label", "", "Scene of the models to instantiate (default Scene0)")
	cmd.Flags().Float32SliceVar(&bo.offset, "offset", nil, "Offset x,y,z of each model")
	cmd.Flags().Float32Var(&bo.rotate, "rotate", 0, "Rotation of each model about the vertical axis, in degrees")
	return cmd
}

// nodeInfo is the JSON output for one node of the scene.
type nodeInfo struct {
	Path     string `json:"path"`
	Mesh     string `json:"mesh,omitempty"`
	Material string `json:"material,omitempty"`
	Shader   string `json:"shader,omitempty"`
}

// loader returns the part loader configured by the flags.
func (bo *buildOptions) loader(p *parts.Part[metadata], world scene.NodeID) (parts.Loader[cel], error) {
	l := parts.WithMaterialType[cel](p.Load().On(world).Label(bo.label))
	if len(bo.offset) > 0 || bo.rotate != 0 {
		var pos [3]float32
		if len(bo.offset) > 3 {
			return l, fmt.Errorf("offset has %d components, want at most 3", len(bo.offset))
		}
		copy(pos[:], bo.offset)
		pose := math32.NewPose(pos[0], pos[1], pos[2])
		pose.SetAxisRotation(0, 1, 0, bo.rotate)
		l = l.Offset(pose)
	}
	if bo.steps > 0 {
		l = parts.ExtendMaterial(l, cel{Steps: bo.steps})
	}
	return l, nil
}

func runBuild(cmd *cobra.Command, opts *options, bo *buildOptions, names []string) error {
	s, err := newSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.load(cmd.Context()); err != nil {
		return fmt.Errorf("loading %s: %w", opts.cfg.Registry, err)
	}
	world := s.Scene.Spawn("world")
	for _, name := range names {
		p, err := lookup(s.registry(), name)
		if err != nil {
			return err
		}
		l, err := bo.loader(p, world)
		if err != nil {
			return err
		}
		l.Build(s.Scene)
	}
	err = s.run(cmd.Context(), func() bool {
		return s.Scene.Pending() == 0
	})
	if err != nil {
		return err
	}
	var errs []error
	for _, le := range s.Assets.Errors() {
		errs = append(errs, le)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	nodes := describe(s.Scene, world)
	if opts.jsonOut {
		return printJSON(cmd.OutOrStdout(), nodes)
	}
	printTree(cmd.OutOrStdout(), nodes)
	return nil
}

// describe returns the nodes below root in depth-first order.
func describe(g *scene.Graph, root scene.NodeID) []nodeInfo {
	var nodes []nodeInfo
	std := materials.For[materials.Standard](g.Materials)
	ext := materials.For[materials.Extended[cel]](g.Materials)
	g.WalkDown(root, func(id scene.NodeID) bool {
		info := nodeInfo{Path: g.Path(id)}
		if mesh, ok := scene.Get[scene.Mesh](g, id); ok {
			info.Mesh = mesh.Name
		}
		if bind, ok := scene.Get[materials.Binding[materials.Standard]](g, id); ok {
			if mat, ok := std.Get(bind.Material); ok {
				info.Material = mat.String()
			}
		}
		if bind, ok := scene.Get[materials.Binding[materials.Extended[cel]]](g, id); ok {
			if mat, ok := ext.Get(bind.Material); ok {
				info.Material = mat.Base.String()
				info.Shader = fmt.Sprintf("%s steps=%d", mat.Extension.FragmentShader(), mat.Extension.Steps)
			}
		}
		nodes = append(nodes, info)
		return scene.Continue
	})
	return nodes
}

// printTree prints the nodes indented by depth.
func printTree(w io.Writer, nodes []nodeInfo) {
	for _, nd := range nodes {
		depth := strings.Count(nd.Path, "/") - 1
		name := nd.Path[strings.LastIndex(nd.Path, "/")+1:]
		fmt.Fprintf(w, "%s%s", strings.Repeat("  ", depth), name)
		if nd.Mesh != "" {
			fmt.Fprintf(w, " [%s]", nd.Mesh)
		}
		if nd.Shader != "" {
			fmt.Fprintf(w, " (%s)", nd.Shader)
		}
		fmt.Fprintln(w)
	}
}
