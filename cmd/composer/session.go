// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"time"

	"cogentcore.org/composer/app"
	"cogentcore.org/composer/base/fsx"
	"cogentcore.org/composer/parts"
	"cogentcore.org/composer/states"
)

// stage is the state of a composer session.
type stage int32

const (
	loadingStage stage = iota
	readyStage
)

// metadata is the metadata of parts, which the tool does not interpret.
type metadata = map[string]any

// cel is the material extension applied by the build command.
type cel struct {

	// Steps is the number of shading bands.
	Steps int `json:"steps"`
}

func (cel) FragmentShader() string { return "cel.wgsl" }

// session is an application with a loaded parts registry.
type session struct {
	*app.App
	opts   *options
	stage  *states.State[stage]
	plugin *parts.Plugin[metadata, stage]
}

// newSession returns a new session loading the registry in the background.
func newSession(opts *options) (*session, error) {
	cfg := opts.cfg
	root, err := cfg.RootDir()
	if err != nil {
		return nil, err
	}
	fsys, err := fsx.RootFS(root)
	if err != nil {
		return nil, err
	}
	s := &session{
		App:   app.New(fsys, cfg.Concurrency),
		opts:  opts,
		stage: states.New(loadingStage),
	}
	s.plugin = parts.NewPlugin[metadata](s.stage).
		FileEnding(cfg.FileEnding).
		LoadSingle(cfg.Registry, loadingStage, readyStage)
	parts.WithMaterialExtension[cel](s.plugin)
	s.AddPlugin(s.plugin)
	return s, nil
}

// registry returns the parts registry.
func (s *session) registry() *parts.Registry[metadata] {
	return s.plugin.Registry
}

// run ticks until done returns true or the registry file fails to load.
func (s *session) run(ctx context.Context, done func() bool) error {
	var failed error
	err := s.Run(ctx, time.Duration(s.opts.cfg.TickInterval), s.opts.cfg.MaxTicks, func() bool {
		failed = s.plugin.Loader().Failed(s.Assets)
		return failed != nil || done()
	})
	if failed != nil {
		return failed
	}
	return err
}

// load ticks until the registry is loaded.
func (s *session) load(ctx context.Context) error {
	return s.run(ctx, states.In(s.stage, readyStage))
}
