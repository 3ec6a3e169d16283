// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app provides the application context and its cooperative
// tick scheduler: systems are registered on schedules, and every
// [App.Tick] runs them to completion without blocking.
package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"cogentcore.org/composer/assets"
	"cogentcore.org/composer/base/errors"
	"cogentcore.org/composer/materials"
	"cogentcore.org/composer/scene"
	"cogentcore.org/composer/states"
)

// Schedule is a point of the tick at which systems run.
type Schedule int32

const (
	// PreStartup runs once, before [Startup], on the first tick.
	PreStartup Schedule = iota

	// Startup runs once on the first tick.
	Startup

	// PreUpdate runs every tick before [Update].
	PreUpdate

	// Update runs every tick.
	Update

	// PostUpdate runs every tick after the scene has instantiated
	// the models that streamed in.
	PostUpdate

	// Last runs at the end of every tick; state transitions are applied here.
	Last

	schedulesN
)

var scheduleNames = [...]string{"PreStartup", "Startup", "PreUpdate", "Update", "PostUpdate", "Last"}

func (sc Schedule) String() string {
	if sc >= 0 && sc < schedulesN {
		return scheduleNames[sc]
	}
	return fmt.Sprintf("Schedule(%d)", int32(sc))
}

// ErrTickLimit is returned by [App.Run] when the tick limit is reached
// before the run condition holds.
var ErrTickLimit = errors.New("app: tick limit reached")

// Plugin configures an [App].
type Plugin interface {
	Build(a *App)
}

// system is one registered system.
type system struct {
	name  string
	run   func()
	conds []func() bool
}

// App is the long-lived application context: it owns the asset server,
// the material storage and the scene graph, and schedules systems.
type App struct {

	// Assets streams assets from the application file system.
	Assets *assets.Server

	// Materials holds all materials bound to meshes.
	Materials *materials.Store

	// Scene is the scene graph.
	Scene *scene.Graph

	schedules [schedulesN][]*system
	started   bool
	ticks     int
}

// New returns a new [App] loading assets from fsys with at most
// concurrency loads in flight (see [assets.NewServer]).
func New(fsys fs.FS, concurrency int) *App {
	a := &App{
		Assets:    assets.NewServer(fsys, concurrency),
		Materials: materials.NewStore(),
	}
	scene.RegisterModels(a.Assets)
	a.Scene = scene.NewGraph(a.Assets, a.Materials)
	return a
}

// AddSystem adds the given function to the given schedule. It runs
// only on ticks where all of the given conditions are true.
func (a *App) AddSystem(sc Schedule, name string, run func(), conds ...func() bool) *App {
	a.schedules[sc] = append(a.schedules[sc], &system{name: name, run: run, conds: conds})
	return a
}

// AddPlugin builds the given plugins into the app.
func (a *App) AddPlugin(plugins ...Plugin) *App {
	for _, p := range plugins {
		p.Build(a)
	}
	return a
}

// AddState registers the given state so that its queued
// transitions are applied in the [Last] schedule.
func AddState[S comparable](a *App, st *states.State[S]) *App {
	return a.AddSystem(Last, "states", func() { st.Apply() })
}

// Ticks returns the number of completed ticks.
func (a *App) Ticks() int {
	return a.ticks
}

// runSchedule runs all systems of the schedule whose conditions hold.
func (a *App) runSchedule(sc Schedule) {
outer:
	for _, sys := range a.schedules[sc] {
		for _, cond := range sys.conds {
			if !cond() {
				continue outer
			}
		}
		sys.run()
	}
}

// Tick runs one tick: the startup schedules on the first tick, then
// delivery of asset failures, [PreUpdate], [Update], scene instancing,
// [PostUpdate] and [Last].
func (a *App) Tick() {
	if !a.started {
		a.started = true
		a.runSchedule(PreStartup)
		a.runSchedule(Startup)
	}
	a.Assets.Update()
	a.runSchedule(PreUpdate)
	a.runSchedule(Update)
	a.Scene.Update()
	a.runSchedule(PostUpdate)
	a.runSchedule(Last)
	a.ticks++
}

// Run ticks every interval until done returns true after a tick,
// the context is canceled, or maxTicks ticks have run (if > 0),
// returning [ErrTickLimit] in the last case.
func (a *App) Run(ctx context.Context, interval time.Duration, maxTicks int, done func() bool) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for n := 0; maxTicks <= 0 || n < maxTicks; n++ {
		a.Tick()
		if done != nil && done() {
			slog.Debug("app: run finished", "ticks", a.ticks)
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return fmt.Errorf("%w after %d ticks", ErrTickLimit, maxTicks)
}

// Close stops all in-flight asset loads.
func (a *App) Close() error {
	return a.Assets.Close()
}
