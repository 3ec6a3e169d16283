// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parts

import (
	"cogentcore.org/composer/app"
	"cogentcore.org/composer/assets"
	"cogentcore.org/composer/materials"
	"cogentcore.org/composer/scene"
	"cogentcore.org/composer/states"
)

// DefaultFileEnding is the default file ending of registry files.
const DefaultFileEnding = ".json"

// Plugin adds parts to an [app.App]: it registers the decoder of
// registry files with metadata of type M, optionally loads a single
// registry file into [Plugin.Registry] while the application state is
// in a given state, and registers material extension resolvers.
type Plugin[M any, S comparable] struct {

	// Registry is the registry loaded by [Plugin.LoadSingle].
	Registry *Registry[M]

	// State is the application state.
	State *states.State[S]

	ending    string
	loader    *ConfigLoader[M, S]
	runIn     S
	resolvers []func(g *scene.Graph)
}

// SimplePlugin is a [Plugin] for registries without metadata.
type SimplePlugin[S comparable] = Plugin[EmptyData, S]

// NewPlugin returns a new [Plugin] for the given application state,
// reading registry files ending in [DefaultFileEnding].
func NewPlugin[M any, S comparable](st *states.State[S]) *Plugin[M, S] {
	return &Plugin[M, S]{Registry: NewRegistry[M](), State: st, ending: DefaultFileEnding}
}

// NewSimplePlugin returns a new [SimplePlugin] for the given application state.
func NewSimplePlugin[S comparable](st *states.State[S]) *SimplePlugin[S] {
	return NewPlugin[EmptyData](st)
}

// FileEnding sets the file ending of registry files, such as ".parts.yaml".
// The format is determined by the extension, see [assets.FormatFor].
func (p *Plugin[M, S]) FileEnding(ending string) *Plugin[M, S] {
	p.ending = ending
	return p
}

// LoadSingle loads the given registry file into [Plugin.Registry] at
// startup, polling for it while the state is runIn and transitioning
// the state to toState once it is installed.
func (p *Plugin[M, S]) LoadSingle(file string, runIn, toState S) *Plugin[M, S] {
	p.loader = NewConfigLoader(p.Registry, file, toState)
	p.runIn = runIn
	return p
}

// Loader returns the [ConfigLoader] set by [Plugin.LoadSingle], or nil.
func (p *Plugin[M, S]) Loader() *ConfigLoader[M, S] {
	return p.loader
}

// WithMaterialExtension registers a [Resolver] for extensions of type X
// when the plugin is built.
func WithMaterialExtension[X materials.Extension, M any, S comparable](p *Plugin[M, S]) *Plugin[M, S] {
	p.resolvers = append(p.resolvers, func(g *scene.Graph) {
		RegisterMaterialExtension[X](g)
	})
	return p
}

func (p *Plugin[M, S]) Build(a *app.App) {
	assets.Register(a.Assets, p.ending, assets.Decoder[Map[M]](p.ending))
	if cl := p.loader; cl != nil {
		a.AddSystem(app.PreStartup, "parts: request registry", func() {
			cl.Request(a.Assets)
		})
		a.AddSystem(app.PreUpdate, "parts: load registry", func() {
			cl.Poll(a.Assets, p.State)
		}, states.In(p.State, p.runIn))
		app.AddState(a, p.State)
	}
	for _, fn := range p.resolvers {
		fn(a.Scene)
	}
}
