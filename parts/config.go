// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parts

import (
	"fmt"
	"log/slog"

	"cogentcore.org/composer/assets"
	"cogentcore.org/composer/states"
)

// Phase is the phase of a [ConfigLoader].
type Phase int32

const (
	// Uninitialized is the phase before the registry file is requested.
	Uninitialized Phase = iota

	// Requested is the phase while the registry file streams in.
	Requested

	// Ready is the final phase, after the registry has been replaced.
	Ready
)

func (ph Phase) String() string {
	switch ph {
	case Uninitialized:
		return "Uninitialized"
	case Requested:
		return "Requested"
	case Ready:
		return "Ready"
	}
	return fmt.Sprintf("Phase(%d)", int32(ph))
}

// ConfigLoader loads a registry file into a [Registry] once, without
// ever blocking: [ConfigLoader.Request] starts streaming the file and
// [ConfigLoader.Poll] installs it once it has arrived, then requests a
// transition of the application state to Target.
//
// A file that fails to load leaves the loader in [Requested];
// the failure is reported by the asset server and [ConfigLoader.Failed].
type ConfigLoader[M any, S comparable] struct {

	// Registry is replaced with the loaded parts.
	Registry *Registry[M]

	// File is the asset path of the registry file.
	File string

	// Target is the state transitioned to once the registry is loaded.
	Target S

	phase  Phase
	handle assets.Handle[Map[M]]
}

// NewConfigLoader returns a new [ConfigLoader] loading the given file into reg.
func NewConfigLoader[M any, S comparable](reg *Registry[M], file string, target S) *ConfigLoader[M, S] {
	return &ConfigLoader[M, S]{Registry: reg, File: file, Target: target}
}

// Phase returns the current phase.
func (cl *ConfigLoader[M, S]) Phase() Phase {
	return cl.phase
}

// Request starts loading the registry file, returning whether it did so.
// It only acts in the [Uninitialized] phase.
func (cl *ConfigLoader[M, S]) Request(srv *assets.Server) bool {
	if cl.phase != Uninitialized {
		return false
	}
	cl.handle = assets.Load[Map[M]](srv, cl.File)
	cl.phase = Requested
	slog.Debug("parts: registry requested", "file", cl.File)
	return true
}

// Poll checks without blocking whether the registry file has loaded.
// If so, it replaces the registry, requests the transition of st to
// Target and enters [Ready], returning true. It only acts in the
// [Requested] phase, so the registry is replaced and the transition is
// requested at most once.
func (cl *ConfigLoader[M, S]) Poll(srv *assets.Server, st *states.State[S]) bool {
	if cl.phase != Requested {
		return false
	}
	m, ok := assets.Take(srv, cl.handle)
	if !ok {
		return false
	}
	cl.Registry.replace(m)
	cl.handle = assets.Handle[Map[M]]{}
	cl.phase = Ready
	st.Set(cl.Target)
	slog.Debug("parts: registry loaded", "file", cl.File, "parts", cl.Registry.Len())
	return true
}

// Failed returns the error of the registry file load, if it failed.
func (cl *ConfigLoader[M, S]) Failed(srv *assets.Server) error {
	if cl.phase != Requested || srv.State(cl.handle.Path()) != assets.Failed {
		return nil
	}
	return srv.Err(cl.handle.Path())
}
