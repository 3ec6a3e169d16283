// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package states provides an application state container holding the
// current state from a small set of values, with transitions that are
// requested at any time and take effect at the next tick boundary.
package states

import "log/slog"

// State holds the current application state of type S.
type State[S comparable] struct {
	current S
	next    S
	queued  bool
	onEnter map[S][]func()
	onExit  map[S][]func()
}

// New returns a new [State] starting in the given state.
func New[S comparable](initial S) *State[S] {
	return &State[S]{
		current: initial,
		onEnter: make(map[S][]func()),
		onExit:  make(map[S][]func()),
	}
}

// Current returns the current state.
func (st *State[S]) Current() S {
	return st.current
}

// Is returns whether the current state is s.
func (st *State[S]) Is(s S) bool {
	return st.current == s
}

// Next returns the queued next state, and false if no transition is queued.
func (st *State[S]) Next() (S, bool) {
	return st.next, st.queued
}

// Set requests a transition to the given state, applied by [State.Apply].
// A later Set before Apply replaces the request. A transition to the
// current state is still applied, running the exit and enter functions.
func (st *State[S]) Set(s S) {
	st.next = s
	st.queued = true
}

// OnEnter adds a function run when the given state is entered.
func (st *State[S]) OnEnter(s S, fn func()) {
	st.onEnter[s] = append(st.onEnter[s], fn)
}

// OnExit adds a function run when the given state is exited.
func (st *State[S]) OnExit(s S, fn func()) {
	st.onExit[s] = append(st.onExit[s], fn)
}

// Apply applies a queued transition, running the exit functions of
// the old state and then the enter functions of the new one.
// It returns whether a transition happened.
func (st *State[S]) Apply() bool {
	if !st.queued {
		return false
	}
	prev := st.current
	st.current = st.next
	st.queued = false
	slog.Debug("states: transition", "from", prev, "to", st.current)
	for _, fn := range st.onExit[prev] {
		fn()
	}
	for _, fn := range st.onEnter[st.current] {
		fn()
	}
	return true
}

// In returns a run condition that is true while the state is s.
func In[S comparable](st *State[S], s S) func() bool {
	return func() bool {
		return st.Is(s)
	}
}
