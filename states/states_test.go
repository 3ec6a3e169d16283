// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package states

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type runtime int

const (
	preload runtime = iota
	sceneSetup
	done
)

func TestTransitions(t *testing.T) {
	st := New(preload)
	var log []string
	st.OnExit(preload, func() { log = append(log, "exit preload") })
	st.OnEnter(sceneSetup, func() { log = append(log, "enter setup") })
	st.OnEnter(done, func() { log = append(log, "enter done") })

	assert.True(t, st.Is(preload))
	assert.False(t, st.Apply())

	st.Set(sceneSetup)
	assert.True(t, st.Is(preload), "transitions apply at the tick boundary")
	next, ok := st.Next()
	assert.True(t, ok)
	assert.Equal(t, sceneSetup, next)

	assert.True(t, st.Apply())
	assert.Equal(t, sceneSetup, st.Current())
	assert.Equal(t, []string{"exit preload", "enter setup"}, log)
	_, ok = st.Next()
	assert.False(t, ok)

	st.Set(preload)
	st.Set(done)
	st.Apply()
	assert.Equal(t, done, st.Current())
	assert.Equal(t, []string{"exit preload", "enter setup", "enter done"}, log)
}

func TestSameStateTransition(t *testing.T) {
	st := New(preload)
	n := 0
	st.OnEnter(preload, func() { n++ })
	st.Set(preload)
	assert.True(t, st.Apply())
	assert.Equal(t, 1, n)
}

func TestIn(t *testing.T) {
	st := New(preload)
	inPreload := In(st, preload)
	assert.True(t, inPreload())
	st.Set(done)
	st.Apply()
	assert.False(t, inPreload())
}
