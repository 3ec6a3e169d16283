// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"cogentcore.org/composer/base/errors"
	"cogentcore.org/composer/states"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plugin struct {
	log *[]string
}

func (p plugin) Build(a *App) {
	a.AddSystem(Update, "plugin", func() { *p.log = append(*p.log, "plugin") })
}

func TestTickOrder(t *testing.T) {
	a := New(fstest.MapFS{}, 1)
	defer a.Close()
	var log []string
	add := func(sc Schedule) {
		a.AddSystem(sc, sc.String(), func() { log = append(log, sc.String()) })
	}
	for _, sc := range []Schedule{Last, PostUpdate, Update, PreUpdate, Startup, PreStartup} {
		add(sc)
	}
	a.AddPlugin(plugin{log: &log})
	a.Tick()
	assert.Equal(t, []string{"PreStartup", "Startup", "PreUpdate", "Update", "plugin", "PostUpdate", "Last"}, log)
	log = nil
	a.Tick()
	assert.Equal(t, []string{"PreUpdate", "Update", "plugin", "PostUpdate", "Last"}, log)
	assert.Equal(t, 2, a.Ticks())
	assert.Equal(t, "Schedule(9)", Schedule(9).String())
}

func TestConditions(t *testing.T) {
	a := New(fstest.MapFS{}, 1)
	defer a.Close()
	st := states.New("preload")
	AddState(a, st)
	n := 0
	a.AddSystem(PreUpdate, "count", func() {
		n++
		st.Set("ready")
	}, states.In(st, "preload"))
	a.Tick()
	assert.Equal(t, 1, n)
	assert.Equal(t, "ready", st.Current())
	a.Tick()
	assert.Equal(t, 1, n)
}

func TestRun(t *testing.T) {
	a := New(fstest.MapFS{}, 1)
	defer a.Close()
	err := a.Run(context.Background(), time.Millisecond, 0, func() bool { return a.Ticks() == 3 })
	require.NoError(t, err)
	assert.Equal(t, 3, a.Ticks())

	err = a.Run(context.Background(), time.Millisecond, 2, func() bool { return false })
	assert.True(t, errors.Is(err, ErrTickLimit))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = a.Run(ctx, time.Millisecond, 0, nil)
	assert.True(t, errors.Is(err, context.Canceled))
}
