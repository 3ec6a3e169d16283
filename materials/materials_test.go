// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package materials

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quantize struct {
	Steps uint32
}

func (quantize) FragmentShader() string { return "shaders/quantize.wgsl" }

func TestDefaults(t *testing.T) {
	mt := NewStandard()
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, mt.Color)
	assert.Equal(t, float32(1), mt.Bright)
	assert.True(t, mt.CullBack)
	assert.False(t, mt.IsTransparent())

	mt.Bright = 0
	mt.Validate()
	assert.Equal(t, float32(1), mt.Bright)
	assert.Contains(t, mt.String(), `"shiny":30`)
}

func TestExtend(t *testing.T) {
	base := NewStandard()
	base.Color = color.RGBA{200, 10, 10, 255}
	em, err := Extend(&base, quantize{Steps: 6})
	require.NoError(t, err)
	assert.Equal(t, base, em.Base)
	assert.Equal(t, uint32(6), em.Extension.Steps)

	base.Color.R = 1
	assert.Equal(t, uint8(200), em.Base.Color.R, "base must be copied, not aliased")
}

func TestAssets(t *testing.T) {
	as := NewAssets[Standard]()
	var zero Handle[Standard]
	assert.False(t, zero.IsValid())

	h := as.Add(NewStandard())
	assert.True(t, h.IsValid())
	assert.Equal(t, 1, as.Len())

	mt, ok := as.Get(h)
	require.True(t, ok)
	mt.Shiny = 5
	got, _ := as.Get(h)
	assert.Equal(t, float32(30), got.Shiny)
	assert.True(t, as.Set(h, *mt))
	got, _ = as.Get(h)
	assert.Equal(t, float32(5), got.Shiny)

	n := 0
	for hh, m := range as.All() {
		assert.Equal(t, h, hh)
		assert.Equal(t, float32(5), m.Shiny)
		n++
	}
	assert.Equal(t, 1, n)

	_, ok = as.Remove(h)
	assert.True(t, ok)
	_, ok = as.Get(h)
	assert.False(t, ok)
	assert.False(t, as.Set(h, *mt))
}

func TestStore(t *testing.T) {
	st := NewStore()
	std := For[Standard](st)
	assert.Same(t, std, For[Standard](st))
	ext := For[Extended[quantize]](st)
	ext.Add(Extended[quantize]{Extension: quantize{Steps: 2}})
	assert.Equal(t, 0, std.Len())
	assert.Equal(t, 1, For[Extended[quantize]](st).Len())
	assert.Equal(t, "", EmptyExtension{}.FragmentShader())
}
