// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package materials provides the base surface material of model meshes,
// extended material variants that bundle a base material with
// caller-defined extension parameters, and typed material storage.
package materials

import (
	"encoding/json"
	"image/color"

	"cogentcore.org/composer/math32"
)

// Tiling are the texture tiling parameters
type Tiling struct {

	// how often to repeat the texture in each direction
	Repeat math32.Vector3 `json:"repeat" yaml:"repeat"`

	// offset for when to start the texure in each direction
	Off math32.Vector3 `json:"off" yaml:"off"`
}

// Defaults sets default tiling params if not yet initialized
func (tl *Tiling) Defaults() {
	if tl.Repeat.IsNil() {
		tl.Repeat.Set(1, 1, 1)
	}
}

// Standard describes the base material properties of a surface
// (colors, shininess, texture), i.e., phong lighting parameters.
// Main color is used for both ambient and diffuse color, and alpha component
// is used for opacity. The Emissive color is only for glowing objects.
type Standard struct {

	// Color is the main color of surface, used for both ambient and diffuse color
	// in standard Phong model; alpha component determines transparency.
	Color color.RGBA `json:"color" yaml:"color"`

	// Emissive is the color that surface emits independent of any lighting, i.e., glow.
	Emissive color.RGBA `json:"emissive" yaml:"emissive"`

	// Shiny is the specular shininess factor: how focally vs. broad the surface
	// shines back directional light. 0 is very broad diffuse reflection.
	Shiny float32 `json:"shiny" yaml:"shiny"`

	// Reflective is the specular reflectiveness factor: how much it shines back directional light.
	Reflective float32 `json:"reflective" yaml:"reflective"`

	// Bright is an overall multiplier on final computed color value.
	Bright float32 `json:"bright" yaml:"bright"`

	// TextureName is the name of the texture to provide color for the surface.
	TextureName string `json:"texture,omitempty" yaml:"texture,omitempty"`

	// Tiling is the texture tiling parameters: repeat and offset.
	Tiling Tiling `json:"tiling" yaml:"tiling"`

	// CullBack indicates to cull the back-facing surfaces.
	CullBack bool `json:"cullBack" yaml:"cullBack"`

	// CullFront indicates to cull the front-facing surfaces.
	CullFront bool `json:"cullFront" yaml:"cullFront"`
}

// Defaults sets default surface parameters
func (mt *Standard) Defaults() {
	mt.Color = color.RGBA{128, 128, 128, 255}
	mt.Emissive = color.RGBA{0, 0, 0, 0}
	mt.Shiny = 30
	mt.Reflective = 1
	mt.Bright = 1
	mt.Tiling.Defaults()
	mt.CullBack = true
}

// NewStandard returns a [Standard] material with default parameters.
func NewStandard() Standard {
	mt := Standard{}
	mt.Defaults()
	return mt
}

func (mt Standard) String() string {
	b, err := json.Marshal(mt)
	if err != nil {
		return err.Error()
	}
	return string(b)
}

// IsTransparent returns true if the color has alpha < 255
func (mt *Standard) IsTransparent() bool {
	return mt.Color.A < 255
}

// Validate fixes up parameters that would render nothing at all.
func (mt *Standard) Validate() {
	if mt.Bright == 0 {
		mt.Bright = 1
	}
	mt.Tiling.Defaults()
}
