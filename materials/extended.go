// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package materials

import (
	"github.com/jinzhu/copier"
)

// Extension is the constraint for extension parameters that can be
// bundled with a [Standard] base material into an [Extended] material.
// FragmentShader names the shader that consumes the extension
// parameters; an empty name keeps the base shader.
type Extension interface {
	FragmentShader() string
}

// EmptyExtension is the [Extension] used when no material
// extension is requested.
type EmptyExtension struct{}

func (EmptyExtension) FragmentShader() string { return "" }

// Extended is a material that embeds a [Standard] base material
// together with extension parameters of type X.
type Extended[X Extension] struct {

	// Base is a copy of the base parameters this material was derived from.
	Base Standard

	// Extension holds the caller-supplied extension parameters.
	Extension X
}

// Extend returns an [Extended] material holding a deep copy of the
// given base parameters and the given extension.
func Extend[X Extension](base *Standard, ext X) (Extended[X], error) {
	em := Extended[X]{Extension: ext}
	err := copier.CopyWithOption(&em.Base, base, copier.Option{DeepCopy: true})
	return em, err
}
