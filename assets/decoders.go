// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"encoding/json"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a serialization format for decoded assets.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatFor returns the [Format] for the final extension of the given
// file name or file ending, defaulting to [JSON].
func FormatFor(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	}
	return JSON
}

// Decode decodes data in the given format into a new value of type T.
// Unknown fields are ignored.
func Decode[T any](format Format, data []byte) (T, error) {
	var v T
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &v)
	case TOML:
		err = toml.Unmarshal(data, &v)
	default:
		err = json.Unmarshal(data, &v)
	}
	return v, err
}

// Decoder returns a decode function for [Register] using the
// format implied by the given file ending.
func Decoder[T any](ending string) func(data []byte) (T, error) {
	format := FormatFor(ending)
	return func(data []byte) (T, error) {
		return Decode[T](format, data)
	}
}
