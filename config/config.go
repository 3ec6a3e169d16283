// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the TOML configuration of the composer tool.
package config

import (
	"io/fs"
	"os"
	"time"

	"cogentcore.org/composer/base/errors"
	"cogentcore.org/composer/base/fsx"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the default name of the configuration file.
const DefaultFile = "composer.toml"

// Config is the configuration of the composer tool.
type Config struct {

	// Root is the directory that asset paths are relative to.
	// A leading "~" is the home directory.
	Root string `toml:"root"`

	// Registry is the asset path of the parts registry file.
	Registry string `toml:"registry"`

	// FileEnding is the file ending of registry files, which determines
	// their format: JSON, YAML or TOML.
	FileEnding string `toml:"file_ending"`

	// Concurrency is the maximum number of assets loaded at once.
	Concurrency int `toml:"concurrency"`

	// MaxTicks is the maximum number of ticks to wait for loading
	// before giving up; 0 means no limit.
	MaxTicks int `toml:"max_ticks"`

	// TickInterval is the time between ticks.
	TickInterval Duration `toml:"tick_interval"`

	// Verbose and VeryVerbose increase the log level.
	Verbose     bool `toml:"verbose"`
	VeryVerbose bool `toml:"very_verbose"`

	// Quiet only logs errors.
	Quiet bool `toml:"quiet"`
}

// Duration is a [time.Duration] written as a string such as "16ms".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// DefaultMaxTicks is the default of [Config.MaxTicks].
const DefaultMaxTicks = 600

// Defaults sets the default values of all fields that are unset or invalid.
func (c *Config) Defaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.Registry == "" {
		c.Registry = "parts.json"
	}
	if c.FileEnding == "" {
		c.FileEnding = ".json"
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 4
	}
	if c.MaxTicks < 0 {
		c.MaxTicks = 0
	}
	if c.TickInterval <= 0 {
		c.TickInterval = Duration(16 * time.Millisecond)
	}
}

// New returns a new [Config] with default values.
func New() *Config {
	c := &Config{MaxTicks: DefaultMaxTicks}
	c.Defaults()
	return c
}

// Open reads the configuration from the given TOML file.
// A missing file yields the default configuration.
func Open(filename string) (*Config, error) {
	fsys, name, err := fsx.DirFS(filename)
	if err != nil {
		return nil, err
	}
	b, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}
	return Read(b)
}

// Read reads the configuration from the given TOML data
// over the default configuration.
func Read(b []byte) (*Config, error) {
	c := New()
	if err := toml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	c.Defaults()
	return c, nil
}

// RootDir returns [Config.Root] with a leading "~" expanded
// to the home directory.
func (c *Config) RootDir() (string, error) {
	return homedir.Expand(c.Root)
}

// Save writes the configuration to the given TOML file.
func (c *Config) Save(filename string) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
