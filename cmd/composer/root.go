// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"cogentcore.org/composer/base/logx"
	"cogentcore.org/composer/config"
	"github.com/spf13/cobra"
)

// options are the global flags.
type options struct {
	configFile  string
	root        string
	verbose     bool
	veryVerbose bool
	quiet       bool
	jsonOut     bool
	noColor     bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "composer",
		Short: "Compose scenes from a registry of parts",
		Long: `composer loads a registry of parts, which maps part names to model
paths and optional metadata, and composes scenes from its parts.

The registry file and the asset root are set in composer.toml
and can be overridden with flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", config.DefaultFile, "Configuration file")
	pf.StringVar(&opts.root, "root", "", "Asset root directory (overrides the configuration)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.BoolVar(&opts.veryVerbose, "vv", false, "Enable debug logging")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "Only log errors")
	pf.BoolVar(&opts.jsonOut, "json", false, "Output in JSON format")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable colored log output")

	cmd.AddCommand(newPartsCmd(opts), newShowCmd(opts), newBuildCmd(opts))
	return cmd
}

// setup reads the configuration and sets up logging.
func (o *options) setup() error {
	cfg, err := config.Open(o.configFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", o.configFile, err)
	}
	if o.root != "" {
		cfg.Root = o.root
	}
	o.cfg = cfg
	logx.UserLevel = logx.LevelFromFlags(o.veryVerbose || cfg.VeryVerbose, o.verbose || cfg.Verbose, o.quiet || cfg.Quiet)
	logx.UseColor = !o.noColor
	logx.SetDefaultLogger()
	return nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
