// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/composer/base/errors"
	"cogentcore.org/composer/parts"
	"github.com/spf13/cobra"
)

func newShowCmd(opts *options) *cobra.Command {
	var requireData bool
	cmd := &cobra.Command{
		Use:   "show <part>",
		Short: "Show one part of the registry",
		Long: `The show command prints the model path and the metadata of a part.

Example:
  composer show Lamp
  composer show Lamp --data --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, opts, args[0], requireData)
		},
	}
	cmd.Flags().BoolVar(&requireData, "data", false, "Fail if the part has no metadata")
	return cmd
}

func runShow(cmd *cobra.Command, opts *options, name string, requireData bool) error {
	s, err := newSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.load(cmd.Context()); err != nil {
		return fmt.Errorf("loading %s: %w", opts.cfg.Registry, err)
	}
	p, err := lookup(s.registry(), name)
	if err != nil {
		return err
	}
	md, err := p.Metadata()
	var mm *parts.MissingMetadataError
	if errors.As(err, &mm) && requireData {
		return err
	}
	w := cmd.OutOrStdout()
	if opts.jsonOut {
		return printJSON(w, partInfo{Name: p.Name(), Path: p.Path, Data: md})
	}
	fmt.Fprintf(w, "Part: %s\nPath: %s\n", p.Name(), p.Path)
	if md != nil {
		fmt.Fprintln(w, "Data:")
		return printJSON(w, md)
	}
	return nil
}
