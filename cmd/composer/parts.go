// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPartsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parts",
		Short: "List the parts of the registry",
		Long: `The parts command loads the registry and lists its parts
with their model paths.

Example:
  composer parts
  composer parts --root assets --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParts(cmd, opts)
		},
	}
}

// partInfo is the JSON output for one part.
type partInfo struct {
	Name string   `json:"name"`
	Path string   `json:"path"`
	Data metadata `json:"data,omitempty"`
}

func runParts(cmd *cobra.Command, opts *options) error {
	s, err := newSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.load(cmd.Context()); err != nil {
		return fmt.Errorf("loading %s: %w", opts.cfg.Registry, err)
	}
	w := cmd.OutOrStdout()
	if opts.jsonOut {
		var infos []partInfo
		for name, p := range s.registry().All() {
			info := partInfo{Name: name, Path: p.Path}
			if p.Data != nil {
				info.Data = *p.Data
			}
			infos = append(infos, info)
		}
		return printJSON(w, infos)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for name, p := range s.registry().All() {
		data := ""
		if p.HasMetadata() {
			data = "data"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, p.Path, data)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nTotal: %d parts\n", s.registry().Len())
	return nil
}
