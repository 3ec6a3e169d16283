// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"cogentcore.org/composer/base/errors"
	"cogentcore.org/composer/parts"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// minSimilarity is the minimum similarity of a suggested part name.
const minSimilarity = 0.5

// suggest returns the name most similar to the given one, or ""
// if none is similar enough.
func suggest(names []string, name string) string {
	lev := metrics.NewLevenshtein()
	best, bestSim := "", minSimilarity
	for _, n := range names {
		sim := strutil.Similarity(strings.ToLower(name), strings.ToLower(n), lev)
		if sim >= bestSim {
			best, bestSim = n, sim
		}
	}
	return best
}

// lookup returns the part with the given name, suggesting a
// similar name if there is no such part.
func lookup(reg *parts.Registry[metadata], name string) (*parts.Part[metadata], error) {
	p, err := reg.Part(name)
	var nf *parts.NotFoundError
	if errors.As(err, &nf) {
		if s := suggest(reg.Names(), name); s != "" {
			return nil, fmt.Errorf("%w (did you mean %s?)", err, s)
		}
	}
	return p, err
}
