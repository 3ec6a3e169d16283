// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to color level tags in the default logger.
// Color is still only emitted when the output supports it.
var UseColor = true

// NewHandler returns a text [slog.Handler] writing to w at [UserLevel],
// with level tags colored through termenv when [UseColor] is set.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey || !UseColor {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelString(out, lvl))
			return a
		},
	}
	return slog.NewTextHandler(w, opts)
}

// LevelString returns the level name styled for the given output.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	var c termenv.Color
	switch {
	case lvl >= slog.LevelError:
		c = termenv.ANSIRed
	case lvl >= slog.LevelWarn:
		c = termenv.ANSIYellow
	case lvl >= slog.LevelInfo:
		c = termenv.ANSICyan
	default:
		c = termenv.ANSIBrightBlack
	}
	return out.String(lvl.String()).Foreground(c).String()
}

// SetDefaultLogger sets the default logger to one writing
// to stderr at [UserLevel] with a [NewHandler] handler.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
