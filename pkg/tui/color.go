// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"github.com/fatih/color"
)

// Style is a set of terminal attributes applied together.
type Style []color.Attribute

var (
	StyleHeading = Style{color.Bold}
	StyleFlag    = Style{color.FgCyan}
	StyleArg     = Style{color.FgYellow}
	StyleError   = Style{color.FgRed, color.Bold}
	StyleDim     = Style{color.FgHiBlack}
)

// Colorizer applies Styles when Enabled is set.
type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer that is enabled only if enabled is true,
// NO_COLOR is unset and TERM names a real terminal.
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// Wrap returns text styled with s. The caller has already decided whether
// the output supports color, so fatih/color's own terminal detection is
// bypassed.
func (c Colorizer) Wrap(s Style, text string) string {
	if !c.Enabled || len(s) == 0 {
		return text
	}
	col := color.New(s...)
	col.EnableColor()
	return col.Sprint(text)
}
