// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"github.com/fatih/color"
)

// Colorizer applies terminal text attributes when Enabled is set and passes
// text through unchanged otherwise.
type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer that is enabled only if enabled is true and
// the environment does not ask for plain output (NO_COLOR, dumb or unset TERM).
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

// AutoColorizer returns a Colorizer enabled when w is a terminal.
func AutoColorizer(w *os.File) Colorizer {
	return NewColorizer(IsTerminal(w))
}

// Wrap renders text with the given attributes.
func (c Colorizer) Wrap(text string, attrs ...color.Attribute) string {
	if !c.Enabled || len(attrs) == 0 {
		return text
	}
	col := color.New(attrs...)
	// fatih/color disables itself when stdout is not a tty; the decision has
	// already been made by the caller.
	col.EnableColor()
	return col.Sprint(text)
}

// Bold renders text in bold.
func (c Colorizer) Bold(text string) string {
	return c.Wrap(text, color.Bold)
}

// Red renders text in red.
func (c Colorizer) Red(text string) string {
	return c.Wrap(text, color.FgRed)
}
