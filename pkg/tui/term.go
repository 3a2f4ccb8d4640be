// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

const (
	DefaultCols = 80
	DefaultRows = 24
)

var (
	isTerminalFn = term.IsTerminal
	getSizeFn    = term.GetSize
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isTerminalFn(int(f.Fd()))
}

// Size returns the terminal size of stdout. When stdout is not a terminal the
// COLUMNS and LINES environment variables are used, then 80x24.
func Size() (cols, rows int) {
	return SizeOf(os.Stdout)
}

// SizeOf returns the terminal size of f with the same fallbacks as Size.
func SizeOf(f *os.File) (cols, rows int) {
	if f != nil {
		fd := int(f.Fd())
		if isTerminalFn(fd) {
			if c, r, err := getSizeFn(fd); err == nil && c > 0 && r > 0 {
				return c, r
			}
		}
	}
	return envInt("COLUMNS", DefaultCols), envInt("LINES", DefaultRows)
}

func envInt(name string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
