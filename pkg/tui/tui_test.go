// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestNewColorizerHonorsEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		noColor string
		term    string
		want    bool
	}{
		{name: "disabled", enabled: false, term: "xterm", want: false},
		{name: "enabled", enabled: true, term: "xterm", want: true},
		{name: "no color", enabled: true, noColor: "1", term: "xterm", want: false},
		{name: "dumb term", enabled: true, term: "dumb", want: false},
		{name: "no term", enabled: true, term: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)
			if got := NewColorizer(tt.enabled).Enabled; got != tt.want {
				t.Errorf("Enabled = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorizerBold(t *testing.T) {
	if got := (Colorizer{}).Bold("Options:"); got != "Options:" {
		t.Errorf("disabled Bold = %q, want plain text", got)
	}
	got := Colorizer{Enabled: true}.Bold("Options:")
	if !strings.Contains(got, "Options:") || got == "Options:" {
		t.Errorf("enabled Bold = %q, want escape sequences around text", got)
	}
	if !strings.HasPrefix(got, "\x1b[1m") {
		t.Errorf("enabled Bold = %q, want bold prefix", got)
	}
}

func TestColorizerWrapWithoutAttributes(t *testing.T) {
	c := Colorizer{Enabled: true}
	if got := c.Wrap("text"); got != "text" {
		t.Errorf("Wrap() = %q, want %q", got, "text")
	}
	if got := c.Wrap("text", color.FgGreen); !strings.HasPrefix(got, "\x1b[32m") {
		t.Errorf("Wrap(FgGreen) = %q, want green prefix", got)
	}
}

func TestSizeOfFallsBackToEnvironment(t *testing.T) {
	oldIsTerminal := isTerminalFn
	defer func() { isTerminalFn = oldIsTerminal }()
	isTerminalFn = func(int) bool { return false }

	t.Setenv("COLUMNS", "132")
	t.Setenv("LINES", "")
	cols, rows := SizeOf(os.Stdout)
	if cols != 132 || rows != DefaultRows {
		t.Errorf("SizeOf() = %d, %d, want 132, %d", cols, rows, DefaultRows)
	}

	t.Setenv("COLUMNS", "junk")
	cols, _ = SizeOf(nil)
	if cols != DefaultCols {
		t.Errorf("SizeOf(nil) cols = %d, want %d", cols, DefaultCols)
	}
}

func TestSizeOfUsesTerminal(t *testing.T) {
	oldIsTerminal, oldGetSize := isTerminalFn, getSizeFn
	defer func() { isTerminalFn, getSizeFn = oldIsTerminal, oldGetSize }()
	isTerminalFn = func(int) bool { return true }
	getSizeFn = func(int) (int, int, error) { return 100, 40, nil }

	if cols, rows := SizeOf(os.Stdout); cols != 100 || rows != 40 {
		t.Errorf("SizeOf() = %d, %d, want 100, 40", cols, rows)
	}

	getSizeFn = func(int) (int, int, error) { return 0, 0, errors.New("no tty") }
	t.Setenv("COLUMNS", "")
	if cols, _ := SizeOf(os.Stdout); cols != DefaultCols {
		t.Errorf("SizeOf() cols = %d, want %d after query failure", cols, DefaultCols)
	}
}
