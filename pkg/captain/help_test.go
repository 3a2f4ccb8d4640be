// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package captain

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/captain/pkg/columns"
)

func stars(s string) string { return "**" + s + "**" }

func newHelpCaptain(t *testing.T, surface Surface, opts ...CaptainOption) *Captain {
	t.Helper()
	opts = append([]CaptainOption{
		WithColumns(columns.Format),
		WithEmphasis(stars),
	}, opts...)
	c, err := New("prog", surface, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestGeneralHelpMulti(t *testing.T) {
	c := newHelpCaptain(t, Multi(
		Command{Name: "greet", Description: "Greets", Params: []string{"name"}, Handler: nopHandler},
		Command{Name: "shout", Description: "Shouts the given text back", Params: []string{"text"}, Variadic: true, Handler: nopHandler},
		Command{Name: "debug", Hidden: true, Handler: nopHandler},
	), WithDescription("A test program"))
	if err := c.AddOption("world", []string{"world", "w"}, "Adds world"); err != nil {
		t.Fatalf("AddOption() error = %v", err)
	}

	want := strings.Join([]string{
		"**Synopsis:**",
		"  prog [OPTIONS] [COMMAND] [ARGS]...",
		"**Description:**",
		"  A test program",
		"**Commands:**",
		"  greet <NAME>     - Greets",
		"  shout [TEXT]...  - Shouts the given text back",
		"**Options:**",
		"  -w, --world  - Adds world",
		"  -h, --help   - Prints this page.",
	}, "\n")
	if diff := cmp.Diff(want, c.Help()); diff != "" {
		t.Errorf("Help() mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneralHelpSingle(t *testing.T) {
	c := newHelpCaptain(t, Single(Command{
		Description: "Copies files",
		Params:      []string{"dest", "sources"},
		Variadic:    true,
		Handler:     nopHandler,
	}), WithoutHelp())

	want := strings.Join([]string{
		"**Synopsis:**",
		"  prog <DEST> [SOURCES]...",
		"**Description:**",
		"  Copies files",
	}, "\n")
	if diff := cmp.Diff(want, c.Help()); diff != "" {
		t.Errorf("Help() mismatch (-want +got):\n%s", diff)
	}
}

func TestCommandHelp(t *testing.T) {
	c := newHelpCaptain(t, Multi(
		Command{Name: "move_to", Description: "Moves a file\nKeeps permissions", Params: []string{"src", "dst"}, Handler: nopHandler},
	))
	got, ok := c.CommandHelp("move_to")
	if !ok {
		t.Fatalf("CommandHelp() ok = false")
	}
	want := strings.Join([]string{
		"**Synopsis:**",
		"  prog move-to [OPTIONS] <SRC> <DST>",
		"**Description:**",
		"  Moves a file",
		"  Keeps permissions",
		"**Options:**",
		"  -h, --help  - Prints this page.",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CommandHelp() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := c.CommandHelp("nope"); ok {
		t.Errorf("CommandHelp(unknown) ok = true")
	}
}

func TestRenderSkipsEmptySections(t *testing.T) {
	h := &Helper{Offset: 4, Columns: columns.Format, Emphasize: stars}
	got := h.Render([]Section{
		{Title: "Empty", Text: "  \n"},
		{Title: "Nothing"},
		{Title: "Usage", Text: "do it"},
	})
	want := "**Usage:**\n    do it"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderWithoutCollaborators(t *testing.T) {
	h := &Helper{Offset: 1}
	got := h.Render([]Section{{Title: "List", Items: []string{"a", "- first", "bb", "- second"}}})
	want := "List:\n a   - first\n bb  - second"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
