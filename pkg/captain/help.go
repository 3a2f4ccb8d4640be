// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package captain

import (
	"strings"
)

// ColumnFunc lays out items in the given number of columns, with offset
// spaces before the first column. See columns.Format.
type ColumnFunc func(items []string, columns, offset int) string

// EmphasizeFunc highlights a section title.
type EmphasizeFunc func(text string) string

// Section is one titled block of a help page. Content is either a string,
// printed indented, or a list of alternating label/description strings laid
// out in two columns.
type Section struct {
	Title string
	Text  string
	Items []string
}

func (s Section) empty() bool {
	return strings.TrimSpace(s.Text) == "" && len(s.Items) == 0
}

// Helper renders help pages.
type Helper struct {
	Program     string
	Description string
	Offset      int
	Columns     ColumnFunc
	Emphasize   EmphasizeFunc
}

// Render joins sections into a page. Empty sections are skipped.
func (h *Helper) Render(sections []Section) string {
	var b strings.Builder
	pad := strings.Repeat(" ", h.Offset)
	for _, s := range sections {
		if s.empty() {
			continue
		}
		b.WriteString(h.emphasize(s.Title + ":"))
		b.WriteByte('\n')
		if len(s.Items) > 0 {
			b.WriteString(h.columns(s.Items, 2, h.Offset))
		} else {
			b.WriteString(pad)
			b.WriteString(strings.ReplaceAll(strings.TrimRight(s.Text, "\n"), "\n", "\n"+pad))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), " \t\r\n")
}

// generalPage returns the page for the whole program.
func (h *Helper) generalPage(t *commandTable, opts *OptionTable) string {
	var synopsis, description string
	var commands []string
	if t.single {
		cmd := t.commands[0]
		synopsis = h.join(h.Program, optionsWord(opts), cmd.Placeholders()...)
		description = h.Description
		if description == "" {
			description = cmd.Description
		}
	} else {
		synopsis = h.join(h.Program, optionsWord(opts), "[COMMAND]", "[ARGS]...")
		description = h.Description
		for _, cmd := range t.visible() {
			commands = append(commands, cmd.Usage(), describe(cmd.Description))
		}
	}
	return h.Render([]Section{
		{Title: "Synopsis", Text: synopsis},
		{Title: "Description", Text: description},
		{Title: "Commands", Items: commands},
		{Title: "Options", Items: optionItems(opts)},
	})
}

// commandPage returns the page for a single command of a multi-command program.
func (h *Helper) commandPage(cmd *Command, opts *OptionTable) string {
	return h.Render([]Section{
		{Title: "Synopsis", Text: h.join(h.Program+" "+cmd.Name, optionsWord(opts), cmd.Placeholders()...)},
		{Title: "Description", Text: cmd.Description},
		{Title: "Options", Items: optionItems(opts)},
	})
}

func (h *Helper) join(head, opts string, rest ...string) string {
	parts := []string{head}
	if opts != "" {
		parts = append(parts, opts)
	}
	return strings.Join(append(parts, rest...), " ")
}

func (h *Helper) columns(items []string, n, offset int) string {
	if h.Columns == nil {
		return defaultColumns(items, n, offset)
	}
	return h.Columns(items, n, offset)
}

func (h *Helper) emphasize(text string) string {
	if h.Emphasize == nil {
		return text
	}
	return h.Emphasize(text)
}

func optionsWord(t *OptionTable) string {
	if t == nil || (t.Len() == 0 && !t.HelpEnabled()) {
		return ""
	}
	return "[OPTIONS]"
}

func optionItems(t *OptionTable) []string {
	if t == nil {
		return nil
	}
	opts := t.Options()
	if t.HelpEnabled() {
		opts = append(opts, t.HelpOption())
	}
	items := make([]string, 0, 2*len(opts))
	for _, o := range opts {
		items = append(items, o.Label(), describe(o.Description))
	}
	return items
}

func describe(desc string) string {
	if desc == "" {
		return ""
	}
	return "- " + desc
}
