// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package captain

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Handler runs a resolved command with its positional arguments and the
// resolved option map. opts is nil when no options are registered.
type Handler func(ctx context.Context, args []string, opts Options) error

// Command declares one command of a surface.
type Command struct {
	// Name is the command word. Underscores are shown and matched as
	// hyphens. Unused for single-command surfaces.
	Name        string
	Description string
	// Params names the positional parameters in order. When Variadic is set
	// the last one accepts zero or more values and is not required.
	Params   []string
	Variadic bool
	// Hidden commands dispatch normally but are left out of help.
	Hidden  bool
	Handler Handler
}

// Required returns how many positional arguments the command needs.
func (c *Command) Required() int {
	if c.Variadic {
		return len(c.Params) - 1
	}
	return len(c.Params)
}

// Placeholders returns the POSIX style placeholders of the command's
// parameters, e.g. ["<SRC>", "[DST]..."].
func (c *Command) Placeholders() []string {
	out := make([]string, len(c.Params))
	for i, p := range c.Params {
		out[i] = Placeholder(p, c.Variadic && i == len(c.Params)-1)
	}
	return out
}

// Usage returns the command word followed by its placeholders.
func (c *Command) Usage() string {
	return strings.Join(append([]string{c.Name}, c.Placeholders()...), " ")
}

// Placeholder formats a parameter name for usage text: "file_name" becomes
// "<FILE NAME>", or "[FILE NAME]..." when variadic.
func Placeholder(param string, variadic bool) string {
	name := strings.ToUpper(param)
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	if variadic {
		return "[" + name + "]..."
	}
	return "<" + name + ">"
}

// NormalizeName returns the display and lookup form of a command name.
func NormalizeName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// Surface is the declared command surface: either a *SingleSurface or a
// *MultiSurface.
type Surface interface {
	isSurface()
}

// SingleSurface is a program that is one command. All positionals belong to
// it and there is no command word.
type SingleSurface struct {
	Command Command
}

// MultiSurface is a program with named commands, selected by the first
// positional argument.
type MultiSurface struct {
	Commands []Command
	// Default names the command used when no command word is given.
	Default string
}

func (*SingleSurface) isSurface() {}
func (*MultiSurface) isSurface()  {}

// Single returns a surface consisting of cmd alone.
func Single(cmd Command) *SingleSurface {
	return &SingleSurface{Command: cmd}
}

// Multi returns a surface with the given commands, in help order.
func Multi(cmds ...Command) *MultiSurface {
	return &MultiSurface{Commands: cmds}
}

// WithDefault sets the command run when no command word is given.
func (m *MultiSurface) WithDefault(name string) *MultiSurface {
	m.Default = name
	return m
}

// commandTable is the validated, introspected form of a Surface.
type commandTable struct {
	single   bool
	commands []*Command
	byName   map[string]*Command
	def      *Command
}

func newCommandTable(s Surface) (*commandTable, error) {
	switch s := s.(type) {
	case *SingleSurface:
		if s == nil {
			break
		}
		cmd := s.Command
		if err := validateCommand(&cmd, false); err != nil {
			return nil, err
		}
		return &commandTable{single: true, commands: []*Command{&cmd}}, nil
	case *MultiSurface:
		if s == nil {
			break
		}
		return newMultiTable(s)
	}
	return nil, &ConfigError{Reason: "no command surface declared"}
}

func newMultiTable(s *MultiSurface) (*commandTable, error) {
	if len(s.Commands) == 0 {
		return nil, &ConfigError{Reason: "command surface declares no commands"}
	}
	t := &commandTable{byName: make(map[string]*Command, len(s.Commands))}
	for i := range s.Commands {
		cmd := s.Commands[i]
		cmd.Name = NormalizeName(cmd.Name)
		if err := validateCommand(&cmd, true); err != nil {
			return nil, err
		}
		if _, dup := t.byName[cmd.Name]; dup {
			return nil, &ConfigError{Subject: cmd.Name, Reason: "command declared twice"}
		}
		t.byName[cmd.Name] = &cmd
		t.commands = append(t.commands, &cmd)
	}
	if s.Default != "" {
		def, ok := t.byName[NormalizeName(s.Default)]
		if !ok {
			return nil, &ConfigError{Subject: s.Default, Reason: "default command is not declared"}
		}
		t.def = def
	}
	return t, nil
}

func validateCommand(cmd *Command, named bool) error {
	subject := cmd.Name
	if named {
		switch {
		case cmd.Name == "":
			return &ConfigError{Reason: "command has no name"}
		case strings.HasPrefix(cmd.Name, "-"):
			return &ConfigError{Subject: subject, Reason: "command name must not start with '-'"}
		case strings.IndexFunc(cmd.Name, unicode.IsSpace) >= 0:
			return &ConfigError{Subject: subject, Reason: "command name must not contain whitespace"}
		}
	} else if subject == "" {
		subject = "command"
	}
	if cmd.Handler == nil {
		return &ConfigError{Subject: subject, Reason: "command has no handler"}
	}
	if cmd.Variadic && len(cmd.Params) == 0 {
		return &ConfigError{Subject: subject, Reason: "variadic command declares no parameter to receive the values"}
	}
	seen := make(map[string]bool, len(cmd.Params))
	for i, p := range cmd.Params {
		switch {
		case strings.TrimSpace(p) == "":
			return &ConfigError{Subject: subject, Reason: fmt.Sprintf("parameter %d has no name", i)}
		case strings.HasPrefix(p, "-"):
			return &ConfigError{Subject: subject, Reason: fmt.Sprintf("keyword parameter %q is not supported", p)}
		case seen[p]:
			return &ConfigError{Subject: subject, Reason: fmt.Sprintf("parameter %q declared twice", p)}
		}
		seen[p] = true
	}
	return nil
}

// lookup finds a command by its command word.
func (t *commandTable) lookup(word string) (*Command, bool) {
	cmd, ok := t.byName[NormalizeName(word)]
	return cmd, ok
}

// names returns the names of all visible commands in declaration order.
func (t *commandTable) names() []string {
	var out []string
	for _, cmd := range t.visible() {
		out = append(out, cmd.Name)
	}
	return out
}

func (t *commandTable) visible() []*Command {
	out := make([]*Command, 0, len(t.commands))
	for _, cmd := range t.commands {
		if !cmd.Hidden {
			out = append(out, cmd)
		}
	}
	return out
}
