// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package captain

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	helpKey   = "help"
	helpShort = "h"
)

// Option is a boolean flag. Key identifies it in Options; Long and Short are
// the aliases accepted on the command line without their "--" or "-" prefix.
type Option struct {
	Key         string
	Long        []string
	Short       []string
	Description string
}

// Label returns the flags of the option as shown in help, e.g. "-w, --world".
func (o Option) Label() string {
	flags := make([]string, 0, len(o.Short)+len(o.Long))
	for _, s := range o.Short {
		flags = append(flags, "-"+s)
	}
	for _, l := range o.Long {
		flags = append(flags, "--"+l)
	}
	return strings.Join(flags, ", ")
}

// Options maps option keys to whether the option was given.
type Options map[string]bool

// Enabled reports whether the option with the given key was given. It is safe
// to call on a nil Options.
func (o Options) Enabled(key string) bool {
	return o[key]
}

// OptionTable is the ordered set of options a program accepts. It must be
// fully populated before it is used to resolve flags.
type OptionTable struct {
	options []Option
	aliases map[string]string // "--long" or "-s" to key
	help    bool
}

// NewOptionTable returns an empty table. When help is true the reserved
// -h/--help option is registered.
func NewOptionTable(help bool) *OptionTable {
	t := &OptionTable{aliases: make(map[string]string), help: help}
	if help {
		t.aliases["--"+helpKey] = helpKey
		t.aliases["-"+helpShort] = helpKey
	}
	return t
}

// Register adds an option. Aliases of one character are short flags, longer
// ones are long flags. Without aliases the key itself is the long flag.
func (t *OptionTable) Register(key string, aliases []string, description string) error {
	opt := Option{Key: key, Description: description}
	if len(aliases) == 0 {
		opt.Long = []string{key}
	}
	for _, a := range aliases {
		if utf8.RuneCountInString(a) == 1 {
			opt.Short = append(opt.Short, a)
		} else {
			opt.Long = append(opt.Long, a)
		}
	}
	return t.RegisterOption(opt)
}

// RegisterOption adds an option with explicit long and short aliases.
// Reusing a key or an alias is an error.
func (t *OptionTable) RegisterOption(opt Option) error {
	if opt.Key == "" {
		return &ConfigError{Reason: "option has no key"}
	}
	if opt.Key == helpKey && t.help {
		return &ConfigError{Subject: opt.Key, Reason: "option key is reserved for help"}
	}
	if t.find(opt.Key) >= 0 {
		return &ConfigError{Subject: opt.Key, Reason: "option declared twice"}
	}
	if len(opt.Long) == 0 && len(opt.Short) == 0 {
		return &ConfigError{Subject: opt.Key, Reason: "option has no flags"}
	}
	var flags []string
	for _, l := range opt.Long {
		if utf8.RuneCountInString(l) < 2 || strings.HasPrefix(l, "-") {
			return &ConfigError{Subject: opt.Key, Reason: fmt.Sprintf("invalid long flag %q", l)}
		}
		flags = append(flags, "--"+l)
	}
	for _, s := range opt.Short {
		if utf8.RuneCountInString(s) != 1 || s == "-" {
			return &ConfigError{Subject: opt.Key, Reason: fmt.Sprintf("invalid short flag %q", s)}
		}
		flags = append(flags, "-"+s)
	}
	for i, f := range flags {
		if owner, ok := t.aliases[f]; ok {
			return &ConfigError{Subject: opt.Key, Reason: fmt.Sprintf("flag %s already used by option %q", f, owner)}
		}
		if slices.Contains(flags[:i], f) {
			return &ConfigError{Subject: opt.Key, Reason: fmt.Sprintf("flag %s listed twice", f)}
		}
	}
	for _, f := range flags {
		t.aliases[f] = opt.Key
	}
	opt.Long = slices.Clone(opt.Long)
	opt.Short = slices.Clone(opt.Short)
	t.options = append(t.options, opt)
	return nil
}

func (t *OptionTable) find(key string) int {
	return slices.IndexFunc(t.options, func(o Option) bool { return o.Key == key })
}

// Len returns the number of registered options, not counting help.
func (t *OptionTable) Len() int {
	return len(t.options)
}

// HelpEnabled reports whether -h/--help is reserved.
func (t *OptionTable) HelpEnabled() bool {
	return t.help
}

// Options returns the registered options in registration order, not
// counting help.
func (t *OptionTable) Options() []Option {
	return slices.Clone(t.options)
}

// HelpOption returns the reserved help option.
func (t *OptionTable) HelpOption() Option {
	return Option{
		Key:         helpKey,
		Long:        []string{helpKey},
		Short:       []string{helpShort},
		Description: "Prints this page.",
	}
}

// Defaults returns an Options with every registered key set to false.
func (t *OptionTable) Defaults() Options {
	opts := make(Options, len(t.options))
	for _, o := range t.options {
		opts[o.Key] = false
	}
	return opts
}

// Resolve maps the flag tokens of c to option keys. Long tokens only match
// long aliases and short tokens only short aliases; long tokens are handled
// first. A help flag stops resolution and reports help as true. An unknown
// flag yields an *UnknownOptionError.
func (t *OptionTable) Resolve(c Categorization) (opts Options, help bool, err error) {
	opts = t.Defaults()
	for _, name := range c.Long {
		key, ok := t.match(name, true)
		if !ok {
			return nil, false, &UnknownOptionError{Flag: "--" + name}
		}
		if key == helpKey && t.help {
			return opts, true, nil
		}
		opts[key] = true
	}
	for _, name := range c.Short {
		key, ok := t.match(name, false)
		if !ok {
			return nil, false, &UnknownOptionError{Flag: "-" + name}
		}
		if key == helpKey && t.help {
			return opts, true, nil
		}
		opts[key] = true
	}
	return opts, false, nil
}

// match scans the options in registration order for a matching alias.
func (t *OptionTable) match(name string, long bool) (string, bool) {
	if t.help {
		if (long && name == helpKey) || (!long && name == helpShort) {
			return helpKey, true
		}
	}
	for _, o := range t.options {
		aliases := o.Short
		if long {
			aliases = o.Long
		}
		if slices.Contains(aliases, name) {
			return o.Key, true
		}
	}
	return "", false
}
