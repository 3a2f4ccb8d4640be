// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package captain

import (
	"errors"
	"fmt"
	"strings"
)

// Exit statuses used by ParseAndHandle and Sail.
const (
	ExitOK      = 0
	ExitFailure = 1
	// ExitUsage is EX_USAGE from sysexits.h.
	ExitUsage = 64
)

var (
	// ErrHelp is returned by Parse when -h or --help was given. The error is
	// a *HelpRequest carrying the rendered page.
	ErrHelp = errors.New("help requested")

	// ErrNoCommand is returned by Parse when a multi-command surface without
	// a default command receives no command word. It is not a usage error.
	ErrNoCommand = errors.New("no command specified")
)

// HelpRequest is returned by Parse when help was requested.
type HelpRequest struct {
	// Command is the command the page documents, empty for the general page.
	Command string
	Text    string
}

func (h *HelpRequest) Error() string {
	return ErrHelp.Error()
}

func (h *HelpRequest) Unwrap() error {
	return ErrHelp
}

// ConfigError reports a mistake in the declared surface or option table.
// It is returned at setup time, never from Parse.
type ConfigError struct {
	Subject string // command or option the problem was found on
	Reason  string
}

func (e *ConfigError) Error() string {
	if e.Subject == "" {
		return "captain: " + e.Reason
	}
	return fmt.Sprintf("captain: %s: %s", e.Subject, e.Reason)
}

// usageError is implemented by every user-facing parse error.
type usageError interface {
	error
	command() string
}

// MalformedFlagError is returned for the bare "-" and "--" tokens.
type MalformedFlagError struct {
	Token string
}

func (e *MalformedFlagError) Error() string {
	return fmt.Sprintf("invalid option '%s'", e.Token)
}

func (e *MalformedFlagError) command() string { return "" }

// UnknownOptionError is returned for a flag that matches no registered alias.
type UnknownOptionError struct {
	Flag string // with its prefix, e.g. "-x" or "--verbose"
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("option '%s' not recognised", e.Flag)
}

func (e *UnknownOptionError) command() string { return "" }

// UnknownCommandError is returned when the command word names no command.
type UnknownCommandError struct {
	Command   string
	Available []string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("command '%s' not recognised. Available commands: %s",
		e.Command, strings.Join(e.Available, ", "))
}

func (e *UnknownCommandError) command() string { return "" }

// TooManyArgsError is returned when a command without a variadic parameter
// receives more arguments than it declares.
type TooManyArgsError struct {
	Command string
	Max     int
	Got     int
}

func (e *TooManyArgsError) Error() string {
	switch e.Max {
	case 0:
		return "too many arguments (takes none)"
	case 1:
		return "too many arguments (takes 1)"
	}
	return fmt.Sprintf("too many arguments (takes %d)", e.Max)
}

func (e *TooManyArgsError) command() string { return e.Command }

// MissingArgsError is returned when required arguments are missing. Missing
// holds the placeholders of the missing parameters, e.g. "<FILE>".
type MissingArgsError struct {
	Command string
	Missing []string
}

func (e *MissingArgsError) Error() string {
	if len(e.Missing) == 1 {
		return "missing argument " + e.Missing[0]
	}
	return "missing arguments " + strings.Join(e.Missing, " ")
}

func (e *MissingArgsError) command() string { return e.Command }

// IsUsageError reports whether err is a user-facing parse error that should
// exit with ExitUsage.
func IsUsageError(err error) bool {
	var u usageError
	return errors.As(err, &u)
}

// UsageCommand returns the command a usage error was raised for, if any.
func UsageCommand(err error) string {
	var u usageError
	if errors.As(err, &u) {
		return u.command()
	}
	return ""
}
