// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package captain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/yeetrun/captain/pkg/columns"
	"github.com/yeetrun/captain/pkg/tui"
)

const defaultOffset = 2

var defaultColumns ColumnFunc = columns.Formatter{Size: tui.Size}.Format

// Invocation is a successfully parsed command line.
type Invocation struct {
	// Command is the selected command. It is nil for single-command surfaces.
	Command *Command
	Handler Handler
	Args    []string
	// Options is nil when the program registers no options besides help.
	Options Options
}

// Run calls the resolved handler.
func (inv *Invocation) Run(ctx context.Context) error {
	return inv.Handler(ctx, inv.Args, inv.Options)
}

// Captain parses command lines against a declared surface.
type Captain struct {
	program string
	table   *commandTable
	opts    *OptionTable
	helper  *Helper
	parsed  bool

	description string
	offset      int
	noHelp      bool
	columns     ColumnFunc
	emphasize   EmphasizeFunc
	stdout      io.Writer
	stderr      io.Writer
	exit        func(int)
	logger      *log.Logger
}

// CaptainOption configures a Captain.
type CaptainOption func(*Captain)

// WithDescription sets the program description shown in help.
func WithDescription(desc string) CaptainOption {
	return func(c *Captain) {
		c.description = desc
	}
}

// WithOffset sets the indentation of help section content.
func WithOffset(n int) CaptainOption {
	return func(c *Captain) {
		if n >= 0 {
			c.offset = n
		}
	}
}

// WithoutHelp stops -h and --help from being reserved.
func WithoutHelp() CaptainOption {
	return func(c *Captain) {
		c.noHelp = true
	}
}

// WithColumns replaces the column formatter used for help.
func WithColumns(fn ColumnFunc) CaptainOption {
	return func(c *Captain) {
		if fn != nil {
			c.columns = fn
		}
	}
}

// WithEmphasis replaces the function used to highlight help titles.
func WithEmphasis(fn EmphasizeFunc) CaptainOption {
	return func(c *Captain) {
		if fn != nil {
			c.emphasize = fn
		}
	}
}

// WithOutput sets where help and diagnostics are written.
func WithOutput(stdout, stderr io.Writer) CaptainOption {
	return func(c *Captain) {
		if stdout != nil {
			c.stdout = stdout
		}
		if stderr != nil {
			c.stderr = stderr
		}
	}
}

// WithExit replaces os.Exit.
func WithExit(fn func(int)) CaptainOption {
	return func(c *Captain) {
		if fn != nil {
			c.exit = fn
		}
	}
}

// WithLogger sets the logger that receives parser debug output.
func WithLogger(l *log.Logger) CaptainOption {
	return func(c *Captain) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a Captain for the given surface. An empty program name is
// replaced by the base name of os.Args[0]. Mistakes in the surface are
// reported as a *ConfigError.
func New(program string, surface Surface, opts ...CaptainOption) (*Captain, error) {
	c := &Captain{
		program: program,
		offset:  defaultOffset,
		columns: defaultColumns,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		exit:    os.Exit,
		logger:  log.New(io.Discard),
	}
	for _, o := range opts {
		o(c)
	}
	if c.program == "" {
		c.program = ProgramName()
	}
	if c.emphasize == nil {
		c.emphasize = tui.AutoColorizer(os.Stdout).Bold
	}
	table, err := newCommandTable(surface)
	if err != nil {
		return nil, err
	}
	c.table = table
	c.opts = NewOptionTable(!c.noHelp)
	c.helper = &Helper{
		Program:     c.program,
		Description: c.description,
		Offset:      c.offset,
		Columns:     c.columns,
		Emphasize:   c.emphasize,
	}
	return c, nil
}

// ProgramName returns the base name of the running executable.
func ProgramName() string {
	if len(os.Args) == 0 {
		return "program"
	}
	return filepath.Base(os.Args[0])
}

// Program returns the name used in help and diagnostics.
func (c *Captain) Program() string {
	return c.program
}

// AddOption registers a boolean option. Aliases of one character become
// short flags; without aliases the key is used as the long flag.
func (c *Captain) AddOption(key string, aliases []string, description string) error {
	if err := c.checkRegistration(key); err != nil {
		return err
	}
	return c.opts.Register(key, aliases, description)
}

// AddOptionSpec registers an option with explicit long and short flags.
func (c *Captain) AddOptionSpec(opt Option) error {
	if err := c.checkRegistration(opt.Key); err != nil {
		return err
	}
	return c.opts.RegisterOption(opt)
}

func (c *Captain) checkRegistration(key string) error {
	if c.parsed {
		return &ConfigError{Subject: key, Reason: "options must be registered before parsing"}
	}
	return nil
}

// Help returns the general help page.
func (c *Captain) Help() string {
	return c.helper.generalPage(c.table, c.opts)
}

// CommandHelp returns the help page of the named command. It reports false
// for single-command surfaces and unknown names.
func (c *Captain) CommandHelp(name string) (string, bool) {
	if c.table.single {
		return "", false
	}
	cmd, ok := c.table.lookup(name)
	if !ok {
		return "", false
	}
	return c.helper.commandPage(cmd, c.opts), true
}

// Parse resolves args (argv without the program name). It returns the
// invocation, a *HelpRequest (matching ErrHelp), ErrNoCommand, or a usage
// error. Parse never writes output or exits.
func (c *Captain) Parse(args []string) (*Invocation, error) {
	c.parsed = true
	st := stateStart

	cat, err := Categorize(args)
	if err != nil {
		return nil, c.fail(st, err)
	}
	opts, help, err := c.opts.Resolve(cat)
	if err != nil {
		return nil, c.fail(st, err)
	}
	st = c.advance(st, stateFlagsResolved)

	if help {
		return nil, c.helpRequest(cat.Positionals)
	}

	cmd, rest, err := c.resolveCommand(cat.Positionals)
	if err != nil {
		return nil, c.fail(st, err)
	}
	st = c.advance(st, stateCommandResolved)

	if err := checkArity(cmd, c.commandName(cmd), len(rest)); err != nil {
		return nil, c.fail(st, err)
	}
	st = c.advance(st, stateArityChecked)

	inv := &Invocation{
		Handler: cmd.Handler,
		Args:    slices.Clone(rest),
	}
	if !c.table.single {
		inv.Command = cmd
	}
	if c.opts.Len() > 0 {
		inv.Options = opts
	}
	c.advance(st, stateDispatched)
	c.logger.Debug("dispatching", "command", c.commandName(cmd), "args", inv.Args, "options", inv.Options)
	return inv, nil
}

func (c *Captain) helpRequest(positionals []string) error {
	if !c.table.single && len(positionals) > 0 {
		if cmd, ok := c.table.lookup(positionals[0]); ok {
			c.logger.Debug("help requested", "command", cmd.Name)
			return &HelpRequest{Command: cmd.Name, Text: c.helper.commandPage(cmd, c.opts)}
		}
	}
	c.logger.Debug("help requested")
	return &HelpRequest{Text: c.Help()}
}

func (c *Captain) resolveCommand(positionals []string) (*Command, []string, error) {
	if c.table.single {
		return c.table.commands[0], positionals, nil
	}
	if len(positionals) == 0 {
		if c.table.def != nil {
			return c.table.def, positionals, nil
		}
		return nil, nil, ErrNoCommand
	}
	cmd, ok := c.table.lookup(positionals[0])
	if !ok {
		return nil, nil, &UnknownCommandError{Command: positionals[0], Available: c.table.names()}
	}
	return cmd, positionals[1:], nil
}

func (c *Captain) commandName(cmd *Command) string {
	if c.table.single {
		return ""
	}
	return cmd.Name
}

// checkArity validates that n arguments satisfy cmd.
func checkArity(cmd *Command, name string, n int) error {
	required := cmd.Required()
	if n < required {
		return &MissingArgsError{Command: name, Missing: cmd.Placeholders()[n:]}
	}
	if !cmd.Variadic && n > required {
		return &TooManyArgsError{Command: name, Max: required, Got: n}
	}
	return nil
}

// ParseAndHandle parses args and deals with every outcome that is not an
// invocation: help is printed and the process exits with ExitOK, a missing
// command prints a hint and exits with ExitOK, and usage errors are printed
// as "program[: command]: message" before exiting with ExitUsage.
//
// It returns nil only when the exit function returns, as in tests.
func (c *Captain) ParseAndHandle(args []string) *Invocation {
	inv, err := c.Parse(args)
	if err == nil {
		return inv
	}
	c.handle(err)
	return nil
}

// Sail parses os.Args, runs the selected command and exits on failure. A
// failing handler is reported as "program[: command]: error" and exits with
// ExitFailure.
func (c *Captain) Sail(ctx context.Context) {
	c.SailWith(ctx, os.Args[1:])
}

// SailWith is Sail with explicit arguments.
func (c *Captain) SailWith(ctx context.Context, args []string) {
	inv := c.ParseAndHandle(args)
	if inv == nil {
		return
	}
	if err := inv.Run(ctx); err != nil {
		name := ""
		if inv.Command != nil {
			name = inv.Command.Name
		}
		fmt.Fprintf(c.stderr, "%s: %v\n", c.prefix(name), err)
		c.exit(ExitFailure)
	}
}

func (c *Captain) handle(err error) {
	var help *HelpRequest
	switch {
	case errors.As(err, &help):
		fmt.Fprintln(c.stdout, help.Text)
		c.exit(ExitOK)
	case errors.Is(err, ErrNoCommand):
		fmt.Fprintf(c.stdout, "%s: %v.%s\n", c.program, err, c.hint(""))
		c.exit(ExitOK)
	case IsUsageError(err):
		fmt.Fprintln(c.stderr, c.UsageLine(err))
		c.exit(ExitUsage)
	default:
		fmt.Fprintf(c.stderr, "%s: %v\n", c.program, err)
		c.exit(ExitFailure)
	}
}

// UsageLine formats a usage error the way ParseAndHandle prints it.
func (c *Captain) UsageLine(err error) string {
	cmd := UsageCommand(err)
	line := fmt.Sprintf("%s: %v", c.prefix(cmd), err)
	var unknown *UnknownCommandError
	if errors.As(err, &unknown) {
		return line
	}
	return line + "." + c.hint(cmd)
}

func (c *Captain) prefix(cmd string) string {
	if cmd == "" {
		return c.program
	}
	return c.program + ": " + cmd
}

func (c *Captain) hint(cmd string) string {
	if c.noHelp {
		return ""
	}
	if cmd == "" {
		return fmt.Sprintf(" Try '%s --help'", c.program)
	}
	return fmt.Sprintf(" Try '%s %s --help'", c.program, cmd)
}

func (c *Captain) advance(from, to state) state {
	c.logger.Debug("transition", "from", from, "to", to)
	return to
}

func (c *Captain) fail(from state, err error) error {
	c.logger.Debug("transition", "from", from, "to", stateFailed, "err", err)
	return err
}

type state int

const (
	stateStart state = iota
	stateFlagsResolved
	stateCommandResolved
	stateArityChecked
	stateDispatched
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateFlagsResolved:
		return "flags-resolved"
	case stateCommandResolved:
		return "command-resolved"
	case stateArityChecked:
		return "arity-checked"
	case stateDispatched:
		return "dispatched"
	case stateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}
