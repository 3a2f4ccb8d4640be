// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command jam is a small program built on the captain dispatcher.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yeetrun/captain/pkg/captain"
	"github.com/yeetrun/captain/pkg/columns"
	"github.com/yeetrun/captain/pkg/tui"
)

type jam struct {
	out io.Writer
	cfg jamConfig
}

func (j *jam) shout(_ context.Context, args []string, opts captain.Options) error {
	text := strings.Join(args, " ")
	if opts.Enabled("world") {
		text += " world"
	}
	_, err := fmt.Fprintln(j.out, text+"!")
	return err
}

func (j *jam) greet(_ context.Context, args []string, opts captain.Options) error {
	msg := fmt.Sprintf("%s, %s%s", j.cfg.Salutation, args[0], j.cfg.Punctuation)
	if opts.Enabled("world") {
		msg = fmt.Sprintf("%s, %s and the world%s", j.cfg.Salutation, args[0], j.cfg.Punctuation)
	}
	_, err := fmt.Fprintln(j.out, msg)
	return err
}

func (j *jam) config(_ context.Context, args []string, _ captain.Options) error {
	cfg, err := loadConfig(args[0], false)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(j.out, columns.Format(cfg.items(), 2, 0))
	return err
}

func (j *jam) commands() []captain.Command {
	return []captain.Command{
		{
			Name:        "shout",
			Description: "Shouts the given text back",
			Params:      []string{"text"},
			Variadic:    true,
			Handler:     j.shout,
		},
		{
			Name:        "greet",
			Description: "Greets someone by name",
			Params:      []string{"name"},
			Handler:     j.greet,
		},
		{
			Name:        "config",
			Description: "Prints the settings read from a TOML file",
			Params:      []string{"config_file"},
			Handler:     j.config,
		},
	}
}

func newLogger(w io.Writer) *log.Logger {
	if os.Getenv("JAM_DEBUG") == "" {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "jam",
		Level:  log.DebugLevel,
	})
}

func newCaptain(j *jam, opts ...captain.CaptainOption) (*captain.Captain, error) {
	c, err := captain.New("jam", captain.Multi(j.commands()...),
		append([]captain.CaptainOption{
			captain.WithDescription("An example program for the captain library"),
		}, opts...)...)
	if err != nil {
		return nil, err
	}
	if err := c.AddOption("world", []string{"world", "w"}, "Adds ' world' before the exclamation mark"); err != nil {
		return nil, err
	}
	return c, nil
}

func fatalf(format string, args ...any) {
	msg := fmt.Sprintf("jam: "+format, args...)
	fmt.Fprintln(os.Stderr, tui.AutoColorizer(os.Stderr).Red(msg))
	os.Exit(captain.ExitFailure)
}

func main() {
	cfg, err := loadConfig(os.Getenv(configEnv), true)
	if err != nil {
		fatalf("%v", err)
	}
	c, err := newCaptain(&jam{out: os.Stdout, cfg: cfg}, captain.WithLogger(newLogger(os.Stderr)))
	if err != nil {
		fatalf("%v", err)
	}
	c.Sail(context.Background())
}
