// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The yparams-demo command prints the lines of a file that match a set of
// patterns. It exists to exercise the yparams package end to end.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/yeetrun/yparams/pkg/tui"
	"github.com/yeetrun/yparams/pkg/yparams"
	"golang.org/x/term"
	"tailscale.com/util/must"
)

const program = "yparams-demo"

// errUsage is returned by the unhandled-token fallback after it has printed
// its hint.
var errUsage = errors.New("usage error")

type app struct {
	logger *log.Logger
	stdout io.Writer
	stderr io.Writer
	cwd    string
	color  bool

	file       string
	lines      int
	grep       []string
	ignoreCase bool
	output     string
	toStdout   bool
	count      bool
}

func main() {
	a := &app{
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: program}),
		stdout: os.Stdout,
		stderr: os.Stderr,
		cwd:    must.Get(os.Getwd()),
		color:  term.IsTerminal(int(os.Stdout.Fd())),
	}
	os.Exit(a.main(os.Args[1:]))
}

// main processes args and runs the command, returning the exit code.
func (a *app) main(args []string) int {
	r := newRegistry(a)
	// Raise the level before Process so the scan trace is logged too.
	if slices.ContainsFunc(args, r.Lookup("--verbose").Matches) {
		a.logger.SetLevel(log.DebugLevel)
	}
	if err := r.Process(args); err != nil {
		switch {
		case errors.Is(err, yparams.ErrHelp):
			return 0
		case errors.Is(err, errUsage):
			return 2
		}
		if _, ok := yparams.KindOf(err); ok {
			a.usageError(err)
			return 2
		}
		a.logger.Error("failed to apply arguments", "err", err)
		return 1
	}
	if err := a.run(); err != nil {
		a.logger.Error("failed", "err", err)
		return 1
	}
	return 0
}

func (a *app) usageError(err error) {
	c := tui.NewColorizer(a.color)
	fmt.Fprintf(a.stderr, "%s %v\n", c.Wrap(tui.StyleError, "Error:"), err)
	fmt.Fprintln(a.stderr, c.Wrap(tui.StyleDim, fmt.Sprintf("Run '%s --help' for usage.", program)))
}

func newRegistry(a *app) *yparams.Registry {
	r := yparams.New(
		yparams.WithProgram(program, "Print the lines of FILE that contain any PATTERN."),
		yparams.WithOutput(a.stdout),
		yparams.WithColor(a.color),
		yparams.WithLogf(func(format string, args ...any) {
			a.logger.Debugf(format, args...)
		}),
	)

	r.Register(&yparams.Parameter{
		Identifiers: []string{"--verbose", "-v"},
		Description: "Log how arguments are processed",
		Priority:    20,
		Handler: yparams.HandlerFunc(func([]string) error {
			a.logger.SetLevel(log.DebugLevel)
			return nil
		}),
	})
	r.Register(&yparams.Parameter{
		Identifiers: []string{"--config"},
		Description: "Read defaults from a TOML or YAML file",
		ArgNames:    []string{"CONFIG"},
		Arity:       yparams.Fixed(1),
		Priority:    10,
		Validator: yparams.ValidatorFunc(func(args []string) bool {
			fi, err := os.Stat(args[0])
			return err == nil && fi.Mode().IsRegular()
		}),
		Handler: yparams.HandlerFunc(func(args []string) error {
			s, err := loadSettings(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("loaded config", "path", args[0])
			a.lines = s.Lines
			a.grep = s.Grep
			a.ignoreCase = s.IgnoreCase
			return nil
		}),
	})
	r.Register(&yparams.Parameter{
		Identifiers: []string{"--lines", "-n"},
		Description: "Stop after N matching lines",
		ArgNames:    []string{"N"},
		Arity:       yparams.Fixed(1),
		Validator: yparams.ValidatorFunc(func(args []string) bool {
			n, err := strconv.Atoi(args[0])
			return err == nil && n >= 0
		}),
		Handler: yparams.HandlerFunc(func(args []string) error {
			a.lines, _ = strconv.Atoi(args[0])
			return nil
		}),
	})
	r.Register(&yparams.Parameter{
		Identifiers: []string{"--grep", "-g"},
		Description: "Keep lines containing any PATTERN (consumes until the next flag)",
		ArgNames:    []string{"PATTERN"},
		Arity:       yparams.Unbounded,
		Validator: yparams.ValidatorFunc(func(args []string) bool {
			return len(args) > 0
		}),
		Handler: yparams.HandlerFunc(func(args []string) error {
			a.grep = args
			return nil
		}),
	})
	r.Register(&yparams.Parameter{
		Identifiers:    []string{"--output", "-o"},
		Description:    "Write matching lines to OUT",
		ArgNames:       []string{"OUT"},
		Arity:          yparams.Fixed(1),
		Required:       true,
		RequiredUnless: []string{"--stdout", "--count"},
		Handler: yparams.HandlerFunc(func(args []string) error {
			a.output = args[0]
			return nil
		}),
	})
	r.Register(&yparams.Parameter{
		Identifiers: []string{"--stdout"},
		Description: "Write matching lines to standard output",
		Handler: yparams.HandlerFunc(func([]string) error {
			a.toStdout = true
			return nil
		}),
	})
	r.Register(&yparams.Parameter{
		Identifiers: []string{"--count", "-c"},
		Description: "Only print the number of matching lines",
		Handler: yparams.HandlerFunc(func([]string) error {
			a.count = true
			return nil
		}),
	})
	r.SetDefault(&yparams.Parameter{
		ArgNames: []string{"FILE"},
		Arity:    yparams.Fixed(1),
		Required: true,
		Handler: yparams.HandlerFunc(func(args []string) error {
			a.file = args[0]
			return nil
		}),
	})
	r.HandleUnhandledWith(yparams.HandlerFunc(func(args []string) error {
		a.usageError(&yparams.UnhandledError{Args: args})
		return errUsage
	}))
	return r
}
