// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yparams

import (
	"cmp"
	"io"
	"math"
	"os"
	"slices"

	"tailscale.com/types/logger"
)

// Built-in help identifiers.
const (
	HelpFlag      = "--help"
	HelpFlagShort = "-?"
)

// Options configures a Registry.
type Options struct {
	// Program and Description head the usage output.
	Program     string
	Description string

	// Out receives usage output from the default help handler.
	// Defaults to os.Stdout.
	Out io.Writer

	// Help replaces the default help handler. Process still returns ErrHelp
	// after it runs.
	Help Handler

	// NoColor disables colored usage output.
	NoColor bool

	// Logf receives debug logs of each processing stage. Defaults to
	// logger.Discard.
	Logf logger.Logf
}

// Option mutates Options.
type Option func(*Options)

// WithProgram sets the program name and description shown in usage output.
func WithProgram(name, description string) Option {
	return func(o *Options) {
		o.Program = name
		o.Description = description
	}
}

// WithOutput sets the writer used by the default help handler.
func WithOutput(w io.Writer) Option {
	return func(o *Options) { o.Out = w }
}

// WithHelp replaces the default help handler.
func WithHelp(h Handler) Option {
	return func(o *Options) { o.Help = h }
}

// WithColor enables or disables colored usage output.
func WithColor(enabled bool) Option {
	return func(o *Options) { o.NoColor = !enabled }
}

// WithLogf sets the debug logger.
func WithLogf(logf logger.Logf) Option {
	return func(o *Options) { o.Logf = logf }
}

// Registry holds the registered parameters, the optional default parameter
// and the optional unhandled-token fallback.
//
// A Registry is not safe for concurrent use. Populate it before the first
// call to Process.
type Registry struct {
	opts Options

	params    []*Parameter // sorted by Priority, descending, stable
	def       *Parameter
	unhandled Handler
	help      *Parameter
}

// New returns a Registry with the built-in help parameter registered.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(&r.opts)
	}
	if r.opts.Out == nil {
		r.opts.Out = os.Stdout
	}
	if r.opts.Logf == nil {
		r.opts.Logf = logger.Discard
	}
	h := r.opts.Help
	if h == nil {
		h = HandlerFunc(func([]string) error {
			return WriteUsage(r.opts.Out, r)
		})
	}
	r.help = &Parameter{
		Identifiers: []string{HelpFlag, HelpFlagShort},
		Description: "Shows this help dialog.",
		Priority:    math.MaxInt,
		Handler:     h,
	}
	r.Register(r.help)
	return r
}

// Register adds p to the registry.
//
// Register panics with a *DuplicateIdentifierError if any identifier of p
// matches a registered parameter (under that parameter's case rule), and
// panics if p is nil or has no identifiers. These are setup mistakes, not
// input errors.
func (r *Registry) Register(p *Parameter) {
	if p == nil {
		panic("yparams: Register called with nil parameter")
	}
	if len(p.Identifiers) == 0 {
		panic("yparams: parameter has no identifiers")
	}
	if err := r.checkDuplicate(p); err != nil {
		panic(err)
	}
	r.params = append(r.params, p)
	slices.SortStableFunc(r.params, func(a, b *Parameter) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
}

func (r *Registry) checkDuplicate(p *Parameter) error {
	for _, id := range p.Identifiers {
		for _, existing := range r.params {
			if existing.Matches(id) {
				return &DuplicateIdentifierError{
					Identifier: id,
					Param:      existing.MainIdentifier(),
				}
			}
		}
	}
	return nil
}

// SetDefault sets the default parameter, which absorbs positional tokens not
// claimed by any identified parameter. The last call wins; nil clears it.
func (r *Registry) SetDefault(p *Parameter) {
	r.def = p
}

// HandleUnhandledWith sets the fallback that receives tokens nothing else
// claimed. Without one, such tokens make Process fail with an
// *UnhandledError. nil clears it.
func (r *Registry) HandleUnhandledWith(h Handler) {
	r.unhandled = h
}

// Parameters returns the registered parameters in execution order, including
// the built-in help parameter. The returned slice is a copy.
func (r *Registry) Parameters() []*Parameter {
	return slices.Clone(r.params)
}

// Default returns the default parameter, or nil.
func (r *Registry) Default() *Parameter {
	return r.def
}

// Help returns the built-in help parameter.
func (r *Registry) Help() *Parameter {
	return r.help
}

// Options returns the options r was created with.
func (r *Registry) Options() Options {
	return r.opts
}

// Lookup returns the highest priority registered parameter matching token,
// or nil.
func (r *Registry) Lookup(token string) *Parameter {
	for _, p := range r.params {
		if p.Matches(token) {
			return p
		}
	}
	return nil
}

// ordered returns the registered parameters plus the default parameter,
// stably sorted by priority. The default sorts after registered parameters
// of equal priority.
func (r *Registry) ordered() []*Parameter {
	if r.def == nil {
		return r.params
	}
	all := append(slices.Clone(r.params), r.def)
	slices.SortStableFunc(all, func(a, b *Parameter) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
	return all
}
