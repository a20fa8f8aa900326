// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yparams

import (
	"fmt"
	"strings"
)

// Arity is the number of tokens a matched parameter consumes after its
// identifier. Use Fixed or Unbounded to construct one; the zero value is
// Fixed(0).
type Arity struct {
	n         int
	unbounded bool
}

// Unbounded consumes every following token up to the next recognized
// identifier or the end of the input.
var Unbounded = Arity{unbounded: true}

// Fixed returns an Arity consuming exactly n tokens. It panics if n < 0.
func Fixed(n int) Arity {
	if n < 0 {
		panic(fmt.Sprintf("yparams: negative arity %d", n))
	}
	return Arity{n: n}
}

// IsUnbounded reports whether a is Unbounded.
func (a Arity) IsUnbounded() bool { return a.unbounded }

// Count returns the fixed token count. It is 0 for Unbounded.
func (a Arity) Count() int { return a.n }

func (a Arity) String() string {
	if a.unbounded {
		return "unbounded"
	}
	return fmt.Sprintf("fixed(%d)", a.n)
}

// Handler is the action run for a matched parameter. It is also the shape of
// the unhandled-token fallback and of custom help handlers.
type Handler interface {
	Handle(args []string) error
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(args []string) error

func (f HandlerFunc) Handle(args []string) error { return f(args) }

// Validator decides whether the arguments captured for a parameter are
// acceptable.
type Validator interface {
	Validate(args []string) bool
}

// ValidatorFunc adapts a function to a Validator.
type ValidatorFunc func(args []string) bool

func (f ValidatorFunc) Validate(args []string) bool { return f(args) }

// Parameter is a registered rule. It is a plain record; set the fields you
// need and pass it to Registry.Register or Registry.SetDefault.
//
// A Parameter must not be modified after it has been registered.
type Parameter struct {
	// Identifiers are the literal tokens that trigger the parameter, e.g.
	// "--output", "-o". The first is the main identifier used in messages.
	// For the default parameter they are only used as a display name.
	Identifiers []string

	// Description is a one line summary for usage output.
	Description string

	// ArgNames clarify each argument in usage output (e.g. "FILE"). For
	// Unbounded parameters only the first entry is used.
	ArgNames []string

	Arity         Arity
	CaseSensitive bool
	Required      bool

	// RequiredUnless waives Required when a parameter matching any of these
	// identifiers was present in the same invocation.
	RequiredUnless []string

	// Priority orders handler execution; higher runs first.
	Priority int

	// Validator is optional; nil accepts any arguments.
	Validator Validator

	Handler Handler
}

// MainIdentifier returns the first identifier, or "" if there is none.
func (p *Parameter) MainIdentifier() string {
	if len(p.Identifiers) == 0 {
		return ""
	}
	return p.Identifiers[0]
}

// Matches reports whether token is one of p's identifiers, honouring
// CaseSensitive.
func (p *Parameter) Matches(token string) bool {
	for _, id := range p.Identifiers {
		if p.CaseSensitive {
			if id == token {
				return true
			}
		} else if strings.EqualFold(id, token) {
			return true
		}
	}
	return false
}

// Valid reports whether args are acceptable to p.
func (p *Parameter) Valid(args []string) bool {
	if p.Validator == nil {
		return true
	}
	return p.Validator.Validate(args)
}

// Accept runs p's handler with args.
func (p *Parameter) Accept(args []string) error {
	if p.Handler == nil {
		return nil
	}
	return p.Handler.Handle(args)
}

// name identifies p in errors. The default parameter may have no
// identifiers, in which case its first clarifier is used.
func (p *Parameter) name() string {
	if id := p.MainIdentifier(); id != "" {
		return id
	}
	if len(p.ArgNames) > 0 && p.ArgNames[0] != "" {
		return p.ArgNames[0]
	}
	return "default"
}

// argNames returns the usage clarifiers, filling in "ARG" for any fixed
// slot without one.
func (p *Parameter) argNames() []string {
	if p.Arity.IsUnbounded() {
		if len(p.ArgNames) > 0 {
			return p.ArgNames[:1]
		}
		return []string{"ARG"}
	}
	names := make([]string, p.Arity.Count())
	for i := range names {
		if i < len(p.ArgNames) && p.ArgNames[i] != "" {
			names[i] = p.ArgNames[i]
		} else {
			names[i] = "ARG"
		}
	}
	return names
}

// String returns the main identifier followed by its argument clarifiers,
// e.g. "--output <FILE>" or "--grep <PATTERN>...".
func (p *Parameter) String() string {
	var b strings.Builder
	b.WriteString(p.MainIdentifier())
	for _, name := range p.argNames() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("<" + name + ">")
	}
	if p.Arity.IsUnbounded() {
		b.WriteString("...")
	}
	return b.String()
}
