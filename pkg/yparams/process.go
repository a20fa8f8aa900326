// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yparams

import (
	"slices"

	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

// invocation is the state of a single Process call.
type invocation struct {
	args    []string
	claimed set.Set[int]            // indexes into args
	matched map[*Parameter][]string // parameter -> its argument group
}

func (inv *invocation) claim(from, to int) {
	for i := from; i < to; i++ {
		inv.claimed.Add(i)
	}
}

// unclaimed returns the tokens not claimed during the scan, in order.
func (inv *invocation) unclaimed() []string {
	var out []string
	for i, arg := range inv.args {
		if !inv.claimed.Contains(i) {
			out = append(out, arg)
		}
	}
	return out
}

func (inv *invocation) has(p *Parameter) bool {
	_, ok := inv.matched[p]
	return ok
}

// Process matches args against the registered parameters and runs the
// handlers of every matched parameter in priority order.
//
// Processing is all-or-nothing: if scanning, required checks or validation
// fail, no handler runs and a typed error is returned (see
// InsufficientArgumentsError, RequiredMissingError, ValidationError and
// UnhandledError). Leftover tokens are passed to the fallback configured
// with HandleUnhandledWith, in which case no parameter handler runs and the
// fallback's error is returned.
//
// If the built-in help parameter matched, its handler runs first, no other
// handler runs, and Process returns ErrHelp.
//
// Errors returned by handlers are returned unchanged and stop dispatch.
func (r *Registry) Process(args []string) error {
	inv := &invocation{
		args:    args,
		claimed: make(set.Set[int]),
	}
	if err := r.scan(inv); err != nil {
		return err
	}

	rest := r.resolveDefault(inv, inv.unclaimed())
	if len(rest) > 0 && r.unhandled != nil {
		r.opts.Logf("yparams: routing %d unhandled token(s) to fallback: %q", len(rest), rest)
		return r.unhandled.Handle(rest)
	}

	all := r.ordered()
	if err := r.checkRequired(inv, all); err != nil {
		return err
	}
	if len(rest) > 0 {
		return &UnhandledError{Args: rest}
	}

	for _, p := range all {
		if args, ok := inv.matched[p]; ok && !p.Valid(args) {
			return &ValidationError{Param: p.name(), Args: args}
		}
	}

	for _, p := range all {
		args, ok := inv.matched[p]
		if !ok {
			continue
		}
		r.opts.Logf("yparams: running %s with %q", p.MainIdentifier(), args)
		if err := p.Accept(args); err != nil {
			return err
		}
		if p == r.help {
			return ErrHelp
		}
	}
	return nil
}

// scan walks the tokens left to right, assigning following tokens to each
// parameter whose identifier matches.
func (r *Registry) scan(inv *invocation) error {
	args := inv.args
	for i := 0; i < len(args); i++ {
		p := r.Lookup(args[i])
		if p == nil {
			continue
		}
		inv.claimed.Add(i)

		var n int
		if p.Arity.IsUnbounded() {
			n = r.countUnbounded(args, i+1)
		} else {
			n = p.Arity.Count()
			if avail := len(args) - i - 1; n > avail {
				return &InsufficientArgumentsError{Param: p.name(), Want: n, Got: avail}
			}
		}
		inv.claim(i+1, i+1+n)

		if inv.has(p) {
			// First occurrence wins; later ones are claimed but dropped.
			r.opts.Logf("yparams: ignoring repeated %s at position %d", p.MainIdentifier(), i)
		} else {
			group := make([]string, n)
			copy(group, args[i+1:i+1+n])
			mak.Set(&inv.matched, p, group)
			r.opts.Logf("yparams: matched %s with %q", p.MainIdentifier(), group)
		}
		i += n
	}
	return nil
}

// countUnbounded returns the number of tokens from args[from:] before the
// next token matching any registered identifier.
func (r *Registry) countUnbounded(args []string, from int) int {
	n := 0
	for _, arg := range args[from:] {
		if r.Lookup(arg) != nil {
			break
		}
		n++
	}
	return n
}

// resolveDefault assigns unclaimed tokens to the default parameter and
// returns the ones it did not take.
func (r *Registry) resolveDefault(inv *invocation, unclaimed []string) []string {
	d := r.def
	if d == nil || len(unclaimed) == 0 {
		return unclaimed
	}
	if d.Arity.IsUnbounded() {
		mak.Set(&inv.matched, d, unclaimed)
		r.opts.Logf("yparams: default parameter took %q", unclaimed)
		return nil
	}

	n := d.Arity.Count()
	switch {
	case n == 0:
		return unclaimed
	case len(unclaimed) == n, len(unclaimed) < n && !d.Required:
		mak.Set(&inv.matched, d, unclaimed)
		r.opts.Logf("yparams: default parameter took %q", unclaimed)
		return nil
	case len(unclaimed) < n, r.unhandled == nil && d.Required:
		// A required default only takes an exact fit. It stays unmatched so
		// the required check reports it, and every token stays unhandled in
		// case the requirement is waived.
		r.opts.Logf("yparams: default parameter wants %d token(s), got %d", n, len(unclaimed))
		return unclaimed
	}
	mak.Set(&inv.matched, d, slices.Clip(unclaimed[:n]))
	r.opts.Logf("yparams: default parameter took %q, %d token(s) left", unclaimed[:n], len(unclaimed)-n)
	return unclaimed[n:]
}

// checkRequired returns a *RequiredMissingError for the first required
// parameter, in priority order, that was not matched and not waived.
func (r *Registry) checkRequired(inv *invocation, all []*Parameter) error {
	for _, p := range all {
		if !p.Required || inv.has(p) || r.waived(inv, p) {
			continue
		}
		return &RequiredMissingError{Param: p.name()}
	}
	return nil
}

// waived reports whether p's required constraint is lifted: the help
// parameter matched, or a matched parameter answers to one of p's
// RequiredUnless identifiers.
func (r *Registry) waived(inv *invocation, p *Parameter) bool {
	if inv.has(r.help) {
		return true
	}
	for _, id := range p.RequiredUnless {
		for m := range inv.matched {
			if m != r.def && m.Matches(id) {
				return true
			}
		}
	}
	return false
}
