// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yparams

import (
	"io"
	"strings"

	"github.com/yeetrun/yparams/pkg/tui"
)

// WriteUsage writes the usage dialog for r to w. It is what the default help
// handler prints.
//
// The first line lists the default parameter and every required parameter
// with its argument clarifiers. It is followed by the program description
// and one line per registered parameter.
func WriteUsage(w io.Writer, r *Registry) error {
	opts := r.Options()
	c := tui.NewColorizer(!opts.NoColor)

	var b strings.Builder
	b.WriteString(c.Wrap(tui.StyleHeading, "Usage:"))
	if opts.Program != "" {
		b.WriteString(" " + opts.Program)
	}
	if d := r.Default(); d != nil {
		b.WriteString(" " + c.Wrap(tui.StyleArg, defaultSynopsis(d)))
	}
	for _, p := range r.Parameters() {
		if !p.Required {
			continue
		}
		b.WriteString(" " + c.Wrap(tui.StyleFlag, p.MainIdentifier()))
		if args := argSynopsis(p); args != "" {
			b.WriteString(" " + c.Wrap(tui.StyleArg, args))
		}
	}
	b.WriteString("\n")
	if opts.Description != "" {
		b.WriteString(opts.Description + "\n")
	}
	b.WriteString("\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	type row struct {
		styled, desc string
		width        int
	}
	var rows []row
	width := 0
	for _, p := range r.Parameters() {
		ids := make([]string, len(p.Identifiers))
		for i, id := range p.Identifiers {
			ids[i] = c.Wrap(tui.StyleFlag, id)
		}
		plain := strings.Join(p.Identifiers, ", ")
		styled := strings.Join(ids, ", ")
		if args := argSynopsis(p); args != "" {
			plain += " " + args
			styled += " " + c.Wrap(tui.StyleArg, args)
		}
		rows = append(rows, row{styled: styled, desc: p.Description, width: len(plain)})
		width = max(width, len(plain))
	}

	// Widths come from the unstyled text so escapes do not skew the columns.
	b.Reset()
	for _, rw := range rows {
		b.WriteString("  " + rw.styled)
		if rw.desc != "" {
			b.WriteString(strings.Repeat(" ", width-rw.width+2) + rw.desc)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// argSynopsis renders p's clarifiers, e.g. "<FILE>" or "<PATTERN>...".
func argSynopsis(p *Parameter) string {
	names := p.argNames()
	if len(names) == 0 {
		return ""
	}
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = "<" + n + ">"
	}
	s := strings.Join(parts, " ")
	if p.Arity.IsUnbounded() {
		s += "..."
	}
	return s
}

func defaultSynopsis(d *Parameter) string {
	s := strings.ToUpper(d.name())
	if d.Arity.IsUnbounded() {
		s += "..."
	}
	if d.Required {
		return s
	}
	return "[" + s + "]"
}
