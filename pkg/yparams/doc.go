// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yparams is a declarative command-line parameter registry and
// dispatcher.
//
// Callers register Parameters, each with its identifiers, arity, priority,
// requiredness, an optional validator and a handler, and then hand the raw
// argument vector to Process:
//
//	r := yparams.New(yparams.WithProgram("app", "Does things."))
//	r.Register(&yparams.Parameter{
//	    Identifiers: []string{"--output", "-o"},
//	    Description: "Write results to FILE",
//	    ArgNames:    []string{"FILE"},
//	    Arity:       yparams.Fixed(1),
//	    Required:    true,
//	    Handler: yparams.HandlerFunc(func(args []string) error {
//	        output = args[0]
//	        return nil
//	    }),
//	})
//	if err := r.Process(os.Args[1:]); err != nil {
//	    if errors.Is(err, yparams.ErrHelp) {
//	        os.Exit(0)
//	    }
//	    fmt.Fprintln(os.Stderr, err)
//	    os.Exit(2)
//	}
//
// # Matching
//
// Tokens are scanned left to right. When a token equals one of a parameter's
// identifiers (case-insensitively unless CaseSensitive is set), the
// following tokens are assigned to it:
//   - Fixed(n) takes exactly n tokens; fewer remaining is an
//     *InsufficientArgumentsError.
//   - Unbounded takes every token up to the next recognized identifier.
//
// If an identifier appears more than once, the arguments of the first
// occurrence are kept. Later occurrences and their arguments are consumed
// and dropped.
//
// # Default parameter and leftovers
//
// Tokens no identifier claimed go to the default parameter set with
// SetDefault. An Unbounded default takes all of them; a Fixed(n) default
// takes up to the first n. A required Fixed(n) default only takes an exact
// fit unless a fallback will receive the excess; otherwise it is reported
// as missing. Whatever remains is passed to the fallback set
// with HandleUnhandledWith, in which case no parameter handler runs. Without
// a fallback, leftovers are an *UnhandledError so misspelled flags are never
// ignored silently.
//
// # Execution
//
// After matching, required parameters are checked (RequiredUnless lists
// identifiers whose presence waives the requirement, and --help always
// does), every validator is run, and only then are handlers invoked in
// descending Priority order. Parameters of equal priority run in
// registration order.
//
// Every Registry has a built-in --help (-?) parameter with the highest
// priority. When it matches, its handler prints the usage dialog and Process
// returns ErrHelp without running any other handler.
package yparams
