// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yparams

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHelp is returned by Process when the built-in help parameter ran.
// Callers should treat it as a request to exit successfully.
var ErrHelp = errors.New("help requested")

// ErrorKind identifies the category of a processing fault.
type ErrorKind int

const (
	KindInsufficientArguments ErrorKind = iota
	KindRequiredMissing
	KindValidationFailed
	KindUnhandled
	KindDuplicateIdentifier
)

func (k ErrorKind) String() string {
	switch k {
	case KindInsufficientArguments:
		return "insufficient arguments"
	case KindRequiredMissing:
		return "required missing"
	case KindValidationFailed:
		return "validation failed"
	case KindUnhandled:
		return "unhandled"
	case KindDuplicateIdentifier:
		return "duplicate identifier"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// DuplicateIdentifierError is the panic value of Register when an identifier
// is already claimed by a registered parameter.
type DuplicateIdentifierError struct {
	Identifier string // The colliding identifier of the new parameter.
	Param      string // Main identifier of the parameter already registered.
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("identifier %q is already registered by %s", e.Identifier, e.Param)
}

func (e *DuplicateIdentifierError) Kind() ErrorKind { return KindDuplicateIdentifier }

// InsufficientArgumentsError is returned when a fixed-arity parameter appears
// too close to the end of the argument vector.
type InsufficientArgumentsError struct {
	Param string
	Want  int
	Got   int
}

func (e *InsufficientArgumentsError) Error() string {
	return fmt.Sprintf("parameter '%s' consumes %d argument(s), got %d", e.Param, e.Want, e.Got)
}

func (e *InsufficientArgumentsError) Kind() ErrorKind { return KindInsufficientArguments }

// RequiredMissingError is returned when a required parameter was not present
// and none of its waivers matched.
type RequiredMissingError struct {
	Param string
}

func (e *RequiredMissingError) Error() string {
	return fmt.Sprintf("parameter '%s' is required, but not present", e.Param)
}

func (e *RequiredMissingError) Kind() ErrorKind { return KindRequiredMissing }

// ValidationError is returned when a parameter's validator rejected its
// arguments.
type ValidationError struct {
	Param string
	Args  []string
}

func (e *ValidationError) Error() string {
	if len(e.Args) == 0 {
		return fmt.Sprintf("parameter '%s' failed validation", e.Param)
	}
	return fmt.Sprintf("parameter '%s' failed validation: %s", e.Param, strings.Join(e.Args, " "))
}

func (e *ValidationError) Kind() ErrorKind { return KindValidationFailed }

// UnhandledError is returned when tokens were left over and no fallback
// handler was configured.
type UnhandledError struct {
	Args []string
}

func (e *UnhandledError) Error() string {
	if len(e.Args) == 1 {
		return fmt.Sprintf("unknown argument: %s", e.Args[0])
	}
	return fmt.Sprintf("unknown arguments: %s", strings.Join(e.Args, " "))
}

func (e *UnhandledError) Kind() ErrorKind { return KindUnhandled }

// KindOf reports the ErrorKind of err, if err (or anything it wraps) is one
// of the typed errors of this package.
func KindOf(err error) (ErrorKind, bool) {
	var k interface{ Kind() ErrorKind }
	if errors.As(err, &k) {
		return k.Kind(), true
	}
	return 0, false
}
