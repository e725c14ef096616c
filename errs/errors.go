/*
File    : gomixlite/errs/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package errs defines the three error kinds the interpreter can raise
// (IllegalCharacter, InvalidSyntax, Runtime) and renders them to text,
// including the call-stack traceback for Runtime errors.
package errs

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/gomixlite/token"
)

// Kind distinguishes the pipeline stage that produced the error.
type Kind string

const (
	IllegalCharacter Kind = "IllegalCharacter"
	InvalidSyntax    Kind = "InvalidSyntax"
	Runtime          Kind = "Runtime"
)

// Frame is one entry in a Runtime error's call stack: the display name of
// the context the error passed through, and the position in that context
// (or its caller) the error is attributed to.
type Frame struct {
	DisplayName string
	Pos         token.Position
}

// Error is the single error type returned by the lexer, parser, and
// evaluator. PosStart/PosEnd bound the offending span; Frames holds the
// traceback for Runtime errors (innermost context first), empty otherwise.
type Error struct {
	Kind     Kind
	Details  string
	PosStart token.Position
	PosEnd   token.Position
	Frames   []Frame
}

// New creates a lexer/parser error (IllegalCharacter or InvalidSyntax).
// These never carry a traceback.
func New(kind Kind, posStart, posEnd token.Position, details string) *Error {
	return &Error{Kind: kind, Details: details, PosStart: posStart, PosEnd: posEnd}
}

// NewRuntime creates a Runtime error with its call-stack frames, innermost
// frame first (the order they are discovered while walking up the context
// chain from the failing expression).
func NewRuntime(posStart, posEnd token.Position, details string, frames []Frame) *Error {
	return &Error{Kind: Runtime, Details: details, PosStart: posStart, PosEnd: posEnd, Frames: frames}
}

// AsString renders the error the way the REPL and file runner display it:
// "ErrorName: details\nFile <file>, line <ln+1>" with a full traceback
// prepended for Runtime errors, rendered outermost-frame-first under a
// conventional "Traceback (most recent call last):" header — the fix for
// the original implementation's overwrite bug (spec.md §9 and §6).
func (e *Error) AsString() string {
	var b strings.Builder

	if len(e.Frames) > 0 {
		b.WriteString("Traceback (most recent call last):\n")
		for i := len(e.Frames) - 1; i >= 0; i-- {
			f := e.Frames[i]
			fmt.Fprintf(&b, "  File %s, line %d, in %s\n", f.Pos.FileName, f.Pos.Line+1, f.DisplayName)
		}
	}

	fmt.Fprintf(&b, "%s: %s\n", e.Kind, e.Details)
	fmt.Fprintf(&b, "File %s, line %d", e.PosStart.FileName, e.PosStart.Line+1)
	return b.String()
}

// Error implements the builtin error interface so *Error can travel through
// ordinary Go error-handling paths (e.g. RUN's read-file failures) as well
// as the evaluator's own RuntimeResult channel.
func (e *Error) Error() string {
	return e.AsString()
}
