// Package langerr implements the error taxonomy of spec.md §7: every
// evaluation, parse, or lex failure is fatal and carries a Kind plus an
// optional source position. Formatting follows go-dws's
// internal/errors.CompilerError — a fixed-prefix line, optionally with a
// "[line:col]" location — but TinyLang errors are always fatal, so there is
// no source-context/caret rendering and no multi-error collection: the
// parser and evaluator both stop at the first error (spec.md §4.2, §4.4).
package langerr

import "fmt"

// Kind names one of the categories in spec.md §7.
type Kind string

const (
	Lex        Kind = "LexError"
	Parse      Kind = "ParseError"
	Name       Kind = "NameError"
	Type       Kind = "TypeError"
	Arity      Kind = "ArityError"
	Bounds     Kind = "BoundsError"
	Arithmetic Kind = "ArithmeticError"
	IO         Kind = "IOError"
)

// Pos is a 1-based source position. A zero value means "position unknown"
// (used for errors raised outside of lexing/parsing, e.g. a missing file).
type Pos struct {
	Line   int
	Column int
}

func (p Pos) known() bool { return p.Line > 0 }

// Error is the single error type raised by every TinyLang component.
type Error struct {
	Kind    Kind
	Message string
	Pos     Pos
}

// New creates a positioned error of the given kind.
func New(kind Kind, pos Pos, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// Newf creates a positionless error of the given kind, for failures that
// happen outside of lex/parse (missing files, runtime-only conditions).
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos.known() {
		return fmt.Sprintf("%s: [%d:%d] %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}
