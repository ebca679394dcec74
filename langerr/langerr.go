/*
File    : mixvm/langerr/langerr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package langerr defines the single error type shared by every stage of the
mixvm pipeline: lexing, parsing, compiling and running. Each stage reports
failures as a *Error carrying the stage it failed in and the source position
responsible, rather than panicking.
*/
package langerr

import "fmt"

// Kind identifies which pipeline stage produced an Error.
type Kind string

const (
	Lex     Kind = "LEXER ERROR"
	Parse   Kind = "PARSER ERROR"
	Compile Kind = "COMPILE ERROR"
	Runtime Kind = "RUNTIME ERROR"
)

// Position locates an Error in the original source text.
type Position struct {
	Line   int
	Column int
}

// Error is the carrier type returned by every lex/parse/compile/run failure.
type Error struct {
	Kind    Kind
	Message string
	Pos     Position
}

// New builds an Error of the given kind at the given position.
func New(kind Kind, pos Position, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// Error implements the error interface.
// Format matches the teacher's "[line:col] KIND: message" convention.
func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d] %s: %s", e.Pos.Line, e.Pos.Column, e.Kind, e.Message)
}
