/*
File    : mixvm/parser/pos.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/mixvm/langerr"
	"github.com/akashmaji946/mixvm/lexer"
)

// langPosOf converts a lexer.Token's line/column into a langerr.Position.
func langPosOf(tok lexer.Token) langerr.Position {
	return langerr.Position{Line: tok.Line, Column: tok.Column}
}
