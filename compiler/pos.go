/*
File    : mixvm/compiler/pos.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package compiler

import (
	"github.com/akashmaji946/mixvm/ast"
	"github.com/akashmaji946/mixvm/langerr"
	"github.com/akashmaji946/mixvm/lexer"
)

// tokPos converts a lexer.Token's line/column into a langerr.Position.
func tokPos(tok lexer.Token) langerr.Position {
	return langerr.Position{Line: tok.Line, Column: tok.Column}
}

// posOf extracts the source position carried by an expression node, used
// to attach positions to instructions compiled from nodes that do not
// otherwise have an obvious associated token (e.g. the Pop closing an
// expression statement).
func posOf(expr ast.Expr) langerr.Position {
	switch n := expr.(type) {
	case *ast.NumberLit:
		return tokPos(n.Token)
	case *ast.StringLit:
		return tokPos(n.Token)
	case *ast.BoolLit:
		return tokPos(n.Token)
	case *ast.NilLit:
		return tokPos(n.Token)
	case *ast.Identifier:
		return tokPos(n.Token)
	case *ast.Unary:
		return tokPos(n.Token)
	case *ast.Binary:
		return tokPos(n.Token)
	case *ast.Call:
		return tokPos(n.Token)
	case *ast.Index:
		return tokPos(n.Token)
	case *ast.ArrayLit:
		return tokPos(n.Token)
	case *ast.Assign:
		return tokPos(n.Token)
	default:
		return langerr.Position{}
	}
}
