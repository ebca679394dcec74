/*
File    : mixvm/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/mixvm/lexer"

// Operator precedence constants, following C-based language standards.
// Higher number = higher precedence (binds tighter).
//
// Precedence Hierarchy (lowest to highest):
//  1. Assignment (right-to-left)
//  2. Equality: == !=
//  3. Relational: < <= > >=
//  4. Additive: + -
//  5. Multiplicative: * /
//  6. Unary/Prefix: - !
//  7. Call / Index (postfix)
const (
	MINIMUM_PRIORITY = 0

	// Assignment operators: =
	// Example: a = b = 5 is parsed as a = (b = 5)
	ASSIGN_PRIORITY = 10

	// Equality operators: == !=
	EQUALITY_PRIORITY = 20

	// Relational operators: < > <= >=
	RELATIONAL_PRIORITY = 30

	// Additive: + -
	PLUS_PRIORITY = 40

	// Multiplicative: * /
	MUL_PRIORITY = 50

	// Unary/Prefix operators: - !
	PREFIX_PRIORITY = 60

	// Call/Index operators (highest precedence, postfix)
	CALL_PRIORITY  = 70
	INDEX_PRIORITY = 70
)

// getPrecedence returns the precedence level for a given token. This is
// central to the Pratt parsing algorithm: it determines how tightly an
// infix/postfix operator binds to its left operand. Returns
// MINIMUM_PRIORITY for tokens that are not infix/postfix operators.
func getPrecedence(tok *lexer.Token) int {
	switch tok.Type {
	case lexer.LEFT_PAREN:
		return CALL_PRIORITY
	case lexer.LEFT_BRACKET:
		return INDEX_PRIORITY
	case lexer.MUL_OP, lexer.DIV_OP:
		return MUL_PRIORITY
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY
	case lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP:
		return RELATIONAL_PRIORITY
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY
	case lexer.ASSIGN_OP:
		return ASSIGN_PRIORITY
	default:
		return MINIMUM_PRIORITY
	}
}
