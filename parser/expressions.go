/*
File    : mixvm/parser/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/mixvm/ast"
	"github.com/akashmaji946/mixvm/lexer"
)

// parseExpression is the entry point for parsing expressions. It
// delegates to parseInternal with the minimum precedence, allowing every
// operator to participate.
func (par *Parser) parseExpression() ast.Expr {
	return par.parseInternal(MINIMUM_PRIORITY)
}

// parseInternal is the core of the Pratt algorithm: it parses a prefix
// expression, then repeatedly folds in infix/postfix operators whose
// precedence is at least currPrecedence.
func (par *Parser) parseInternal(currPrecedence int) ast.Expr {
	unary, has := par.UnaryFuncs[par.CurrToken.Type]
	if !has {
		par.fail("unexpected token %q", par.CurrToken.Literal)
		return nil
	}
	left := unary()
	if left == nil {
		return nil
	}
	for par.NextToken.Type != lexer.EOF_TYPE && getPrecedence(&par.NextToken) > MINIMUM_PRIORITY && getPrecedence(&par.NextToken) >= currPrecedence {
		binary, has := par.BinaryFuncs[par.NextToken.Type]
		if !has {
			break
		}
		par.advance()
		left = binary(left)
		if left == nil {
			return nil
		}
	}
	return left
}

// parseParenthesizedExpression parses `(expr)`, used purely for grouping;
// per the round-trip property, it produces the same AST as expr alone.
func (par *Parser) parseParenthesizedExpression() ast.Expr {
	par.advance() // consume '('
	inner := par.parseExpression()
	if inner == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return inner
}

// parseNumberLiteral parses a numeric literal token into an *ast.NumberLit.
func (par *Parser) parseNumberLiteral() ast.Expr {
	tok := par.CurrToken
	n, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		par.fail("malformed number literal %q", tok.Literal)
		return nil
	}
	return &ast.NumberLit{Token: tok, Value: n}
}

// parseStringLiteral parses a string literal token into an *ast.StringLit.
func (par *Parser) parseStringLiteral() ast.Expr {
	tok := par.CurrToken
	return &ast.StringLit{Token: tok, Value: tok.Literal}
}

// parseBooleanLiteral parses `true` or `false`.
func (par *Parser) parseBooleanLiteral() ast.Expr {
	tok := par.CurrToken
	return &ast.BoolLit{Token: tok, Value: tok.Type == lexer.TRUE_KEY}
}

// parseNilLiteral parses `nil`.
func (par *Parser) parseNilLiteral() ast.Expr {
	return &ast.NilLit{Token: par.CurrToken}
}

// parseIdentifierExpression parses a bare identifier reference.
func (par *Parser) parseIdentifierExpression() ast.Expr {
	tok := par.CurrToken
	return &ast.Identifier{Token: tok, Name: tok.Literal}
}

// parseUnaryExpression parses a prefix `-expr` or `!expr`.
func (par *Parser) parseUnaryExpression() ast.Expr {
	tok := par.CurrToken
	par.advance() // consume the operator
	right := par.parseInternal(PREFIX_PRIORITY)
	if right == nil {
		return nil
	}
	return &ast.Unary{Token: tok, Op: tok.Type, Right: right}
}

// parseBinaryExpression parses a left-associative infix arithmetic or
// comparison expression.
func (par *Parser) parseBinaryExpression(left ast.Expr) ast.Expr {
	tok := par.CurrToken
	prec := getPrecedence(&tok)
	par.advance() // consume the operator
	right := par.parseInternal(prec + 1)
	if right == nil {
		return nil
	}
	return &ast.Binary{Token: tok, Op: tok.Type, Left: left, Right: right}
}

// parseAssignmentExpression parses `target = value`. Assignment is
// right-associative, so the right-hand side is parsed at the same
// precedence as `=` itself (rather than one higher), letting
// `a = b = 5` parse as `a = (b = 5)`. The target must resolve to an
// identifier or an index expression; anything else is a parse error.
func (par *Parser) parseAssignmentExpression(left ast.Expr) ast.Expr {
	tok := par.CurrToken
	par.advance() // consume '='
	right := par.parseInternal(ASSIGN_PRIORITY)
	if right == nil {
		return nil
	}

	switch left.(type) {
	case *ast.Identifier, *ast.Index:
		// valid assignment target
	default:
		par.failAt(langPosOf(tok), "invalid assignment target")
		return nil
	}

	return &ast.Assign{Token: tok, Target: left, Value: right}
}

// parseCallExpression parses `callee(arg1, arg2, ...)`.
func (par *Parser) parseCallExpression(left ast.Expr) ast.Expr {
	tok := par.CurrToken // '('
	var args []ast.Expr
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		par.advance()
		arg := par.parseExpression()
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		for par.NextToken.Type == lexer.COMMA_DELIM {
			par.advance() // consume previous argument
			par.advance() // consume ','
			arg := par.parseExpression()
			if arg == nil {
				return nil
			}
			args = append(args, arg)
		}
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	return &ast.Call{Token: tok, Callee: left, Args: args}
}

// parseIndexExpression parses the postfix `target[index]`.
func (par *Parser) parseIndexExpression(left ast.Expr) ast.Expr {
	tok := par.CurrToken // '['
	par.advance()        // consume '['
	idx := par.parseExpression()
	if idx == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_BRACKET) {
		return nil
	}
	return &ast.Index{Token: tok, Target: left, Idx: idx}
}

// parseArrayLiteral parses the fixed-size array literal `[init; size]`.
func (par *Parser) parseArrayLiteral() ast.Expr {
	tok := par.CurrToken // '['
	par.advance()        // consume '['
	init := par.parseExpression()
	if init == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	par.advance() // consume ';'
	size := par.parseExpression()
	if size == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_BRACKET) {
		return nil
	}
	return &ast.ArrayLit{Token: tok, Init: init, Size: size}
}
