/*
File    : mixvm/parser/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/mixvm/ast"
	"github.com/akashmaji946/mixvm/lexer"
)

// parseStatement parses a single statement, dispatching on the leading
// keyword (or falling through to an expression statement). On return,
// CurrToken rests on the statement's final token; the caller (Parse or
// parseBlock) advances past it.
func (par *Parser) parseStatement() ast.Stmt {
	switch par.CurrToken.Type {
	case lexer.SEMICOLON_DELIM:
		return nil
	case lexer.LET_KEY:
		return par.parseVarDecl()
	case lexer.LEFT_BRACE:
		return par.parseBlock()
	case lexer.IF_KEY:
		return par.parseIf()
	case lexer.WHILE_KEY:
		return par.parseWhile()
	case lexer.FUN_KEY:
		return par.parseFunDecl()
	case lexer.RETURN_KEY:
		return par.parseReturn()
	case lexer.PRINT_KEY:
		return par.parsePrint()
	default:
		return par.parseExprStmt()
	}
}

// parseVarDecl parses `let name (= expr)? ;`. With no initializer, the
// variable is initialized to nil.
func (par *Parser) parseVarDecl() ast.Stmt {
	tok := par.CurrToken
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	name := par.CurrToken.Literal

	decl := &ast.VarDecl{Token: tok, Name: name}
	if par.NextToken.Type == lexer.ASSIGN_OP {
		par.advance() // consume identifier, land on '='
		par.advance() // consume '=', land on first token of expr
		expr := par.parseExpression()
		if expr == nil {
			return nil
		}
		decl.Init = expr
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return decl
}

// parseBlock parses `{ stmt... }`. CurrToken must be '{' on entry; on
// return CurrToken rests on the closing '}'.
func (par *Parser) parseBlock() *ast.Block {
	block := &ast.Block{}
	par.advance() // consume '{'
	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if par.err != nil {
			return nil
		}
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
		par.advance()
	}
	if par.CurrToken.Type != lexer.RIGHT_BRACE {
		par.fail("unterminated block, expected %s", lexer.RIGHT_BRACE)
		return nil
	}
	return block
}

// parseIf parses `if (cond) { ... } (else (if ... | { ... }))?`.
func (par *Parser) parseIf() ast.Stmt {
	tok := par.CurrToken
	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance() // consume '(', land on condition
	cond := par.parseExpression()
	if cond == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	then := par.parseBlock()
	if then == nil {
		return nil
	}

	node := &ast.If{Token: tok, Cond: cond, Then: then}

	if par.NextToken.Type == lexer.ELSE_KEY {
		par.advance() // consume '}', land on 'else'
		par.advance() // consume 'else'
		if par.CurrToken.Type == lexer.IF_KEY {
			nested := par.parseIf()
			if nested == nil {
				return nil
			}
			node.Else = nested
		} else if par.CurrToken.Type == lexer.LEFT_BRACE {
			elseBlock := par.parseBlock()
			if elseBlock == nil {
				return nil
			}
			node.Else = elseBlock
		} else {
			par.fail("expected %s or %s after else, got %s", lexer.LEFT_BRACE, lexer.IF_KEY, par.CurrToken.Type)
			return nil
		}
	}
	return node
}

// parseWhile parses `while (cond) { ... }`.
func (par *Parser) parseWhile() ast.Stmt {
	tok := par.CurrToken
	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}
	par.advance() // consume '(', land on condition
	cond := par.parseExpression()
	if cond == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	body := par.parseBlock()
	if body == nil {
		return nil
	}
	return &ast.While{Token: tok, Cond: cond, Body: body}
}

// parseFunDecl parses `fun name(p1, p2, ...) { body }`.
func (par *Parser) parseFunDecl() ast.Stmt {
	tok := par.CurrToken
	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}
	name := par.CurrToken.Literal

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	var params []string
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		if !par.expectAdvance(lexer.IDENTIFIER_ID) {
			return nil
		}
		params = append(params, par.CurrToken.Literal)
		for par.NextToken.Type == lexer.COMMA_DELIM {
			par.advance() // consume previous identifier
			par.advance() // consume ','
			if par.CurrToken.Type != lexer.IDENTIFIER_ID {
				par.fail("expected parameter name, got %s", par.CurrToken.Type)
				return nil
			}
			params = append(params, par.CurrToken.Literal)
		}
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}
	body := par.parseBlock()
	if body == nil {
		return nil
	}
	return &ast.FunDecl{Token: tok, Name: name, Params: params, Body: body}
}

// parseReturn parses `return (expr)? ;`.
func (par *Parser) parseReturn() ast.Stmt {
	tok := par.CurrToken
	par.advance() // consume 'return'
	if par.CurrToken.Type == lexer.SEMICOLON_DELIM {
		return &ast.Return{Token: tok}
	}
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &ast.Return{Token: tok, Value: expr}
}

// parsePrint parses `print expr ;`.
func (par *Parser) parsePrint() ast.Stmt {
	tok := par.CurrToken
	par.advance() // consume 'print'
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &ast.Print{Token: tok, Expr: expr}
}

// parseExprStmt parses an expression followed by a semicolon; the
// expression's value is discarded at run time.
func (par *Parser) parseExprStmt() ast.Stmt {
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}
	return &ast.ExprStmt{Expr: expr}
}
