/*
File    : mixvm/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser implements a Pratt parser (top-down operator precedence
parser) for the mixvm language. It converts a stream of tokens from the
lexer into an Abstract Syntax Tree (ast.Program).

The parser reports the first error it encounters and stops: unlike the
teacher's error-collecting parser, mixvm's grammar is simple enough that
multi-error recovery is not worth the added resynchronization machinery,
so Parse returns as soon as one langerr.Error is produced.
*/
package parser

import (
	"github.com/akashmaji946/mixvm/ast"
	"github.com/akashmaji946/mixvm/langerr"
	"github.com/akashmaji946/mixvm/lexer"
)

type unaryParseFunction func() ast.Expr
type binaryParseFunction func(left ast.Expr) ast.Expr

// Parser holds all state needed to turn a token stream into an AST.
type Parser struct {
	Lex       lexer.Lexer
	CurrToken lexer.Token
	NextToken lexer.Token

	// Function maps for Pratt parsing: these associate token types with
	// the parsing function responsible for them.
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction
	BinaryFuncs map[lexer.TokenType]binaryParseFunction

	err *langerr.Error
}

// NewParser creates and initializes a new Parser over the given source.
func NewParser(src string) *Parser {
	par := &Parser{Lex: lexer.NewLexer(src)}
	par.init()
	return par
}

// init registers the prefix ("unary") and infix ("binary") parse
// functions that together define mixvm's grammar, then primes the
// two-token lookahead.
func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)

	// Prefix / literal positions
	par.registerUnaryFuncs(par.parseParenthesizedExpression, lexer.LEFT_PAREN)
	par.registerUnaryFuncs(par.parseNumberLiteral, lexer.NUMBER_LIT)
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE_KEY, lexer.FALSE_KEY)
	par.registerUnaryFuncs(par.parseNilLiteral, lexer.NIL_KEY)
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER_ID)
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.MINUS_OP, lexer.NOT_OP)
	par.registerUnaryFuncs(par.parseArrayLiteral, lexer.LEFT_BRACKET)

	// Infix / postfix positions
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP)
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP, lexer.EQ_OP, lexer.NE_OP)
	par.registerBinaryFuncs(par.parseAssignmentExpression, lexer.ASSIGN_OP)
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)
	par.registerBinaryFuncs(par.parseIndexExpression, lexer.LEFT_BRACKET)

	// Prime the token lookahead by advancing twice.
	par.advance()
	par.advance()
}

// registerUnaryFuncs associates a prefix parse function with one or more
// token types.
func (par *Parser) registerUnaryFuncs(fn unaryParseFunction, types ...lexer.TokenType) {
	for _, t := range types {
		par.UnaryFuncs[t] = fn
	}
}

// registerBinaryFuncs associates an infix/postfix parse function with one
// or more token types.
func (par *Parser) registerBinaryFuncs(fn binaryParseFunction, types ...lexer.TokenType) {
	for _, t := range types {
		par.BinaryFuncs[t] = fn
	}
}

// advance moves the parser forward by one token: CurrToken becomes
// NextToken, and NextToken is fetched fresh from the lexer. A token the
// lexer marked INVALID_TYPE is recorded as a langerr.Lex error at its own
// position.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
	if par.NextToken.Type == lexer.INVALID_TYPE && par.err == nil {
		par.err = langerr.New(langerr.Lex, langPosOf(par.NextToken), "invalid token %q", par.NextToken.Literal)
	}
}

// pos returns the source position of the current token, for attaching to
// a langerr.Error.
func (par *Parser) pos() langerr.Position {
	return langerr.Position{Line: par.CurrToken.Line, Column: par.CurrToken.Column}
}

// fail records the first parse error encountered. Once set, par.err short
// circuits all further parsing.
func (par *Parser) fail(format string, args ...interface{}) {
	if par.err == nil {
		par.err = langerr.New(langerr.Parse, par.pos(), format, args...)
	}
}

// failAt is like fail but attaches an explicit position rather than the
// current token's.
func (par *Parser) failAt(pos langerr.Position, format string, args ...interface{}) {
	if par.err == nil {
		par.err = langerr.New(langerr.Parse, pos, format, args...)
	}
}

// expectAdvance checks that NextToken matches expected, and if so advances
// past it. If it does not match, records a parse error and returns false.
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

// expectNext checks that NextToken matches expected without advancing.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		par.fail("expected %s, got %s %q", expected, par.NextToken.Type, par.NextToken.Literal)
		return false
	}
	return true
}

// Parse converts the full token stream into an ast.Program, returning the
// first langerr.Error encountered (if any).
func (par *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{}
	for par.CurrToken.Type != lexer.EOF_TYPE {
		if par.err != nil {
			return nil, par.err
		}
		stmt := par.parseStatement()
		if par.err != nil {
			return nil, par.err
		}
		if stmt != nil {
			program.Stmts = append(program.Stmts, stmt)
		}
		par.advance()
	}
	if par.err != nil {
		return nil, par.err
	}
	return program, nil
}
