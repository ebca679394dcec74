/*
File    : mixvm/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestNewLexer_ConsumeTokens tests the ConsumeTokens method of the Lexer
func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(NUMBER_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			Input: ` <=  + 2   {31} - 12 __a19bcd_aa90`,
			ExpectedTokens: []Token{
				NewToken(LE_OP, "<="),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(NUMBER_LIT, "31"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
				NewToken(IDENTIFIER_ID, "__a19bcd_aa90"),
			},
		},
		{
			Input: ` == != >= <= ! `,
			ExpectedTokens: []Token{
				NewToken(EQ_OP, "=="),
				NewToken(NE_OP, "!="),
				NewToken(GE_OP, ">="),
				NewToken(LE_OP, "<="),
				NewToken(NOT_OP, "!"),
			},
		},
		{
			Input: `"This is a long string  " nowAnIdentifier_234 "12"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "This is a long string  "),
				NewToken(IDENTIFIER_ID, "nowAnIdentifier_234"),
				NewToken(STRING_LIT, "12"),
			},
		},
		{
			Input: `let fun return if else while print true false nil`,
			ExpectedTokens: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(FUN_KEY, "fun"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IF_KEY, "if"),
				NewToken(ELSE_KEY, "else"),
				NewToken(WHILE_KEY, "while"),
				NewToken(PRINT_KEY, "print"),
				NewToken(TRUE_KEY, "true"),
				NewToken(FALSE_KEY, "false"),
				NewToken(NIL_KEY, "nil"),
			},
		},
		{
			Input: `3.14 0 1.5`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "3.14"),
				NewToken(NUMBER_LIT, "0"),
				NewToken(NUMBER_LIT, "1.5"),
			},
		},
		{
			Input: `// a comment
			1 + 2`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "1"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
			},
		},
	}

	for _, tc := range tests {
		lex := NewLexer(tc.Input)
		tokens := lex.ConsumeTokens()
		assert.Equal(t, len(tc.ExpectedTokens), len(tokens), "token count mismatch for input: %s", tc.Input)
		for i := range tc.ExpectedTokens {
			assert.Equal(t, tc.ExpectedTokens[i].Type, tokens[i].Type, "type mismatch at index %d for input: %s", i, tc.Input)
			assert.Equal(t, tc.ExpectedTokens[i].Literal, tokens[i].Literal, "literal mismatch at index %d for input: %s", i, tc.Input)
		}
	}
}

// TestNewLexer_Positions verifies line/column tracking across newlines.
func TestNewLexer_Positions(t *testing.T) {
	src := "let a = 1;\nlet b = 2;"
	lex := NewLexer(src)

	first := lex.NextToken()
	assert.Equal(t, LET_KEY, first.Type)
	assert.Equal(t, 1, first.Line)

	for first.Type != SEMICOLON_DELIM {
		first = lex.NextToken()
	}

	second := lex.NextToken()
	assert.Equal(t, LET_KEY, second.Type)
	assert.Equal(t, 2, second.Line)
}

// TestNewLexer_UnterminatedString ensures an unterminated string literal is
// reported as an invalid token rather than looping forever.
func TestNewLexer_UnterminatedString(t *testing.T) {
	lex := NewLexer(`"unterminated`)
	tok := lex.NextToken()
	assert.Equal(t, INVALID_TYPE, tok.Type)
}
