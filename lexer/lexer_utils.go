/*
File: mixvm/lexer/lexer_utils.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

import "unicode"

// isWhitespace checks if the given byte is a whitespace character.
func isWhitespace(curr byte) bool {
	return unicode.IsSpace(rune(curr))
}

// isAlphanumeric checks if the given byte is a letter or a digit.
func isAlphanumeric(curr byte) bool {
	return isAlpha(curr) || isNumeric(curr)
}

// isNumeric checks if the given byte is a numeric digit (0-9).
func isNumeric(curr byte) bool {
	return unicode.IsDigit(rune(curr))
}

// isAlpha checks if the given byte is an alphabetic character (a-z, A-Z).
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// readStringLiteral reads and tokenizes a string literal from the source.
// String literals are enclosed in double quotes with no escape processing
// beyond ending on the matching quote.
func readStringLiteral(lex *Lexer) Token {
	startLine, startColumn := lex.Line, lex.Column
	lex.Advance() // Consume opening quote

	start := lex.Position
	for lex.Current != '"' {
		if lex.Current == 0 {
			// Unterminated string: return INVALID_TYPE, the caller surfaces
			// this as a langerr.Error{Kind: langerr.Lex}.
			return NewTokenWithMetadata(INVALID_TYPE, lex.Src[start:lex.Position], startLine, startColumn)
		}
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0
		}
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]
	lex.Advance() // Consume closing quote
	return NewTokenWithMetadata(STRING_LIT, literal, startLine, startColumn)
}

// readNumber reads and tokenizes a numeric literal from the source.
// Numbers are decimal with an optional fractional part; no leading-dot
// form and no scientific notation are required by the language.
func readNumber(lex *Lexer) Token {
	startLine, startColumn := lex.Line, lex.Column
	start := lex.Position

	for isNumeric(lex.Current) {
		lex.Advance()
	}

	if lex.Current == '.' && isNumeric(lex.Peek()) {
		lex.Advance() // consume '.'
		for isNumeric(lex.Current) {
			lex.Advance()
		}
	}

	literal := lex.Src[start:lex.Position]
	return NewTokenWithMetadata(NUMBER_LIT, literal, startLine, startColumn)
}

// readIdentifier reads and tokenizes an identifier or keyword from the
// source. Identifiers start with a letter or underscore and continue with
// letters, digits, or underscores.
func readIdentifier(lex *Lexer) Token {
	startLine, startColumn := lex.Line, lex.Column
	position := lex.Position

	lex.Advance() // first char already validated by the caller
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	literal := lex.Src[position:lex.Position]
	return NewTokenWithMetadata(lookupIdent(literal), literal, startLine, startColumn)
}
