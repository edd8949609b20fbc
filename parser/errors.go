package parser

import (
	"fmt"

	"stekk/lexer"
)

// SyntaxError reports a parse failure with enough context to act on,
// per spec §6.1: a line number, a source snippet, and a human hint.
type SyntaxError struct {
	Line    int
	Context string
	Hint    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d: %s\n%s", e.Line, e.Hint, e.Context)
}

// hintFor mirrors the original interpreter's ERROR_LOOKUP table: canned
// hints for the token kinds most often missing at the point of
// failure, falling back to a generic message naming what was expected.
func hintFor(expected lexer.TokenType) string {
	switch expected {
	case lexer.SEMI:
		return "maybe a missing ';'?"
	case lexer.RBRACKET:
		return "missing ']'"
	case lexer.RPAREN:
		return "missing ')'"
	case lexer.RBRACE:
		return "missing '}'"
	case lexer.GT:
		return "missing '>'"
	default:
		return fmt.Sprintf("expected %s", expected)
	}
}
