package json

import "strconv"

// TokenType classifies a lexical unit.
type TokenType int

const (
	// TokenNone marks the end of input.
	TokenNone TokenType = iota
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenColon
	TokenComma
	TokenString
	TokenNumber
	TokenBool
	TokenNull
)

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	switch t {
	case TokenNone:
		return "end of input"
	case TokenLBrace:
		return "'{'"
	case TokenRBrace:
		return "'}'"
	case TokenLBracket:
		return "'['"
	case TokenRBracket:
		return "']'"
	case TokenColon:
		return "':'"
	case TokenComma:
		return "','"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenBool:
		return "boolean"
	case TokenNull:
		return "null"
	default:
		return "unknown"
	}
}

// Position identifies a location in the source text.
// Line and Column are 1-based; Offset is the 0-based byte offset.
type Position struct {
	Offset int
	Line   int
	Column int
}

// String returns the position formatted as "line L, column C".
func (p Position) String() string {
	return "line " + strconv.Itoa(p.Line) + ", column " + strconv.Itoa(p.Column)
}

// Token is a classified lexical unit with the position of its first byte.
//
// Text holds the literal source text, except for strings, where it holds the
// decoded contents without the surrounding quotes.
type Token struct {
	Type TokenType
	Text string
	Pos  Position

	num float64 // converted value of a TokenNumber
}

// Number returns the converted value of a number token.
func (t Token) Number() float64 { return t.num }

// describe returns the offending text of t for use in error messages.
func (t Token) describe() string {
	switch t.Type {
	case TokenNone:
		return t.Type.String()
	case TokenString:
		return strconv.Quote(t.Text)
	default:
		return "'" + t.Text + "'"
	}
}
