package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokens scans text to exhaustion, returning every token before the first
// error along with that error.
func tokens(t *testing.T, text string, opts ...Option) ([]Token, error) {
	t.Helper()

	l := NewLexer(text, opts...)

	var toks []Token

	for {
		tok, err := l.Token()
		if err != nil {
			return toks, err
		}

		toks = append(toks, tok)

		if tok.Type == TokenNone {
			return toks, nil
		}
	}
}

func types(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}

	return out
}

func TestLexer_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t\r "} {
		toks, err := tokens(t, text)
		require.NoError(t, err)
		assert.Equal(t, []TokenType{TokenNone}, types(toks))
	}
}

func TestLexer_Structural(t *testing.T) {
	toks, err := tokens(t, `{ } [ ] : ,`)
	require.NoError(t, err)

	assert.Equal(t, []TokenType{
		TokenLBrace, TokenRBrace, TokenLBracket, TokenRBracket,
		TokenColon, TokenComma, TokenNone,
	}, types(toks))

	assert.Equal(t, Position{Offset: 2, Line: 1, Column: 3}, toks[1].Pos)
	assert.Equal(t, "]", toks[3].Text)
}

func TestLexer_Document(t *testing.T) {
	toks, err := tokens(t, `{"a": [1, true, null, "x"], "b": false}`)
	require.NoError(t, err)

	assert.Equal(t, []TokenType{
		TokenLBrace, TokenString, TokenColon,
		TokenLBracket, TokenNumber, TokenComma, TokenBool, TokenComma,
		TokenNull, TokenComma, TokenString, TokenRBracket, TokenComma,
		TokenString, TokenColon, TokenBool, TokenRBrace, TokenNone,
	}, types(toks))
}

func TestLexer_Positions(t *testing.T) {
	toks, err := tokens(t, "{\n  \"key\":\n\t42\n}")
	require.NoError(t, err)
	require.Len(t, toks, 6)

	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, toks[0].Pos)
	assert.Equal(t, Position{Offset: 4, Line: 2, Column: 3}, toks[1].Pos)
	assert.Equal(t, Position{Offset: 9, Line: 2, Column: 8}, toks[2].Pos)
	assert.Equal(t, Position{Offset: 12, Line: 3, Column: 2}, toks[3].Pos)
	assert.Equal(t, Position{Offset: 15, Line: 4, Column: 1}, toks[4].Pos)
}

func TestLexer_Strings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		mode EscapeMode
		want string
	}{
		{"plain", `"bar"`, EscapeVerbatim, "bar"},
		{"empty", `""`, EscapeVerbatim, ""},
		{"escaped quote", `"b\"ar"`, EscapeVerbatim, `b"ar`},
		{"escaped backslash", `"a\\b"`, EscapeVerbatim, `a\b`},
		{"escaped solidus", `"a\/b"`, EscapeVerbatim, "a/b"},
		{"verbatim tab", `"a\tb"`, EscapeVerbatim, `a\tb`},
		{"verbatim all", `"\b\f\n\r\t"`, EscapeVerbatim, `\b\f\n\r\t`},
		{"decoded tab", `"a\tb"`, EscapeDecode, "a\tb"},
		{"decoded all", `"\b\f\n\r\t"`, EscapeDecode, "\b\f\n\r\t"},
		{"unicode kept as hex", `"\uDEAD"`, EscapeVerbatim, "DEAD"},
		{"unicode decode mode", `"x\u00e9y"`, EscapeDecode, "x00e9y"},
		{"utf-8 bytes", `"héllo"`, EscapeVerbatim, "héllo"},
		{"raw newline", "\"a\nb\"", EscapeVerbatim, "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := NewLexer(tt.in, WithEscapeMode(tt.mode)).Token()
			require.NoError(t, err)
			assert.Equal(t, TokenString, tok.Type)
			assert.Equal(t, tt.want, tok.Text)
		})
	}
}

func TestLexer_StringErrors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		msg    string
		offset int
	}{
		{"unterminated", `"abc`, msgUnterminatedString, 4},
		{"unterminated after escape", `"abc\`, msgUnterminatedString, 5},
		{"invalid escape", `"a\xb"`, msgInvalidControl, 3},
		{"short unicode", `"\uABC"`, msgHexDigit, 6},
		{"non-hex unicode", `"\u12G4"`, msgHexDigit, 5},
		{"long unicode", `"\uABCDE"`, msgHexCount, 7},
		{"unicode at end", `"\u12`, msgHexDigit, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLexer(tt.in).Token()
			require.Error(t, err)

			var le *LexError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.msg, le.Msg)
			assert.Equal(t, tt.offset, le.Pos.Offset)
			assert.ErrorIs(t, err, ErrLex)
		})
	}
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		text string
	}{
		{"12345.67e-1", 1234.567, "12345.67e-1"},
		{"0", 0, "0"},
		{"-12", -12, "-12"},
		{"+7", 7, "+7"},
		{"3.25", 3.25, "3.25"},
		{"1.5E+3", 1500, "1.5E+3"},
		{"2.0e10", 2e10, "2.0e10"},
		{"-0.5e-2", -0.005, "-0.5e-2"},
		{"42}", 42, "42"},
		{"42,", 42, "42"},
		{"42]", 42, "42"},
		{"42 ", 42, "42"},
		{"42\n", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tok, err := NewLexer(tt.in).Token()
			require.NoError(t, err)
			assert.Equal(t, TokenNumber, tok.Type)
			assert.Equal(t, tt.text, tok.Text)
			assert.Equal(t, tt.want, tok.Number())
		})
	}
}

func TestLexer_NumberTerminatorIsNextToken(t *testing.T) {
	toks, err := tokens(t, "[1,2]")
	require.NoError(t, err)

	assert.Equal(t, []TokenType{
		TokenLBracket, TokenNumber, TokenComma, TokenNumber, TokenRBracket, TokenNone,
	}, types(toks))
}

func TestLexer_NumberErrors(t *testing.T) {
	tests := []struct {
		in     string
		msg    string
		offset int
	}{
		{"12345.67.0", msgDigitOrExponent, 8},
		{"-", msgSignDigit, 1},
		{"+a", msgSignDigit, 1},
		{"12a", msgDigitOrDecimal, 2},
		{"1e5", msgDigitOrDecimal, 1},
		{"1.5e", msgExponentDigitOrSign, 4},
		{"1.5e+", msgExponentDigitOrSign, 5},
		{"1.5e+-3", msgExponentDigitOrSign, 5},
		{"1.5e3.0", msgDigitAfterExponent, 5},
		{"1.5x", msgDigitOrExponent, 3},
		{"1:", msgDigitOrDecimal, 1},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := NewLexer(tt.in).Token()

			var le *LexError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.msg, le.Msg)
			assert.Equal(t, tt.offset, le.Pos.Offset)
		})
	}
}

func TestLexer_NumberOutOfRange(t *testing.T) {
	_, err := NewLexer("1.0e999").Token()

	var le *LexError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, msgNumberOutOfRange, le.Msg)
	assert.Equal(t, "1.0e999", le.Found)
	assert.Equal(t, 0, le.Pos.Offset)
}

func TestLexer_Literals(t *testing.T) {
	toks, err := tokens(t, "true false null")
	require.NoError(t, err)

	assert.Equal(t, []TokenType{TokenBool, TokenBool, TokenNull, TokenNone}, types(toks))
	assert.Equal(t, "true", toks[0].Text)
	assert.Equal(t, "false", toks[1].Text)
}

func TestLexer_LiteralErrors(t *testing.T) {
	tests := []struct {
		in     string
		found  string
		offset int
	}{
		{"tru", foundEndOfInput, 3},
		{"trUe", `"U"`, 2},
		{"nul}", `"}"`, 3},
		{"fals3", `"3"`, 4},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := NewLexer(tt.in).Token()

			var le *LexError
			require.ErrorAs(t, err, &le)
			assert.Contains(t, le.Msg, msgValueSequence)
			assert.Equal(t, tt.found, le.Found)
			assert.Equal(t, tt.offset, le.Pos.Offset)
		})
	}
}

func TestLexer_InvalidToken(t *testing.T) {
	_, err := NewLexer("  @").Token()

	var le *LexError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, msgInvalidToken, le.Msg)
	assert.Equal(t, Position{Offset: 2, Line: 1, Column: 3}, le.Pos)
	assert.Equal(t, `invalid token at line 1, column 3 but found "@"`, err.Error())
}

func TestLexer_ErrorIsSticky(t *testing.T) {
	l := NewLexer(`@ {}`)

	_, first := l.Token()
	require.Error(t, first)

	_, second := l.Token()
	assert.Same(t, first, second)
}
