package json

import (
	"errors"
	"strconv"
	"strings"
)

// Lexer messages.
const (
	msgInvalidToken        = "invalid token"
	msgValueSequence       = "expected value sequence"
	msgUnterminatedString  = "unterminated string"
	msgInvalidControl      = "invalid control character"
	msgHexDigit            = "expected hex digit in unicode escape"
	msgHexCount            = "expected exactly 4 hex digits in unicode escape"
	msgSignDigit           = "expected digit after sign"
	msgDigitOrDecimal      = "expected digit or decimal point"
	msgDigitOrExponent     = "expected digit or exponent"
	msgExponentDigitOrSign = "expected digit or sign after exponent"
	msgDigitAfterExponent  = "expected digit after exponent"
	msgNumberOutOfRange    = "number out of range"
	msgInvalidNumber       = "invalid number"
	foundEndOfInput        = "end of input"
)

const unicodeEscapeDigitCount = 4

// Lexer converts a text buffer into a sequence of tokens.
//
// A Lexer is not safe for concurrent use.
type Lexer struct {
	input  []byte
	pos    int
	line   int
	col    int
	escape EscapeMode
	err    error
}

// NewLexer returns a Lexer that scans text.
// Only [WithEscapeMode] affects a Lexer; other options are ignored.
func NewLexer(text string, opts ...Option) *Lexer {
	return newLexer([]byte(text), makeConfig(opts...))
}

func newLexer(input []byte, cfg config) *Lexer {
	return &Lexer{
		input:  input,
		line:   1,
		col:    1,
		escape: cfg.escape,
	}
}

// Token returns the next token, or a [TokenNone] token once the input is
// exhausted. After an error, every subsequent call returns the same error.
func (l *Lexer) Token() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}

	tok, err := l.scan()
	if err != nil {
		l.err = err
	}

	return tok, err
}

func (l *Lexer) scan() (Token, error) {
	l.skipWhitespace()

	pos := l.position()

	if l.eof() {
		return Token{Type: TokenNone, Pos: pos}, nil
	}

	ch := l.peek()

	switch ch {
	case '{':
		return l.single(TokenLBrace, pos), nil
	case '}':
		return l.single(TokenRBrace, pos), nil
	case '[':
		return l.single(TokenLBracket, pos), nil
	case ']':
		return l.single(TokenRBracket, pos), nil
	case ':':
		return l.single(TokenColon, pos), nil
	case ',':
		return l.single(TokenComma, pos), nil
	case '"':
		return l.lexString(pos)
	case 't':
		return l.lexSequence(pos, TokenBool, "true")
	case 'f':
		return l.lexSequence(pos, TokenBool, "false")
	case 'n':
		return l.lexSequence(pos, TokenNull, "null")
	}

	if ch == '-' || ch == '+' || isDigit(ch) {
		return l.lexNumber(pos)
	}

	return Token{}, l.fail(msgInvalidToken, quoteByte(ch))
}

// single consumes a one-byte structural token.
func (l *Lexer) single(typ TokenType, pos Position) Token {
	text := string(l.input[l.pos : l.pos+1])
	l.advance()

	return Token{Type: typ, Text: text, Pos: pos}
}

// lexSequence matches the literal want byte for byte.
func (l *Lexer) lexSequence(pos Position, typ TokenType, want string) (Token, error) {
	for i := range len(want) {
		if l.eof() {
			return Token{}, l.fail(msgValueSequence+" "+strconv.Quote(want), foundEndOfInput)
		}

		if ch := l.peek(); ch != want[i] {
			return Token{}, l.fail(msgValueSequence+" "+strconv.Quote(want), quoteByte(ch))
		}

		l.advance()
	}

	return Token{Type: typ, Text: want, Pos: pos}, nil
}

// lexString scans a string literal starting at its opening quote.
func (l *Lexer) lexString(pos Position) (Token, error) {
	l.advance() // opening quote

	var sb strings.Builder

	for !l.eof() {
		// Copy the longest run of plain bytes in one step.
		start := l.pos
		for !l.eof() && l.peek() != '"' && l.peek() != '\\' {
			l.advance()
		}

		sb.Write(l.input[start:l.pos])

		if l.eof() {
			break
		}

		if l.peek() == '"' {
			l.advance()

			return Token{Type: TokenString, Text: sb.String(), Pos: pos}, nil
		}

		err := l.lexEscape(&sb)
		if err != nil {
			return Token{}, err
		}
	}

	return Token{}, l.fail(msgUnterminatedString, foundEndOfInput)
}

// lexEscape decodes one escape sequence starting at its backslash.
func (l *Lexer) lexEscape(sb *strings.Builder) error {
	l.advance() // backslash

	if l.eof() {
		return l.fail(msgUnterminatedString, foundEndOfInput)
	}

	ch := l.peek()

	switch ch {
	case '"', '\\', '/':
		sb.WriteByte(ch)
	case 'b', 'f', 'n', 'r', 't':
		if l.escape == EscapeDecode {
			sb.WriteByte(controlChar(ch))
		} else {
			sb.WriteByte('\\')
			sb.WriteByte(ch)
		}
	case 'u':
		l.advance()

		return l.lexUnicode(sb)
	default:
		return l.fail(msgInvalidControl, quoteByte(ch))
	}

	l.advance()

	return nil
}

// lexUnicode copies the four hex digits following \u verbatim.
func (l *Lexer) lexUnicode(sb *strings.Builder) error {
	for range unicodeEscapeDigitCount {
		if l.eof() {
			return l.fail(msgHexDigit, foundEndOfInput)
		}

		ch := l.peek()
		if !isHexDigit(ch) {
			return l.fail(msgHexDigit, quoteByte(ch))
		}

		sb.WriteByte(ch)
		l.advance()
	}

	if !l.eof() && isHexDigit(l.peek()) {
		return l.fail(msgHexCount, quoteByte(l.peek()))
	}

	return nil
}

// numberState is a state of the number literal scanner.
type numberState int

const (
	stateSign numberState = iota
	stateDigit
	stateDecimal
	stateExponent
	stateExponentDigit
	stateEnd
)

// lexNumber scans a number literal starting at its sign or first digit.
// The byte that terminates the literal is left for the next token.
func (l *Lexer) lexNumber(pos Position) (Token, error) {
	start := l.pos

	state := stateDigit
	if ch := l.peek(); ch == '+' || ch == '-' {
		state = stateSign
	}

	l.advance()

	for state != stateEnd {
		next, msg := l.transition(state)
		if msg != "" {
			found := foundEndOfInput
			if !l.eof() {
				found = quoteByte(l.peek())
			}

			return Token{}, l.fail(msg, found)
		}

		state = next
		if state != stateEnd {
			l.advance()
		}
	}

	text := string(l.input[start:l.pos])

	num, err := strconv.ParseFloat(text, 64)
	if err != nil {
		msg := msgInvalidNumber
		if errors.Is(err, strconv.ErrRange) {
			msg = msgNumberOutOfRange
		}

		return Token{}, &LexError{Pos: pos, Msg: msg, Found: text}
	}

	return Token{Type: TokenNumber, Text: text, Pos: pos, num: num}, nil
}

// transition returns the state reached by consuming the current byte, or a
// failure message if the byte is not acceptable in state.
func (l *Lexer) transition(state numberState) (numberState, string) {
	end := l.eof()

	var ch byte
	if !end {
		ch = l.peek()
	}

	terminal := end || isSpace(ch) || isDelimiter(ch)

	switch state {
	case stateSign:
		if !end && isDigit(ch) {
			return stateDigit, ""
		}

		return state, msgSignDigit

	case stateDigit:
		switch {
		case terminal:
			return stateEnd, ""
		case isDigit(ch):
			return stateDigit, ""
		case ch == '.':
			return stateDecimal, ""
		}

		return state, msgDigitOrDecimal

	case stateDecimal:
		switch {
		case terminal:
			return stateEnd, ""
		case isDigit(ch):
			return stateDecimal, ""
		case ch == 'e' || ch == 'E':
			return stateExponent, ""
		}

		return state, msgDigitOrExponent

	case stateExponent:
		switch {
		case end:
		case isDigit(ch):
			return stateExponentDigit, ""
		case (ch == '+' || ch == '-') && isExponentMark(l.input[l.pos-1]):
			return stateExponent, ""
		}

		return state, msgExponentDigitOrSign

	case stateExponentDigit:
		switch {
		case terminal:
			return stateEnd, ""
		case isDigit(ch):
			return stateExponentDigit, ""
		}

		return state, msgDigitAfterExponent

	default:
		return stateEnd, ""
	}
}

func (l *Lexer) fail(msg, found string) error {
	return &LexError{Pos: l.position(), Msg: msg, Found: found}
}

func (l *Lexer) peek() byte { return l.input[l.pos] }

func (l *Lexer) eof() bool { return l.pos >= len(l.input) }

func (l *Lexer) advance() {
	if l.eof() {
		return
	}

	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	l.pos++
}

func (l *Lexer) position() Position {
	return Position{Offset: l.pos, Line: l.line, Column: l.col}
}

func (l *Lexer) skipWhitespace() {
	for !l.eof() && isSpace(l.peek()) {
		l.advance()
	}
}

// Character classification

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

func isDelimiter(b byte) bool {
	return b == ',' || b == '}' || b == ']'
}

func isExponentMark(b byte) bool { return b == 'e' || b == 'E' }

func controlChar(letter byte) byte {
	switch letter {
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	default:
		return '\t'
	}
}
