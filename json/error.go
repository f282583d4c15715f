package json

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrLex              = NewError("lexical error")
	ErrParse            = NewError("parse error")
	ErrMaxDepthExceeded = NewError("maximum nesting depth exceeded")
	ErrIndexOutOfRange  = NewError("index out of range")
	ErrReadInput        = NewError("failed to read input")
)

// Error is an error with optional structured logging attributes.
// It implements both error and slog.LogValuer.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError returns err as an *Error, wrapping it if necessary.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t == e || (t.err == nil && t.msg != "" && t.msg == e.msg)
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.Any("cause", e.err))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
	}
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// LexError reports a malformed token: an invalid character, an unterminated
// string or escape, or invalid number syntax.
type LexError struct {
	Pos   Position // position of the offending byte
	Msg   string   // what the lexer expected, e.g. "invalid token"
	Found string   // the offending text, or "end of input"
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return positionMessage(e.Msg, e.Pos, e.Found)
}

// Unwrap returns [ErrLex].
func (e *LexError) Unwrap() error { return ErrLex }

// LogValue implements slog.LogValuer.
func (e *LexError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", e.Msg),
		slog.String("found", e.Found),
		slog.Int("line", e.Pos.Line),
		slog.Int("column", e.Pos.Column),
	)
}

// ParseError reports a token that does not fit the grammar at its position.
type ParseError struct {
	Pos      Position // position of the offending token
	Expected string   // description of the expected token class
	Found    string   // the offending token text, or "end of input"
	Err      error    // optional cause, e.g. ErrMaxDepthExceeded
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := positionMessage("expected "+e.Expected, e.Pos, e.Found)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns [ErrParse] and the cause, if any.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}

	return []error{ErrParse, e.Err}
}

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("expected", e.Expected),
		slog.String("found", e.Found),
		slog.Int("line", e.Pos.Line),
		slog.Int("column", e.Pos.Column),
	}

	if e.Err != nil {
		attrs = append(attrs, slog.String("cause", e.Err.Error()))
	}

	return slog.GroupValue(attrs...)
}

// ErrorPosition returns the source position carried by err, if any.
func ErrorPosition(err error) (Position, bool) {
	if le := (*LexError)(nil); errors.As(err, &le) {
		return le.Pos, true
	}

	if pe := (*ParseError)(nil); errors.As(err, &pe) {
		return pe.Pos, true
	}

	return Position{}, false
}

func positionMessage(msg string, pos Position, found string) string {
	var sb strings.Builder

	sb.WriteString(msg)
	sb.WriteString(" at ")
	sb.WriteString(pos.String())

	if found != "" {
		sb.WriteString(" but found ")
		sb.WriteString(found)
	}

	return sb.String()
}

// quoteByte renders a single input byte for error messages.
func quoteByte(b byte) string {
	return strconv.QuoteToASCII(string([]byte{b}))
}
