package json

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError_Message(t *testing.T) {
	_, err := Parse("}")
	require.Error(t, err)

	assert.Equal(t, "expected '{' at line 1, column 1 but found '}'", err.Error())

	_, err = Parse("")
	assert.Equal(t, "expected '{' at line 1, column 1 but found end of input", err.Error())
}

func TestParseError_WithCause(t *testing.T) {
	_, err := Parse(`{"a": {}}`, WithMaxDepth(1))
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrParse)
	assert.ErrorIs(t, err, ErrMaxDepthExceeded)
	assert.Contains(t, err.Error(), ErrMaxDepthExceeded.Error())
}

func TestErrorPosition(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Position
	}{
		{"lex", "{\n  @", Position{Offset: 4, Line: 2, Column: 3}},
		{"parse", "{\n\"a\" 1}", Position{Offset: 6, Line: 2, Column: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			require.Error(t, err)

			pos, ok := ErrorPosition(fmt.Errorf("wrapped: %w", err))
			require.True(t, ok)
			assert.Equal(t, tt.want, pos)
		})
	}

	_, ok := ErrorPosition(errors.New("plain"))
	assert.False(t, ok)
}

func TestError_IsAndWrap(t *testing.T) {
	cause := errors.New("cause")
	err := ErrReadInput.With(slog.String("file", "x")).Wrap(cause)

	assert.ErrorIs(t, err, ErrReadInput)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrParse)
	assert.Equal(t, "failed to read input: cause", err.Error())

	assert.Same(t, err, WrapError(err))
	assert.Equal(t, "cause", WrapError(cause).Error())
}

func TestError_LogValue(t *testing.T) {
	err := ErrIndexOutOfRange.With(slog.Int("index", 3))

	attrs := err.LogValue().Group()
	require.Len(t, attrs, 2)
	assert.Equal(t, "error", attrs[0].Key)
	assert.Equal(t, "index", attrs[1].Key)

	var pe error = &ParseError{Expected: "x", Found: "y", Err: ErrMaxDepthExceeded}

	lv, ok := pe.(slog.LogValuer)
	require.True(t, ok)
	assert.Len(t, lv.LogValue().Group(), 5)
}

func TestError_WithDoesNotAlias(t *testing.T) {
	base := NewError("base").With(slog.Int("a", 1))
	left := base.With(slog.Int("b", 2))
	right := base.With(slog.Int("c", 3))

	assert.Equal(t, "b", left.LogValue().Group()[2].Key)
	assert.Equal(t, "c", right.LogValue().Group()[2].Key)
}
