package json

import (
	"strings"

	"github.com/ardnew/jsonpp/log"
)

// EscapeMode selects how the whitespace-class escapes \b \f \n \r \t are
// decoded inside string literals.
type EscapeMode int

const (
	// EscapeVerbatim keeps the backslash and the escape letter, so "a\tb"
	// decodes to the four bytes a, \, t, b.
	EscapeVerbatim EscapeMode = iota
	// EscapeDecode replaces each escape with the control character it names.
	EscapeDecode
)

// String returns the name of the escape mode.
func (m EscapeMode) String() string {
	switch m {
	case EscapeVerbatim:
		return "verbatim"
	case EscapeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// ParseEscapeMode parses "verbatim" or "decode" (case-insensitive).
// Any other string yields [DefaultEscapeMode].
func ParseEscapeMode(s string) EscapeMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "decode":
		return EscapeDecode
	default:
		return DefaultEscapeMode
	}
}

// DefaultEscapeMode is the escape mode used when none is given.
const DefaultEscapeMode = EscapeVerbatim

// DefaultMaxDepth is the default limit on nested objects and arrays.
const DefaultMaxDepth = 10000

// Option configures a [Lexer] or [Parser].
type Option func(config) config

type config struct {
	logger   log.Logger
	escape   EscapeMode
	maxDepth int
}

func makeConfig(opts ...Option) config {
	c := config{
		escape:   DefaultEscapeMode,
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// WithEscapeMode sets how whitespace-class escapes are decoded.
func WithEscapeMode(mode EscapeMode) Option {
	return func(c config) config {
		c.escape = mode

		return c
	}
}

// WithMaxDepth limits how deeply objects and arrays may nest, counting the
// root object as depth 1. Values less than 1 select [DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(c config) config {
		if depth < 1 {
			depth = DefaultMaxDepth
		}

		c.maxDepth = depth

		return c
	}
}

// WithLogger sets the logger that receives parse diagnostics.
// The zero [log.Logger] discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}
