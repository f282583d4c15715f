package json

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Parse parses text as a JSON document whose root is an object.
//
// Parse either returns a complete tree or an error; the error is a
// [*LexError] or [*ParseError] describing the first fault in text.
func Parse(text string, opts ...Option) (*Object, error) {
	return parse(context.Background(), []byte(text), opts...)
}

// ParseBytes is like [Parse] but reads from a byte slice.
// The slice is not retained or modified.
func ParseBytes(data []byte, opts ...Option) (*Object, error) {
	return parse(context.Background(), data, opts...)
}

// ParseReader reads r to completion and then parses its contents with
// [Parse]. Read failures are reported wrapped in [ErrReadInput].
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*Object, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return parse(ctx, data, opts...)
}

func parse(ctx context.Context, data []byte, opts ...Option) (*Object, error) {
	cfg := makeConfig(opts...)
	start := time.Now()

	p := newParser(newLexer(data, cfg), cfg)

	root, err := p.Parse()
	if err != nil {
		cfg.logger.DebugContext(ctx, "parse failed",
			slog.Int("bytes", len(data)),
			slog.Any("error", err),
		)

		return nil, err
	}

	cfg.logger.TraceContext(ctx, "parse complete",
		slog.Int("bytes", len(data)),
		slog.Int("keys", root.Len()),
		slog.Duration("elapsed", time.Since(start)),
	)

	return root, nil
}

// Parser builds a document tree from the tokens of a [Lexer], holding one
// token of lookahead.
//
// A Parser is single-use and not safe for concurrent use.
type Parser struct {
	lexer    *Lexer
	current  Token
	depth    int
	maxDepth int
}

// NewParser returns a Parser that consumes tokens from l.
// Only [WithMaxDepth] affects a Parser.
func NewParser(l *Lexer, opts ...Option) *Parser {
	return newParser(l, makeConfig(opts...))
}

func newParser(l *Lexer, cfg config) *Parser {
	return &Parser{
		lexer:    l,
		maxDepth: cfg.maxDepth,
	}
}

// Parse parses a complete document and returns its root object.
// Any content following the root object is an error.
func (p *Parser) Parse() (*Object, error) {
	err := p.next()
	if err != nil {
		return nil, err
	}

	if p.current.Type != TokenLBrace {
		return nil, p.fail(TokenLBrace.String())
	}

	root, err := p.parseObject()
	if err != nil {
		return nil, err
	}

	err = p.next()
	if err != nil {
		return nil, err
	}

	if p.current.Type != TokenNone {
		return nil, p.fail(TokenNone.String())
	}

	return root, nil
}

// next replaces the lookahead with the following token.
func (p *Parser) next() error {
	tok, err := p.lexer.Token()
	if err != nil {
		return err
	}

	p.current = tok

	return nil
}

// expect fetches the next token and checks its type.
func (p *Parser) expect(typ TokenType) error {
	err := p.next()
	if err != nil {
		return err
	}

	if p.current.Type != typ {
		return p.fail(typ.String())
	}

	return nil
}

// enter records one more level of nesting at the current token.
func (p *Parser) enter() error {
	p.depth++

	if p.depth > p.maxDepth {
		return &ParseError{
			Pos:      p.current.Pos,
			Expected: "at most " + itoa(p.maxDepth) + " nested values",
			Found:    p.current.describe(),
			Err:      ErrMaxDepthExceeded,
		}
	}

	return nil
}

func (p *Parser) leave() { p.depth-- }

// parseObject parses the members of an object whose '{' is the lookahead.
func (p *Parser) parseObject() (*Object, error) {
	err := p.enter()
	if err != nil {
		return nil, err
	}
	defer p.leave()

	obj := newObject()

	err = p.next()
	if err != nil {
		return nil, err
	}

	if p.current.Type == TokenRBrace {
		return obj, nil
	}

	for {
		if p.current.Type != TokenString {
			return nil, p.fail(TokenString.String())
		}

		key := p.current.Text

		err = p.expect(TokenColon)
		if err != nil {
			return nil, err
		}

		err = p.next()
		if err != nil {
			return nil, err
		}

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		obj.set(key, value)

		more, err := p.listContinues()
		if err != nil {
			return nil, err
		}

		if !more {
			break
		}
	}

	if p.current.Type != TokenRBrace {
		return nil, p.fail("',' or " + TokenRBrace.String())
	}

	return obj, nil
}

// parseArray parses the elements of an array whose '[' is the lookahead.
func (p *Parser) parseArray() (*Array, error) {
	err := p.enter()
	if err != nil {
		return nil, err
	}
	defer p.leave()

	arr := newArray()

	err = p.next()
	if err != nil {
		return nil, err
	}

	if p.current.Type == TokenRBracket {
		return arr, nil
	}

	for {
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		arr.append(value)

		more, err := p.listContinues()
		if err != nil {
			return nil, err
		}

		if !more {
			break
		}
	}

	if p.current.Type != TokenRBracket {
		return nil, p.fail("',' or " + TokenRBracket.String())
	}

	return arr, nil
}

// listContinues fetches the token after a list item. On a comma it also
// fetches the token that starts the next item and reports true.
func (p *Parser) listContinues() (bool, error) {
	err := p.next()
	if err != nil {
		return false, err
	}

	if p.current.Type != TokenComma {
		return false, nil
	}

	return true, p.next()
}

// parseValue parses the value that starts at the lookahead token.
func (p *Parser) parseValue() (Value, error) {
	switch p.current.Type {
	case TokenString:
		return String(p.current.Text), nil
	case TokenNumber:
		return Number(p.current.Number()), nil
	case TokenBool:
		return Bool(p.current.Text == "true"), nil
	case TokenNull:
		return Null{}, nil
	case TokenLBrace:
		obj, err := p.parseObject()
		if err != nil {
			return nil, err
		}

		return obj, nil
	case TokenLBracket:
		arr, err := p.parseArray()
		if err != nil {
			return nil, err
		}

		return arr, nil
	default:
		return nil, p.fail("value")
	}
}

func (p *Parser) fail(expected string) error {
	return &ParseError{
		Pos:      p.current.Pos,
		Expected: expected,
		Found:    p.current.describe(),
	}
}
