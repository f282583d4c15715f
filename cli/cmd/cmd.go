package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ardnew/jsonpp/json"
	"github.com/ardnew/jsonpp/log"
)

// stdinSource names standard input wherever a file path is accepted.
const stdinSource = "-"

type contextKey struct{}

// WithContext returns a copy of ctx carrying ktx.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, _ := ctx.Value(contextKey{}).(*kong.Context)

	return ktx
}

// stdout returns the writer kong was configured with, or os.Stdout.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// ParseFlags are the parser options shared by commands that read documents.
type ParseFlags struct {
	DecodeEscapes bool `help:"Decode \\b \\f \\n \\r \\t escapes to control characters."`
	MaxDepth      int  `help:"Maximum nesting depth of objects and arrays." default:"${maxDepth}"`
}

// Vars returns the kong variables referenced by ParseFlags.
func (ParseFlags) Vars() kong.Vars {
	return kong.Vars{"maxDepth": strconv.Itoa(json.DefaultMaxDepth)}
}

func (f ParseFlags) options() []json.Option {
	mode := json.EscapeVerbatim
	if f.DecodeEscapes {
		mode = json.EscapeDecode
	}

	return []json.Option{
		json.WithEscapeMode(mode),
		json.WithMaxDepth(f.MaxDepth),
		json.WithLogger(log.Default()),
	}
}

// readSource reads the whole of path, or standard input if path is "-".
func readSource(path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if path == stdinSource {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, ErrReadSource.With(slog.String("source", path)).Wrap(err)
	}

	return data, nil
}

// parseSource reads and parses path.
func (f ParseFlags) parseSource(
	ctx context.Context,
	path string,
) ([]byte, *json.Object, error) {
	data, err := readSource(path)
	if err != nil {
		return nil, nil, err
	}

	root, err := json.ParseReader(ctx, bytes.NewReader(data), f.options()...)
	if err != nil {
		return data, nil, ErrParseSource.With(slog.String("source", path)).Wrap(err)
	}

	return data, root, nil
}
