package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/jsonpp/json"
)

// maxSuggestions limits the keys offered when a lookup fails.
const maxSuggestions = 3

// Get prints the value at a path of member names and array indices.
type Get struct {
	ParseFlags `embed:""`

	Path   []string `arg:"" help:"Member names or array indices, outermost first" name:"key"`
	Source string   `help:"Source document or '-' for stdin" default:"-" short:"f"`
	Find   bool     `help:"Search nested objects for each member name"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	_, root, err := g.parseSource(ctx, g.Source)
	if err != nil {
		return WrapError(err).With(slog.String("command", "get"))
	}

	v, err := g.resolve(root)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout(ctx), json.Summary(v))

	return err
}

// resolve walks Path from root.
func (g *Get) resolve(root *json.Object) (json.Value, error) {
	var cur json.Value = root

	for i, key := range g.Path {
		var next json.Value

		switch v := cur.(type) {
		case *json.Object:
			if g.Find {
				next = v.Find(key)
			} else {
				next, _ = v.Lookup(key)
			}

			if next == nil {
				return nil, g.notFound(key, i, v.Keys()).Wrap(didYouMean(key, v.Keys()))
			}

		case *json.Array:
			idx, err := strconv.Atoi(key)
			if err != nil {
				return nil, g.notFound(key, i, nil).Wrap(err)
			}

			next, err = v.Value(idx)
			if err != nil {
				return nil, g.notFound(key, i, nil).Wrap(err)
			}

		default:
			return nil, g.notFound(key, i, nil).
				With(slog.String("kind", cur.Kind().String()))
		}

		cur = next
	}

	return cur, nil
}

func (g *Get) notFound(key string, depth int, keys []string) *Error {
	err := ErrKeyNotFound.With(
		slog.String("command", "get"),
		slog.String("key", key),
		slog.Int("depth", depth),
	)

	if s := suggest(key, keys); len(s) > 0 {
		err = err.With(slog.Any("suggestions", s))
	}

	return err
}

func didYouMean(key string, keys []string) error {
	s := suggest(key, keys)
	if len(s) == 0 {
		return fmt.Errorf("%q", key)
	}

	return fmt.Errorf("%q (did you mean %s?)", key, strings.Join(s, ", "))
}

// suggest returns the keys that most closely match key.
func suggest(key string, keys []string) []string {
	matches := fuzzy.Find(key, keys)

	out := make([]string, 0, min(len(matches), maxSuggestions))
	for _, m := range matches[:min(len(matches), maxSuggestions)] {
		out = append(out, m.Str)
	}

	return out
}
