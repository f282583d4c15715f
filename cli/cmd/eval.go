package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"strconv"

	"github.com/ardnew/mung"
	"github.com/expr-lang/expr"

	"github.com/ardnew/jsonpp/json"
)

// Eval evaluates an expression over the members of a document's root object.
//
// Members are visible as variables, and find(name) performs a recursive
// member search. Names that are not identifiers are reachable through
// $env["name"]. The builtin mung.prefix(list, item...) prepends items to a
// path-list string; a member named mung hides it.
type Eval struct {
	ParseFlags `embed:""`

	Expression string `arg:"" help:"expr-lang expression to evaluate" name:"expression"`
	Source     string `help:"Source document or '-' for stdin" default:"-" short:"f"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	_, root, err := e.parseSource(ctx, e.Source)
	if err != nil {
		return WrapError(err).With(slog.String("command", "eval"))
	}

	out, err := evaluate(e.Expression, root)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout(ctx), formatResult(out))

	return err
}

func evaluate(source string, root *json.Object) (any, error) {
	env := builtins()
	if members, ok := json.Native(root).(map[string]any); ok {
		maps.Copy(env, members)
	}

	program, err := expr.Compile(source,
		expr.Env(env),
		expr.Function("find", func(params ...any) (any, error) {
			name, _ := params[0].(string)

			return json.Native(root.Find(name)), nil
		}, new(func(string) any)),
	)
	if err != nil {
		return nil, ErrEval.Wrap(err).
			With(slog.String("command", "eval"), slog.String("expression", source))
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return nil, ErrEval.Wrap(err).
			With(slog.String("command", "eval"), slog.String("expression", source))
	}

	return out, nil
}

func builtins() map[string]any {
	return map[string]any{
		"mung": map[string]any{
			"prefix": mungPrefix,
		},
	}
}

func mungPrefix(list string, prefix ...string) string {
	return mung.Make(
		mung.WithSubjectItems(list),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(prefix...),
	).String()
}

// formatResult renders numbers without exponent noise and nil as null.
func formatResult(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
