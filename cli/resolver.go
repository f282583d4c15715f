package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/jsonpp/json"
	"github.com/ardnew/jsonpp/log"
)

// resolveJSON returns a [kong.ConfigurationLoader] that reads flag values
// from the object member name of a JSON document, using this module's parser.
//
//	{
//	  "config": {
//	    "log-level": "debug",
//	    "log_pretty": false,
//	    "max-depth": 64
//	  }
//	}
//
// Flag names may be spelled with hyphens or underscores. A document that
// fails to parse, or has no such member, contributes no values.
func resolveJSON(ctx context.Context, name string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		root, err := json.ParseReader(ctx, r, json.WithLogger(log.Default()))
		if err != nil {
			log.WarnContext(ctx, "ignoring configuration",
				slog.String("format", "json"), slog.Any("error", err))

			return flagValues{}, nil
		}

		obj := root.ObjectValue(name)
		if obj == nil {
			return flagValues{}, nil
		}

		values, _ := json.Native(obj).(map[string]any)

		return makeFlagValues(values), nil
	}
}

// resolveYAML is like [resolveJSON] for YAML documents.
func resolveYAML(ctx context.Context, name string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		err := yaml.NewDecoder(r).DecodeContext(ctx, &doc)
		if err != nil && !errors.Is(err, io.EOF) {
			log.WarnContext(ctx, "ignoring configuration",
				slog.String("format", "yaml"), slog.Any("error", err))

			return flagValues{}, nil
		}

		values, _ := doc[name].(map[string]any)

		return makeFlagValues(values), nil
	}
}

// flagValues implements [kong.Resolver] over a flat map of flag names.
type flagValues map[string]any

func makeFlagValues(m map[string]any) flagValues {
	values := make(flagValues, len(m))

	for key, val := range m {
		values[strings.ReplaceAll(key, "_", "-")] = scalar(val)
	}

	return values
}

// scalar converts numbers to the strings kong's mappers expect.
func scalar(v any) any {
	switch v := v.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case uint64:
		return strconv.FormatUint(v, 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = scalar(e)
		}

		return out
	default:
		return v
	}
}

// Validate implements [kong.Resolver].
func (flagValues) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (f flagValues) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if v, ok := f[flag.Name]; ok {
		return v, nil
	}

	return nil, nil
}
