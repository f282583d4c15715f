package cmd

import (
	"context"
	encjson "encoding/json"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/jsonpp/log"
	"github.com/ardnew/jsonpp/profile"
)

// ConfigRoot is the member of a configuration file that holds flag values.
const ConfigRoot = "config"

// Init writes a configuration file holding the current flag values.
type Init struct {
	Force  bool   `help:"Overwrite an existing configuration file" short:"F"`
	Format string `help:"Configuration file format" default:"json" enum:"json,yaml"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	base, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: configuration path undefined")
	}

	path := base + "." + i.Format

	if _, err := os.Stat(path); err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("command", "init"), slog.String("file", path)).
			Wrap(ErrFileExists)
	}

	data, err := i.marshal(map[string]any{ConfigRoot: flagValues(ctx)})
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return ErrWriteConfig.
			With(slog.String("command", "init"), slog.String("file", path)).
			Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file", slog.String("path", path))

	return nil
}

func (i *Init) marshal(v any) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch i.Format {
	case "yaml":
		data, err = yaml.Marshal(v)
	default:
		data, err = encjson.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	}

	if err != nil {
		return nil, ErrMarshal.With(slog.String("format", i.Format)).Wrap(err)
	}

	return data, nil
}

// flagValues returns the non-empty values of all global and command flags,
// keyed by flag name. Flags of init itself are omitted, as are help and
// profiling flags.
func flagValues(ctx context.Context) map[string]any {
	ktx := kongContextFrom(ctx)
	values := make(map[string]any)
	ignore := []string{"help", "force", "format", profile.Tag}

	for _, flag := range ktx.Flags() {
		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		switch v := ktx.FlagValue(flag).(type) {
		case nil:
		case string:
			if v != "" {
				values[flag.Name] = v
			}
		default:
			values[flag.Name] = v
		}
	}

	return values
}
