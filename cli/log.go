package cli

import (
	"context"
	"iter"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/jsonpp/log"
)

// logFormat configures the default logger as soon as kong decodes it, so
// that errors reported during parsing already use the requested format.
type logFormat string

func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(text))))

	return nil
}

// logLevel configures the default logger as soon as kong decodes it.
type logLevel string

func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(text))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"${logLevelEnum}"  help:"Set log level."`
	Format     logFormat `default:"text"    enum:"${logFormatEnum}" help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                         help:"Set timestamp format."`
	Caller     bool      `default:"false"                           help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                            help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelEnum":  join(log.Levels()),
		"logFormatEnum": join(log.Formats()),
	}
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

func (f *logConfig) options() []log.Option {
	opts := []log.Option{
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	}

	// unset until kong applies the default
	if f.TimeLayout != "" {
		opts = append(opts, log.WithTimeLayout(f.TimeLayout))
	}

	return opts
}

// start applies the fully parsed configuration to the default logger.
func (f *logConfig) start(ctx context.Context) {
	log.Config(f.options()...)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies logging flags found in args before kong parses them, so the
// logger is configured regardless of where the flags appear. Boolean flags
// never reach UnmarshalText and are only handled here.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		name, value, assigned := strings.Cut(args[i], "=")

		// value of a non-boolean flag given as a separate argument
		operand := func() string {
			if !assigned && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++

				return args[i]
			}

			return value
		}

		// value of a boolean flag, or ok=false if malformed
		boolean := func() (v, ok bool) {
			if !assigned {
				return true, true
			}

			b, err := strconv.ParseBool(value)

			return b, err == nil
		}

		switch name {
		case "--log-level":
			_ = f.Level.UnmarshalText([]byte(operand()))

		case "--log-format":
			_ = f.Format.UnmarshalText([]byte(operand()))

		case "--log-pretty", "--no-log-pretty":
			if v, ok := boolean(); ok {
				f.Pretty = v == (name == "--log-pretty")
			}

		case "--log-caller", "--no-log-caller":
			if v, ok := boolean(); ok {
				f.Caller = v == (name == "--log-caller")
			}

		default:
			continue
		}

		log.Config(f.options()...)
	}
}

func join(seq iter.Seq[string]) string {
	var sb strings.Builder

	for s := range seq {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}

		sb.WriteString(s)
	}

	return sb.String()
}
