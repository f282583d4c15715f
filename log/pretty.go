package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of the pretty text handler.
type palette struct {
	key, str, num, time, dur lipgloss.Style
	yes, no                  lipgloss.Style
	trace, debug, info, warn lipgloss.Style
	err                      lipgloss.Style
}

// newPalette returns styles bound to the color profile of w.
// Writers that are not terminals receive plain text.
func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:   fg("8"),
		str:   fg("6"),
		num:   fg("3"),
		time:  fg("4"),
		dur:   fg("5"),
		yes:   fg("2"),
		no:    fg("1"),
		trace: fg("8"),
		debug: fg("4"),
		info:  fg("2"),
		warn:  fg("3").Bold(true),
		err:   fg("1").Bold(true),
	}
}

func (p palette) level(level slog.Level) lipgloss.Style {
	switch {
	case level >= slog.LevelError:
		return p.err
	case level >= slog.LevelWarn:
		return p.warn
	case level >= slog.LevelInfo:
		return p.info
	case level >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyHandler is a colorized key=value handler.
type prettyHandler struct {
	opts   slog.HandlerOptions
	style  palette
	mu     *sync.Mutex
	w      io.Writer
	attrs  []byte
	prefix string
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts:  *opts,
		style: newPalette(w),
		mu:    &sync.Mutex{},
		w:     w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}

	return level >= threshold
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeBuiltin(buf, slog.Time(slog.TimeKey, r.Time))
	}

	h.writeBuiltin(buf, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource && r.PC != 0 {
		if src := r.Source(); src != nil {
			h.writeBuiltin(buf, slog.String(
				slog.SourceKey, src.File+":"+strconv.Itoa(src.Line)))
		}
	}

	h.writeBuiltin(buf, slog.String(slog.MessageKey, r.Message))

	if len(h.attrs) > 0 {
		buf.WriteByte(' ')
		buf.Write(h.attrs)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := bytes.NewBuffer(bytes.Clone(h.attrs))

	for _, a := range attrs {
		h.writeAttr(buf, h.prefix, a)
	}

	c := *h
	c.attrs = buf.Bytes()

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

// writeBuiltin writes one of the record's own fields, after ReplaceAttr.
func (h *prettyHandler) writeBuiltin(buf *bytes.Buffer, a slog.Attr) {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Key == slog.LevelKey {
		if level, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(level.String())
		}

		h.sep(buf)
		buf.WriteString(h.style.key.Render(a.Key))
		buf.WriteByte('=')
		buf.WriteString(h.levelStyle(a).Render(a.Value.String()))

		return
	}

	h.writeAttr(buf, "", a)
}

// levelStyle picks the style for a level attribute whose value may already
// have been rendered to a name.
func (h *prettyHandler) levelStyle(a slog.Attr) lipgloss.Style {
	name := strings.ToLower(a.Value.String())
	if i := strings.IndexAny(name, "+-"); i > 0 {
		name = name[:i]
	}

	switch name {
	case "trace":
		return h.style.trace
	case "debug":
		return h.style.debug
	case "warn":
		return h.style.warn
	case "error":
		return h.style.err
	default:
		return h.style.info
	}
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, prefix, ga)
		}

		return
	}

	h.sep(buf)
	buf.WriteString(h.style.key.Render(prefix + a.Key))
	buf.WriteByte('=')
	buf.WriteString(h.renderValue(a.Value))
}

func (h *prettyHandler) renderValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return h.style.num.Render(v.String())
	case slog.KindBool:
		if v.Bool() {
			return h.style.yes.Render("true")
		}

		return h.style.no.Render("false")
	case slog.KindDuration:
		return h.style.dur.Render(v.Duration().String())
	case slog.KindTime:
		return h.style.time.Render(v.Time().String())
	default:
		return h.style.str.Render(v.String())
	}
}

func (h *prettyHandler) sep(buf *bytes.Buffer) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}
}
