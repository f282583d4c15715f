package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/jsonpp/json"
	"github.com/ardnew/jsonpp/log"
)

// Check validates one or more documents.
type Check struct {
	ParseFlags `embed:""`

	Files []string `arg:"" help:"Documents to check, or '-' for stdin" name:"file" default:"-"`
	Quiet bool     `help:"Print failures only" short:"q"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	w := stdout(ctx)
	style := newCheckStyle(w)
	failed := 0

	for _, file := range c.Files {
		data, root, perr := c.parseSource(ctx, file)
		if perr != nil {
			failed++

			style.report(w, file, data, perr)
			log.DebugContext(ctx, "check failed", slog.Any("error", perr))

			continue
		}

		if !c.Quiet {
			fmt.Fprintf(w, "%s  %s %s\n",
				style.ok.Render("ok  "), file, style.detail.Render(json.Summary(root)))
		}
	}

	if failed > 0 {
		return ErrCheckFailed.With(
			slog.String("command", "check"),
			slog.Int("failed", failed),
			slog.Int("total", len(c.Files)),
		)
	}

	return nil
}

type checkStyle struct {
	ok, fail, detail lipgloss.Style
}

func newCheckStyle(w io.Writer) checkStyle {
	r := lipgloss.NewRenderer(w)

	return checkStyle{
		ok:     r.NewStyle().Foreground(lipgloss.Color("2")),
		fail:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		detail: r.NewStyle().Faint(true),
	}
}

// report prints a failure line, the error, and a snippet locating it in data.
func (s checkStyle) report(w io.Writer, file string, data []byte, err error) {
	fmt.Fprintf(w, "%s  %s\n", s.fail.Render("FAIL"), file)
	fmt.Fprintf(w, "      %s\n", cause(err))

	if pos, ok := json.ErrorPosition(err); ok && data != nil {
		snippet := json.FormatSnippet(string(data), pos)
		for line := range strings.Lines(snippet) {
			fmt.Fprint(w, "    ", s.detail.Render(strings.TrimSuffix(line, "\n")), "\n")
		}
	}
}

// cause returns the innermost message of a command error.
func cause(err error) string {
	for {
		e, ok := err.(*Error)
		if !ok || e.err == nil {
			return err.Error()
		}

		err = e.err
	}
}
