package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ardnew/jsonpp/json"
	"github.com/ardnew/jsonpp/log"
)

// Bench measures parse time for whole documents.
type Bench struct {
	ParseFlags `embed:""`

	Files []string `arg:"" help:"Documents to parse, or '-' for stdin" name:"file"`
	Reps  int      `help:"Parses per document" default:"10" short:"n"`
}

// benchResult is the outcome of timing one document.
type benchResult struct {
	size    int
	reps    int
	total   time.Duration
	members int
}

func (r benchResult) average() time.Duration {
	if r.reps == 0 {
		return 0
	}

	return r.total / time.Duration(r.reps)
}

// throughput returns bytes parsed per second.
func (r benchResult) throughput() uint64 {
	if r.total <= 0 {
		return 0
	}

	return uint64(float64(r.size*r.reps) / r.total.Seconds())
}

// Run executes the bench command.
func (b *Bench) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	w := stdout(ctx)

	for _, file := range b.Files {
		res, err := b.measure(ctx, file)
		if err != nil {
			return WrapError(err).With(slog.String("command", "bench"))
		}

		fmt.Fprintf(w, "%s: %s, %s members, %d reps, avg %s (%s/s)\n",
			file,
			humanize.Bytes(uint64(res.size)),
			humanize.Comma(int64(res.members)),
			res.reps,
			res.average(),
			humanize.Bytes(res.throughput()),
		)
	}

	return nil
}

func (b *Bench) measure(ctx context.Context, file string) (benchResult, error) {
	data, err := readSource(file)
	if err != nil {
		return benchResult{}, err
	}

	res := benchResult{size: len(data), reps: max(b.Reps, 1)}
	opts := b.options()

	for range res.reps {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		start := time.Now()

		root, err := json.ParseBytes(data, opts...)
		if err != nil {
			return res, ErrParseSource.With(slog.String("source", file)).Wrap(err)
		}

		res.total += time.Since(start)
		res.members = root.Len()
	}

	log.DebugContext(ctx, "bench complete",
		slog.String("source", file),
		slog.Int("reps", res.reps),
		slog.Duration("total", res.total),
	)

	return res, nil
}
