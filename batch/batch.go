package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/shieldchart/figure"
	"github.com/katalvlaran/shieldchart/render"
	"github.com/katalvlaran/shieldchart/shield"
	"github.com/katalvlaran/shieldchart/tour"
)

var (
	// ErrNoSink is returned when Run is called without a Sink.
	ErrNoSink = errors.New("batch: sink is nil")
	// ErrWorkers is returned for a worker count below one.
	ErrWorkers = errors.New("batch: workers must be at least 1")
)

// progressEvery is the number of charts between progress log lines.
const progressEvery = 4096

// Options configures Run.
type Options struct {
	// Workers bounds the number of charts in flight.
	Workers int
	// Format selects the encoding; the zero value is render.FormatSVG.
	Format render.Format
	// Tour tunes path planning; the zero value means tour.DefaultOptions().
	Tour tour.Options
	// Mothers restricts the run to these inputs; nil means every combination.
	Mothers [][4]figure.Figure
	// Logger receives progress; nil discards it.
	Logger *slog.Logger
}

// Stats summarises a finished run.
type Stats struct {
	RunID   string
	Charts  int64
	Bytes   int64
	Elapsed time.Duration
}

// Name returns the sink name of the drawing for mothers.
func Name(mothers [4]figure.Figure, f render.Format) string {
	if f == "" {
		f = render.FormatSVG
	}

	return mothers[0].Hex() + mothers[1].Hex() + "/" + mothers[2].Hex() + mothers[3].Hex() + f.Ext()
}

// All returns every Mother combination in name order.
func All() [][4]figure.Figure {
	out := make([][4]figure.Figure, 0, figure.Count*figure.Count*figure.Count*figure.Count)
	var a, b, c, d figure.Figure
	for a = 0; a < figure.Count; a++ {
		for b = 0; b < figure.Count; b++ {
			for c = 0; c < figure.Count; c++ {
				for d = 0; d < figure.Count; d++ {
					out = append(out, [4]figure.Figure{a, b, c, d})
				}
			}
		}
	}

	return out
}

// Run renders every requested chart into sink.
func Run(ctx context.Context, sink Sink, opts Options) (Stats, error) {
	if sink == nil {
		return Stats{}, ErrNoSink
	}
	if opts.Workers < 1 {
		return Stats{}, fmt.Errorf("%w: %d", ErrWorkers, opts.Workers)
	}
	if opts.Format == "" {
		opts.Format = render.FormatSVG
	}
	if _, err := render.ParseFormat(string(opts.Format)); err != nil {
		return Stats{}, err
	}
	if opts.Tour == (tour.Options{}) {
		opts.Tour = tour.DefaultOptions()
	}
	inputs := opts.Mothers
	if inputs == nil {
		inputs = All()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	stats := Stats{RunID: uuid.NewString()}
	log = log.With("run_id", stats.RunID)
	log.Info("batch started", "charts", len(inputs), "workers", opts.Workers, "format", opts.Format)

	var (
		start  = time.Now()
		charts atomic.Int64
		size   atomic.Int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

dispatch:
	for _, m := range inputs {
		select {
		case <-gctx.Done():
			break dispatch
		default:
		}
		m := m
		g.Go(func() error {
			n, err := renderOne(gctx, sink, m, opts)
			if err != nil {
				return fmt.Errorf("batch: %s: %w", Name(m, opts.Format), err)
			}
			size.Add(int64(n))
			if done := charts.Add(1); done%progressEvery == 0 {
				log.Debug("batch progress", "done", done, "total", len(inputs))
			}

			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	stats.Charts = charts.Load()
	stats.Bytes = size.Load()
	stats.Elapsed = time.Since(start)
	if err != nil {
		log.Error("batch failed", "done", stats.Charts, "err", err)
		return stats, err
	}
	log.Info("batch finished", "charts", stats.Charts, "bytes", stats.Bytes, "elapsed", stats.Elapsed)

	return stats, nil
}

func renderOne(ctx context.Context, sink Sink, m [4]figure.Figure, opts Options) (int, error) {
	s, err := shield.BuildWithOptions(m, opts.Tour)
	if err != nil {
		return 0, err
	}
	var buf bytes.Buffer
	if err = render.Encode(&buf, s, opts.Format); err != nil {
		return 0, err
	}
	if err = sink.Put(ctx, Name(m, opts.Format), buf.Bytes()); err != nil {
		return 0, err
	}

	return buf.Len(), nil
}
