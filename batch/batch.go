// Package batch runs one independent search per labyrinth grid with bounded
// concurrency.
//
// Each grid is owned by exactly one worker for the whole of its turn: the
// worker locates the markers, searches, summarizes and finally paints the
// path. Workers share no mutable state, so no locking is needed. Outcomes
// are returned in input order regardless of completion order.
package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/labyrinth"
	"github.com/katalvlaran/gridpath/report"
)

// Outcome is the result for one grid of the batch.
type Outcome struct {
	Index   int
	Start   grid.Coord
	Goal    grid.Coord
	Result  astar.Result
	Stats   report.Stats
	Elapsed time.Duration
	// Err is a per-grid failure such as labyrinth.ErrStartNotFound.
	// "No path" is not an error; check Result.Found.
	Err error
}

// Runner configures a batch run. The zero value runs sequentially and
// discards logs.
type Runner struct {
	Workers int
	Logger  *slog.Logger
	Options []astar.Option
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Run solves every grid and paints found paths onto it in place.
// Per-grid marker errors are reported in Outcome.Err. The returned error is
// non-nil only when ctx is cancelled; grids not yet started keep a zero
// Outcome apart from Index.
func (r *Runner) Run(ctx context.Context, grids []*grid.Grid[labyrinth.Cell]) ([]Outcome, error) {
	outcomes := make([]Outcome, len(grids))
	for i := range outcomes {
		outcomes[i].Index = i
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(r.Workers, 1))
	log := r.logger()
	log.Debug("Batch started.", "grids", len(grids), "workers", max(r.Workers, 1))

	for i, g := range grids {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.solve(log.With("grid", i), i, g)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return outcomes, fmt.Errorf("batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return outcomes, fmt.Errorf("batch: %w", err)
	}
	log.Debug("Batch finished.", "grids", len(grids))

	return outcomes, nil
}

// solve handles a single grid end to end.
func (r *Runner) solve(log *slog.Logger, i int, g *grid.Grid[labyrinth.Cell]) Outcome {
	out := Outcome{Index: i}
	start, goal, err := labyrinth.Locate(g)
	if err != nil {
		log.Warn("Skipping grid.", "error", err)
		out.Err = err
		return out
	}
	out.Start, out.Goal = start, goal

	t0 := time.Now()
	out.Result = astar.Search(g, start, goal, r.Options...)
	out.Elapsed = time.Since(t0)

	if !out.Result.Found {
		log.Info("Path not found.", "expanded", out.Result.Expanded, "elapsed", out.Elapsed)
		return out
	}
	out.Stats = report.Summarize(g, out.Result.Path)
	labyrinth.MarkPath(g, out.Result.Path)
	log.Debug("Path found.",
		"steps", out.Stats.Steps,
		"cost", out.Result.Cost,
		"expanded", out.Result.Expanded,
		"elapsed", out.Elapsed,
	)

	return out
}

// Labelled converts found paths into report entries named "grid-<index>".
func Labelled(outcomes []Outcome) []report.Labelled {
	var items []report.Labelled
	for _, o := range outcomes {
		if !o.Result.Found {
			continue
		}
		items = append(items, report.Labelled{
			Name:  fmt.Sprintf("grid-%d", o.Index),
			Path:  o.Result.Path,
			Stats: o.Stats,
		})
	}

	return items
}
