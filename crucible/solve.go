package crucible

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Config names one independent search configuration.
type Config struct {
	Name       string
	MinRun     int
	MaxRun     int
	Heuristic  HeuristicMode
	ReturnPath bool
}

// Options converts c into Search options.
func (c Config) Options() []Option {
	opts := []Option{
		WithRunBounds(c.MinRun, c.MaxRun),
		WithHeuristic(c.Heuristic),
	}
	if c.ReturnPath {
		opts = append(opts, WithReturnPath())
	}

	return opts
}

// Parts returns the two standard configurations: ordinary crucibles
// (0..3 straight cells) and ultra crucibles (4..10 straight cells).
func Parts() []Config {
	return []Config{
		{Name: "part1", MinRun: 0, MaxRun: 3},
		{Name: "part2", MinRun: 4, MaxRun: 10},
	}
}

// Outcome pairs a configuration with its search result. Err is ErrNoPath
// for an unreachable goal; Result is then the zero value.
type Outcome struct {
	Config Config
	Result Result
	Err    error
}

// Reachable reports whether the search found a path.
func (o Outcome) Reachable() bool { return o.Err == nil }

// SolveAll runs every configuration concurrently over the shared grid g.
// Each search owns its own frontier and cost table; g is only read.
//
// Outcomes are index-aligned with cfgs. An unreachable goal is a normal
// outcome recorded in Outcome.Err; any other failure (bad run bounds,
// inadmissible heuristic, cancelled ctx) aborts the whole call and is
// returned wrapped with the configuration name. Configurations that have
// not started when ctx is cancelled are skipped.
func SolveAll(ctx context.Context, g *gridgraph.GridGraph, cfgs []Config) ([]Outcome, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	out := make([]Outcome, len(cfgs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, cfg := range cfgs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("crucible: run %q: %w", cfg.Name, err)
			}
			res, err := Search(g, cfg.Options()...)
			if err != nil && !errors.Is(err, ErrNoPath) {
				return fmt.Errorf("crucible: run %q: %w", cfg.Name, err)
			}
			out[i] = Outcome{Config: cfg, Result: res, Err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
