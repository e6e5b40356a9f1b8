// Package crucible defines core types and configuration options for the
// run-constrained grid search.
//
// Options:
//
//	– MinRun:     cells that must be travelled straight before turning or stopping.
//	– MaxRun:     cells that may be travelled straight before a turn is forced.
//	– Heuristic:  HeuristicAuto, HeuristicManhattan or HeuristicZero.
//	– ReturnPath: if true, Result.Path holds the optimal state sequence.
//	– MaxCost:    optional cap; states costlier than this are never queued.
//
// Example usage:
//
//	res, err := Search(g, WithRunBounds(4, 10), WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cost, len(res.Path))
package crucible

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the crucible search.
var (
	// ErrNilGrid indicates that a nil grid was passed to the search.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrBadRunBounds indicates negative run bounds or MaxRun < MinRun.
	ErrBadRunBounds = errors.New("crucible: run bounds must satisfy 0 <= MinRun <= MaxRun")

	// ErrBadMaxCost indicates a negative MaxCost.
	ErrBadMaxCost = errors.New("crucible: MaxCost must be non-negative")

	// ErrInadmissible indicates the Manhattan heuristic was requested on a
	// grid where some step costs zero, so it could overestimate.
	ErrInadmissible = errors.New("crucible: manhattan heuristic requires every cell cost >= 1")

	// ErrUnknownHeuristic indicates an unrecognised heuristic name.
	ErrUnknownHeuristic = errors.New("crucible: unknown heuristic")

	// ErrNoPath indicates the frontier emptied before any goal state was popped.
	ErrNoPath = errors.New("crucible: no path satisfies the run constraints")

	// ErrInvalidPath indicates a path that breaks adjacency or continuity rules.
	ErrInvalidPath = errors.New("crucible: invalid path")
)

// HeuristicMode selects the lower-bound estimate used to order the frontier.
type HeuristicMode int

const (
	// HeuristicAuto uses Manhattan distance when every cell costs at least 1
	// and the zero heuristic otherwise.
	HeuristicAuto HeuristicMode = iota

	// HeuristicManhattan always uses Manhattan distance to the goal.
	HeuristicManhattan

	// HeuristicZero orders by accumulated cost only (Dijkstra order).
	HeuristicZero
)

var heuristicNames = map[HeuristicMode]string{
	HeuristicAuto:      "auto",
	HeuristicManhattan: "manhattan",
	HeuristicZero:      "zero",
}

func (m HeuristicMode) String() string {
	if s, ok := heuristicNames[m]; ok {
		return s
	}
	return fmt.Sprintf("HeuristicMode(%d)", int(m))
}

// ParseHeuristicMode maps "auto", "manhattan" or "zero" (case-insensitive,
// empty meaning auto) to a HeuristicMode.
func ParseHeuristicMode(s string) (HeuristicMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return HeuristicAuto, nil
	case "manhattan":
		return HeuristicManhattan, nil
	case "zero", "none", "dijkstra":
		return HeuristicZero, nil
	}
	return HeuristicAuto, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
}

// Options configures a single search.
//
// MinRun     – straight cells required before a turn or a stop. Must be ≥ 0.
// MaxRun     – straight cells allowed before a turn is forced. Must be ≥ MinRun.
// Heuristic  – frontier ordering estimate (see HeuristicMode).
// ReturnPath – if true, Result.Path is populated.
// MaxCost    – states whose accumulated cost exceeds this are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	MinRun     int
	MaxRun     int
	Heuristic  HeuristicMode
	ReturnPath bool
	MaxCost    int64
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithMinRun sets the minimum straight run before turning or stopping.
func WithMinRun(n int) Option {
	return func(o *Options) {
		o.MinRun = n
	}
}

// WithMaxRun sets the maximum straight run before a turn is forced.
func WithMaxRun(n int) Option {
	return func(o *Options) {
		o.MaxRun = n
	}
}

// WithRunBounds sets both run bounds at once.
// Invalid pairs are not clamped; Search reports ErrBadRunBounds.
func WithRunBounds(minRun, maxRun int) Option {
	return func(o *Options) {
		o.MinRun = minRun
		o.MaxRun = maxRun
	}
}

// WithHeuristic selects the frontier heuristic.
func WithHeuristic(mode HeuristicMode) Option {
	return func(o *Options) {
		o.Heuristic = mode
	}
}

// WithReturnPath enables predecessor tracking so Result.Path is filled.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost caps the accumulated cost the search will explore.
// A goal reachable only above the cap is reported as ErrNoPath.
func WithMaxCost(limit int64) Option {
	return func(o *Options) {
		o.MaxCost = limit
	}
}

// DefaultOptions returns the ordinary-crucible configuration:
//
//   - MinRun:     0
//   - MaxRun:     3
//   - Heuristic:  HeuristicAuto
//   - ReturnPath: false
//   - MaxCost:    math.MaxInt64 (no cap)
func DefaultOptions() Options {
	return Options{
		MinRun:     0,
		MaxRun:     3,
		Heuristic:  HeuristicAuto,
		ReturnPath: false,
		MaxCost:    math.MaxInt64,
	}
}

// Result is the outcome of a successful search.
//
// Cost     – minimum total cost; the start cell itself is free.
// Goal     – the goal state that was popped first.
// Path     – states from a synthetic start to Goal, nil unless ReturnPath.
// Expanded – goal-tested, non-stale frontier pops.
// Pushed   – frontier insertions, including the two seeds.
// Stale    – pops discarded by lazy deletion.
type Result struct {
	Cost     int64
	Goal     State
	Path     []State
	Expanded int
	Pushed   int
	Stale    int
}

// Cells returns the grid positions visited by Path, start cell first.
// It returns nil when the path was not requested.
func (r Result) Cells() []Position {
	if len(r.Path) == 0 {
		return nil
	}
	cells := make([]Position, len(r.Path))
	for i, s := range r.Path {
		cells[i] = s.Pos
	}

	return cells
}
