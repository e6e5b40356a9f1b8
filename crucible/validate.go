package crucible

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Validate re-walks path against g and the run bounds without consulting
// the search, and returns the path's total cost.
//
// A valid path starts at one of StartStates(), moves exactly one
// cell per step along the step's heading, never reverses, never exceeds
// maxRun straight cells, never turns before minRun straight cells, and ends
// in a goal state. Violations are reported as ErrInvalidPath naming the step.
func Validate(g *gridgraph.GridGraph, path []State, minRun, maxRun int) (int64, error) {
	space, err := NewStateSpace(g, minRun, maxRun)
	if err != nil {
		return 0, err
	}
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if first := path[0]; !isStartState(first) {
		return 0, fmt.Errorf("%w: path begins at %v, want one of %v", ErrInvalidPath, first, StartStates())
	}

	var total int64
	for i := 1; i < len(path); i++ {
		prev, next := path[i-1], path[i]
		if err := checkStep(space, prev, next); err != nil {
			return 0, fmt.Errorf("%w: step %d %v→%v: %w", ErrInvalidPath, i, prev, next, err)
		}
		cost := int64(g.CostAt(next.Pos.Row, next.Pos.Col))
		if cost > math.MaxInt64-total {
			return 0, fmt.Errorf("%w: step %d: total cost overflows int64", ErrInvalidPath, i)
		}
		total += cost
	}

	last := path[len(path)-1]
	if !space.IsGoal(last) {
		return 0, fmt.Errorf("%w: path ends at %v, not an accepted goal state", ErrInvalidPath, last)
	}

	return total, nil
}

func isStartState(s State) bool {
	for _, start := range StartStates() {
		if s == start {
			return true
		}
	}
	return false
}

// checkStep verifies that next is one of the transitions out of prev.
func checkStep(space *StateSpace, prev, next State) error {
	if !next.Heading.Valid() {
		return fmt.Errorf("unknown heading %d", next.Heading)
	}
	if want := prev.Pos.Step(next.Heading); next.Pos != want {
		return fmt.Errorf("moved to %v, heading %v leads to %v", next.Pos, next.Heading, want)
	}
	if !space.grid.InBounds(next.Pos.Row, next.Pos.Col) {
		return errors.New("left the grid")
	}
	if prev.IsStart() {
		if next.Run != 1 {
			return fmt.Errorf("first move has run %d, want 1", next.Run)
		}
	} else {
		switch {
		case next.Heading == prev.Heading.Opposite():
			return errors.New("reversed heading")
		case next.Heading == prev.Heading && next.Run != prev.Run+1:
			return fmt.Errorf("run %d after run %d on the same heading", next.Run, prev.Run)
		case next.Heading != prev.Heading && prev.Run < space.minRun:
			return fmt.Errorf("turned after %d straight cells, minimum is %d", prev.Run, space.minRun)
		case next.Heading != prev.Heading && next.Run != 1:
			return fmt.Errorf("run %d after a turn, want 1", next.Run)
		}
	}
	if next.Run > space.maxRun {
		return fmt.Errorf("run %d exceeds maximum %d", next.Run, space.maxRun)
	}

	return nil
}
