package crucible

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Position addresses a grid cell.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the neighbouring position one cell along h.
func (p Position) Step(h Heading) Position {
	dr, dc := h.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// State is a node of the expanded search graph. It is a comparable value
// and is used directly as the cost-table key, so two states at the same
// position with different heading or run are distinct nodes.
//
// Run counts the consecutive moves along Heading that led to Pos. Run 0
// occurs only for the two synthetic start states.
type State struct {
	Pos     Position
	Heading Heading
	Run     int
}

// IsStart reports whether s is a synthetic start state.
func (s State) IsStart() bool { return s.Run == 0 }

func (s State) String() string {
	return fmt.Sprintf("%v%v×%d", s.Pos, s.Heading, s.Run)
}

// StartStates returns the two synthetic start states at (0,0): one facing
// East and one facing South, both with run 0.
func StartStates() [2]State {
	return [2]State{
		{Pos: Position{}, Heading: East, Run: 0},
		{Pos: Position{}, Heading: South, Run: 0},
	}
}

// Transition is one legal move out of a state.
type Transition struct {
	Next State
	Cost int64 // cost of entering Next.Pos
}

// StateSpace enumerates legal moves over a grid for fixed run bounds.
// It is immutable and safe for concurrent use.
type StateSpace struct {
	grid   *gridgraph.GridGraph
	minRun int
	maxRun int
	goal   Position
}

// NewStateSpace binds run bounds to a grid.
// Returns ErrNilGrid or ErrBadRunBounds (never clamps).
func NewStateSpace(g *gridgraph.GridGraph, minRun, maxRun int) (*StateSpace, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if minRun < 0 || maxRun < 0 || maxRun < minRun {
		return nil, fmt.Errorf("%w: minRun=%d maxRun=%d", ErrBadRunBounds, minRun, maxRun)
	}
	gr, gc := g.Goal()

	return &StateSpace{
		grid:   g,
		minRun: minRun,
		maxRun: maxRun,
		goal:   Position{Row: gr, Col: gc},
	}, nil
}

// MinRun returns the minimum straight run.
func (sp *StateSpace) MinRun() int { return sp.minRun }

// MaxRun returns the maximum straight run.
func (sp *StateSpace) MaxRun() int { return sp.maxRun }

// Goal returns the bottom-right goal cell.
func (sp *StateSpace) Goal() Position { return sp.goal }

// Grid returns the underlying cost grid.
func (sp *StateSpace) Grid() *gridgraph.GridGraph { return sp.grid }

// Neighbors returns every legal transition out of s.
func (sp *StateSpace) Neighbors(s State) []Transition {
	return sp.AppendNeighbors(make([]Transition, 0, len(Headings)), s)
}

// AppendNeighbors appends every legal transition out of s to dst.
//
// For each heading d, in Headings order:
//  1. d reversing s.Heading is rejected (start states are exempt).
//  2. A run that would exceed MaxRun is rejected.
//  3. Turning before MinRun cells is rejected (start states are exempt).
//  4. The destination must lie inside the grid.
//
// The transition cost is the destination cell's cost.
func (sp *StateSpace) AppendNeighbors(dst []Transition, s State) []Transition {
	start := s.IsStart()
	for _, d := range Headings {
		same := d == s.Heading && !start
		if !start {
			if d == s.Heading.Opposite() {
				continue
			}
			if !same && s.Run < sp.minRun {
				continue
			}
		}

		run := 1
		if same {
			run = s.Run + 1
		}
		if run > sp.maxRun {
			continue
		}

		next := s.Pos.Step(d)
		if !sp.grid.InBounds(next.Row, next.Col) {
			continue
		}
		dst = append(dst, Transition{
			Next: State{Pos: next, Heading: d, Run: run},
			Cost: int64(sp.grid.CostAt(next.Row, next.Col)),
		})
	}

	return dst
}

// IsGoal reports whether s ends a legal path: it sits on the goal cell and
// has either completed MinRun straight cells or never moved (1×1 grid).
func (sp *StateSpace) IsGoal(s State) bool {
	return s.Pos == sp.goal && (s.Run >= sp.minRun || s.IsStart())
}
