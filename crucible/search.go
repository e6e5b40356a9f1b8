// Package crucible implements A* over the (position, heading, run) state
// graph of a cost grid.
//
// Notes on implementation choices:
//
//   - We validate run bounds and heuristic admissibility before touching the
//     frontier; invalid configurations are errors, never clamped.
//   - We seed both synthetic start states at cost 0.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries whose cost is above the best-known cost.
//   - We return the cost of the first goal state popped. With non-negative
//     steps and a consistent heuristic that pop is optimal.
package crucible

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Search computes the minimum-cost path from (0,0) to the bottom-right cell
// of g under the configured run constraints.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. 0 ≤ MinRun ≤ MaxRun (ErrBadRunBounds).
//  3. MaxCost ≥ 0 (ErrBadMaxCost).
//  4. The heuristic must be admissible for g (ErrInadmissible).
//
// Returns ErrNoPath when the frontier empties without a goal pop.
//
// Complexity:
//
//   - Time:  O(S log S), S = R·C·4·MaxRun
//   - Space: O(S)
func Search(g *gridgraph.GridGraph, opts ...Option) (Result, error) {
	// 1) Build Options from defaults and overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate grid and run bounds via the state space.
	space, err := NewStateSpace(g, cfg.MinRun, cfg.MaxRun)
	if err != nil {
		return Result{}, err
	}

	// 3) Validate the cost cap.
	if cfg.MaxCost < 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadMaxCost, cfg.MaxCost)
	}

	// 4) Pick an admissible heuristic.
	h, err := resolveHeuristic(cfg.Heuristic, g)
	if err != nil {
		return Result{}, err
	}

	// 5) Run the search.
	r := newRunner(space, h, cfg)
	r.init()

	return r.process()
}

// MinimumCost is the bare function-call contract: grid and run bounds in,
// minimum cost out. It uses HeuristicAuto and no cost cap.
func MinimumCost(g *gridgraph.GridGraph, minRun, maxRun int) (int64, error) {
	res, err := Search(g, WithRunBounds(minRun, maxRun))
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	space   *StateSpace     // Legal-move model; read-only.
	h       Heuristic       // Remaining-cost estimate.
	options Options         // Configuration.
	best    map[State]int64 // Best-known cost per state.
	prev    map[State]State // Predecessor per state; nil unless ReturnPath.
	pq      frontier        // Min-heap with lazy deletion.
	buf     []Transition    // Reused neighbor buffer.
	res     Result          // Counters accumulated during the run.
}

func newRunner(space *StateSpace, h Heuristic, cfg Options) *runner {
	g := space.Grid()
	// A rough capacity: every cell reached once per heading.
	hint := g.Size() * len(Headings)

	r := &runner{
		space:   space,
		h:       h,
		options: cfg,
		best:    make(map[State]int64, hint),
		pq:      make(frontier, 0, hint),
		buf:     make([]Transition, 0, len(Headings)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]State, hint)
	}

	return r
}

// init records cost 0 for both synthetic start states and queues them.
func (r *runner) init() {
	heap.Init(&r.pq)
	goal := r.space.Goal()
	for _, s := range StartStates() {
		r.best[s] = 0
		r.push(s, 0, r.h(s.Pos, goal))
	}
}

func (r *runner) push(s State, g, h int64) {
	f := g + h
	if f < g {
		f = math.MaxInt64 // saturate; h is never negative
	}
	heap.Push(&r.pq, frontierItem{state: s, g: g, f: f})
	r.res.Pushed++
}

// process is the best-first loop: pop, drop stale, goal-test, relax.
func (r *runner) process() (Result, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the entry with the smallest estimated total.
		item := heap.Pop(&r.pq).(frontierItem)
		cur := item.state

		// 2) A cheaper route to cur was recorded after this entry was queued.
		if item.g > r.best[cur] {
			r.res.Stale++
			continue
		}
		r.res.Expanded++

		// 3) First goal pop is optimal; report this state's own cost.
		if r.space.IsGoal(cur) {
			r.res.Cost = r.best[cur]
			r.res.Goal = cur
			if r.prev != nil {
				r.res.Path = r.walkBack(cur)
			}
			return r.res, nil
		}

		// 4) Relax every legal successor.
		r.relax(cur)
	}

	return Result{}, ErrNoPath
}

// relax pushes each successor of cur whose cost improves on the table.
func (r *runner) relax(cur State) {
	goal := r.space.Goal()
	base := r.best[cur]
	r.buf = r.space.AppendNeighbors(r.buf[:0], cur)
	for _, tr := range r.buf {
		// base never exceeds MaxCost, so this rejects both the cap and int64 overflow.
		if tr.Cost > r.options.MaxCost-base {
			continue
		}
		candidate := base + tr.Cost
		if old, ok := r.best[tr.Next]; ok && candidate >= old {
			continue
		}
		r.best[tr.Next] = candidate
		if r.prev != nil {
			r.prev[tr.Next] = cur
		}
		r.push(tr.Next, candidate, r.h(tr.Next.Pos, goal))
	}
}

// walkBack rebuilds the state sequence ending at s. Start states have no
// predecessor entry, which terminates the walk.
func (r *runner) walkBack(s State) []State {
	path := []State{s}
	for {
		p, ok := r.prev[s]
		if !ok {
			break
		}
		path = append(path, p)
		s = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
