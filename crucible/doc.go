// Package crucible finds the minimum-cost path across a cost grid for a
// vehicle that cannot steer freely: it may not reverse, may not travel more
// than MaxRun cells in a straight line, and must travel at least MinRun
// cells in a straight line before it may turn or stop.
//
// Overview:
//
//   - The grid (gridgraph.GridGraph) is expanded lazily into a state graph
//     whose nodes are (position, heading, run). Continuity rules become plain
//     edge-existence rules on that graph, so an ordinary shortest-path search
//     applies.
//   - The search is A* with a Manhattan-distance heuristic, a min-heap
//     frontier and a best-known-cost table keyed by the full state.
//   - Stale frontier entries are discarded on pop (lazy deletion); there is
//     no decrease-key.
//
// When to use:
//
//   - "Clumsy crucible" style puzzles: MinRun=0, MaxRun=3 for ordinary
//     crucibles, MinRun=4, MaxRun=10 for ultra crucibles (see Parts).
//   - Any grid routing problem where turning is constrained by how long the
//     current heading has been held.
//
// Key features:
//
//   - Functional options: WithRunBounds, WithHeuristic, WithReturnPath, WithMaxCost.
//   - HeuristicAuto falls back to the zero heuristic (plain Dijkstra order)
//     when the grid holds zero-cost cells, keeping the search admissible.
//   - Optional path reconstruction and independent path validation (Validate).
//   - SolveAll runs several independent configurations concurrently over one
//     shared, read-only grid.
//
// Start states:
//
//	The top-left cell is seeded twice, as (East, run 0) and (South, run 0).
//	Run 0 marks a synthetic start: it may move in any direction, the MinRun
//	rule does not apply to it, and it satisfies the goal test on a 1×1 grid.
//	Heading stays a closed four-value type; there is no "none" heading.
//
// Performance and complexity:
//
//   - States: up to R·C·4·MaxRun (+2 starts).
//   - Time:   O(S log S) where S is the number of states.
//   - Space:  O(S) for the cost table, plus the frontier's stale duplicates.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:       nil *gridgraph.GridGraph.
//   - ErrBadRunBounds:  negative MinRun/MaxRun or MaxRun < MinRun.
//   - ErrBadMaxCost:    negative MaxCost.
//   - ErrInadmissible:  HeuristicManhattan on a grid with zero-cost cells.
//   - ErrNoPath:        no state sequence satisfies the constraints.
//   - ErrInvalidPath:   Validate rejected a path.
//
// Thread safety:
//
//   - Search owns its frontier and cost table; concurrent calls over the
//     same grid are safe because a GridGraph is never mutated.
package crucible
