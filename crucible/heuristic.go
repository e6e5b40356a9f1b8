package crucible

import "github.com/katalvlaran/crucible/gridgraph"

// Heuristic estimates the remaining cost from p to goal.
// It must never overestimate for the search to stay optimal.
type Heuristic func(p, goal Position) int64

// Manhattan is |Δrow| + |Δcol|. Admissible when every step costs at least 1.
func Manhattan(p, goal Position) int64 {
	return int64(abs(goal.Row-p.Row) + abs(goal.Col-p.Col))
}

// Zero always returns 0, reducing A* to Dijkstra order.
func Zero(_, _ Position) int64 { return 0 }

// resolveHeuristic turns a mode into a function for grid g.
// HeuristicAuto picks Manhattan only when every cell costs at least 1.
func resolveHeuristic(mode HeuristicMode, g *gridgraph.GridGraph) (Heuristic, error) {
	switch mode {
	case HeuristicAuto:
		if g.MinCost() >= 1 {
			return Manhattan, nil
		}
		return Zero, nil
	case HeuristicManhattan:
		if g.MinCost() < 1 {
			return nil, ErrInadmissible
		}
		return Manhattan, nil
	case HeuristicZero:
		return Zero, nil
	}
	return nil, ErrUnknownHeuristic
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
