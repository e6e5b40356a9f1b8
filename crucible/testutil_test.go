package crucible_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
)

// exampleCity is the 13×13 regression fixture: 102 for runs 0..3 and 94
// for runs 4..10.
const exampleCity = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

// ultraTrap punishes short ultra runs: 71 for runs 4..10.
const ultraTrap = `111111111111
999999999991
999999999991
999999999991
999999999991
`

// mustParse parses a digit grid or fails the test.
func mustParse(t testing.TB, s string) *gridgraph.GridGraph {
	t.Helper()
	g, err := gridgraph.ParseString(s)
	require.NoError(t, err)

	return g
}

// randomGrid builds a rows×cols grid with costs in [lo, hi].
func randomGrid(t testing.TB, rng *rand.Rand, rows, cols, lo, hi int) *gridgraph.GridGraph {
	t.Helper()
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			values[r][c] = lo + rng.Intn(hi-lo+1)
		}
	}
	g, err := gridgraph.From2D(values)
	require.NoError(t, err)

	return g
}

// referenceCost computes the optimum by Bellman–Ford style relaxation to a
// fixed point over the expanded state graph, using only StateSpace.
// It shares no code with the A* driver. ok is false when no goal state is
// reachable.
func referenceCost(t testing.TB, g *gridgraph.GridGraph, minRun, maxRun int) (cost int64, ok bool) {
	t.Helper()
	space, err := crucible.NewStateSpace(g, minRun, maxRun)
	require.NoError(t, err)

	dist := map[crucible.State]int64{}
	for _, s := range crucible.StartStates() {
		dist[s] = 0
	}
	for changed := true; changed; {
		changed = false
		for s, d := range dist {
			for _, tr := range space.Neighbors(s) {
				if old, seen := dist[tr.Next]; !seen || d+tr.Cost < old {
					dist[tr.Next] = d + tr.Cost
					changed = true
				}
			}
		}
	}

	cost = math.MaxInt64
	for s, d := range dist {
		if space.IsGoal(s) && d < cost {
			cost = d
			ok = true
		}
	}

	return cost, ok
}

// bruteForceCost enumerates routes depth-first over raw grid moves. It
// applies the reversal, run and goal rules itself, so it does not depend on
// StateSpace or Heading. A (cell, direction, run) reached again at no lower
// cost is pruned. ok is false when the goal cannot be reached legally.
func bruteForceCost(g *gridgraph.GridGraph, minRun, maxRun int) (cost int64, ok bool) {
	type visit struct{ r, c, dir, run int }
	// north, east, south, west; (dir+2)%4 reverses.
	dr := [4]int{-1, 0, 1, 0}
	dc := [4]int{0, 1, 0, -1}
	lastR, lastC := g.Rows()-1, g.Cols()-1

	cheapest := map[visit]int64{}
	cost = math.MaxInt64

	var walk func(r, c, dir, run int, acc int64)
	walk = func(r, c, dir, run int, acc int64) {
		v := visit{r, c, dir, run}
		if prev, seen := cheapest[v]; seen && prev <= acc {
			return
		}
		cheapest[v] = acc

		if r == lastR && c == lastC && (run == 0 || run >= minRun) && acc < cost {
			cost, ok = acc, true
		}
		for d := 0; d < 4; d++ {
			next := 1
			if run > 0 {
				switch {
				case d == (dir+2)%4:
					continue
				case d == dir:
					next = run + 1
				case run < minRun:
					continue
				}
			}
			if next > maxRun {
				continue
			}
			nr, nc := r+dr[d], c+dc[d]
			if nr < 0 || nr > lastR || nc < 0 || nc > lastC {
				continue
			}
			walk(nr, nc, d, next, acc+int64(g.CostAt(nr, nc)))
		}
	}
	// Run 0 marks the start: any first direction is allowed.
	walk(0, 0, 0, 0, 0)

	return cost, ok
}
