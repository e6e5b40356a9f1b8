// Package crucible computes the minimum heat loss of a crucible pushed
// across a city grid from the top-left block to the bottom-right one.
//
// A crucible must travel at least MinRun and at most MaxRun blocks in a
// straight line before it may turn, and it can never reverse. The cost of a
// route is the sum of the digits of every block entered (the start block is
// free).
//
// What lives where:
//
//	gridgraph/:    rectangular cost grid, digit parser, bounds and queries
//	crucible/:     state space, A* search, path validation, SolveAll sweep
//	config/:       HCL run files (run "<name>" { min_run = … max_run = … })
//	ctxlog/:       slog logger carried on a context.Context
//	cmd/crucible/: command line driver
//
// Quick ASCII example (grid "19\n11", ordinary crucible):
//
//	S   9
//	↓
//	1 → 1        heat loss = 1 + 1 = 2
//
// Standard parts:
//
//	part1  ordinary crucible  min_run 0   max_run 3
//	part2  ultra crucible     min_run 4   max_run 10
//
//	go run ./cmd/crucible testdata/city.txt
package crucible
