// Package gridgraph treats a 2D grid of per-cell traversal costs as the
// substrate for grid path searches.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid of non-negative costs.
//   - Bounds-checked, O(1) cost lookups addressed by (row, col).
//   - Row-major index helpers for dense per-cell bookkeeping.
//   - A digit parser that turns "one digit per character, one row per line"
//     text into a GridGraph.
//
// Why:
//
//   - Heat-loss / terrain maps: every step into a cell costs that cell's value.
//   - Shared read-only substrate: a GridGraph is never mutated after
//     construction, so any number of concurrent searches may borrow it.
//
// Complexity:
//
//   - NewGridGraph / ParseDigits: O(R×C) time and memory.
//   - InBounds, CostAt, Index, Coordinate: O(1).
//
// Options:
//
//   - GridOptions.MaxCost: optional upper bound on cell values (0 = none).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell holds a negative cost.
//   - ErrCostTooLarge: a cell exceeds GridOptions.MaxCost.
//   - ErrInvalidDigit: parsed text contains a non-digit character.
package gridgraph
