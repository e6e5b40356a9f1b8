// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/crucible.
package gridgraph

// DigitMaxCost is the largest cost a single parsed digit can carry.
const DigitMaxCost = 9

// Cell represents a single grid cell with its coordinates and stored cost.
type Cell struct {
	Row, Col int // Coordinates within the grid
	Cost     int // Traversal cost of entering (Row, Col)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// MaxCost rejects any cell above this value. Zero disables the check.
	MaxCost int
}

// DefaultGridOptions returns a GridOptions with default settings:
// MaxCost=0 (no upper bound on cell costs).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		MaxCost: 0,
	}
}

// GridGraph is an immutable rectangular grid of traversal costs.
// costs[row][col] holds the cost of entering (row, col); Rows and Cols
// expose the dimensions. minCost is cached at construction so heuristics
// can be chosen without rescanning the grid.
type GridGraph struct {
	height, width int
	costs         [][]int
	minCost       int
}
