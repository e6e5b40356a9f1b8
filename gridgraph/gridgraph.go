// Package gridgraph provides an immutable cost grid addressed by (row, col).
// It supports:
//
//   - Construction from a rectangular [][]int with validation
//   - Bounds-checked cost queries
//   - Row-major index mapping for dense per-cell arrays
//
// Every step into a cell costs that cell's value; the grid itself knows
// nothing about how it is traversed.
package gridgraph

import (
	"fmt"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNegativeCost for a
// negative cell and ErrCostTooLarge for a cell above opts.MaxCost.
// Algorithmic complexity: O(R×C) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation; validate on the way.
	cells := make([][]int, h)
	minCost := values[0][0]
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		for c, v := range values[r] {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) cost=%d", ErrNegativeCost, r, c, v)
			}
			if opts.MaxCost > 0 && v > opts.MaxCost {
				return nil, fmt.Errorf("%w: cell (%d,%d) cost=%d max=%d", ErrCostTooLarge, r, c, v, opts.MaxCost)
			}
			if v < minCost {
				minCost = v
			}
			cells[r][c] = v
		}
	}

	return &GridGraph{
		height:  h,
		width:   w,
		costs:   cells,
		minCost: minCost,
	}, nil
}

// From2D is NewGridGraph with DefaultGridOptions.
func From2D(values [][]int) (*GridGraph, error) {
	return NewGridGraph(values, DefaultGridOptions())
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.height && col >= 0 && col < gg.width
}

// CostAt returns the cost of entering (row, col).
// Calling it outside the grid is a programming error and panics.
// Complexity: O(1).
func (gg *GridGraph) CostAt(row, col int) int {
	if !gg.InBounds(row, col) {
		panic(fmt.Sprintf("gridgraph: CostAt(%d,%d) outside %dx%d grid", row, col, gg.height, gg.width))
	}

	return gg.costs[row][col]
}

// Cell returns the Cell at (row, col). Panics like CostAt when out of bounds.
func (gg *GridGraph) Cell(row, col int) Cell {
	return Cell{Row: row, Col: col, Cost: gg.CostAt(row, col)}
}

// Rows returns the number of rows (R).
func (gg *GridGraph) Rows() int { return gg.height }

// Cols returns the number of columns (C).
func (gg *GridGraph) Cols() int { return gg.width }

// Size returns R×C.
func (gg *GridGraph) Size() int { return gg.height * gg.width }

// Goal returns the bottom-right corner (R-1, C-1).
func (gg *GridGraph) Goal() (row, col int) {
	return gg.height - 1, gg.width - 1
}

// MinCost returns the smallest cell cost in the grid.
// A value of zero means distance-based heuristics are no longer admissible.
func (gg *GridGraph) MinCost() int { return gg.minCost }

// Index maps (row, col) to a row-major index: row*Cols() + col.
// Complexity: O(1).
func (gg *GridGraph) Index(row, col int) int {
	return row*gg.width + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (row, col int) {
	return idx / gg.width, idx % gg.width
}

// String renders the grid back in its digit-per-cell text form.
// Cells above 9 are separated by spaces so the output stays readable.
func (gg *GridGraph) String() string {
	wide := gg.maxCost() > DigitMaxCost
	buf := make([]byte, 0, gg.Size()*2)
	for r := 0; r < gg.height; r++ {
		for c := 0; c < gg.width; c++ {
			if wide && c > 0 {
				buf = append(buf, ' ')
			}
			buf = fmt.Appendf(buf, "%d", gg.costs[r][c])
		}
		buf = append(buf, '\n')
	}

	return string(buf)
}

func (gg *GridGraph) maxCost() int {
	m := 0
	for _, row := range gg.costs {
		for _, v := range row {
			if v > m {
				m = v
			}
		}
	}

	return m
}
