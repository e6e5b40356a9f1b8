package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a cell with a negative traversal cost.
	ErrNegativeCost = errors.New("gridgraph: cell cost must be non-negative")
	// ErrCostTooLarge indicates a cell above GridOptions.MaxCost.
	ErrCostTooLarge = errors.New("gridgraph: cell cost exceeds MaxCost")
	// ErrInvalidDigit indicates a character that is not a decimal digit.
	ErrInvalidDigit = errors.New("gridgraph: cell must be a single decimal digit")
)
