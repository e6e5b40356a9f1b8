package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseDigits reads a cost grid written as one decimal digit per cell and
// one row per line. Carriage returns and trailing blank lines are ignored;
// a blank line in the middle of the grid is a ragged row.
//
// Errors:
//   - ErrEmptyGrid if no non-blank line is present.
//   - ErrInvalidDigit (wrapped with line and column, both 1-based).
//   - ErrNonRectangular (wrapped with the offending line).
//   - any error returned by r.
//
// Complexity: O(R×C).
func ParseDigits(r io.Reader) (*GridGraph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		rows    [][]int
		pending int // blank lines seen since the last data row
		line    int
	)
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			pending++
			continue
		}
		if pending > 0 && len(rows) > 0 {
			return nil, fmt.Errorf("%w: blank line %d inside grid", ErrNonRectangular, line-1)
		}
		pending = 0

		row := make([]int, 0, len(text))
		for _, ch := range text {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrInvalidDigit, ch, line, len(row)+1)
			}
			row = append(row, int(ch-'0'))
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	return NewGridGraph(rows, GridOptions{MaxCost: DigitMaxCost})
}

// ParseString is ParseDigits over an in-memory string.
func ParseString(s string) (*GridGraph, error) {
	return ParseDigits(strings.NewReader(s))
}
