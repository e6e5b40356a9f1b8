package crucible

// Heading is one of the four cardinal directions of travel.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// Headings lists every heading in the fixed order used during expansion.
var Headings = [4]Heading{North, East, South, West}

var headingNames = [4]string{"N", "E", "S", "W"}

// deltas[h] is the (row, col) step taken when moving along h.
var deltas = [4][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// Opposite returns the heading that would reverse h.
func (h Heading) Opposite() Heading {
	return (h + 2) % 4
}

// Delta returns the one-cell (row, col) offset for h.
func (h Heading) Delta() (dRow, dCol int) {
	d := deltas[h%4]
	return d[0], d[1]
}

// Valid reports whether h is one of the four cardinal headings.
func (h Heading) Valid() bool { return h <= West }

func (h Heading) String() string {
	if !h.Valid() {
		return "?"
	}
	return headingNames[h]
}
