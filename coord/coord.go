package coord

import "fmt"

// Coordinate is a cell position: X is the column, Y is the row.
// The zero value is the top-left cell.
type Coordinate struct {
	X, Y int
}

// New returns the Coordinate (x, y).
func New(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Up returns the cell above c. ok is false on the top row (Y == 0).
func (c Coordinate) Up() (Coordinate, bool) {
	if c.Y == 0 {
		return Coordinate{}, false
	}
	return Coordinate{X: c.X, Y: c.Y - 1}, true
}

// Down returns the cell below c. It is always present.
func (c Coordinate) Down() (Coordinate, bool) {
	return Coordinate{X: c.X, Y: c.Y + 1}, true
}

// Left returns the cell to the left of c. ok is false on the first column (X == 0).
func (c Coordinate) Left() (Coordinate, bool) {
	if c.X == 0 {
		return Coordinate{}, false
	}
	return Coordinate{X: c.X - 1, Y: c.Y}, true
}

// Right returns the cell to the right of c. It is always present.
func (c Coordinate) Right() (Coordinate, bool) {
	return Coordinate{X: c.X + 1, Y: c.Y}, true
}

// Neighbors returns the moves of c that do not underflow, in the order
// up, down, right, left. The result has between 2 and 4 elements.
func (c Coordinate) Neighbors() []Coordinate {
	out := make([]Coordinate, 0, 4)
	for _, move := range [...]func() (Coordinate, bool){c.Up, c.Down, c.Right, c.Left} {
		if n, ok := move(); ok {
			out = append(out, n)
		}
	}

	return out
}

// String renders c as "x,y", the same vertex-ID form used for grid cells elsewhere.
func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}
