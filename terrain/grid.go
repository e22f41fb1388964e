package terrain

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/heightmap/coord"
)

// New builds a Grid from width*height raw cells in row-major order.
// raw is copied, so the caller may reuse it.
//
// Validation, in order:
//  1. width > 0 and height > 0 (ErrEmptyGrid).
//  2. len(raw) == width*height (ErrDimensionMismatch).
//  3. every byte is 'a'..'z', 'S' or 'E' (ErrInvalidCell).
//  4. 'S' and 'E' each occur exactly once (ErrDuplicateMarker, unless
//     WithFirstMarkerWins is given) and at least once (ErrMissingMarker).
//
// Complexity: O(W×H) time and memory.
func New(raw []byte, width, height int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	// Divide rather than multiply: width*height may overflow int.
	if len(raw)%height != 0 || len(raw)/height != width {
		return nil, fmt.Errorf("%w: got %d cells, want %d×%d",
			ErrDimensionMismatch, len(raw), width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		data:   make([]byte, len(raw)),
	}
	copy(g.data, raw)

	start, goal := -1, -1
	for i, b := range g.data {
		switch {
		case b == StartMarker:
			if start >= 0 {
				if o.FirstMarkerWins {
					continue
				}
				return nil, fmt.Errorf("%w: %q at %v and %v",
					ErrDuplicateMarker, b, g.Coordinate(start), g.Coordinate(i))
			}
			start = i
		case b == GoalMarker:
			if goal >= 0 {
				if o.FirstMarkerWins {
					continue
				}
				return nil, fmt.Errorf("%w: %q at %v and %v",
					ErrDuplicateMarker, b, g.Coordinate(goal), g.Coordinate(i))
			}
			goal = i
		case b < MinElevation || b > MaxElevation:
			return nil, fmt.Errorf("%w: %q at %v", ErrInvalidCell, b, g.Coordinate(i))
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: start %q", ErrMissingMarker, StartMarker)
	}
	if goal < 0 {
		return nil, fmt.Errorf("%w: goal %q", ErrMissingMarker, GoalMarker)
	}
	g.start, g.goal = g.Coordinate(start), g.Coordinate(goal)

	for i := range g.data {
		if g.elevationAt(i) == MinElevation {
			g.lowest = append(g.lowest, g.Coordinate(i))
		}
	}

	return g, nil
}

// FromRows builds a Grid from pre-split rows of equal length.
// Returns ErrEmptyGrid for no rows or empty rows, ErrNonRectangular if any
// row length differs from the first, and otherwise whatever New returns.
func FromRows(rows []string, opts ...Option) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), w)
		}
	}

	return New([]byte(strings.Join(rows, "")), w, len(rows), opts...)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the position of the 'S' marker.
func (g *Grid) Start() coord.Coordinate { return g.start }

// Goal returns the position of the 'E' marker.
func (g *Grid) Goal() coord.Coordinate { return g.goal }

// InBounds reports whether p lies within [0,W)×[0,H).
func (g *Grid) InBounds(p coord.Coordinate) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Index maps p to its row-major index y*W + x. p must be in bounds.
func (g *Grid) Index(p coord.Coordinate) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a position.
func (g *Grid) Coordinate(idx int) coord.Coordinate {
	return coord.New(idx%g.width, idx/g.width)
}

// Value returns the elevation at p with markers substituted.
// It panics with an error wrapping ErrOutOfBounds when p is outside the grid;
// use Lookup for an error return instead.
func (g *Grid) Value(p coord.Coordinate) byte {
	if !g.InBounds(p) {
		panic(g.outOfBounds(p))
	}
	return g.elevationAt(g.Index(p))
}

// Lookup is Value with an explicit error instead of a panic.
func (g *Grid) Lookup(p coord.Coordinate) (byte, error) {
	if !g.InBounds(p) {
		return 0, g.outOfBounds(p)
	}
	return g.elevationAt(g.Index(p)), nil
}

// ManhattanDistance returns |x-goal.x| + |y-goal.y|. Under 4-connected unit
// moves it never exceeds the true step count, so it is an admissible and
// consistent A* heuristic.
func (g *Grid) ManhattanDistance(p coord.Coordinate) int {
	return abs(p.X-g.goal.X) + abs(p.Y-g.goal.Y)
}

// String renders the grid as newline-separated rows of raw cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.data) + g.height)
	for y := 0; y < g.height; y++ {
		sb.Write(g.data[y*g.width : (y+1)*g.width])
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// elevationAt reads the cell at idx, mapping markers to their elevations.
func (g *Grid) elevationAt(idx int) byte {
	switch v := g.data[idx]; v {
	case StartMarker:
		return MinElevation
	case GoalMarker:
		return MaxElevation
	default:
		return v
	}
}

func (g *Grid) outOfBounds(p coord.Coordinate) error {
	return fmt.Errorf("%w: %v on %d×%d grid", ErrOutOfBounds, p, g.width, g.height)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
