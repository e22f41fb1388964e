package terrain

import (
	"iter"

	"github.com/katalvlaran/heightmap/coord"
)

// StartingPositions yields every cell satisfying pred in row-major order.
// A nil pred means Lowest and ranges over the cells precomputed in New
// instead of scanning the grid. The sequence is lazy, finite and restartable:
// each range over it starts again from the top-left cell.
func (g *Grid) StartingPositions(pred Predicate) iter.Seq[coord.Coordinate] {
	if pred == nil {
		return func(yield func(coord.Coordinate) bool) {
			for _, p := range g.lowest {
				if !yield(p) {
					return
				}
			}
		}
	}
	return func(yield func(coord.Coordinate) bool) {
		for i := range g.data {
			p := g.Coordinate(i)
			if pred(p, g.elevationAt(i)) && !yield(p) {
				return
			}
		}
	}
}

// LowestCells returns a copy of the MinElevation cells computed in New,
// in row-major order.
func (g *Grid) LowestCells() []coord.Coordinate {
	out := make([]coord.Coordinate, len(g.lowest))
	copy(out, g.lowest)

	return out
}
