package route_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heightmap/climb"
	"github.com/katalvlaran/heightmap/coord"
	"github.com/katalvlaran/heightmap/terrain"
)

// sample is the canonical 8×5 heightmap: 31 steps from S, 29 from the best 'a'.
var sample = []string{
	"Sabqponm",
	"abcryxxl",
	"accszExk",
	"acctuvwj",
	"abdefghi",
}

func sampleGrid(tb testing.TB) *terrain.Grid {
	tb.Helper()
	g, err := terrain.FromRows(sample)
	require.NoError(tb, err)
	return g
}

// randomGrid builds a w×h grid with elevations 'a'..'a'+spread-1 and the
// markers at distinct random cells. The same seed yields the same grid.
func randomGrid(tb testing.TB, seed int64, w, h, spread int) *terrain.Grid {
	tb.Helper()
	r := rand.New(rand.NewSource(seed))
	raw := make([]byte, w*h)
	for i := range raw {
		raw[i] = terrain.MinElevation + byte(r.Intn(spread))
	}
	s := r.Intn(len(raw))
	e := r.Intn(len(raw) - 1)
	if e >= s {
		e++
	}
	raw[s], raw[e] = terrain.StartMarker, terrain.GoalMarker

	g, err := terrain.New(raw, w, h)
	require.NoError(tb, err)
	return g
}

// bfsDistances is an exhaustive reference: the step count from src to every
// reachable cell under the forward climb rule.
func bfsDistances(tb testing.TB, g *terrain.Grid, src coord.Coordinate) map[coord.Coordinate]int {
	tb.Helper()
	rule, err := climb.Forward(g)
	require.NoError(tb, err)

	dist := map[coord.Coordinate]int{src: 0}
	queue := []coord.Coordinate{src}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, e := range rule.Successors(p) {
			if _, ok := dist[e.To]; !ok {
				dist[e.To] = dist[p] + 1
				queue = append(queue, e.To)
			}
		}
	}
	return dist
}
