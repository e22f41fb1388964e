package route_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heightmap/astar"
	"github.com/katalvlaran/heightmap/climb"
	"github.com/katalvlaran/heightmap/coord"
	"github.com/katalvlaran/heightmap/route"
	"github.com/katalvlaran/heightmap/terrain"
)

// TestOptimality_EveryReachableCell runs the engine with the climb rule from S
// to every cell and compares the cost with an exhaustive breadth-first search.
func TestOptimality_EveryReachableCell(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := randomGrid(t, seed, 9, 7, 4)
		rule, err := climb.Forward(g)
		require.NoError(t, err)
		want := bfsDistances(t, g, g.Start())

		for i := 0; i < g.Width()*g.Height(); i++ {
			target := g.Coordinate(i)
			h := func(p coord.Coordinate) int { return abs(p.X-target.X) + abs(p.Y-target.Y) }

			res, found, err := astar.Search[coord.Coordinate](rule, g.Start(), target, h)
			require.NoError(t, err)

			d, reachable := want[target]
			require.Equal(t, reachable, found, "seed %d target %v", seed, target)
			if found {
				assert.Equal(t, d, res.Cost, "seed %d target %v", seed, target)
				assert.Len(t, res.Path, res.Cost+1)
			}
		}
	}
}

// TestRandomGrids cross-checks single-source, brute-force, parallel and reverse
// queries against the breadth-first reference on many random maps.
func TestRandomGrids(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			g := randomGrid(t, seed, 12, 9, 5)

			// Single source.
			ref := bfsDistances(t, g, g.Start())
			p, found, err := route.ShortestPath(g)
			require.NoError(t, err)
			d, reachable := ref[g.Goal()]
			require.Equal(t, reachable, found)
			if found {
				assert.Equal(t, d, p.Cost)
				requireValid(t, g, p)
			}

			// Idempotence.
			again, foundAgain, err := route.ShortestPath(g)
			require.NoError(t, err)
			assert.Equal(t, found, foundAgain)
			assert.Equal(t, p.Cost, again.Cost)

			// Multi-source minimum from the reference.
			best := -1
			for src := range g.StartingPositions(terrain.Lowest) {
				if d, ok := bfsDistances(t, g, src)[g.Goal()]; ok && (best < 0 || d < best) {
					best = d
				}
			}

			multi, foundAny, err := route.ShortestPathFromAny(g, terrain.Lowest)
			require.NoError(t, err)
			require.Equal(t, best >= 0, foundAny)

			par, foundPar, err := route.ShortestPathFromAny(g, terrain.Lowest, route.WithWorkers(4))
			require.NoError(t, err)
			assert.Equal(t, foundAny, foundPar)
			assert.Equal(t, multi, par, "parallel run must pick the same path")

			rev, foundRev, err := route.ShortestPathFromAnyReverse(g, terrain.Lowest)
			require.NoError(t, err)
			assert.Equal(t, foundAny, foundRev)

			if foundAny {
				assert.Equal(t, best, multi.Cost)
				assert.Equal(t, best, rev.Cost)
				requireValid(t, g, multi)
				requireValid(t, g, rev)
				if found {
					assert.LessOrEqual(t, multi.Cost, p.Cost, "S is itself a lowest cell")
				}
			}
		})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
