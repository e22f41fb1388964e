package climb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heightmap/astar"
	"github.com/katalvlaran/heightmap/climb"
	"github.com/katalvlaran/heightmap/coord"
	"github.com/katalvlaran/heightmap/terrain"
)

var sample = []string{
	"Sabqponm",
	"abcryxxl",
	"accszExk",
	"acctuvwj",
	"abdefghi",
}

func sampleGrid(t *testing.T) *terrain.Grid {
	t.Helper()
	g, err := terrain.FromRows(sample)
	require.NoError(t, err)
	return g
}

func targets(edges []astar.Edge[coord.Coordinate]) []coord.Coordinate {
	out := make([]coord.Coordinate, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.To)
	}
	return out
}

// TestForward_Successors checks the climb limit, grid edges and unit costs.
func TestForward_Successors(t *testing.T) {
	g := sampleGrid(t)
	r, err := climb.Forward(g)
	require.NoError(t, err)
	assert.False(t, r.IsReverse())
	assert.Equal(t, climb.DefaultMaxClimb, r.MaxClimb())

	cases := []struct {
		name string
		from coord.Coordinate
		want []coord.Coordinate
	}{
		{"StartCorner", coord.New(0, 0), []coord.Coordinate{{X: 0, Y: 1}, {X: 1, Y: 0}}},
		{"BlockedByCliff", coord.New(2, 0), []coord.Coordinate{{X: 2, Y: 1}, {X: 1, Y: 0}}},
		{"BottomRightEdge", coord.New(7, 4), []coord.Coordinate{{X: 7, Y: 3}, {X: 6, Y: 4}}},
		{"OntoGoal", coord.New(4, 2), []coord.Coordinate{{X: 4, Y: 1}, {X: 4, Y: 3}, {X: 5, Y: 2}, {X: 3, Y: 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			edges := r.Successors(tc.from)
			assert.Equal(t, tc.want, targets(edges))
			for _, e := range edges {
				assert.Equal(t, 1, e.Cost)
			}
		})
	}
}

// TestReverse_Successors lists the cells that could step onto p.
func TestReverse_Successors(t *testing.T) {
	g := sampleGrid(t)
	r, err := climb.Reverse(g)
	require.NoError(t, err)
	assert.True(t, r.IsReverse())

	assert.Equal(t, []coord.Coordinate{{X: 2, Y: 1}, {X: 3, Y: 0}, {X: 1, Y: 0}}, targets(r.Successors(coord.New(2, 0))))
	assert.Equal(t, []coord.Coordinate{{X: 4, Y: 2}}, targets(r.Successors(g.Goal())))
}

// TestReverse_IsInverse checks q ∈ Reverse(p) ⇔ p ∈ Forward(q) on every cell.
func TestReverse_IsInverse(t *testing.T) {
	g := sampleGrid(t)
	fwd, err := climb.Forward(g)
	require.NoError(t, err)
	rev, err := climb.Reverse(g)
	require.NoError(t, err)

	for i := 0; i < g.Width()*g.Height(); i++ {
		p := g.Coordinate(i)
		for _, q := range targets(rev.Successors(p)) {
			assert.Contains(t, targets(fwd.Successors(q)), p, "%v should step onto %v", q, p)
		}
		for _, q := range targets(fwd.Successors(p)) {
			assert.Contains(t, targets(rev.Successors(q)), p, "%v should reach back to %v", q, p)
		}
	}
}

// TestWithMaxClimb tightens and rejects the climb limit.
func TestWithMaxClimb(t *testing.T) {
	g := sampleGrid(t)

	flat, err := climb.Forward(g, climb.WithMaxClimb(0))
	require.NoError(t, err)
	assert.Equal(t, []coord.Coordinate{{X: 0, Y: 0}}, targets(flat.Successors(coord.New(1, 0))))

	steep, err := climb.Forward(g, climb.WithMaxClimb(25))
	require.NoError(t, err)
	assert.Len(t, steep.Successors(coord.New(1, 1)), 4)

	_, err = climb.Forward(g, climb.WithMaxClimb(-1))
	assert.ErrorIs(t, err, climb.ErrBadMaxClimb)

	_, err = climb.Reverse(nil)
	assert.ErrorIs(t, err, climb.ErrNilGrid)
}

// TestAllowedAndValidate checks single steps and whole paths.
func TestAllowedAndValidate(t *testing.T) {
	g := sampleGrid(t)
	r, err := climb.Forward(g)
	require.NoError(t, err)

	assert.True(t, r.Allowed(coord.New(3, 0), coord.New(2, 0)), "descending is free")
	assert.False(t, r.Allowed(coord.New(2, 0), coord.New(3, 0)), "b→q climbs too much")
	assert.False(t, r.Allowed(coord.New(0, 0), coord.New(2, 0)), "not adjacent")
	assert.False(t, r.Allowed(coord.New(1, 1), coord.New(1, 1)), "not a move")
	assert.False(t, r.Allowed(coord.New(7, 4), coord.New(8, 4)), "off the grid")

	idx, ok := r.Validate([]coord.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}})
	assert.True(t, ok)
	assert.Equal(t, -1, idx)

	idx, ok = r.Validate([]coord.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}})
	assert.False(t, ok)
	assert.Equal(t, 3, idx)

	idx, ok = r.Validate([]coord.Coordinate{{X: 9, Y: 9}})
	assert.False(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = r.Validate(nil)
	assert.True(t, ok)
}
