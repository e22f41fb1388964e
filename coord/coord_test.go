package coord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heightmap/coord"
)

// TestMoves checks each single move, including underflow on the edges.
func TestMoves(t *testing.T) {
	c := coord.New(3, 5)

	up, ok := c.Up()
	require.True(t, ok)
	assert.Equal(t, coord.New(3, 4), up)

	down, ok := c.Down()
	require.True(t, ok)
	assert.Equal(t, coord.New(3, 6), down)

	left, ok := c.Left()
	require.True(t, ok)
	assert.Equal(t, coord.New(2, 5), left)

	right, ok := c.Right()
	require.True(t, ok)
	assert.Equal(t, coord.New(4, 5), right)

	_, ok = coord.New(3, 0).Up()
	assert.False(t, ok, "Up on row 0 must be absent")
	_, ok = coord.New(0, 3).Left()
	assert.False(t, ok, "Left on column 0 must be absent")
}

// TestNeighbors verifies order and underflow filtering.
func TestNeighbors(t *testing.T) {
	cases := []struct {
		name string
		in   coord.Coordinate
		want []coord.Coordinate
	}{
		{"Interior", coord.New(1, 1), []coord.Coordinate{{1, 0}, {1, 2}, {2, 1}, {0, 1}}},
		{"Origin", coord.New(0, 0), []coord.Coordinate{{0, 1}, {1, 0}}},
		{"TopRow", coord.New(2, 0), []coord.Coordinate{{2, 1}, {3, 0}, {1, 0}}},
		{"LeftColumn", coord.New(0, 2), []coord.Coordinate{{0, 1}, {0, 3}, {1, 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Neighbors())
		})
	}
}

// TestStructuralEquality checks that coordinates work as map keys.
func TestStructuralEquality(t *testing.T) {
	seen := map[coord.Coordinate]int{coord.New(1, 2): 7}
	assert.Equal(t, 7, seen[coord.Coordinate{X: 1, Y: 2}])
	assert.Equal(t, "1,2", coord.New(1, 2).String())
}
