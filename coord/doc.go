// Package coord defines Coordinate, the immutable 2D integer position used by
// the terrain, climb, astar and route packages.
//
// A Coordinate is a plain comparable value: it can be used as a map key,
// compared with ==, and copied freely. Its four axis-aligned moves never
// underflow; Up and Left report absence on the top row and left column.
// Moves are not bounds-checked against any grid; that is the job of the
// adjacency rule (package climb) which knows the grid dimensions.
//
// Complexity: every operation is O(1).
package coord
