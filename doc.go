// Package heightmap finds the shortest climb across a terrain of elevation
// letters: from the start cell 'S' to the goal 'E', moving one cell up, down,
// left or right per step, never climbing more than one level at a time.
//
// Under the hood, everything is organized in small subpackages:
//
//	coord/   — Coordinate, the immutable (x, y) cell position
//	terrain/ — Grid: the immutable heightmap, markers, lowest cells, heuristic
//	climb/   — the climbing rule as a graph (forward and inverse)
//	astar/   — generic A* search with decrease-key, budgets and hooks
//	route/   — shortest path from S, and from any cell matching a predicate
//
// Quick example:
//
//	g, _ := terrain.FromRows([]string{
//		"Sabqponm",
//		"abcryxxl",
//		"accszExk",
//		"acctuvwj",
//		"abdefghi",
//	})
//	p, _, _ := route.ShortestPath(g)                           // p.Cost == 31
//	q, _, _ := route.ShortestPathFromAny(g, terrain.Lowest)    // q.Cost == 29
//
// The grid is read-only once built, so any number of searches may share it.
package heightmap
