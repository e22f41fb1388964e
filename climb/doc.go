// Package climb encodes the movement rule over a terrain.Grid: from a cell you
// may step to any of its four neighbors inside the grid whose elevation is at
// most MaxClimb levels above the current one. Descending is unrestricted.
// Every legal move costs 1.
//
// Forward builds the rule as an astar.Graph for searches that walk from a
// source towards the goal. Reverse builds its inverse, for searches that walk
// outwards from the goal: q is a reverse successor of p exactly when p is a
// forward successor of q.
//
// This package is the only place the climbing constraint lives; the search
// engine is generic over the Graph it is handed.
package climb
