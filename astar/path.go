package astar

import "slices"

// reconstructPath walks predecessor links from current back to start and
// returns the nodes in start..current order.
func reconstructPath[N comparable](prev map[N]N, current, start N) []N {
	path := []N{current}
	for current != start {
		p, ok := prev[current]
		if !ok {
			break
		}
		path = append(path, p)
		current = p
	}
	slices.Reverse(path)

	return path
}
