package route

import (
	"fmt"

	"github.com/katalvlaran/heightmap/astar"
	"github.com/katalvlaran/heightmap/climb"
	"github.com/katalvlaran/heightmap/coord"
	"github.com/katalvlaran/heightmap/terrain"
)

// ShortestPath returns the fewest-step path from g.Start() to g.Goal().
func ShortestPath(g *terrain.Grid, opts ...Option) (Path, bool, error) {
	if g == nil {
		return Path{}, false, ErrNilGrid
	}
	return ShortestPathFrom(g, g.Start(), opts...)
}

// ShortestPathFrom returns the fewest-step path from source to g.Goal().
// source must lie inside the grid (terrain.ErrOutOfBounds otherwise).
func ShortestPathFrom(g *terrain.Grid, source coord.Coordinate, opts ...Option) (Path, bool, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Path{}, false, err
	}
	if g == nil {
		return Path{}, false, ErrNilGrid
	}
	if !g.InBounds(source) {
		return Path{}, false, fmt.Errorf("route: source %v: %w", source, terrain.ErrOutOfBounds)
	}
	rule, err := climb.Forward(g, climb.WithMaxClimb(o.MaxClimb))
	if err != nil {
		return Path{}, false, err
	}

	return search(rule, source, o)
}

// search runs one A* from source to the rule's goal.
func search(rule *climb.Rule, source coord.Coordinate, o Options) (Path, bool, error) {
	g := rule.Grid()
	res, found, err := astar.Search[coord.Coordinate](
		rule,
		source,
		g.Goal(),
		g.ManhattanDistance,
		astar.WithContext(o.Ctx),
		astar.WithMaxExpansions(o.MaxExpansions),
	)
	if err != nil || !found {
		return Path{}, false, err
	}

	return Path{Cells: res.Path, Cost: res.Cost}, true, nil
}
