package route

import (
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/heightmap/climb"
	"github.com/katalvlaran/heightmap/terrain"
)

// outcome is one candidate's search result, written by exactly one goroutine.
type outcome struct {
	path  Path
	found bool
}

// ShortestPathFromAny runs an A* from every cell satisfying pred (nil means
// the grid's precomputed terrain.Lowest cells) and returns the cheapest path to the goal. Candidates with
// no path are skipped; if none has a path, found is false.
//
// With WithWorkers(n) up to n searches run concurrently. The first search
// error cancels the rest and is returned.
//
// Complexity: O(C · (V log V)) for C candidates over V cells.
func ShortestPathFromAny(g *terrain.Grid, pred terrain.Predicate, opts ...Option) (Path, bool, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Path{}, false, err
	}
	if g == nil {
		return Path{}, false, ErrNilGrid
	}
	rule, err := climb.Forward(g, climb.WithMaxClimb(o.MaxClimb))
	if err != nil {
		return Path{}, false, err
	}

	candidates := slices.Collect(g.StartingPositions(pred))
	results := make([]outcome, len(candidates))

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	so := o
	so.Ctx = ctx
	for i, src := range candidates {
		eg.Go(func() error {
			p, found, err := search(rule, src, so)
			if err != nil {
				return fmt.Errorf("route: search from %v: %w", src, err)
			}
			results[i] = outcome{path: p, found: found}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Path{}, false, err
	}

	best := -1
	for i, r := range results {
		if r.found && (best < 0 || r.path.Cost < results[best].path.Cost) {
			best = i
		}
	}
	if best < 0 {
		return Path{}, false, nil
	}

	return results[best].path, true, nil
}
