package route

import (
	"fmt"

	"github.com/katalvlaran/heightmap/astar"
	"github.com/katalvlaran/heightmap/climb"
	"github.com/katalvlaran/heightmap/coord"
	"github.com/katalvlaran/heightmap/terrain"
)

// ShortestPathFromAnyReverse returns a cheapest path from any cell satisfying
// pred (nil means terrain.Lowest) to the goal, using one breadth-first search
// from the goal over the inverse climb rule. The first satisfying cell
// dequeued is the nearest one; the parent links already point towards the
// goal, so the path comes out in source..goal order.
//
// Complexity: O(V) time and memory for V cells.
func ShortestPathFromAnyReverse(g *terrain.Grid, pred terrain.Predicate, opts ...Option) (Path, bool, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Path{}, false, err
	}
	if g == nil {
		return Path{}, false, ErrNilGrid
	}
	if pred == nil {
		pred = terrain.Lowest
	}
	rule, err := climb.Reverse(g, climb.WithMaxClimb(o.MaxClimb))
	if err != nil {
		return Path{}, false, err
	}

	w := &reverseWalker{
		grid:   g,
		rule:   rule,
		pred:   pred,
		opts:   o,
		parent: make([]int, g.Width()*g.Height()),
		queue:  make([]int, 0, g.Width()*g.Height()),
	}

	return w.walk()
}

// reverseWalker holds the mutable state of one reverse search.
// parent[i] is the next cell towards the goal, -1 for unseen, i for the goal.
type reverseWalker struct {
	grid     *terrain.Grid
	rule     *climb.Rule
	pred     terrain.Predicate
	opts     Options
	parent   []int
	queue    []int
	expanded int
}

func (w *reverseWalker) walk() (Path, bool, error) {
	for i := range w.parent {
		w.parent[i] = -1
	}
	goal := w.grid.Index(w.grid.Goal())
	w.parent[goal] = goal
	w.queue = append(w.queue, goal)

	for qi := 0; qi < len(w.queue); qi++ {
		if err := w.opts.Ctx.Err(); err != nil {
			return Path{}, false, err
		}

		u := w.queue[qi]
		p := w.grid.Coordinate(u)
		if w.pred(p, w.grid.Value(p)) {
			return w.pathFrom(u), true, nil
		}

		if w.opts.MaxExpansions > 0 && w.expanded >= w.opts.MaxExpansions {
			return Path{}, false, fmt.Errorf("route: reverse search: %w: %d expansions",
				astar.ErrBudgetExceeded, w.expanded)
		}
		w.expanded++

		for _, e := range w.rule.Successors(p) {
			v := w.grid.Index(e.To)
			if w.parent[v] >= 0 {
				continue
			}
			w.parent[v] = u
			w.queue = append(w.queue, v)
		}
	}

	return Path{}, false, nil
}

// pathFrom follows parent links from src to the goal.
func (w *reverseWalker) pathFrom(src int) Path {
	var cells []coord.Coordinate
	for at := src; ; at = w.parent[at] {
		cells = append(cells, w.grid.Coordinate(at))
		if w.parent[at] == at {
			break
		}
	}

	return Path{Cells: cells, Cost: len(cells) - 1}
}
