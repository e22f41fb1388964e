package astar

import (
	"container/heap"
	"fmt"
)

// Search runs A* from source to goal over g, guided by h.
//
// Returns:
//
//   - (result, true, nil) when the goal is reached; result.Path starts at
//     source and ends at goal.
//   - (Result{Expanded: n}, false, nil) when the goal is unreachable.
//   - (Result{}, false, err) for ErrNilGraph, ErrNilHeuristic,
//     ErrOptionViolation, ErrNegativeCost, ErrBudgetExceeded or ctx.Err().
//
// If source == goal the path is [source] with cost 0.
func Search[N comparable](g Graph[N], source, goal N, h Heuristic[N], opts ...Option) (Result[N], bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result[N]{}, false, o.err
	}
	if g == nil {
		return Result[N]{}, false, ErrNilGraph
	}
	if h == nil {
		return Result[N]{}, false, ErrNilHeuristic
	}

	onExpand := func(N, int) {}
	if o.onExpand != nil {
		fn, ok := o.onExpand.(func(N, int))
		if !ok {
			return Result[N]{}, false, fmt.Errorf("%w: OnExpand hook has type %T", ErrOptionViolation, o.onExpand)
		}
		onExpand = fn
	}

	r := &runner[N]{
		graph:    g,
		h:        h,
		source:   source,
		goal:     goal,
		opts:     o,
		onExpand: onExpand,
		open:     make(map[N]*item[N]),
		gScore:   make(map[N]int),
		prev:     make(map[N]N),
	}
	r.init()

	return r.process()
}

// runner holds the mutable state for a single search.
type runner[N comparable] struct {
	graph    Graph[N]
	h        Heuristic[N]
	source   N
	goal     N
	opts     Options
	onExpand func(N, int)

	frontier frontier[N]
	open     map[N]*item[N] // nodes currently on the frontier
	gScore   map[N]int      // best known cost from source
	prev     map[N]N        // predecessor on the best known route
	hCache   map[N]int      // h evaluated once per node
	seq      int
	expanded int
}

// init seeds the frontier with the source at g = 0.
func (r *runner[N]) init() {
	heap.Init(&r.frontier)
	r.hCache = make(map[N]int)
	r.gScore[r.source] = 0
	r.push(r.source, 0)
}

// process pops nodes in f order until the goal is popped or the frontier is empty.
func (r *runner[N]) process() (Result[N], bool, error) {
	for r.frontier.Len() > 0 {
		if err := r.opts.Ctx.Err(); err != nil {
			return Result[N]{}, false, err
		}

		cur := heap.Pop(&r.frontier).(*item[N])
		delete(r.open, cur.node)

		if cur.node == r.goal {
			return Result[N]{
				Path:     reconstructPath(r.prev, cur.node, r.source),
				Cost:     cur.g,
				Expanded: r.expanded,
			}, true, nil
		}

		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return Result[N]{}, false, fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, r.expanded)
		}
		r.expanded++
		r.onExpand(cur.node, cur.g)

		if err := r.relax(cur); err != nil {
			return Result[N]{}, false, err
		}
	}

	return Result[N]{Expanded: r.expanded}, false, nil
}

// relax offers every successor of cur a route through cur. A strictly
// cheaper g rewrites the predecessor and either fixes the existing frontier
// entry in place or pushes a new one.
func (r *runner[N]) relax(cur *item[N]) error {
	for _, e := range r.graph.Successors(cur.node) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, cur.node, e.To, e.Cost)
		}

		ng := cur.g + e.Cost
		if old, seen := r.gScore[e.To]; seen && ng >= old {
			continue
		}
		r.gScore[e.To] = ng
		r.prev[e.To] = cur.node

		if it, onFrontier := r.open[e.To]; onFrontier {
			it.g = ng
			it.f = ng + it.h
			heap.Fix(&r.frontier, it.index)
			continue
		}
		// New node, or an expanded one reopened (inconsistent heuristics only).
		r.push(e.To, ng)
	}

	return nil
}

// push adds n to the frontier at cost g.
func (r *runner[N]) push(n N, g int) {
	hv, ok := r.hCache[n]
	if !ok {
		hv = r.h(n)
		r.hCache[n] = hv
	}
	it := &item[N]{node: n, g: g, h: hv, f: g + hv, seq: r.seq}
	r.seq++
	heap.Push(&r.frontier, it)
	r.open[n] = it
}
