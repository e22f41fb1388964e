package astar

// item is one frontier entry. index is its slot in the heap, maintained by
// Swap so the entry can be fixed in place on decrease-key.
type item[N comparable] struct {
	node  N
	g     int // cost from source
	h     int // heuristic, computed once on first discovery
	f     int // g + h
	seq   int // insertion order, last tie-breaker
	index int
}

// frontier is a min-heap of *item ordered by f, then h, then seq.
type frontier[N comparable] []*item[N]

func (q frontier[N]) Len() int { return len(q) }

func (q frontier[N]) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func (q frontier[N]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *frontier[N]) Push(x any) {
	it := x.(*item[N])
	it.index = len(*q)
	*q = append(*q, it)
}

func (q *frontier[N]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*q = old[:n-1]

	return it
}
