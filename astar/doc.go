// Package astar implements A* shortest-path search over any graph whose
// nodes are comparable values.
//
// Overview:
//
//   - A* expands nodes in order of f(n) = g(n) + h(n), where g is the cost
//     accumulated from the source and h is a caller-supplied estimate of the
//     remaining cost to the goal.
//   - With an admissible h (never overestimates) the first time the goal is
//     popped its g is minimal. With a consistent h no closed node is ever
//     improved; for merely admissible heuristics closed nodes are reopened
//     when a cheaper route appears, so the result stays optimal.
//   - The graph is consulted only through Graph.Successors, so the cost
//     model (which moves are legal, what they cost) lives outside this
//     package.
//
// Frontier:
//
//   - An indexed binary min-heap. When a cheaper g is found for a node that is
//     already on the frontier, its entry is updated in place with heap.Fix and
//     its predecessor is rewritten (decrease-key), rather than pushing a
//     duplicate.
//   - Ties on f are broken by the smaller h, then by insertion order, so the
//     returned path is deterministic for a given graph.
//
// Results:
//
//   - found == true:  Result.Path runs source..goal inclusive, Result.Cost is
//     the summed edge cost.
//   - found == false: the frontier ran dry; the goal is unreachable. This is
//     a normal outcome, not an error.
//   - err != nil: invalid arguments, cancellation, or budget exhaustion.
//
// Options:
//
//   - WithContext(ctx):      cancellation, checked once per expansion.
//   - WithMaxExpansions(n):  step budget; ErrBudgetExceeded once n nodes
//     have been expanded without reaching the goal. 0 means unlimited.
//   - WithOnExpand(fn):      hook called with every node as it is expanded.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for a consistent heuristic.
//   - Space: O(V) for the frontier index, g scores and predecessors.
//
// Thread safety:
//
//   - Search keeps all state local to the call. Concurrent calls are safe as
//     long as the Graph and Heuristic are safe for concurrent reads.
package astar
