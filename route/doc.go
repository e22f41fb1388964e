// Package route answers the two terrain questions:
//
//   - ShortestPath / ShortestPathFrom: the fewest steps from one source to
//     the goal under the climb rule, found with A* guided by the Manhattan
//     distance to the goal.
//   - ShortestPathFromAny: the fewest steps from any cell satisfying a
//     terrain.Predicate (terrain.Lowest by default) to the goal.
//
// ShortestPathFromAny is the brute-force formulation: one A* per candidate,
// keeping the cheapest. Candidates are independent, so WithWorkers fans them
// out over an errgroup; the reduction runs after all searches finish, in
// row-major candidate order, so the result does not depend on scheduling.
// Among equal-cost candidates the earliest in row-major order wins.
//
// ShortestPathFromAnyReverse computes the same minimum with a single
// breadth-first search outwards from the goal over the inverse climb rule,
// stopping at the first cell that satisfies the predicate. Its cost always
// equals ShortestPathFromAny's; when several sources tie, the two may
// return different (equally short) paths.
//
// "No path" is reported as found == false with a nil error. Errors are
// reserved for bad arguments (ErrNilGrid, terrain.ErrOutOfBounds,
// ErrOptionViolation, climb.ErrBadMaxClimb), cancellation, and an exhausted
// expansion budget (astar.ErrBudgetExceeded).
package route
