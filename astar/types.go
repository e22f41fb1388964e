package astar

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates a nil Graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates a nil Heuristic was passed to Search.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrNegativeCost indicates a successor edge with negative cost.
	ErrNegativeCost = errors.New("astar: negative edge cost")

	// ErrBudgetExceeded indicates the expansion budget ran out before the goal was reached.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Edge is one legal move out of a node.
type Edge[N comparable] struct {
	To   N   // destination node
	Cost int // non-negative transition cost
}

// Graph produces the legal moves out of a node.
type Graph[N comparable] interface {
	Successors(n N) []Edge[N]
}

// GraphFunc adapts a plain function to Graph.
type GraphFunc[N comparable] func(n N) []Edge[N]

// Successors calls f(n).
func (f GraphFunc[N]) Successors(n N) []Edge[N] { return f(n) }

// Heuristic estimates the remaining cost from n to the goal.
type Heuristic[N comparable] func(n N) int

// Zero is the heuristic that always returns 0; with it Search behaves like Dijkstra.
func Zero[N comparable](N) int { return 0 }

// Result is the outcome of a successful search.
type Result[N comparable] struct {
	Path     []N // source..goal inclusive
	Cost     int // sum of edge costs along Path
	Expanded int // number of nodes whose successors were generated
}

// Options configures Search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions, if > 0, bounds the number of expanded nodes.
	MaxExpansions int

	// onExpand holds a func(N, int) set by WithOnExpand; its node type is
	// checked against the Search instantiation.
	onExpand any

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no budget and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the search to n node expansions.
//
//	n > 0:  ErrBudgetExceeded after n expansions without reaching the goal
//	n == 0: no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a hook called with each node as it is expanded,
// together with its cost from the source. The node type must match the
// Search instantiation, otherwise Search returns ErrOptionViolation.
func WithOnExpand[N comparable](fn func(n N, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onExpand = fn
		}
	}
}
