package route

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/heightmap/climb"
	"github.com/katalvlaran/heightmap/coord"
)

// Sentinel errors for route queries.
var (
	// ErrNilGrid indicates a nil grid was passed to a query.
	ErrNilGrid = errors.New("route: grid is nil")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("route: invalid option supplied")
)

// Path is a route from a source to the goal.
type Path struct {
	// Cells runs source..goal inclusive.
	Cells []coord.Coordinate
	// Cost is the number of steps, always len(Cells)-1.
	Cost int
}

// Source returns the first cell of p, or the zero Coordinate for an empty path.
func (p Path) Source() coord.Coordinate {
	if len(p.Cells) == 0 {
		return coord.Coordinate{}
	}
	return p.Cells[0]
}

// Options configures route queries.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxClimb is the largest allowed elevation gain per step.
	MaxClimb int

	// MaxExpansions, if > 0, bounds the expanded cells of each single search.
	MaxExpansions int

	// Workers is the number of concurrent searches in ShortestPathFromAny.
	Workers int

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for route queries.
type Option func(*Options)

// DefaultOptions returns Options with a background context, the default climb
// limit, no expansion budget and a single worker.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxClimb:      climb.DefaultMaxClimb,
		MaxExpansions: 0,
		Workers:       1,
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

// WithMaxClimb sets the largest allowed elevation gain per step.
func WithMaxClimb(k int) Option {
	return func(o *Options) {
		o.MaxClimb = k
	}
}

// WithMaxExpansions bounds every single search to n expanded cells.
//
//	n > 0:  astar.ErrBudgetExceeded once a search expands n cells
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

// WithWorkers sets how many candidate searches ShortestPathFromAny runs at once.
//
//	n > 0:  at most n concurrent searches
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
