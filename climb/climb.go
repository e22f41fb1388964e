package climb

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/heightmap/astar"
	"github.com/katalvlaran/heightmap/coord"
	"github.com/katalvlaran/heightmap/terrain"
)

// DefaultMaxClimb is the largest upward step allowed unless configured otherwise.
const DefaultMaxClimb = 1

// ErrBadMaxClimb indicates a negative MaxClimb.
var ErrBadMaxClimb = errors.New("climb: MaxClimb must be non-negative")

// ErrNilGrid indicates a nil grid was passed to Forward or Reverse.
var ErrNilGrid = errors.New("climb: grid is nil")

// Options configures a Rule.
type Options struct {
	// MaxClimb is the largest allowed elevation gain per step.
	MaxClimb int
}

// Option is a functional option for Forward and Reverse.
type Option func(*Options)

// DefaultOptions returns Options with MaxClimb = DefaultMaxClimb.
func DefaultOptions() Options {
	return Options{MaxClimb: DefaultMaxClimb}
}

// WithMaxClimb sets the largest allowed elevation gain per step.
// Negative values make Forward and Reverse return ErrBadMaxClimb.
func WithMaxClimb(k int) Option {
	return func(o *Options) {
		o.MaxClimb = k
	}
}

// Rule is the adjacency relation over one grid, in one direction.
// It is immutable and safe for concurrent use.
type Rule struct {
	grid     *terrain.Grid
	maxClimb int
	reverse  bool
}

// Forward returns the rule for walking from a source towards the goal.
func Forward(g *terrain.Grid, opts ...Option) (*Rule, error) {
	return newRule(g, false, opts)
}

// Reverse returns the inverse rule for walking outwards from the goal.
func Reverse(g *terrain.Grid, opts ...Option) (*Rule, error) {
	return newRule(g, true, opts)
}

func newRule(g *terrain.Grid, reverse bool, opts []Option) (*Rule, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if o.MaxClimb < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxClimb, o.MaxClimb)
	}

	return &Rule{grid: g, maxClimb: o.MaxClimb, reverse: reverse}, nil
}

// Grid returns the grid the rule was built for.
func (r *Rule) Grid() *terrain.Grid { return r.grid }

// MaxClimb returns the configured climb limit.
func (r *Rule) MaxClimb() int { return r.maxClimb }

// IsReverse reports whether r is the inverse relation.
func (r *Rule) IsReverse() bool { return r.reverse }

// Allowed reports whether a single forward step from → to is legal: both
// cells in bounds, orthogonally adjacent, and to at most MaxClimb above from.
// It ignores the rule's direction, so it can validate a path either way.
func (r *Rule) Allowed(from, to coord.Coordinate) bool {
	if !r.grid.InBounds(from) || !r.grid.InBounds(to) {
		return false
	}
	if dx, dy := from.X-to.X, from.Y-to.Y; dx*dx+dy*dy != 1 {
		return false
	}

	return r.canStep(from, to)
}

// Successors returns the legal moves out of p, each with cost 1, in the
// neighbor order of coord.Coordinate.Neighbors. For a reverse rule these
// are the cells that could step onto p.
//
// p must be in bounds; terrain.Grid.Value panics otherwise.
func (r *Rule) Successors(p coord.Coordinate) []astar.Edge[coord.Coordinate] {
	candidates := p.Neighbors()
	out := make([]astar.Edge[coord.Coordinate], 0, len(candidates))
	for _, n := range candidates {
		if n.X >= r.grid.Width() || n.Y >= r.grid.Height() {
			continue
		}
		from, to := p, n
		if r.reverse {
			from, to = n, p
		}
		if !r.canStep(from, to) {
			continue
		}
		out = append(out, astar.Edge[coord.Coordinate]{To: n, Cost: 1})
	}

	return out
}

// canStep applies the climb limit to in-bounds cells.
func (r *Rule) canStep(from, to coord.Coordinate) bool {
	return int(r.grid.Value(to)) <= int(r.grid.Value(from))+r.maxClimb
}

// Validate checks that path is a connected sequence of legal forward steps.
// It returns the index of the first offending cell and false, or -1 and
// true for a valid path. An empty path is valid.
func (r *Rule) Validate(path []coord.Coordinate) (int, bool) {
	if len(path) > 0 && !r.grid.InBounds(path[0]) {
		return 0, false
	}
	for i := 1; i < len(path); i++ {
		if !r.Allowed(path[i-1], path[i]) {
			return i, false
		}
	}
	return -1, true
}

var _ astar.Graph[coord.Coordinate] = (*Rule)(nil)
