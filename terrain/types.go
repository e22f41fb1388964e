package terrain

import (
	"errors"

	"github.com/katalvlaran/heightmap/coord"
)

// Sentinel errors for terrain construction and lookups.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrDimensionMismatch indicates the cell count does not equal width*height.
	ErrDimensionMismatch = errors.New("terrain: cell count does not match dimensions")
	// ErrInvalidCell indicates a byte that is neither an elevation letter nor a marker.
	ErrInvalidCell = errors.New("terrain: invalid cell")
	// ErrMissingMarker indicates the start or goal marker is absent.
	ErrMissingMarker = errors.New("terrain: marker not found")
	// ErrDuplicateMarker indicates the start or goal marker occurs more than once.
	ErrDuplicateMarker = errors.New("terrain: marker occurs more than once")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("terrain: coordinate out of bounds")
)

const (
	// StartMarker marks the start cell in raw input. It reads as MinElevation.
	StartMarker byte = 'S'
	// GoalMarker marks the goal cell in raw input. It reads as MaxElevation.
	GoalMarker byte = 'E'
	// MinElevation is the lowest elevation letter.
	MinElevation byte = 'a'
	// MaxElevation is the highest elevation letter.
	MaxElevation byte = 'z'
)

// Predicate selects cells by position and elevation. The elevation passed in
// is already marker-substituted ('S' arrives as 'a', 'E' as 'z').
type Predicate func(p coord.Coordinate, elevation byte) bool

// Lowest selects every cell at MinElevation, the start cell included.
func Lowest(_ coord.Coordinate, elevation byte) bool {
	return elevation == MinElevation
}

// ElevationEquals returns a Predicate selecting cells at exactly e.
func ElevationEquals(e byte) Predicate {
	return func(_ coord.Coordinate, elevation byte) bool { return elevation == e }
}

// AtLeast returns a Predicate selecting cells at elevation e or higher.
func AtLeast(e byte) Predicate {
	return func(_ coord.Coordinate, elevation byte) bool { return elevation >= e }
}

// Options tunes grid construction.
type Options struct {
	// FirstMarkerWins accepts repeated markers, keeping the first in row-major order.
	FirstMarkerWins bool
}

// Option configures grid construction.
type Option func(*Options)

// DefaultOptions returns Options that reject repeated markers.
func DefaultOptions() Options {
	return Options{FirstMarkerWins: false}
}

// WithFirstMarkerWins keeps the first 'S' and first 'E' in row-major order
// and reads any later ones as plain elevation letters.
func WithFirstMarkerWins() Option {
	return func(o *Options) {
		o.FirstMarkerWins = true
	}
}

// Grid is an immutable W×H heightmap with one start and one goal.
// All methods are safe for concurrent use.
type Grid struct {
	width, height int
	data          []byte // row-major raw cells, markers kept verbatim
	start, goal   coord.Coordinate
	lowest        []coord.Coordinate // precomputed MinElevation cells, row-major
}
