// Package terrain holds the elevation map that every search runs over.
//
// What:
//
//   - Grid stores a W×H heightmap as one flat row-major byte buffer,
//     value(x,y) = data[y*W+x], carried alongside its (W,H) descriptor.
//   - Elevations are the letters 'a' (lowest) to 'z' (highest).
//   - Exactly one 'S' (start, read as 'a') and one 'E' (goal, read as 'z')
//     must be present; their positions become Start() and Goal().
//
// Why:
//
//   - The grid is immutable after New, so any number of searches may read
//     it concurrently without locks.
//   - Derived facts (the list of lowest cells) are computed once in New.
//
// Complexity:
//
//   - New / FromRows:   O(W×H) time and memory.
//   - Value / Lookup:   O(1).
//   - StartingPositions: O(W×H) per full iteration, O(1) memory.
//
// Options:
//
//   - WithFirstMarkerWins(): accept repeated 'S'/'E' markers; the first in
//     row-major order wins and the rest read as plain 'a'/'z'.
//     Without it, repeated markers are rejected with ErrDuplicateMarker.
//
// Errors:
//
//   - ErrEmptyGrid:         width or height is zero (or no rows).
//   - ErrNonRectangular:    FromRows got rows of differing lengths.
//   - ErrDimensionMismatch: len(raw) != width*height.
//   - ErrInvalidCell:       a byte outside 'a'..'z', 'S', 'E'.
//   - ErrMissingMarker:     no 'S' or no 'E'.
//   - ErrDuplicateMarker:   more than one 'S' or 'E'.
//   - ErrOutOfBounds:       a coordinate outside [0,W)×[0,H).
package terrain
