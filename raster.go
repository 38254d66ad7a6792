package contour

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid reports malformed trace input: a nil or empty grid,
// rows of unequal length, or an image with a zero dimension.
var ErrInvalidGrid = errors.New("contour: invalid grid")

// Class is the tri-state classification of a raster cell as seen by
// the boundary walker.
type Class int8

const (
	// Background marks a cell on the background side of a boundary.
	Background Class = iota - 1

	// Neutral marks a cell outside the traced region. Neighbor probes
	// beyond the grid resolve to Neutral, so it never matches either
	// side of a boundary.
	Neutral

	// Foreground marks a cell on the foreground side of a boundary.
	Foreground
)

// Raster is the capability set the scanner and tracer operate on.
// Both backends present the same signed-counter view: every cell
// starts at +1 (foreground) or -1 (background) and accumulates the
// per-orientation deltas stamped during tracing. The counter magnitude
// doubles as the visited marker and as the crossing-direction
// signature the scanner classifies.
//
// A Raster is exclusively owned by one trace call and is mutated
// destructively; it cannot be scanned twice.
type Raster interface {
	// Size returns the logical grid dimensions.
	Size() (width, height int)

	// Classify reports which side of a boundary the cell lies on.
	// Positions outside the grid are Neutral.
	Classify(x, y int) Class

	// Add accumulates a signed delta into the cell's counter.
	Add(x, y int, delta int8)

	// Signed returns the cell's current counter value.
	Signed(x, y int) int
}

// field is the array-backed Raster: a flat int8 buffer with a
// one-cell zero border so neighbor probes need no bounds checks.
// Logical coordinates are translated past the border internally.
type field struct {
	width  int
	height int
	cells  []int8
}

// newField builds a bordered counter grid from a boolean matrix.
// Foreground cells start at +1, background cells at -1, border cells
// stay at zero.
func newField(bits [][]bool) (*field, error) {
	if len(bits) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidGrid)
	}
	w := len(bits[0])
	if w == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrInvalidGrid)
	}
	f := &field{
		width:  w,
		height: len(bits),
		cells:  make([]int8, (w+2)*(len(bits)+2)),
	}
	for y, row := range bits {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, y, len(row), w)
		}
		for x, fg := range row {
			if fg {
				f.cells[f.index(x, y)] = 1
			} else {
				f.cells[f.index(x, y)] = -1
			}
		}
	}
	return f, nil
}

// index maps a logical cell to its slot in the bordered buffer.
func (f *field) index(x, y int) int {
	return (y+1)*(f.width+2) + (x + 1)
}

// Size returns the logical grid dimensions.
func (f *field) Size() (int, int) {
	return f.width, f.height
}

// Classify reports the boundary side of a cell by the sign of its
// counter. Border cells hold zero and come back Neutral.
func (f *field) Classify(x, y int) Class {
	if x < -1 || x > f.width || y < -1 || y > f.height {
		return Neutral
	}
	switch v := f.cells[f.index(x, y)]; {
	case v > 0:
		return Foreground
	case v < 0:
		return Background
	default:
		return Neutral
	}
}

// Add accumulates a delta into the cell's counter.
func (f *field) Add(x, y int, delta int8) {
	f.cells[f.index(x, y)] += delta
}

// Signed returns the cell's counter value.
func (f *field) Signed(x, y int) int {
	return int(f.cells[f.index(x, y)])
}
