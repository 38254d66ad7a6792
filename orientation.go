package contour

import "image"

// Orientation is a compass heading of the boundary-walking cursor.
// It doubles as an index into the Moore neighborhood offset table.
type Orientation uint8

const (
	North Orientation = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// String returns a string representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return "Unknown"
	}
}

// moore holds the eight neighbor offsets in clockwise order starting
// north, indexed by Orientation. Y grows downward.
var moore = [8]image.Point{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

// offset returns the unit step for this orientation.
func (o Orientation) offset() image.Point {
	return moore[o]
}

// turned returns the orientation rotated by the given number of
// 45-degree steps. Positive steps rotate clockwise.
func (o Orientation) turned(steps int) Orientation {
	return Orientation((int(o) + steps) & 7)
}

// horizontal reports whether a vertex emitted at this heading moves
// along the X axis. The walker travels on cardinal headings only;
// a north or south heading means the boundary edge just finished ran
// vertically and the next segment is horizontal.
func (o Orientation) horizontal() bool {
	return o == North || o == South
}
