package contour

import "image"

// rules is the constant parameter set distinguishing outline from hole
// traversal: the turn sign (mirrored chirality), the neighbor triples
// inspected per step, the advance offsets for the two corner cases,
// the terminal closing heading, and the per-heading vertex and counter
// delta tables.
//
// The delta values and the scanner's ascend/descend signature sets are
// co-designed constants. Together they encode, per cell, how many
// times a scan line crosses the boundary at that column; do not adjust
// one without the other.
type rules struct {
	name     string
	inside   Class       // neighbor class counted as inside
	start    Orientation // initial heading at the discovered cell
	turn     int         // 45-degree steps per 90-degree turn: +2 clockwise, -2 counterclockwise
	sharpChk [2]int      // headings (relative) that are inside on a sharp inward turn
	pairChk  [2]int      // headings (relative) that are inside on a convex corner pair
	sharpAdv int         // advance heading (relative) for the sharp inward turn
	sideAdv  int         // advance heading (relative) for the convex corner pair
	terminal Orientation // heading that completes the closing rotation

	// vertex holds the corner offset added to the cursor when a vertex
	// is emitted at the indexed heading. Outlines use the bottom-left
	// corner convention, holes the bottom-right one, so an outline and
	// an adjacent hole sharing a grid edge emit identical coordinates.
	vertex [8]image.Point

	// delta is the counter stamp per heading. The resulting magnitudes
	// feed the scanner's crossing-number classification.
	delta [8]int8
}

var outlineRules = rules{
	name:     "outline",
	inside:   Foreground,
	start:    East,
	turn:     2,
	sharpChk: [2]int{7, 0},
	pairChk:  [2]int{1, 2},
	sharpAdv: 7,
	sideAdv:  1,
	terminal: North,
	vertex: [8]image.Point{
		North: {0, 1},
		East:  {0, 0},
		South: {1, 0},
		West:  {1, 1},
	},
	delta: [8]int8{
		North: 1,
		East:  2,
		South: 4,
		West:  8,
	},
}

var holeRules = rules{
	name:     "hole",
	inside:   Background,
	start:    South,
	turn:     -2,
	sharpChk: [2]int{1, 0},
	pairChk:  [2]int{7, 6},
	sharpAdv: 1,
	sideAdv:  7,
	terminal: West,
	vertex: [8]image.Point{
		North: {1, 1},
		East:  {0, 1},
		South: {0, 0},
		West:  {1, 0},
	},
	delta: [8]int8{
		North: -4,
		East:  -8,
		South: -1,
		West:  -2,
	},
}

// walk traces one full boundary starting at the given cell, stamping
// every visited cell and returning the emitted path. The cursor walks
// until it returns to the start cell with more than two vertices
// emitted (the extra two guard against a false self-touch on the very
// first step), then rotates in place to the terminal heading to square
// off the path.
func walk(g Raster, start image.Point, r *rules, closePath bool) *Path {
	w, h := g.Size()
	budget := 4*w*h + 8

	pos := start
	o := r.start
	p := NewPath()
	p.MoveTo(pos.X+r.vertex[o].X, pos.Y+r.vertex[o].Y)
	vertices := 1

	in := func(rel int) bool {
		n := pos.Add(o.turned(rel).offset())
		return g.Classify(n.X, n.Y) == r.inside
	}

	for steps := 0; ; steps++ {
		if steps > budget {
			panic("contour: boundary walk failed to return to its start cell")
		}
		switch {
		case in(r.sharpChk[0]) && in(r.sharpChk[1]):
			// Sharp inward turn: advance diagonally, rotate into it.
			g.Add(pos.X, pos.Y, r.delta[o])
			pos = pos.Add(o.turned(r.sharpAdv).offset())
			o = o.turned(-r.turn)
			vertices++
			emit(p, pos, o, r)
		case in(0):
			// Straight ahead: the segment continues, no vertex.
			g.Add(pos.X, pos.Y, r.delta[o])
			pos = pos.Add(o.offset())
		case in(r.pairChk[0]) && in(r.pairChk[1]):
			// Convex corner pair: stamp twice, emit a vertex into the
			// wall and a second one after stepping sideways.
			g.Add(pos.X, pos.Y, r.delta[o])
			t := o.turned(r.turn)
			g.Add(pos.X, pos.Y, r.delta[t])
			vertices++
			emit(p, pos, t, r)
			pos = pos.Add(o.turned(r.sideAdv).offset())
			vertices++
			emit(p, pos, o, r)
		default:
			// Outward turn: rotate in place.
			g.Add(pos.X, pos.Y, r.delta[o])
			o = o.turned(r.turn)
			vertices++
			emit(p, pos, o, r)
		}
		if pos == start && vertices > 2 {
			break
		}
	}

	// Closing: rotate in place to the terminal heading, stamping and
	// emitting the final segment(s) that square off the path.
	for {
		g.Add(pos.X, pos.Y, r.delta[o])
		if o == r.terminal {
			break
		}
		o = o.turned(r.turn)
		vertices++
		emit(p, pos, o, r)
	}
	if closePath {
		p.Close()
	}

	Logger().Debug("boundary traced",
		"kind", r.name, "start", start, "vertices", vertices)
	return p
}

// emit appends one axis-aligned vertex at the cursor's corner for the
// current heading. Headings are cardinal at emission time; diagonal
// advances decompose into the convex-corner pair and never emit a
// diagonal op.
func emit(p *Path, pos image.Point, o Orientation, r *rules) {
	if o.horizontal() {
		p.HLineTo(pos.X + r.vertex[o].X)
	} else {
		p.VLineTo(pos.Y + r.vertex[o].Y)
	}
}
