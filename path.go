package contour

import (
	"strconv"
	"strings"
)

// PathOp represents a single command in a traced boundary path.
type PathOp interface {
	isPathOp()
}

// MoveOp starts a boundary at a corner point.
type MoveOp struct {
	X, Y int
}

func (MoveOp) isPathOp() {}

// HLineOp draws a horizontal line to the given X coordinate.
type HLineOp struct {
	X int
}

func (HLineOp) isPathOp() {}

// VLineOp draws a vertical line to the given Y coordinate.
type VLineOp struct {
	Y int
}

func (VLineOp) isPathOp() {}

// CloseOp closes the boundary back to its starting point.
type CloseOp struct{}

func (CloseOp) isPathOp() {}

// Path is one closed boundary: a MoveOp followed by alternating
// horizontal and vertical line ops, optionally terminated by a
// CloseOp. Collinear runs are collapsed during tracing, so no two
// consecutive line ops share an axis.
type Path struct {
	ops []PathOp
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		ops: make([]PathOp, 0, 8),
	}
}

// MoveTo starts the path at a corner point.
func (p *Path) MoveTo(x, y int) {
	p.ops = append(p.ops, MoveOp{X: x, Y: y})
}

// HLineTo appends a horizontal line to the given X coordinate.
func (p *Path) HLineTo(x int) {
	p.ops = append(p.ops, HLineOp{X: x})
}

// VLineTo appends a vertical line to the given Y coordinate.
func (p *Path) VLineTo(y int) {
	p.ops = append(p.ops, VLineOp{Y: y})
}

// Close closes the path.
func (p *Path) Close() {
	p.ops = append(p.ops, CloseOp{})
}

// Ops returns the path ops in emission order.
func (p *Path) Ops() []PathOp {
	return p.ops
}

// String encodes the path as SVG path commands: "M x y" followed by
// "H x" / "V y" commands and an optional trailing "Z".
func (p *Path) String() string {
	var b strings.Builder
	p.encode(&b)
	return b.String()
}

func (p *Path) encode(b *strings.Builder) {
	for _, op := range p.ops {
		switch op := op.(type) {
		case MoveOp:
			b.WriteByte('M')
			b.WriteString(strconv.Itoa(op.X))
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(op.Y))
		case HLineOp:
			b.WriteByte('H')
			b.WriteString(strconv.Itoa(op.X))
		case VLineOp:
			b.WriteByte('V')
			b.WriteString(strconv.Itoa(op.Y))
		case CloseOp:
			b.WriteByte('Z')
		}
	}
}

// EncodePaths concatenates the SVG command strings of all paths.
// Boundary groups carry no separator; each one starts with its own M.
func EncodePaths(paths []*Path) string {
	var b strings.Builder
	for _, p := range paths {
		p.encode(&b)
	}
	return b.String()
}
