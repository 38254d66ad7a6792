// Package contour traces the boundaries of binary rasters into
// axis-aligned vector paths.
//
// # Overview
//
// contour converts a 2D foreground/background classification — a
// boolean matrix or a grayscale image buffer — into one closed
// polygonal path per connected foreground region (its outline) and
// one per background region enclosed inside it (a hole). Boundaries
// are followed with a Pavlidis-style contour walker (4-connected):
// outlines come out clockwise, holes counterclockwise, and collinear
// steps are collapsed into single segments. The result is a compact
// string of SVG path commands built from M, H, V and optional Z.
//
// # Quick Start
//
//	import "github.com/gogpu/contour"
//
//	bits := [][]bool{
//	    {true, false, false},
//	    {false, true, false},
//	    {false, false, true},
//	}
//
//	d, err := contour.Trace(bits, true)
//	// d == "M0 0H1V1H0ZM1 1H2V2H1ZM2 2H3V3H2Z"
//
// Image buffers are traced in place:
//
//	d, err := contour.TraceImage(img, 255, true)
//
// TraceImage rewrites every pixel of the buffer during the call; keep
// a copy if the original values are still needed. FromImage produces a
// suitable working copy from any image.Image.
//
// # Coordinate System
//
// Grid corners, not cell centers, carry the coordinates:
//   - Origin (0,0) at the top-left corner of the top-left cell
//   - X increases right, Y increases down
//   - Emitted coordinates lie in [0, width] x [0, height]
//
// A single foreground cell at (0,0) therefore traces to "M0 0H1V1H0Z".
//
// # Performance
//
// Tracing is strictly sequential and runs in O(width x height): the
// scanner visits every cell once per row pass and the walker revisits
// each boundary cell only a small constant number of times. The input
// raster is consumed by the scan and cannot be traced twice.
package contour

// Version is the current version of the library.
const Version = "0.1.0"
