package contour

import "image"

// Counter magnitudes left behind by the tracer that mark a boundary
// crossing on the scan line. A "descend" signature means the boundary
// enters the row at this column, an "ascend" signature that it leaves.
// The values follow from the per-heading delta tables in tracer.go and
// are locked by the golden tests; they are not derivable from local
// geometry alone.
func levelShift(v int) int {
	m := v
	if m < 0 {
		m = -m
	}
	switch m {
	case 2, 4, 10, 12:
		return 1
	case 5, 7, 13, 15:
		return -1
	default:
		return 0
	}
}

// scan walks the raster row-major and starts one boundary trace per
// discovered boundary, in discovery order. Per row it maintains the
// outline and hole nesting levels as a crossing-number test: equal
// levels mean the cursor is outside any foreground region, so an
// untouched foreground cell starts an outline; a surplus of outline
// crossings means the cursor is inside one, so an untouched background
// cell starts a hole. After any trace the cell's updated counter is
// re-read so the crossing it now encodes adjusts the levels.
func scan(g Raster, closePaths bool) []*Path {
	width, height := g.Size()
	var paths []*Path
	for y := 0; y < height; y++ {
		ol, hl := 0, 0
		for x := 0; x < width; x++ {
			if ol == hl && g.Signed(x, y) == 1 {
				paths = append(paths, walk(g, image.Pt(x, y), &outlineRules, closePaths))
			} else if ol > hl && g.Signed(x, y) == -1 {
				paths = append(paths, walk(g, image.Pt(x, y), &holeRules, closePaths))
			}
			v := g.Signed(x, y)
			if shift := levelShift(v); shift != 0 {
				if v > 0 {
					ol += shift
				} else {
					hl += shift
				}
			}
		}
	}
	Logger().Debug("scan complete",
		"width", width, "height", height, "boundaries", len(paths))
	return paths
}
