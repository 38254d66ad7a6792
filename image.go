package contour

import (
	"fmt"
	"image"
)

// Internal two-value pixel encoding used by the image backend. The
// counter view is 32 minus the stored luminance, so foreground starts
// at +1, background at -1, and the delta tables land on the same
// signatures the array backend produces. Out-of-bounds probes resolve
// to the neutral value.
const (
	fgLuma = 31
	bgLuma = 33
)

// grayRaster is the image-backed Raster: an unbordered view over a
// grayscale buffer with edge clamping instead of a materialized
// border. The buffer is rewritten in place.
type grayRaster struct {
	img    *image.Gray
	width  int
	height int
}

// newGrayRaster rewrites every pixel of the buffer into the internal
// encoding (matching the foreground luminance or not) and wraps it.
// The caller loses the original pixel values.
func newGrayRaster(img *image.Gray, foreground uint8) (*grayRaster, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidGrid)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: image is %dx%d", ErrInvalidGrid, w, h)
	}
	for y := 0; y < h; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < w; x++ {
			if row[x] == foreground {
				row[x] = fgLuma
			} else {
				row[x] = bgLuma
			}
		}
	}
	return &grayRaster{img: img, width: w, height: h}, nil
}

// pixOffset maps a logical cell to its index in the pixel slice.
func (g *grayRaster) pixOffset(x, y int) int {
	b := g.img.Rect
	return g.img.PixOffset(b.Min.X+x, b.Min.Y+y)
}

// Size returns the logical grid dimensions.
func (g *grayRaster) Size() (int, int) {
	return g.width, g.height
}

// Classify reports the boundary side of a cell by the sign of its
// counter view. Positions outside the buffer clamp to Neutral.
func (g *grayRaster) Classify(x, y int) Class {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Neutral
	}
	switch v := g.img.Pix[g.pixOffset(x, y)]; {
	case v < 32:
		return Foreground
	case v > 32:
		return Background
	default:
		return Neutral
	}
}

// Add accumulates a delta into the cell's counter view. The stored
// luminance moves opposite to the counter, with int8 wraparound
// semantics matching the delta tables.
func (g *grayRaster) Add(x, y int, delta int8) {
	i := g.pixOffset(x, y)
	g.img.Pix[i] = uint8(int8(g.img.Pix[i]) - delta)
}

// Signed returns the cell's counter value.
func (g *grayRaster) Signed(x, y int) int {
	return 32 - int(g.img.Pix[g.pixOffset(x, y)])
}
