package contour

import (
	"image"

	"golang.org/x/image/draw"
)

// FromImage converts any image into a grayscale working copy suitable
// for TraceImage. The source is left untouched.
func FromImage(src image.Image) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
	return dst
}

// FromImageScaled converts any image into a grayscale working copy
// resampled by the given factor. Useful for tracing large scans at a
// coarser resolution. Factors at or below zero fall back to 1.
func FromImageScaled(src image.Image, scale float64) *image.Gray {
	if scale <= 0 {
		scale = 1
	}
	b := src.Bounds()
	w := int(float64(b.Dx()) * scale)
	h := int(float64(b.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Rect, src, b, draw.Src, nil)
	return dst
}

// Threshold binarizes a grayscale buffer in place: pixels with
// luminance at or above cutoff become 255, the rest 0. The result can
// be handed straight to TraceImage with foreground 255.
func Threshold(img *image.Gray, cutoff uint8) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			if row[x] >= cutoff {
				row[x] = 255
			} else {
				row[x] = 0
			}
		}
	}
}
