package contour

import "image"

// Trace converts a rectangular boolean matrix (true = foreground) into
// a string of SVG path commands: one "M x y" group per traced
// boundary, built from "H x" / "V y" segments, each group closed with
// "Z" when closePaths is set. Outlines of connected foreground regions
// are traced clockwise, holes enclosed by them counterclockwise.
//
// The matrix itself is not modified; tracing runs on an internal
// working copy. Coordinates lie in [0, width] x [0, height].
func Trace(bits [][]bool, closePaths bool) (string, error) {
	paths, err := TracePaths(bits, closePaths)
	if err != nil {
		return "", err
	}
	return EncodePaths(paths), nil
}

// TracePaths is like Trace but returns the boundaries as structured
// paths, in discovery order of the raster scan.
func TracePaths(bits [][]bool, closePaths bool) ([]*Path, error) {
	f, err := newField(bits)
	if err != nil {
		return nil, err
	}
	return scan(f, closePaths), nil
}

// TraceImage traces boundaries in a grayscale buffer, treating pixels
// with the given luminance as foreground and everything else as
// background. The buffer is consumed: every pixel is rewritten into an
// internal encoding during the call, so callers needing the original
// values must keep a copy. See Trace for the output format.
func TraceImage(img *image.Gray, foreground uint8, closePaths bool) (string, error) {
	paths, err := TraceImagePaths(img, foreground, closePaths)
	if err != nil {
		return "", err
	}
	return EncodePaths(paths), nil
}

// TraceImagePaths is like TraceImage but returns structured paths.
func TraceImagePaths(img *image.Gray, foreground uint8, closePaths bool) ([]*Path, error) {
	g, err := newGrayRaster(img, foreground)
	if err != nil {
		return nil, err
	}
	return scan(g, closePaths), nil
}
