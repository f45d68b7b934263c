package cluster

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyphcell/text"
)

// Sentinel errors for cluster package.
var (
	// ErrAllocation is returned when the canvas cannot grow to the
	// requested size.
	ErrAllocation = errors.New("cluster: canvas allocation failed")

	// ErrUnsupportedPixelFormat is returned when the rasterizer produces a
	// bitmap that is not 8-bit grayscale.
	ErrUnsupportedPixelFormat = errors.New("cluster: unsupported pixel format")

	// ErrEmptyShapeResult is returned when no glyph of the cluster placed
	// any pixels. Callers usually substitute a fallback glyph.
	ErrEmptyShapeResult = errors.New("cluster: shaping produced no renderable glyph")

	// ErrTrimOverflow is returned when fitting a bitmap to a cell would
	// discard half of it or more, or when it is not wider than the cell.
	ErrTrimOverflow = errors.New("cluster: bitmap cannot be trimmed to cell width")
)

// UnsupportedPixelFormatError reports the pixel mode of a rejected glyph
// bitmap. It matches ErrUnsupportedPixelFormat with errors.Is.
type UnsupportedPixelFormatError struct {
	Glyph text.GlyphID
	Mode  text.PixelMode
}

func (e *UnsupportedPixelFormatError) Error() string {
	return fmt.Sprintf("cluster: glyph %d: unsupported pixel format %s", e.Glyph, e.Mode)
}

func (e *UnsupportedPixelFormatError) Unwrap() error {
	return ErrUnsupportedPixelFormat
}
