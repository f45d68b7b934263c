package cluster

import (
	"fmt"
	"image"

	"github.com/gogpu/glyphcell/text"
)

// DefaultMaxPixels is the largest canvas, in pixels, that EnsureCapacity
// allocates unless configured otherwise.
const DefaultMaxPixels = 1 << 24

// Canvas is a growable single-channel pixel buffer.
// Values range from 0 (transparent) to 255 (full coverage).
//
// A Canvas starts empty and only grows. Growing keeps every written pixel at
// the same (x, y) position and zero-fills the new area.
type Canvas struct {
	width  int
	height int
	pix    []byte

	// MaxPixels bounds the area EnsureCapacity may allocate.
	// Zero means DefaultMaxPixels.
	MaxPixels int

	// Metrics are the ink metrics of the first glyph placed by a
	// Compositor.
	Metrics text.GlyphMetrics
}

// NewCanvas creates an empty 0x0 canvas with no buffer.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Pix returns the pixel buffer, Height rows of Width bytes.
// The slice is only valid until the next EnsureCapacity call.
func (c *Canvas) Pix() []byte { return c.pix }

// Bounds returns the canvas dimensions as an image.Rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// Empty reports whether the canvas holds no pixels.
func (c *Canvas) Empty() bool {
	return c.width == 0 || c.height == 0
}

// At returns the pixel value at (x, y).
// Returns 0 for coordinates outside the canvas.
func (c *Canvas) At(x, y int) uint8 {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0
	}
	return c.pix[y*c.width+x]
}

// Reset releases the buffer and returns the canvas to the empty state.
func (c *Canvas) Reset() {
	c.width = 0
	c.height = 0
	c.pix = nil
	c.Metrics = text.GlyphMetrics{}
}

// EnsureCapacity grows the canvas so it is at least width x height.
// It is a no-op when the canvas already covers the request.
//
// Existing rows keep their row index and leading columns; the row stride
// changes to the new width. On failure the canvas is reset and the error
// wraps ErrAllocation.
func (c *Canvas) EnsureCapacity(width, height int) error {
	if width <= c.width && height <= c.height {
		return nil
	}

	w := max(c.width, width)
	h := max(c.height, height)

	limit := c.MaxPixels
	if limit <= 0 {
		limit = DefaultMaxPixels
	}
	if h > 0 && w > limit/h {
		c.Reset()
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrAllocation, w, h, limit)
	}

	pix := make([]byte, w*h)
	for y := 0; y < c.height; y++ {
		copy(pix[y*w:y*w+c.width], c.pix[y*c.width:(y+1)*c.width])
	}

	c.width = w
	c.height = h
	c.pix = pix
	return nil
}

// Place copies the region of bm starting at src into the canvas at dst.
//
// Each row copies min(Width-dst.X, bm.Pitch-src.X) bytes and rows run until
// either the source or the canvas ends. Requests that clip to nothing, or
// that use a negative origin, are ignored.
func (c *Canvas) Place(bm *text.GlyphBitmap, src, dst image.Point) {
	if bm == nil || src.X < 0 || src.Y < 0 || dst.X < 0 || dst.Y < 0 {
		return
	}
	stride := bm.Stride()
	n := min(zeroSub(c.width, dst.X), zeroSub(stride, src.X))
	rows := min(zeroSub(bm.Rows, src.Y), zeroSub(c.height, dst.Y))
	if n == 0 || rows == 0 {
		return
	}

	for i := 0; i < rows; i++ {
		s := (src.Y+i)*stride + src.X
		d := (dst.Y+i)*c.width + dst.X
		if s >= len(bm.Pix) {
			return
		}
		copy(c.pix[d:d+n], bm.Pix[s:min(s+n, len(bm.Pix))])
	}
}

// Bitmap returns a copy of the canvas as an 8-bit gray glyph bitmap carrying
// the canvas metrics.
func (c *Canvas) Bitmap() *text.GlyphBitmap {
	pix := make([]byte, len(c.pix))
	copy(pix, c.pix)
	return &text.GlyphBitmap{
		Rows:      c.height,
		Width:     c.width,
		Pitch:     c.width,
		Pix:       pix,
		NumGrays:  256,
		PixelMode: text.PixelModeGray,
		Metrics:   c.Metrics,
	}
}

// Alpha returns a copy of the canvas as an *image.Alpha.
func (c *Canvas) Alpha() *image.Alpha {
	img := image.NewAlpha(c.Bounds())
	copy(img.Pix, c.pix)
	return img
}

// zeroSub returns a-b, or 0 when b >= a.
func zeroSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
