package text

import "image"

// GlyphBitmap is a rendered glyph. Every rasterize call returns a freshly
// allocated GlyphBitmap; the pixels are owned by the caller and stay valid
// after further glyphs are rendered on the same face.
type GlyphBitmap struct {
	// Rows is the number of pixel rows.
	Rows int

	// Width is the number of pixels per row.
	Width int

	// Pitch is the number of bytes per row. For PixelModeGray it is at
	// least Width; for PixelModeMono it is (Width+7)/8.
	Pitch int

	// Pix holds Rows*Pitch bytes.
	Pix []byte

	// NumGrays is the number of gray levels, 256 for PixelModeGray.
	NumGrays int

	PixelMode   PixelMode
	PaletteMode int

	// Metrics are the ink metrics of the glyph.
	Metrics GlyphMetrics
}

// Stride returns the row stride in bytes. A zero Pitch means rows are
// packed at Width bytes.
func (b *GlyphBitmap) Stride() int {
	if b.Pitch > 0 {
		return b.Pitch
	}
	return b.Width
}

// Empty reports whether the bitmap has no pixels.
func (b *GlyphBitmap) Empty() bool {
	return b == nil || b.Rows <= 0 || b.Width <= 0
}

// At returns the coverage value at (x, y) of a gray bitmap.
// Returns 0 for coordinates outside the bitmap or its Pix buffer.
func (b *GlyphBitmap) At(x, y int) uint8 {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Rows {
		return 0
	}
	switch b.PixelMode {
	case PixelModeGray:
		if i := y*b.Stride() + x; i < len(b.Pix) {
			return b.Pix[i]
		}
	case PixelModeMono:
		if i := y*b.Stride() + x/8; i < len(b.Pix) && b.Pix[i]&(0x80>>uint(x%8)) != 0 {
			return 0xff
		}
	}
	return 0
}

// Alpha returns a copy of the bitmap as an *image.Alpha.
func (b *GlyphBitmap) Alpha() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, b.Width, b.Rows))
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Width; x++ {
			img.Pix[y*img.Stride+x] = b.At(x, y)
		}
	}
	return img
}

// grayBitmap wraps a freshly rendered mask without copying it.
// mask must not be shared with anyone else.
func grayBitmap(mask *image.Alpha, metrics GlyphMetrics) *GlyphBitmap {
	r := mask.Bounds()
	return &GlyphBitmap{
		Rows:      r.Dy(),
		Width:     r.Dx(),
		Pitch:     mask.Stride,
		Pix:       mask.Pix,
		NumGrays:  256,
		PixelMode: PixelModeGray,
		Metrics:   metrics,
	}
}

// monoBitmap packs a rendered mask at 1 bit per pixel.
// Any coverage of at least half turns the bit on.
func monoBitmap(mask *image.Alpha, metrics GlyphMetrics) *GlyphBitmap {
	r := mask.Bounds()
	w, h := r.Dx(), r.Dy()
	pitch := (w + 7) / 8
	pix := make([]byte, pitch*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.Pix[y*mask.Stride+x] >= 0x80 {
				pix[y*pitch+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return &GlyphBitmap{
		Rows:      h,
		Width:     w,
		Pitch:     pitch,
		Pix:       pix,
		NumGrays:  2,
		PixelMode: PixelModeMono,
		Metrics:   metrics,
	}
}
