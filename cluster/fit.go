package cluster

import (
	"fmt"

	"github.com/gogpu/glyphcell/text"
)

// BlankThreshold is the highest intensity a pixel may have for its column
// to count as blank when trimming.
const BlankThreshold = 200

// ColumnIsBlank reports whether every pixel of column x in bm is at most
// BlankThreshold. Pixels are read with bm.At, so columns outside the bitmap
// are blank.
func ColumnIsBlank(bm *text.GlyphBitmap, x int) bool {
	for y := 0; y < bm.Rows; y++ {
		if bm.At(x, y) > BlankThreshold {
			return false
		}
	}
	return true
}

// FitToCell trims columns from bm so that it is exactly cellWidth pixels
// wide.
//
// Blank columns on the right are removed first. The rest of the excess is
// taken from the left edge, so ink on the right survives and ink on the
// left is cut. The result is a new bitmap with Width and Pitch equal to
// cellWidth; pixel mode, gray levels, palette mode and metrics are copied
// from bm.
//
// bm must be an 8-bit gray bitmap, otherwise the error wraps
// ErrUnsupportedPixelFormat. It must be wider than cellWidth, the excess
// must be less than cellWidth and Pix must hold every row, otherwise the
// error wraps ErrTrimOverflow.
func FitToCell(bm *text.GlyphBitmap, cellWidth int) (*text.GlyphBitmap, error) {
	if bm == nil {
		return nil, fmt.Errorf("%w: nil bitmap", ErrTrimOverflow)
	}
	if bm.PixelMode != text.PixelModeGray {
		return nil, fmt.Errorf("%w: %s bitmap", ErrUnsupportedPixelFormat, bm.PixelMode)
	}
	if stride := bm.Stride(); bm.Rows > 0 && (stride < bm.Width || len(bm.Pix) < (bm.Rows-1)*stride+bm.Width) {
		return nil, fmt.Errorf("%w: %d bytes for %d rows of width %d, pitch %d",
			ErrTrimOverflow, len(bm.Pix), bm.Rows, bm.Width, stride)
	}
	if bm.Width <= cellWidth || cellWidth <= 0 {
		return nil, fmt.Errorf("%w: width %d, cell width %d", ErrTrimOverflow, bm.Width, cellWidth)
	}
	extra := bm.Width - cellWidth
	if extra >= cellWidth {
		return nil, fmt.Errorf("%w: width %d, cell width %d", ErrTrimOverflow, bm.Width, cellWidth)
	}

	blank := 0
	for x := bm.Width - 1; x >= 0 && blank < extra; x-- {
		if !ColumnIsBlank(bm, x) {
			break
		}
		blank++
	}
	rightTrim := min(extra, blank)
	leftTrim := extra - rightTrim

	stride := bm.Stride()
	pix := make([]byte, bm.Rows*cellWidth)
	for y := 0; y < bm.Rows; y++ {
		s := y*stride + leftTrim
		copy(pix[y*cellWidth:(y+1)*cellWidth], bm.Pix[s:s+cellWidth])
	}

	return &text.GlyphBitmap{
		Rows:        bm.Rows,
		Width:       cellWidth,
		Pitch:       cellWidth,
		Pix:         pix,
		NumGrays:    bm.NumGrays,
		PixelMode:   bm.PixelMode,
		PaletteMode: bm.PaletteMode,
		Metrics:     bm.Metrics,
	}, nil
}
