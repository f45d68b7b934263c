package glyphcell

import (
	"github.com/gogpu/glyphcell/cluster"
	"github.com/gogpu/glyphcell/text"
)

// Render shapes s with face, composites the glyphs into one grayscale
// bitmap and, when the bitmap is wider than cellWidth, trims it to exactly
// cellWidth columns. A cellWidth of zero or less disables trimming.
//
// The returned bitmap carries the ink metrics of the cluster's first glyph.
// Errors wrap cluster.ErrEmptyShapeResult when nothing renders and
// cluster.ErrTrimOverflow when the bitmap is too wide for the cell; callers
// usually substitute a fallback glyph in both cases.
func (l *Library) Render(face *text.Face, s string, cellWidth int) (*text.GlyphBitmap, error) {
	if err := l.checkOpen(); err != nil {
		return nil, err
	}
	if face.Source().Closed() {
		l.faceLocks.Delete(face)
		return nil, text.ErrFontClosed
	}
	unlock := l.lockFace(face)
	defer unlock()

	c := cluster.NewCompositor(face, face,
		cluster.WithHinting(face.Hinting()),
		cluster.WithLogger(l.logger()),
		cluster.WithMaxPixels(l.opts.maxPixels),
	)
	canvas, _, err := c.Composite(s)
	if err != nil {
		return nil, err
	}

	bm := canvas.Bitmap()
	if cellWidth <= 0 || bm.Width <= cellWidth {
		return bm, nil
	}

	l.logger().Debug("glyphcell: trimming cluster",
		"text", s,
		"width", bm.Width,
		"cell", cellWidth,
	)
	return cluster.FitToCell(bm, cellWidth)
}
