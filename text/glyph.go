package text

import "golang.org/x/image/math/fixed"

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
// Glyph 0 is the font's .notdef glyph; shapers emit it for characters
// the font cannot display.
type GlyphID uint32

// ShapedGlyph is one record of shaper output: a glyph id plus its
// positioning in 26.6 fixed point pixels.
//
// ShapedGlyph values are immutable and are consumed once per compositing
// pass. Offsets follow the OpenType convention: a positive YOffset moves
// the glyph up.
type ShapedGlyph struct {
	// GlyphID is the glyph index in the font.
	GlyphID GlyphID

	// Cluster is the byte offset in the UTF-8 source text of the first
	// character that produced this glyph.
	Cluster uint32

	// Mask holds the shaper's per-glyph feature mask bits.
	Mask uint32

	// XOffset, YOffset adjust the glyph position before it is drawn,
	// relative to the advancing pen.
	XOffset, YOffset fixed.Int26_6

	// XAdvance, YAdvance move the pen after the glyph is drawn.
	XAdvance, YAdvance fixed.Int26_6
}

// Offset returns the glyph offset in pixels.
func (g ShapedGlyph) Offset() (x, y float64) {
	return FixedToFloat(g.XOffset), FixedToFloat(g.YOffset)
}

// Advance returns the glyph advance in pixels.
func (g ShapedGlyph) Advance() (x, y float64) {
	return FixedToFloat(g.XAdvance), FixedToFloat(g.YAdvance)
}

// FixedToFloat converts a 26.6 fixed point value to float64 pixels.
// This is the only place shaping values are divided by 64.
func FixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// FloatToFixed converts a float64 pixel value to 26.6 fixed point.
func FloatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
