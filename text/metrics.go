package text

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

// GlyphMetrics holds the ink metrics of one rendered glyph, in 26.6 fixed
// point pixels. The layout follows FreeType's FT_Glyph_Metrics.
type GlyphMetrics struct {
	// Width and Height are the size of the glyph's ink bounding box.
	Width, Height fixed.Int26_6

	// HoriBearingX is the distance from the pen to the left edge of the ink.
	// HoriBearingY is the distance from the baseline to the top of the ink.
	HoriBearingX, HoriBearingY fixed.Int26_6

	// HoriAdvance is the horizontal pen displacement for this glyph.
	HoriAdvance fixed.Int26_6

	VertBearingX, VertBearingY fixed.Int26_6
	VertAdvance                fixed.Int26_6
}

// FaceMetrics holds font-wide metrics in font units.
type FaceMetrics struct {
	UnitsPerEm int

	// Ascender is positive, Descender is usually negative.
	Ascender, Descender int

	// Height is the default baseline-to-baseline distance.
	Height int

	MaxAdvanceWidth  int
	MaxAdvanceHeight int

	UnderlinePosition  int
	UnderlineThickness int

	// IsScalable is false for fonts that only carry bitmap strikes.
	IsScalable bool
}

// String returns a compact, human readable form of the metrics.
func (m FaceMetrics) String() string {
	return fmt.Sprintf(
		"units_per_em=%d, ascender=%d, descender=%d, height=%d, max_advance_width=%d, max_advance_height=%d, underline_position=%d, underline_thickness=%d, is_scalable=%t",
		m.UnitsPerEm, m.Ascender, m.Descender, m.Height,
		m.MaxAdvanceWidth, m.MaxAdvanceHeight,
		m.UnderlinePosition, m.UnderlineThickness, m.IsScalable,
	)
}

// Scale converts a value in font units to pixels at the given ppem.
func (m FaceMetrics) Scale(v int, ppem float64) float64 {
	if m.UnitsPerEm == 0 {
		return 0
	}
	return float64(v) * ppem / float64(m.UnitsPerEm)
}

// inkMetrics builds glyph metrics from an ink box in outline space (Y axis
// down) and the glyph's advance.
//
// Vertical metrics are synthesized the way FreeType does for fonts without
// a vmtx table: the glyph is centered horizontally on the pen and
// vertically within lineHeight.
func inkMetrics(ink fixed.Rectangle26_6, advance, lineHeight fixed.Int26_6) GlyphMetrics {
	m := GlyphMetrics{
		Width:        ink.Max.X - ink.Min.X,
		Height:       ink.Max.Y - ink.Min.Y,
		HoriBearingX: ink.Min.X,
		HoriBearingY: -ink.Min.Y,
		HoriAdvance:  advance,
	}
	if m.Width < 0 || m.Height < 0 {
		m.Width, m.Height, m.HoriBearingX, m.HoriBearingY = 0, 0, 0, 0
	}
	if lineHeight == 0 {
		lineHeight = m.Height * 12 / 10
	}
	m.VertBearingX = m.HoriBearingX - m.HoriAdvance/2
	m.VertBearingY = (lineHeight - m.Height) / 2
	m.VertAdvance = lineHeight
	return m
}
