package text

// BuiltinShaper maps each rune to one glyph through the font's cmap and
// positions glyphs by their advance widths.
//
// The shaping is simple positioning without:
//   - Ligature substitution (fi, fl, etc.)
//   - Kerning pairs
//   - Contextual alternates
//   - Mark positioning
//
// Right-to-left text is emitted in visual order, as HarfBuzz does. For the
// features above, use GoTextShaper.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, face *Face) ([]ShapedGlyph, error) {
	if text == "" {
		return nil, nil
	}
	parsed, err := face.source.parsedFont()
	if err != nil {
		return nil, err
	}

	runes := []rune(text)
	dir := face.direction
	if dir == DirectionAuto {
		dir = GuessSegment(runes, face.language).Direction
	}

	result := make([]ShapedGlyph, 0, len(runes))
	for cluster, r := range text {
		gid := parsed.GlyphIndex(r)
		advance := FloatToFixed(parsed.GlyphAdvance(gid, face.ppem, face.hinting))

		g := ShapedGlyph{GlyphID: gid, Cluster: uint32(cluster)} //nolint:gosec // byte offsets are non-negative
		if dir.IsVertical() {
			// Vertical pens move down, which is negative in Y-up space.
			g.YAdvance = -FloatToFixed(face.ppem)
		} else {
			g.XAdvance = advance
		}
		result = append(result, g)
	}

	if dir == DirectionRTL || dir == DirectionBTT {
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}
	return result, nil
}
