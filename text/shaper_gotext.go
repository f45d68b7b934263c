package text

import (
	"bytes"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/glyphcell/internal/cache"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It supports advanced OpenType features including:
//   - Ligature substitution (fi, fl, ffi, etc.)
//   - Kerning pairs (AV, To, etc.)
//   - Contextual alternates and user feature settings
//   - Right-to-left text (Arabic, Hebrew)
//   - Complex scripts (Devanagari, Thai, etc.)
//
// Shaped glyphs carry raw HarfBuzz positions: 26.6 fixed point pixels with
// the Y axis pointing up, and clusters as byte offsets into the input
// string.
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates lightweight font.Face instances per
// Shape() call (font.Face is NOT safe for concurrent use). The HarfbuzzShaper
// instances are pooled via sync.Pool since they also are not concurrent-safe.
type GoTextShaper struct {
	// shaperPool pools HarfbuzzShaper instances for concurrent use.
	shaperPool sync.Pool

	// fonts maps FontSource pointers to parsed go-text Font objects.
	fonts *cache.Cache[*FontSource, *font.Font]
}

// fontCacheSize is the number of parsed fonts a GoTextShaper keeps.
const fontCacheSize = 64

// NewGoTextShaper creates a new GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fonts: cache.New[*FontSource, *font.Font](fontCacheSize),
	}
}

// Shape implements the Shaper interface.
// Direction, script and language are guessed from the text unless the face
// fixes them.
func (s *GoTextShaper) Shape(text string, face *Face) ([]ShapedGlyph, error) {
	if text == "" {
		return nil, nil
	}
	if face == nil || face.source == nil {
		return nil, fmt.Errorf("text: shape %q: nil face", text)
	}

	goTextFont, err := s.getOrCreateFont(face.source)
	if err != nil {
		return nil, err
	}

	// font.Face is NOT safe for concurrent use, so each Shape() call
	// gets its own instance. font.NewFace is cheap.
	goTextFace := font.NewFace(goTextFont)

	runes := []rune(text)
	seg := GuessSegment(runes, face.language)
	if face.direction != DirectionAuto {
		seg.Direction = face.direction
	}
	dir := mapDirection(seg.Direction)

	input := shaping.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Direction:    dir,
		Face:         goTextFace,
		FontFeatures: shapingFeatures(face.features),
		Size:         FloatToFixed(face.ppem),
		Script:       seg.Script,
		Language:     seg.Language,
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	glyphs := convertGlyphs(output.Glyphs, dir, byteOffsets(runes))
	if face.hinting != HintingNone {
		roundAdvances(glyphs)
	}
	face.logger.Debug("text: shaped",
		"text", text,
		"glyphs", len(glyphs),
		"direction", seg.Direction,
		"script", seg.Script,
	)
	return glyphs, nil
}

// getOrCreateFont returns the cached go-text font.Font for source, parsing
// the source data on a miss.
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	return s.fonts.GetOrLoad(source, func() (*font.Font, error) {
		data, err := source.fontData()
		if err != nil {
			return nil, err
		}
		// ParseTTC accepts plain font files too, returning a single face.
		faces, err := font.ParseTTC(bytes.NewReader(data))
		if err != nil {
			return nil, &FontError{Op: "load face", Err: err}
		}
		if source.index < 0 || source.index >= len(faces) {
			return nil, &FontError{Op: "load face", Err: fmt.Errorf("face index %d out of range [0, %d)", source.index, len(faces))}
		}
		return faces[source.index].Font, nil
	})
}

// ClearCache removes all cached parsed fonts.
func (s *GoTextShaper) ClearCache() {
	s.fonts.Clear()
}

// RemoveSource removes the cached parsed font for a specific FontSource.
// FontSource.Close calls it on the shared default shaper.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.fonts.Delete(source)
}

// roundAdvances snaps advances to whole pixels, matching the advances of
// hinted glyph loads.
func roundAdvances(glyphs []ShapedGlyph) {
	for i := range glyphs {
		glyphs[i].XAdvance = (glyphs[i].XAdvance + 32) &^ 63
		glyphs[i].YAdvance = (glyphs[i].YAdvance + 32) &^ 63
	}
}

// mapDirection converts our text.Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	switch d {
	case DirectionRTL:
		return di.DirectionRTL
	case DirectionTTB:
		return di.DirectionTTB
	case DirectionBTT:
		return di.DirectionBTT
	default:
		return di.DirectionLTR
	}
}

// byteOffsets returns the UTF-8 byte offset of every rune, plus the total
// length as a final entry.
func byteOffsets(runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	n := 0
	for i, r := range runes {
		offsets[i] = n
		n += utf8.RuneLen(r)
	}
	offsets[len(runes)] = n
	return offsets
}

// convertGlyphs converts go-text/typesetting output glyphs to our ShapedGlyph
// slice, mapping rune cluster indices to byte offsets.
func convertGlyphs(glyphs []shaping.Glyph, dir di.Direction, offsets []int) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))
	for i, g := range glyphs {
		cluster := 0
		if idx := g.TextIndex(); idx >= 0 && idx < len(offsets) {
			cluster = offsets[idx]
		}

		result[i] = ShapedGlyph{
			GlyphID: GlyphID(g.GlyphID),
			Cluster: uint32(cluster), //nolint:gosec // byte offsets are non-negative
			Mask:    g.Mask,
			XOffset: g.XOffset,
			YOffset: g.YOffset,
		}
		if dir.IsVertical() {
			result[i].YAdvance = g.Advance
		} else {
			result[i].XAdvance = g.Advance
		}
	}
	return result
}
