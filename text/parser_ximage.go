package text

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
// It reads TrueType and CFF outlines and rasterizes them with
// golang.org/x/image/vector. Hinting only affects metrics rounding.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte, index int) (ParsedFont, error) {
	f, err := parseSFNT(data, index)
	if err != nil {
		return nil, err
	}
	return &ximageParsedFont{font: f, metrics: sfntMetrics(f)}, nil
}

// parseSFNT parses the index'th font of a font file or collection.
func parseSFNT(data []byte, index int) (*sfnt.Font, error) {
	c, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, &FontError{Op: "load face", Err: err}
	}
	if index < 0 || index >= c.NumFonts() {
		return nil, &FontError{Op: "load face", Err: fmt.Errorf("face index %d out of range [0, %d)", index, c.NumFonts())}
	}
	f, err := c.Font(index)
	if err != nil {
		return nil, &FontError{Op: "load face", Err: err}
	}
	return f, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font    *sfnt.Font
	metrics FaceMetrics
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	return sfntName(f.font, sfnt.NameIDFamily)
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	return sfntName(f.font, sfnt.NameIDFull)
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	return sfntGlyphIndex(f.font, r)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(id GlyphID, ppem float64, h Hinting) float64 {
	return sfntGlyphAdvance(f.font, id, ppem, h)
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics() FaceMetrics {
	return f.metrics
}

// Rasterize implements ParsedFont.Rasterize.
func (f *ximageParsedFont) Rasterize(id GlyphID, opts RasterOptions) (*GlyphBitmap, error) {
	if int(id) >= f.font.NumGlyphs() {
		return nil, ErrGlyphNotFound
	}

	// Buffers are per call: sfnt.Buffer is not safe for concurrent use.
	var buf sfnt.Buffer
	ppem := FloatToFixed(opts.Size)
	gi := sfnt.GlyphIndex(id)

	_, advance, err := f.font.GlyphBounds(&buf, gi, ppem, opts.Hinting.xHinting())
	if err != nil {
		return nil, &FontError{Op: "load glyph", Err: err}
	}

	segments, err := f.font.LoadGlyph(&buf, gi, ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, ErrColoredGlyph
		}
		return nil, &FontError{Op: "load glyph", Err: err}
	}

	ink := segments.Bounds()
	if opts.Hinting != HintingNone {
		// sfnt only rounds for full hinting.
		advance = (advance + 32) &^ 63
		ink = snapBox(ink)
	}
	metrics := inkMetrics(ink, advance, f.lineHeight(opts.Size))

	box := pixelBox(ink)
	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	if len(segments) > 0 && !box.Empty() {
		drawSegments(mask, segments, box.Min)
	}

	if opts.Monochrome {
		return monoBitmap(mask, metrics), nil
	}
	return grayBitmap(mask, metrics), nil
}

// lineHeight returns the scaled line height used to synthesize vertical
// metrics.
func (f *ximageParsedFont) lineHeight(ppem float64) fixed.Int26_6 {
	return FloatToFixed(f.metrics.Scale(f.metrics.Height, ppem))
}

// drawSegments fills the outline into mask. origin is the pixel position of
// the mask's top-left corner in outline space (Y axis down).
func drawSegments(mask *image.Alpha, segments sfnt.Segments, origin image.Point) {
	r := mask.Bounds()
	ras := vector.NewRasterizer(r.Dx(), r.Dy())
	ras.DrawOp = draw.Src

	ox, oy := float32(origin.X), float32(origin.Y)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 - ox, float32(p.Y)/64 - oy
	}

	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			ras.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			ras.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			ras.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			dx, dy := pt(seg.Args[2])
			ras.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	ras.ClosePath()
	ras.Draw(mask, r, image.Opaque, image.Point{})
}

// pixelBox returns the smallest integer pixel rectangle covering ink.
func pixelBox(ink fixed.Rectangle26_6) image.Rectangle {
	return image.Rect(ink.Min.X.Floor(), ink.Min.Y.Floor(), ink.Max.X.Ceil(), ink.Max.Y.Ceil())
}

func sfntName(f *sfnt.Font, id sfnt.NameID) string {
	if name, err := f.Name(nil, id); err == nil {
		return name
	}
	return ""
}

func sfntGlyphIndex(f *sfnt.Font, r rune) GlyphID {
	idx, err := f.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

func sfntGlyphAdvance(f *sfnt.Font, id GlyphID, ppem float64, h Hinting) float64 {
	var buf sfnt.Buffer
	advance, err := f.GlyphAdvance(&buf, sfnt.GlyphIndex(id), FloatToFixed(ppem), h.xHinting())
	if err != nil {
		return 0
	}
	if h == HintingVertical {
		advance = (advance + 32) &^ 63
	}
	return FixedToFloat(advance)
}

// sfntMetrics reads the font-wide metrics in font units.
func sfntMetrics(f *sfnt.Font) FaceMetrics {
	var buf sfnt.Buffer
	upem := int(f.UnitsPerEm())

	// Measuring at one pixel per font unit yields values in font units.
	ppem := fixed.I(upem)

	m := FaceMetrics{UnitsPerEm: upem, IsScalable: true}
	if fm, err := f.Metrics(&buf, ppem, font.HintingNone); err == nil {
		m.Ascender = fm.Ascent.Round()
		m.Descender = -fm.Descent.Round()
		m.Height = fm.Height.Round()
	}
	if post := f.PostTable(); post != nil {
		m.UnderlinePosition = int(post.UnderlinePosition)
		m.UnderlineThickness = int(post.UnderlineThickness)
	}
	for i := 0; i < f.NumGlyphs(); i++ {
		adv, err := f.GlyphAdvance(&buf, sfnt.GlyphIndex(i), ppem, font.HintingNone)
		if err == nil && adv.Round() > m.MaxAdvanceWidth {
			m.MaxAdvanceWidth = adv.Round()
		}
	}
	m.MaxAdvanceHeight = m.Height
	if _, err := f.LoadGlyph(&buf, 0, ppem, nil); errors.Is(err, sfnt.ErrColoredGlyph) {
		m.IsScalable = false
	}
	return m
}
