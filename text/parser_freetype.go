package text

import (
	"image"
	"sync"

	"github.com/golang/freetype/raster"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// freetypeParser implements FontParser using github.com/golang/freetype.
// It runs the TrueType bytecode hinter, so hinted glyphs match the grid the
// font designer intended. Fonts that truetype cannot read (CFF outlines,
// collections) are handed to the x/image backend.
type freetypeParser struct{}

// Parse implements FontParser.Parse.
func (p *freetypeParser) Parse(data []byte, index int) (ParsedFont, error) {
	sf, err := parseSFNT(data, index)
	if err != nil {
		return nil, err
	}
	metrics := sfntMetrics(sf)

	// truetype only reads standalone glyf fonts.
	if index != 0 {
		return &ximageParsedFont{font: sf, metrics: metrics}, nil
	}
	tf, err := truetype.Parse(data)
	if err != nil {
		return &ximageParsedFont{font: sf, metrics: metrics}, nil
	}
	return &freetypeParsedFont{ttf: tf, sfnt: sf, metrics: metrics}, nil
}

// freetypeParsedFont implements ParsedFont with truetype outlines and the
// freetype raster package. Names and font-wide metrics come from sfnt,
// which reads more tables than truetype does.
type freetypeParsedFont struct {
	ttf     *truetype.Font
	sfnt    *sfnt.Font
	metrics FaceMetrics
}

// glyphBufPool pools truetype.GlyphBuf values. A GlyphBuf carries hinter
// state and must not be shared between goroutines.
var glyphBufPool = sync.Pool{
	New: func() any { return &truetype.GlyphBuf{} },
}

// Name implements ParsedFont.Name.
func (f *freetypeParsedFont) Name() string {
	if name := sfntName(f.sfnt, sfnt.NameIDFamily); name != "" {
		return name
	}
	return f.ttf.Name(truetype.NameIDFontFamily)
}

// FullName implements ParsedFont.FullName.
func (f *freetypeParsedFont) FullName() string {
	if name := sfntName(f.sfnt, sfnt.NameIDFull); name != "" {
		return name
	}
	return f.ttf.Name(truetype.NameIDFontFullName)
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *freetypeParsedFont) NumGlyphs() int {
	return f.sfnt.NumGlyphs()
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *freetypeParsedFont) GlyphIndex(r rune) GlyphID {
	return GlyphID(f.ttf.Index(r))
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *freetypeParsedFont) GlyphAdvance(id GlyphID, ppem float64, h Hinting) float64 {
	if int(id) >= f.NumGlyphs() {
		return 0
	}
	adv := f.ttf.HMetric(FloatToFixed(ppem), truetype.Index(id)).AdvanceWidth
	if h != HintingNone {
		adv = (adv + 32) &^ 63
	}
	return FixedToFloat(adv)
}

// Metrics implements ParsedFont.Metrics.
func (f *freetypeParsedFont) Metrics() FaceMetrics {
	return f.metrics
}

// Rasterize implements ParsedFont.Rasterize.
func (f *freetypeParsedFont) Rasterize(id GlyphID, opts RasterOptions) (*GlyphBitmap, error) {
	if int(id) >= f.NumGlyphs() {
		return nil, ErrGlyphNotFound
	}

	gb := glyphBufPool.Get().(*truetype.GlyphBuf)
	defer glyphBufPool.Put(gb)

	points, advance, err := f.loadOutline(gb, id, opts)
	if err != nil {
		return nil, err
	}

	ink := controlBox(points)
	if opts.Hinting != HintingNone {
		ink = snapBox(ink)
	}
	metrics := inkMetrics(ink, advance, f.lineHeight(opts.Size))

	box := pixelBox(ink)
	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	if len(points) > 0 && !box.Empty() {
		f.drawGlyph(mask, points, gb.Ends, box.Min, opts.Monochrome)
	}

	if opts.Monochrome {
		return monoBitmap(mask, metrics), nil
	}
	return grayBitmap(mask, metrics), nil
}

// loadOutline loads the glyph's points (Y axis up, 26.6 pixels) and its
// advance according to the hinting mode.
//
// Light hinting keeps the unhinted X coordinates and takes only the
// vertical grid fitting from the hinter, like FreeType's light target.
func (f *freetypeParsedFont) loadOutline(gb *truetype.GlyphBuf, id GlyphID, opts RasterOptions) ([]truetype.Point, fixed.Int26_6, error) {
	scale := FloatToFixed(opts.Size)
	idx := truetype.Index(id)

	switch opts.Hinting {
	case HintingNone:
		if err := gb.Load(f.ttf, scale, idx, font.HintingNone); err != nil {
			return nil, 0, &FontError{Op: "load glyph", Err: err}
		}
		return gb.Points, gb.AdvanceWidth, nil

	case HintingVertical:
		if err := gb.Load(f.ttf, scale, idx, font.HintingNone); err != nil {
			return nil, 0, &FontError{Op: "load glyph", Err: err}
		}
		xs := make([]fixed.Int26_6, len(gb.Points))
		for i, p := range gb.Points {
			xs[i] = p.X
		}
		advance := (gb.AdvanceWidth + 32) &^ 63

		if err := gb.Load(f.ttf, scale, idx, font.HintingFull); err != nil {
			return nil, 0, &FontError{Op: "load glyph", Err: err}
		}
		points := make([]truetype.Point, len(gb.Points))
		copy(points, gb.Points)
		if len(xs) == len(points) {
			for i := range points {
				points[i].X = xs[i]
			}
		}
		return points, advance, nil

	default:
		if err := gb.Load(f.ttf, scale, idx, font.HintingFull); err != nil {
			return nil, 0, &FontError{Op: "load glyph", Err: err}
		}
		return gb.Points, gb.AdvanceWidth, nil
	}
}

// drawGlyph fills the glyph contours into mask. origin is the pixel position
// of the mask's top-left corner in Y-down outline space.
func (f *freetypeParsedFont) drawGlyph(mask *image.Alpha, points []truetype.Point, ends []int, origin image.Point, mono bool) {
	r := mask.Bounds()
	ras := raster.NewRasterizer(r.Dx(), r.Dy())
	ras.UseNonZeroWinding = true

	dx := -fixed.I(origin.X)
	dy := -fixed.I(origin.Y)
	e0 := 0
	for _, e1 := range ends {
		if e1 > len(points) {
			break
		}
		drawContour(ras, points[e0:e1], dx, dy)
		e0 = e1
	}

	var p raster.Painter = raster.NewAlphaSrcPainter(mask)
	if mono {
		p = raster.NewMonochromePainter(p)
	}
	ras.Rasterize(p)
}

// lineHeight returns the scaled line height used to synthesize vertical
// metrics.
func (f *freetypeParsedFont) lineHeight(ppem float64) fixed.Int26_6 {
	return FloatToFixed(f.metrics.Scale(f.metrics.Height, ppem))
}

// drawContour adds one closed TrueType contour to the rasterizer. Points are
// Y-up; the rasterizer is Y-down and offset by (dx, dy).
//
// Two consecutive off-curve points imply an on-curve point halfway between
// them.
func drawContour(r *raster.Rasterizer, ps []truetype.Point, dx, dy fixed.Int26_6) {
	if len(ps) == 0 {
		return
	}
	at := func(p truetype.Point) fixed.Point26_6 {
		return fixed.Point26_6{X: dx + p.X, Y: dy - p.Y}
	}

	start := at(ps[0])
	others := ps[1:]
	if ps[0].Flags&0x01 == 0 {
		last := at(ps[len(ps)-1])
		if ps[len(ps)-1].Flags&0x01 != 0 {
			start = last
			others = ps[:len(ps)-1]
		} else {
			start = fixed.Point26_6{X: (start.X + last.X) / 2, Y: (start.Y + last.Y) / 2}
			others = ps
		}
	}

	r.Start(start)
	q0, on0 := start, true
	for _, p := range others {
		q := at(p)
		on := p.Flags&0x01 != 0
		switch {
		case on && on0:
			r.Add1(q)
		case on:
			r.Add2(q0, q)
		case !on0:
			r.Add2(q0, fixed.Point26_6{X: (q0.X + q.X) / 2, Y: (q0.Y + q.Y) / 2})
		}
		q0, on0 = q, on
	}
	if on0 {
		r.Add1(start)
	} else {
		r.Add2(q0, start)
	}
}

// controlBox returns the bounding box of the control points, converted to
// Y-down outline space.
func controlBox(points []truetype.Point) fixed.Rectangle26_6 {
	if len(points) == 0 {
		return fixed.Rectangle26_6{}
	}
	b := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: points[0].X, Y: -points[0].Y},
		Max: fixed.Point26_6{X: points[0].X, Y: -points[0].Y},
	}
	for _, p := range points[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Max.X = max(b.Max.X, p.X)
		b.Min.Y = min(b.Min.Y, -p.Y)
		b.Max.Y = max(b.Max.Y, -p.Y)
	}
	return b
}

// snapBox grows b outward to whole pixels.
func snapBox(b fixed.Rectangle26_6) fixed.Rectangle26_6 {
	b.Min.X &^= 63
	b.Min.Y &^= 63
	b.Max.X = (b.Max.X + 63) &^ 63
	b.Max.Y = (b.Max.Y + 63) &^ 63
	return b
}
