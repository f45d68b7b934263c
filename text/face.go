package text

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/glyphcell/internal/logging"
	"golang.org/x/image/math/fixed"
)

// Face is a font face at a specific character size and device resolution.
// It shapes text and rasterizes glyphs, so it satisfies the shaping and
// rasterizing collaborators of the cluster package.
//
// A Face owns mutable per-size state and is not safe for concurrent use.
// Callers must serialize access to one Face; distinct faces of the same
// FontSource may be used from different goroutines.
type Face struct {
	source *FontSource

	// charWidth and charHeight are the nominal size in 1/64 points.
	charWidth, charHeight fixed.Int26_6
	xdpi, ydpi            int

	// xppem and ppem are the resulting pixel sizes of one em.
	xppem, ppem float64

	hinting   Hinting
	mono      bool
	direction Direction
	language  string
	features  []Feature
	shaper    Shaper
	logger    *slog.Logger
}

func newFace(s *FontSource, size float64, config faceConfig) (*Face, error) {
	features, err := ParseFeatures(config.features)
	if err != nil {
		return nil, err
	}
	shaper := config.shaper
	if shaper == nil {
		shaper = defaultShaper()
	}

	f := &Face{
		source:    s,
		hinting:   config.hinting,
		mono:      config.mono,
		direction: config.direction,
		language:  config.language,
		features:  features,
		shaper:    shaper,
		logger:    logging.OrNop(config.logger),
	}
	if err := f.SetCharSize(0, FloatToFixed(size), config.xdpi, config.ydpi); err != nil {
		return nil, err
	}
	return f, nil
}

// SetCharSize sets the nominal character size in 1/64 points and the device
// resolution in dots per inch. A zero width means "same as height".
//
// The pixel size of one em is size * dpi / 72. Shaping and rasterizing use
// the vertical pixel size.
func (f *Face) SetCharSize(width, height fixed.Int26_6, xdpi, ydpi int) error {
	if width == 0 {
		width = height
	}
	if width <= 0 || height <= 0 || xdpi <= 0 || ydpi <= 0 {
		return &FontError{
			Op:  "set char size",
			Err: fmt.Errorf("%w: %v x %v pt at %d x %d dpi", ErrInvalidSize, width, height, xdpi, ydpi),
		}
	}

	f.charWidth, f.charHeight = width, height
	f.xdpi, f.ydpi = xdpi, ydpi
	f.xppem = FixedToFloat(width) * float64(xdpi) / 72
	f.ppem = FixedToFloat(height) * float64(ydpi) / 72

	f.logger.Debug("text: char size set",
		"font", f.source.name,
		"pt", FixedToFloat(height),
		"xdpi", xdpi,
		"ydpi", ydpi,
		"ppem", f.ppem,
	)
	return nil
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the character height in points.
func (f *Face) Size() float64 {
	return FixedToFloat(f.charHeight)
}

// PPEM returns the vertical pixel size of one em.
func (f *Face) PPEM() float64 {
	return f.ppem
}

// DPI returns the horizontal and vertical device resolution.
func (f *Face) DPI() (x, y int) {
	return f.xdpi, f.ydpi
}

// Hinting returns the hinting mode used by LoadChar and the cluster
// compositor's default.
func (f *Face) Hinting() Hinting {
	return f.hinting
}

// Direction returns the configured text direction. DirectionAuto means the
// direction is guessed from the text when shaping.
func (f *Face) Direction() Direction {
	return f.direction
}

// Language returns the configured language tag.
func (f *Face) Language() string {
	return f.language
}

// Features returns the feature settings applied when shaping.
func (f *Face) Features() []Feature {
	return f.features
}

// Logger returns the face's logger.
func (f *Face) Logger() *slog.Logger {
	return f.logger
}

// Shape converts s into positioned glyphs using the face's shaper.
func (f *Face) Shape(s string) ([]ShapedGlyph, error) {
	if _, err := f.source.parsedFont(); err != nil {
		return nil, err
	}
	return f.shaper.Shape(s, f)
}

// CharIndex returns the glyph index of r, or 0 when the font has no glyph
// for it or the source is closed.
func (f *Face) CharIndex(r rune) GlyphID {
	p, err := f.source.parsedFont()
	if err != nil {
		return 0
	}
	return p.GlyphIndex(r)
}

// Rasterize renders glyph id with hinting h into a newly allocated bitmap.
// The bitmap's Metrics describe the rendered glyph.
func (f *Face) Rasterize(id GlyphID, h Hinting) (*GlyphBitmap, error) {
	p, err := f.source.parsedFont()
	if err != nil {
		return nil, err
	}
	return p.Rasterize(id, RasterOptions{Size: f.ppem, Hinting: h, Monochrome: f.mono})
}

// LoadChar renders the glyph for r with the face's hinting mode.
func (f *Face) LoadChar(r rune) (*GlyphBitmap, error) {
	p, err := f.source.parsedFont()
	if err != nil {
		return nil, err
	}
	return p.Rasterize(p.GlyphIndex(r), RasterOptions{Size: f.ppem, Hinting: f.hinting, Monochrome: f.mono})
}

// Advance returns the horizontal advance of glyph id in pixels.
func (f *Face) Advance(id GlyphID) float64 {
	p, err := f.source.parsedFont()
	if err != nil {
		return 0
	}
	return p.GlyphAdvance(id, f.ppem, f.hinting)
}

// Metrics returns the font-wide metrics in font units.
func (f *Face) Metrics() FaceMetrics {
	p, err := f.source.parsedFont()
	if err != nil {
		return FaceMetrics{}
	}
	return p.Metrics()
}

// CellHeight returns the scaled line height in whole pixels.
func (f *Face) CellHeight() int {
	m := f.Metrics()
	return int(math.Ceil(m.Scale(m.Height, f.ppem)))
}

// String returns a description of the face with its path and metrics.
func (f *Face) String() string {
	path := f.source.path
	if path == "" {
		path = "<memory>"
	}
	return fmt.Sprintf("Face(path=%s, index=%d, name=%q, size=%.2fpt, ppem=%.2f, hinting=%s, %s)",
		path, f.source.index, f.source.name, f.Size(), f.ppem, f.hinting, f.Metrics())
}
