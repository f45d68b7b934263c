package cluster

import (
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/gogpu/glyphcell/internal/logging"
	"github.com/gogpu/glyphcell/text"
)

// Shaper converts a string into shaped glyph records.
type Shaper interface {
	Shape(s string) ([]text.ShapedGlyph, error)
}

// Rasterizer renders one glyph into a newly allocated bitmap.
// The returned bitmap must stay valid after later calls.
type Rasterizer interface {
	Rasterize(id text.GlyphID, h text.Hinting) (*text.GlyphBitmap, error)
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithHinting sets the hinting mode passed to the rasterizer.
// The default is text.HintingFull.
func WithHinting(h text.Hinting) Option {
	return func(c *Compositor) {
		c.hinting = h
	}
}

// WithLogger sets the logger for per-glyph debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Compositor) {
		c.logger = logging.OrNop(l)
	}
}

// WithMaxPixels bounds the canvas area of one composite.
func WithMaxPixels(n int) Option {
	return func(c *Compositor) {
		c.maxPixels = n
	}
}

// Compositor renders glyph clusters onto a Canvas.
//
// A Compositor holds no per-call state, but it calls its Shaper and
// Rasterizer, which usually share a font face, so it must not be used by
// more than one goroutine at a time.
type Compositor struct {
	shaper     Shaper
	rasterizer Rasterizer
	hinting    text.Hinting
	maxPixels  int
	logger     *slog.Logger
}

// NewCompositor creates a compositor. shaper may be nil when only
// CompositeGlyphs is used.
func NewCompositor(shaper Shaper, rasterizer Rasterizer, opts ...Option) *Compositor {
	c := &Compositor{
		shaper:     shaper,
		rasterizer: rasterizer,
		hinting:    text.HintingFull,
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Composite shapes s and renders the resulting glyphs as one cluster.
func (c *Compositor) Composite(s string) (*Canvas, text.GlyphMetrics, error) {
	if c.shaper == nil {
		return nil, text.GlyphMetrics{}, fmt.Errorf("cluster: composite %q: no shaper", s)
	}
	glyphs, err := c.shaper.Shape(s)
	if err != nil {
		return nil, text.GlyphMetrics{}, fmt.Errorf("cluster: shape %q: %w", s, err)
	}
	canvas, metrics, err := c.CompositeGlyphs(glyphs)
	if err != nil {
		return nil, text.GlyphMetrics{}, fmt.Errorf("%w (text %q)", err, s)
	}
	return canvas, metrics, nil
}

// CompositeGlyphs renders glyphs, in shaping order, onto a new canvas.
//
// The pen starts at (0, 0). Each glyph is moved by its offset, placed with
// its top-left corner at the pen, and then the pen advances horizontally.
// The vertical pen is reset to the baseline after every glyph, so each
// glyph's YOffset is relative to the baseline and never accumulates.
// Glyph 0 is skipped. The metrics of the first rendered glyph are returned
// and stored in the canvas.
func (c *Compositor) CompositeGlyphs(glyphs []text.ShapedGlyph) (*Canvas, text.GlyphMetrics, error) {
	canvas := NewCanvas()
	canvas.MaxPixels = c.maxPixels

	var (
		x, y          float64
		width, height int
		first         = true
	)
	for _, g := range glyphs {
		if g.GlyphID == 0 {
			continue
		}

		bm, err := c.rasterizer.Rasterize(g.GlyphID, c.hinting)
		if err != nil {
			canvas.Reset()
			return nil, text.GlyphMetrics{}, fmt.Errorf("cluster: rasterize glyph %d: %w", g.GlyphID, err)
		}
		if first {
			canvas.Metrics = bm.Metrics
			first = false
		}

		xoff, yoff := g.Offset()
		x += xoff
		y -= yoff

		width = max(width, int(math.Ceil(x+float64(bm.Stride()))))
		height = max(height, int(math.Ceil(y+float64(bm.Rows))))
		if err := canvas.EnsureCapacity(width, height); err != nil {
			return nil, text.GlyphMetrics{}, err
		}

		src, dst := origins(x, y)

		if bm.PixelMode != text.PixelModeGray {
			canvas.Reset()
			return nil, text.GlyphMetrics{}, &UnsupportedPixelFormatError{Glyph: g.GlyphID, Mode: bm.PixelMode}
		}

		canvas.Place(bm, src, dst)
		c.logger.Debug("cluster: glyph placed",
			"glyph", g.GlyphID,
			"x", x,
			"y", y,
			"src", src,
			"dst", dst,
			"canvas", canvas.Bounds().Size(),
		)

		xadv, _ := g.Advance()
		x += xadv
		y = 0
	}

	if canvas.Empty() {
		canvas.Reset()
		return nil, text.GlyphMetrics{}, ErrEmptyShapeResult
	}
	return canvas, canvas.Metrics, nil
}

// origins splits a pen position into the source and destination origins of
// a placement. A negative pen position clips the source instead of moving
// the destination off the canvas.
func origins(x, y float64) (src, dst image.Point) {
	if x < 0 {
		src.X = int(math.Ceil(-x))
	} else {
		dst.X = int(math.Round(x))
	}
	if y < 0 {
		src.Y = int(math.Ceil(-y))
	} else {
		dst.Y = int(math.Round(y))
	}
	return src, dst
}
