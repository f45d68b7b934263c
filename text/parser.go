package text

import "sync"

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing and rasterizing library
// (e.g., github.com/golang/freetype vs golang.org/x/image/font/sfnt).
//
// The default implementation is "freetype", which hints TrueType outlines
// and falls back to "ximage" for fonts it cannot read.
type FontParser interface {
	// Parse parses font data (TTF, OTF or a collection) and returns the
	// index'th font in it.
	Parse(data []byte, index int) (ParsedFont, error)
}

// RasterOptions controls how a single glyph is rendered.
type RasterOptions struct {
	// Size is the pixel size of one em.
	Size float64

	// Hinting selects the grid-fitting mode.
	Hinting Hinting

	// Monochrome renders a 1 bit per pixel bitmap instead of gray levels.
	Monochrome bool
}

// ParsedFont represents a parsed font file.
// This interface abstracts the underlying font representation.
//
// Implementations must be safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// FullName returns the full font name.
	// Returns empty string if not available.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) GlyphID

	// GlyphAdvance returns the advance width in pixels for a glyph at the
	// given pixel size.
	GlyphAdvance(id GlyphID, ppem float64, h Hinting) float64

	// Metrics returns the font-wide metrics in font units.
	Metrics() FaceMetrics

	// Rasterize renders a glyph into a newly allocated bitmap.
	Rasterize(id GlyphID, opts RasterOptions) (*GlyphBitmap, error)
}

// Names of the built-in parsers.
const (
	ParserFreeType = "freetype"
	ParserXImage   = "ximage"
)

var (
	parserMu sync.RWMutex

	// parserRegistry holds registered font parsers.
	parserRegistry = map[string]FontParser{
		ParserFreeType: &freetypeParser{},
		ParserXImage:   &ximageParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = ParserFreeType

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	parserMu.RLock()
	defer parserMu.RUnlock()
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
