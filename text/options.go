package text

import "log/slog"

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
	index      int
	logger     *slog.Logger
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName, // Default parser (freetype)
	}
}

// WithParser specifies the font parser backend.
// The default is "freetype" which uses github.com/golang/freetype and hands
// CFF fonts and collections to "ximage" (golang.org/x/image/font/opentype).
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithIndex selects the face within a font collection (.ttc/.otc).
// The default is 0, the only face of a plain font file.
func WithIndex(i int) SourceOption {
	return func(c *sourceConfig) {
		c.index = i
	}
}

// WithSourceLogger sets the logger used while loading the font.
func WithSourceLogger(l *slog.Logger) SourceOption {
	return func(c *sourceConfig) {
		c.logger = l
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	direction Direction
	hinting   Hinting
	language  string
	features  []string
	xdpi      int
	ydpi      int
	mono      bool
	shaper    Shaper
	logger    *slog.Logger
}

// Default device resolution, matching a typical desktop display.
const (
	DefaultDPI = 96
)

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		direction: DirectionAuto,
		hinting:   HintingFull,
		xdpi:      DefaultDPI,
		ydpi:      DefaultDPI,
	}
}

// WithDirection sets the text direction for the face.
// The default, DirectionAuto, guesses the direction from the text.
func WithDirection(d Direction) FaceOption {
	return func(c *faceConfig) {
		c.direction = d
	}
}

// WithHinting sets the hinting mode for the face.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithHintStyle sets the hinting mode from a fontconfig style hinting
// switch and hintstyle. See HintingFromStyle.
func WithHintStyle(enabled bool, style int) FaceOption {
	return func(c *faceConfig) {
		c.hinting = HintingFromStyle(enabled, style)
	}
}

// WithDPI sets the horizontal and vertical device resolution used to turn
// point sizes into pixels.
func WithDPI(x, y int) FaceOption {
	return func(c *faceConfig) {
		c.xdpi = x
		c.ydpi = y
	}
}

// WithLanguage sets the language tag for the face (e.g., "en", "ja", "ar").
// An empty tag lets the shaper use its default.
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		c.language = lang
	}
}

// WithFeatures sets OpenType feature settings applied when shaping, in the
// CSS-like syntax accepted by ParseFeature: "liga", "-liga", "+calt",
// "ss01=2".
func WithFeatures(specs ...string) FaceOption {
	return func(c *faceConfig) {
		c.features = append(c.features, specs...)
	}
}

// WithShaper sets the shaper used by Face.Shape.
// The default is a GoTextShaper shared by all faces.
func WithShaper(s Shaper) FaceOption {
	return func(c *faceConfig) {
		c.shaper = s
	}
}

// WithMonochrome makes the face render 1 bit per pixel bitmaps.
func WithMonochrome(mono bool) FaceOption {
	return func(c *faceConfig) {
		c.mono = mono
	}
}

// WithLogger sets the face's logger. The default discards everything.
func WithLogger(l *slog.Logger) FaceOption {
	return func(c *faceConfig) {
		c.logger = l
	}
}
