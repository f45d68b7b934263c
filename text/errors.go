package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontClosed is returned when a FontSource is used after Close.
	ErrFontClosed = errors.New("text: font source is closed")

	// ErrGlyphNotFound is returned when a glyph index is out of range.
	ErrGlyphNotFound = errors.New("text: glyph not found")

	// ErrColoredGlyph is returned for glyphs that only exist as color
	// bitmaps or color layers, which this package does not render.
	ErrColoredGlyph = errors.New("text: colored glyphs are not supported")

	// ErrInvalidSize is returned for non-positive character sizes or DPI.
	ErrInvalidSize = errors.New("text: invalid character size")

	// ErrUnknownFeature is returned for malformed font feature settings.
	ErrUnknownFeature = errors.New("text: malformed font feature")
)

// FontError reports a failure of the font backend.
// Op names the step that failed, e.g. "load face" or "load glyph".
type FontError struct {
	Op  string
	Err error
}

func (e *FontError) Error() string {
	return "text: failed to " + e.Op + ": " + e.Err.Error()
}

func (e *FontError) Unwrap() error {
	return e.Err
}
