// Package text loads fonts, shapes strings and renders single glyphs.
//
// The pipeline is split the same way a terminal font stack is:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF/TTC data)
//   - Face: one size, DPI and hinting setting of a source
//   - Shaper: turns a string into positioned glyphs (default: HarfBuzz port
//     from github.com/go-text/typesetting)
//   - FontParser: pluggable parsing and rasterizing backend
//
// # Example usage
//
//	src, err := text.NewFontSourceFromFile("DejaVuSansMono.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	face, err := src.Face(11, text.WithDPI(96, 96), text.WithHintStyle(true, 1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	glyphs, err := face.Shape("fi")
//	...
//	bm, err := face.Rasterize(glyphs[0].GlyphID, face.Hinting())
//
// # Parser backends
//
// Two parsers are registered. "freetype" (the default) loads glyf outlines
// with github.com/golang/freetype and runs the TrueType hinter on them.
// "ximage" uses golang.org/x/image/font/sfnt and also reads CFF fonts and
// collections; the freetype parser falls back to it for anything it cannot
// load. Custom parsers can be registered:
//
//	text.RegisterParser("myparser", myCustomParser)
//	src, err := text.NewFontSource(data, text.WithParser("myparser"))
//
// Shaped glyph positions and glyph metrics are 26.6 fixed point values,
// as produced by the shaper and the hinter. FixedToFloat converts them to
// pixels.
package text
