// Package glyphcell renders glyph clusters for terminal cells.
//
// A terminal draws text in a grid of fixed-width cells. Some characters
// need more than one glyph to display (ligatures, combining marks, emoji
// sequences), and some glyphs are wider than the cell they are assigned.
// glyphcell shapes such a cluster, composites its glyphs into one 8-bit
// grayscale bitmap and trims that bitmap to the cell width.
//
// # Quick Start
//
//	lib := glyphcell.NewLibrary(glyphcell.WithDefaultDPI(96, 96))
//	defer lib.Close()
//
//	face, err := lib.OpenFace("/usr/share/fonts/FiraCode-Regular.ttf", 0, 12)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bm, err := lib.Render(face, "=>", 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// bm.Pix holds bm.Rows rows of bm.Pitch bytes.
//
// # Architecture
//
// The work is split across packages:
//
//   - text: font sources and faces, shaping (go-text/typesetting) and
//     rasterizing (golang/freetype, golang.org/x/image)
//   - cluster: the canvas, the compositor and the cell fitter
//   - glyphcell: the Library that owns fonts and ties the pipeline together
//
// # Logging
//
// glyphcell is silent by default. Call SetLogger to receive log records
// from every package.
package glyphcell
