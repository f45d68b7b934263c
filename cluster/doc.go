// Package cluster renders a shaped glyph cluster into one grayscale bitmap
// and fits that bitmap to a fixed-width terminal cell.
//
// A cluster is a run of glyphs that must be displayed as one unit:
// ligatures, base characters with combining marks, multi-codepoint emoji
// sequences. The pipeline has three parts:
//
//   - Canvas is a growable single-channel pixel buffer that keeps its
//     content when it grows.
//   - Compositor drives a Shaper and a Rasterizer and places every glyph
//     bitmap on a Canvas at the position given by the shaping offsets and
//     advances.
//   - FitToCell trims columns from a bitmap wider than one cell, preferring
//     blank columns on the right.
//
// # Example
//
//	c := cluster.NewCompositor(face, face, cluster.WithHinting(face.Hinting()))
//	canvas, metrics, err := c.Composite("ﬁ")
//	if err != nil {
//	    return err
//	}
//	bm := canvas.Bitmap()
//	bm.Metrics = metrics
//	if bm.Width > cellWidth {
//	    bm, err = cluster.FitToCell(bm, cellWidth)
//	}
//
// Nothing in this package is safe for concurrent use, and the collaborators
// are expected to be used by one compositing operation at a time.
package cluster
