package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/glyphcell/text"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// asciiRamp maps coverage to characters, from empty to full.
const asciiRamp = " .:-=+*#%@"

// printASCII writes bm to w, one character per pixel.
func printASCII(w io.Writer, bm *text.GlyphBitmap) {
	var sb strings.Builder
	for y := 0; y < bm.Rows; y++ {
		for x := 0; x < bm.Width; x++ {
			v := int(bm.At(x, y))
			sb.WriteByte(asciiRamp[(v*(len(asciiRamp)-1)+127)/255])
		}
		sb.WriteByte('\n')
	}
	_, _ = io.WriteString(w, sb.String())
}

// inkImage converts bm into black ink on a white background, scaled up
// scale times with nearest neighbour sampling.
func inkImage(bm *text.GlyphBitmap, scale int) image.Image {
	rect := image.Rect(0, 0, bm.Width, bm.Rows)
	img := image.NewGray(rect)
	for y := 0; y < bm.Rows; y++ {
		for x := 0; x < bm.Width; x++ {
			img.Pix[y*img.Stride+x] = 255 - bm.At(x, y)
		}
	}
	if scale <= 1 {
		return img
	}

	dst := image.NewGray(image.Rect(0, 0, bm.Width*scale, bm.Rows*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, rect, draw.Src, nil)
	return dst
}

// writeImage encodes img to filename, choosing the format by extension.
func writeImage(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	switch ext := filepath.Ext(filename); ext {
	case ".png":
		err = png.Encode(f, img)
	case ".tiff":
		err = tiff.Encode(f, img, nil)
	default:
		err = fmt.Errorf("unsupported output extension %q", ext)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// splitList splits a comma separated flag value, dropping empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
