package cluster

import (
	"errors"
	"testing"

	"github.com/gogpu/glyphcell/text"
)

// row builds a one row gray bitmap of width w with the given columns set
// to 255.
func row(w int, ink ...int) *text.GlyphBitmap {
	bm := grayGlyph(w, 1)
	for _, x := range ink {
		bm.Pix[x] = 255
	}
	return bm
}

func TestFitToCell(t *testing.T) {
	tests := []struct {
		name      string
		bm        *text.GlyphBitmap
		cellWidth int
		want      []byte
	}{
		{
			name:      "blank right edge is trimmed",
			bm:        row(10, 3),
			cellWidth: 8,
			want:      []byte{0, 0, 0, 255, 0, 0, 0, 0},
		},
		{
			name:      "ink on the right trims the left",
			bm:        row(10, 3, 9),
			cellWidth: 8,
			want:      []byte{0, 255, 0, 0, 0, 0, 0, 255},
		},
		{
			name:      "partly blank right edge",
			bm:        row(10, 0, 8),
			cellWidth: 7,
			want:      []byte{0, 0, 0, 0, 0, 0, 255},
		},
		{
			name:      "one column over",
			bm:        row(3, 0, 1),
			cellWidth: 2,
			want:      []byte{255, 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FitToCell(tt.bm, tt.cellWidth)
			if err != nil {
				t.Fatal(err)
			}
			if got.Width != tt.cellWidth || got.Pitch != tt.cellWidth || got.Rows != tt.bm.Rows {
				t.Fatalf("expected %dx%d pitch %d, got %dx%d pitch %d",
					tt.cellWidth, tt.bm.Rows, tt.cellWidth, got.Width, got.Rows, got.Pitch)
			}
			for i, v := range got.Pix {
				if v != tt.want[i] {
					t.Fatalf("pix = %v, want %v", got.Pix, tt.want)
				}
			}
		})
	}
}

func TestFitToCellOverflow(t *testing.T) {
	short := row(10)
	short.Pix = short.Pix[:6]
	tests := []struct {
		name      string
		bm        *text.GlyphBitmap
		cellWidth int
		want      error
	}{
		{"excess equals cell", row(10), 5, ErrTrimOverflow},
		{"excess exceeds cell", row(10), 4, ErrTrimOverflow},
		{"already fits", row(8), 8, ErrTrimOverflow},
		{"narrower than cell", row(4), 8, ErrTrimOverflow},
		{"zero cell", row(4), 0, ErrTrimOverflow},
		{"nil bitmap", nil, 4, ErrTrimOverflow},
		{"short pixel buffer", short, 8, ErrTrimOverflow},
		{"pitch below width", &text.GlyphBitmap{
			Rows: 2, Width: 10, Pitch: 4, Pix: make([]byte, 40), PixelMode: text.PixelModeGray,
		}, 8, ErrTrimOverflow},
		// Monochrome bitmaps pack eight pixels per byte.
		{"monochrome", &text.GlyphBitmap{
			Rows: 2, Width: 10, Pitch: 2, Pix: make([]byte, 4), NumGrays: 2, PixelMode: text.PixelModeMono,
		}, 8, ErrUnsupportedPixelFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FitToCell(tt.bm, tt.cellWidth)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if got != nil {
				t.Error("no bitmap should be returned on error")
			}
		})
	}
}

func TestColumnIsBlankOutOfRange(t *testing.T) {
	bm := row(4, 0, 1, 2, 3)
	bm.Pix = bm.Pix[:2]
	if ColumnIsBlank(bm, 1) {
		t.Error("column 1 holds ink")
	}
	for _, x := range []int{-1, 3, 4} {
		if !ColumnIsBlank(bm, x) {
			t.Errorf("column %d outside the pixel buffer should be blank", x)
		}
	}
}

func TestFitToCellMultiRow(t *testing.T) {
	// Column 4 holds ink only in the second row, so it is not blank.
	bm := grayGlyph(5, 2,
		0, 250, 0, 0, 0,
		0, 0, 0, 0, 201,
	)
	got, err := FitToCell(bm, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		250, 0, 0, 0,
		0, 0, 0, 201,
	}
	for i, v := range got.Pix {
		if v != want[i] {
			t.Fatalf("pix = %v, want %v", got.Pix, want)
		}
	}
}

func TestFitToCellPassThrough(t *testing.T) {
	bm := row(6, 0)
	bm.PaletteMode = 3
	bm.NumGrays = 17
	bm.Metrics.HoriAdvance = 6 * 64

	got, err := FitToCell(bm, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got.PaletteMode != 3 || got.NumGrays != 17 || got.PixelMode != text.PixelModeGray {
		t.Errorf("fields not passed through: %+v", got)
	}
	if got.Metrics != bm.Metrics {
		t.Errorf("metrics not passed through: %v", got.Metrics)
	}
}

func TestFitToCellUsesPitch(t *testing.T) {
	bm := &text.GlyphBitmap{
		Rows: 2, Width: 3, Pitch: 4,
		Pix:       []byte{1, 2, 0, 9, 3, 4, 0, 9},
		PixelMode: text.PixelModeGray,
	}
	got, err := FitToCell(bm, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 2, 3, 4}
	for i, v := range got.Pix {
		if v != want[i] {
			t.Fatalf("pix = %v, want %v", got.Pix, want)
		}
	}
}

func TestColumnIsBlank(t *testing.T) {
	bm := grayGlyph(3, 2,
		200, 0, 201,
		0, 0, 0,
	)
	if !ColumnIsBlank(bm, 0) {
		t.Error("intensity 200 should count as blank")
	}
	if !ColumnIsBlank(bm, 1) {
		t.Error("empty column should be blank")
	}
	if ColumnIsBlank(bm, 2) {
		t.Error("intensity 201 should not count as blank")
	}
}
