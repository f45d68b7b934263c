package text

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestFaceSize(t *testing.T) {
	src := newTestSource(t)

	face, err := src.Face(12)
	if err != nil {
		t.Fatal(err)
	}
	if face.Size() != 12 {
		t.Errorf("Size() = %v, want 12", face.Size())
	}
	// 12pt at the default 96 dpi.
	if face.PPEM() != 16 {
		t.Errorf("PPEM() = %v, want 16", face.PPEM())
	}
	if x, y := face.DPI(); x != DefaultDPI || y != DefaultDPI {
		t.Errorf("DPI() = %d, %d", x, y)
	}
	if face.Source() != src {
		t.Error("Source() should return the creating source")
	}
}

func TestFaceSetCharSize(t *testing.T) {
	face, err := newTestSource(t).Face(12)
	if err != nil {
		t.Fatal(err)
	}

	// Zero width means "same as height"; pixel sizes follow each axis dpi.
	if err := face.SetCharSize(0, fixed.I(10), 72, 144); err != nil {
		t.Fatal(err)
	}
	if face.PPEM() != 20 || face.xppem != 10 {
		t.Errorf("ppem = %v x %v, want 10 x 20", face.xppem, face.PPEM())
	}

	if err := face.SetCharSize(fixed.I(8), fixed.I(16), 72, 72); err != nil {
		t.Fatal(err)
	}
	if face.PPEM() != 16 || face.xppem != 8 {
		t.Errorf("ppem = %v x %v, want 8 x 16", face.xppem, face.PPEM())
	}

	tests := []struct {
		name       string
		w, h       fixed.Int26_6
		xdpi, ydpi int
	}{
		{"zero height", 0, 0, 96, 96},
		{"negative height", 0, -64, 96, 96},
		{"zero dpi", 0, fixed.I(12), 0, 96},
		{"negative dpi", 0, fixed.I(12), 96, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := face.SetCharSize(tt.w, tt.h, tt.xdpi, tt.ydpi)
			if !errors.Is(err, ErrInvalidSize) {
				t.Fatalf("expected ErrInvalidSize, got %v", err)
			}
			var fe *FontError
			if !errors.As(err, &fe) || fe.Op != "set char size" {
				t.Errorf("expected a set char size FontError, got %v", err)
			}
		})
	}
	// Failed calls keep the previous size.
	if face.PPEM() != 16 {
		t.Errorf("PPEM() = %v after failed SetCharSize, want 16", face.PPEM())
	}
}

func TestFaceOptions(t *testing.T) {
	src := newTestSource(t)

	if _, err := src.Face(-1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize for a negative size, got %v", err)
	}
	if _, err := src.Face(12, WithFeatures("liga=?")); !errors.Is(err, ErrUnknownFeature) {
		t.Errorf("expected ErrUnknownFeature, got %v", err)
	}

	face, err := src.Face(12,
		WithHintStyle(true, 1),
		WithDirection(DirectionRTL),
		WithLanguage("he"),
		WithFeatures("-liga", "ss01=2"),
		WithDPI(72, 72),
	)
	if err != nil {
		t.Fatal(err)
	}
	if face.Hinting() != HintingVertical {
		t.Errorf("Hinting() = %s, want Vertical", face.Hinting())
	}
	if face.Direction() != DirectionRTL || face.Language() != "he" {
		t.Errorf("unexpected direction %s / language %q", face.Direction(), face.Language())
	}
	if fs := face.Features(); len(fs) != 2 || fs[0] != (Feature{"liga", 0}) || fs[1] != (Feature{"ss01", 2}) {
		t.Errorf("unexpected features %v", fs)
	}
	if face.PPEM() != 12 {
		t.Errorf("PPEM() = %v, want 12", face.PPEM())
	}
}

func TestFaceLoadChar(t *testing.T) {
	face, err := newTestSource(t).Face(12)
	if err != nil {
		t.Fatal(err)
	}

	id := face.CharIndex('g')
	if id == 0 {
		t.Fatal("expected a glyph for 'g'")
	}
	bm, err := face.LoadChar('g')
	if err != nil {
		t.Fatal(err)
	}
	same, err := face.Rasterize(id, face.Hinting())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(bm.Pix, same.Pix) || bm.Metrics != same.Metrics {
		t.Error("LoadChar should match Rasterize with the face hinting")
	}

	// 'g' has a descender: the ink extends below the baseline.
	if bm.Metrics.HoriBearingY >= bm.Metrics.Height {
		t.Errorf("expected a descender, got %+v", bm.Metrics)
	}

	// Every call returns an owned bitmap.
	other, err := face.LoadChar('o')
	if err != nil {
		t.Fatal(err)
	}
	if &other.Pix[0] == &bm.Pix[0] {
		t.Error("bitmaps should not share pixels")
	}
	if face.Advance(id) <= 0 {
		t.Error("expected a positive advance")
	}
}

func TestFaceMonochrome(t *testing.T) {
	face, err := newTestSource(t).Face(12, WithMonochrome(true))
	if err != nil {
		t.Fatal(err)
	}
	bm, err := face.LoadChar('x')
	if err != nil {
		t.Fatal(err)
	}
	if bm.PixelMode != PixelModeMono {
		t.Errorf("expected mono bitmap, got %s", bm.PixelMode)
	}
}

func TestFaceMetricsAndString(t *testing.T) {
	face, err := newTestSource(t).Face(12)
	if err != nil {
		t.Fatal(err)
	}
	m := face.Metrics()
	if m.UnitsPerEm <= 0 || !m.IsScalable {
		t.Errorf("unexpected metrics %s", m)
	}
	if h := face.CellHeight(); h < 16 || h > 32 {
		t.Errorf("CellHeight() = %d, want a line height near 16px", h)
	}

	s := face.String()
	for _, want := range []string{"<memory>", "units_per_em=", "hinting=Full", "size=12.00pt"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %s, missing %q", s, want)
		}
	}
}

func TestFaceLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	face, err := newTestSource(t).Face(12, WithLogger(l))
	if err != nil {
		t.Fatal(err)
	}
	if face.Logger() != l {
		t.Error("Logger() should return the configured logger")
	}
	if _, err := face.Shape("ab"); err != nil {
		t.Fatal(err)
	}
	for _, msg := range []string{"char size set", "shaped"} {
		if !strings.Contains(buf.String(), msg) {
			t.Errorf("expected %q in log output:\n%s", msg, buf.String())
		}
	}
}
