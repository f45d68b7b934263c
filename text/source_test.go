package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// newTestSource loads Go Regular, which ships with golang.org/x/image.
func newTestSource(t *testing.T, opts ...SourceOption) *FontSource {
	t.Helper()
	src, err := NewFontSource(goregular.TTF, opts...)
	if err != nil {
		t.Fatalf("NewFontSource() = %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })
	return src
}

func TestNewFontSource(t *testing.T) {
	src := newTestSource(t)
	if src.Name() == "" || src.Name() == "Unknown Font" {
		t.Errorf("expected a family name, got %q", src.Name())
	}
	if src.Path() != "" || src.Index() != 0 {
		t.Errorf("unexpected path %q / index %d", src.Path(), src.Index())
	}
	if src.Parsed() == nil || src.Closed() {
		t.Error("new source should be open")
	}
}

func TestNewFontSourceErrors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("expected ErrEmptyFontData, got %v", err)
	}
	if _, err := NewFontSource(goregular.TTF, WithIndex(2)); err == nil {
		t.Error("expected an error for an out of range index")
	}
	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestNewFontSourceCopiesData(t *testing.T) {
	data := append([]byte(nil), goregular.TTF...)
	src, err := NewFontSource(data)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = src.Close() })

	clear(data)
	face, err := src.Face(12)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := face.LoadChar('a'); err != nil {
		t.Errorf("source should not depend on the caller's slice: %v", err)
	}
	if _, err := face.Shape("a"); err != nil {
		t.Errorf("shaping should not depend on the caller's slice: %v", err)
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	src, err := NewFontSourceFromFile(path, WithParser(ParserXImage))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = src.Close() })

	if src.Path() != path {
		t.Errorf("expected path %q, got %q", path, src.Path())
	}
	if got := backendName(src.Parsed()); got != ParserXImage {
		t.Errorf("expected the ximage backend, got %s", got)
	}
}

func TestFontSourceClose(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face, err := src.Face(12)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := face.Shape("a"); err != nil {
		t.Fatal(err)
	}

	if err := src.Close(); err != nil {
		t.Fatal(err)
	}
	if !src.Closed() || src.Parsed() != nil {
		t.Error("source should be closed")
	}
	if _, err := face.LoadChar('a'); !errors.Is(err, ErrFontClosed) {
		t.Errorf("LoadChar after Close = %v, want ErrFontClosed", err)
	}
	if _, err := face.Shape("a"); !errors.Is(err, ErrFontClosed) {
		t.Errorf("Shape after Close = %v, want ErrFontClosed", err)
	}
	if face.CharIndex('a') != 0 {
		t.Error("CharIndex after Close should be 0")
	}
	if face.Metrics() != (FaceMetrics{}) {
		t.Error("Metrics after Close should be zero")
	}
}

func TestFontSourceFaceNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a nil source")
		}
	}()
	var src *FontSource
	_, _ = src.Face(12)
}
