package glyphcell

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLoggerSilentByDefault(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("package logger enabled for %v without SetLogger", level)
		}
	}
}

func TestSetLoggerReachesLibrary(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	SetLogger(custom)
	if Logger() != custom {
		t.Fatal("Logger() should return the logger passed to SetLogger")
	}

	// A library without WithLogger logs through the package logger.
	lib := NewLibrary(WithParserName("ximage"))
	_ = lib.Close()

	out := buf.String()
	for _, msg := range []string{"glyphcell: library created", "parser=ximage", "glyphcell: library closed"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output is missing %q:\n%s", msg, out)
		}
	}
}

func TestSetLoggerNil(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)
	if l := Logger(); l == nil || l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore a silent, non-nil logger")
	}
}

func TestSetLoggerWhileRendering(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	lib := NewLibrary()
	t.Cleanup(func() { _ = lib.Close() })
	face := newTestFace(t, lib)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := lib.Render(face, "a", 0); err != nil {
				t.Error(err)
			}
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.New(slog.DiscardHandler))
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLoggerDisabled(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("cluster: glyph placed", "glyph", 42)
	}
}
