package glyphcell

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/glyphcell/text"
)

// ErrLibraryClosed is returned by Library methods called after Close.
var ErrLibraryClosed = errors.New("glyphcell: library is closed")

// Library owns the fonts opened through it and renders clusters with them.
//
// Create one Library at startup and Close it at shutdown; Close releases
// every font source the library opened. A Library is safe for concurrent
// use. Render serializes calls per face, so one face may be shared between
// goroutines as long as every caller goes through the same Library.
type Library struct {
	opts libraryOptions

	mu      sync.Mutex
	closed  bool
	sources []*text.FontSource

	// faceLocks holds one *sync.Mutex per *text.Face.
	faceLocks sync.Map
}

// NewLibrary creates a Library.
func NewLibrary(opts ...Option) *Library {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	l := &Library{opts: o}
	l.logger().Info("glyphcell: library created",
		"parser", o.parser,
		"xdpi", o.xdpi,
		"ydpi", o.ydpi,
	)
	return l
}

// logger returns the configured logger or the package logger.
func (l *Library) logger() *slog.Logger {
	if l.opts.logger != nil {
		return l.opts.logger
	}
	return Logger()
}

// OpenFace loads the index'th face of the font file at path at size points.
// opts are applied after the library defaults.
func (l *Library) OpenFace(path string, index int, size float64, opts ...text.FaceOption) (*text.Face, error) {
	if err := l.checkOpen(); err != nil {
		return nil, err
	}
	src, err := text.NewFontSourceFromFile(path, l.sourceOptions(index)...)
	if err != nil {
		return nil, err
	}
	return l.addFace(src, size, opts)
}

// NewFace loads the index'th face of in-memory font data at size points.
// The data is copied.
func (l *Library) NewFace(data []byte, index int, size float64, opts ...text.FaceOption) (*text.Face, error) {
	if err := l.checkOpen(); err != nil {
		return nil, err
	}
	src, err := text.NewFontSource(data, l.sourceOptions(index)...)
	if err != nil {
		return nil, err
	}
	return l.addFace(src, size, opts)
}

func (l *Library) sourceOptions(index int) []text.SourceOption {
	return []text.SourceOption{
		text.WithParser(l.opts.parser),
		text.WithIndex(index),
		text.WithSourceLogger(l.logger()),
	}
}

func (l *Library) addFace(src *text.FontSource, size float64, opts []text.FaceOption) (*text.Face, error) {
	all := make([]text.FaceOption, 0, len(opts)+2)
	all = append(all,
		text.WithDPI(l.opts.xdpi, l.opts.ydpi),
		text.WithLogger(l.logger()),
	)
	all = append(all, opts...)

	face, err := src.Face(size, all...)
	if err != nil {
		_ = src.Close()
		return nil, err
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		_ = src.Close()
		return nil, ErrLibraryClosed
	}
	l.pruneLocked()
	l.sources = append(l.sources, src)
	l.mu.Unlock()

	l.logger().Info("glyphcell: face opened",
		"path", src.Path(),
		"index", src.Index(),
		"name", src.Name(),
		"size", size,
		"ppem", face.PPEM(),
		"hinting", face.Hinting(),
	)
	return face, nil
}

func (l *Library) checkOpen() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrLibraryClosed
	}
	return nil
}

// CloseFace closes the source of face and forgets the face. Other faces of
// the same source fail with text.ErrFontClosed afterwards.
func (l *Library) CloseFace(face *text.Face) error {
	if err := face.Source().Close(); err != nil {
		return err
	}
	l.mu.Lock()
	l.pruneLocked()
	l.mu.Unlock()
	return nil
}

// pruneLocked drops closed sources and the locks of their faces.
// Caller must hold l.mu.
func (l *Library) pruneLocked() {
	open := l.sources[:0]
	for _, src := range l.sources {
		if !src.Closed() {
			open = append(open, src)
		}
	}
	clear(l.sources[len(open):])
	l.sources = open

	l.faceLocks.Range(func(key, _ any) bool {
		if key.(*text.Face).Source().Closed() {
			l.faceLocks.Delete(key)
		}
		return true
	})
}

// lockFace locks the mutex of face and returns its unlock function.
func (l *Library) lockFace(face *text.Face) func() {
	v, _ := l.faceLocks.LoadOrStore(face, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Close releases every font source opened through the library. Faces
// created from them fail with text.ErrFontClosed afterwards. Close is
// idempotent.
func (l *Library) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	sources := l.sources
	l.sources = nil
	l.mu.Unlock()

	var errs []error
	for _, src := range sources {
		if err := src.Close(); err != nil {
			l.logger().Warn("glyphcell: failed to close font", "name", src.Name(), "err", err)
			errs = append(errs, fmt.Errorf("close %s: %w", src.Name(), err))
		}
	}
	l.faceLocks.Clear()
	l.logger().Info("glyphcell: library closed", "fonts", len(sources))
	return errors.Join(errs...)
}
