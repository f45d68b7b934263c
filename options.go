package glyphcell

import (
	"log/slog"

	"github.com/gogpu/glyphcell/text"
)

// Option configures a Library during creation.
//
// Example:
//
//	lib := glyphcell.NewLibrary(
//	    glyphcell.WithDefaultDPI(144, 144),
//	    glyphcell.WithParserName(text.ParserXImage),
//	)
type Option func(*libraryOptions)

// libraryOptions holds optional configuration for Library creation.
type libraryOptions struct {
	xdpi, ydpi int
	parser     string
	logger     *slog.Logger
	maxPixels  int
}

// defaultOptions returns the default library options.
func defaultOptions() libraryOptions {
	return libraryOptions{
		xdpi:   text.DefaultDPI,
		ydpi:   text.DefaultDPI,
		parser: text.ParserFreeType,
	}
}

// WithDefaultDPI sets the device resolution of faces opened through the
// library. Face options passed to OpenFace override it.
func WithDefaultDPI(x, y int) Option {
	return func(o *libraryOptions) {
		o.xdpi = x
		o.ydpi = y
	}
}

// WithParserName selects the font backend registered under name.
// See text.RegisterParser.
func WithParserName(name string) Option {
	return func(o *libraryOptions) {
		o.parser = name
	}
}

// WithLogger sets the library's logger. Without it the library uses the
// package logger (see SetLogger) current at each call.
func WithLogger(l *slog.Logger) Option {
	return func(o *libraryOptions) {
		o.logger = l
	}
}

// WithMaxPixels bounds the canvas area of one rendered cluster.
func WithMaxPixels(n int) Option {
	return func(o *libraryOptions) {
		o.maxPixels = n
	}
}
