package glyphcell

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/glyphcell/internal/logging"
)

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(logging.Nop())
}

// SetLogger configures the logger for glyphcell and all its sub-packages.
// By default, glyphcell produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Faces and compositors pick up the logger that is current when a Library
// creates them.
//
// Log levels used by glyphcell:
//   - [slog.LevelDebug]: internal diagnostics (glyph placement, parser backend)
//   - [slog.LevelInfo]: lifecycle events (faces opened, library closed)
//   - [slog.LevelWarn]: non-fatal issues (resource release errors)
//
// Example:
//
//	glyphcell.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(logging.OrNop(l))
}

// Logger returns the current logger used by glyphcell.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
