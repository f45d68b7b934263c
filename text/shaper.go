package text

import "sync"

// Shaper converts text to positioned glyphs.
// Implementations provide different levels of text shaping support:
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting (the default)
//   - BuiltinShaper: one glyph per rune with plain advances, no OpenType layout
type Shaper interface {
	// Shape converts text into positioned glyphs using the given face.
	// The font size is obtained from face.PPEM().
	Shape(text string, face *Face) ([]ShapedGlyph, error)
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper
)

// SetShaper sets the shaper used by faces created without WithShaper.
// Pass nil to reset to the default GoTextShaper.
//
// Example usage with a custom shaper:
//
//	text.SetShaper(&text.BuiltinShaper{})
//	defer text.SetShaper(nil) // Reset to default
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	globalShaper = s
}

// GetShaper returns the shaper used by faces created without WithShaper.
func GetShaper() Shaper {
	return defaultShaper()
}

func defaultShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	if globalShaper != nil {
		return globalShaper
	}
	return sharedGoTextShaper
}

// sharedGoTextShaper is the default shaper. Its font cache entries are
// dropped when a FontSource is closed.
var sharedGoTextShaper = NewGoTextShaper()

// forgetSource removes cached shaping state for a closed source.
func forgetSource(s *FontSource) {
	sharedGoTextShaper.RemoveSource(s)
}
