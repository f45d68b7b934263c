package text

import (
	"fmt"
	"os"
	"sync"

	"github.com/gogpu/glyphcell/internal/logging"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	data   []byte
	index  int
	parsed ParsedFont // Abstracted font interface (pluggable backend)

	// Metadata
	name string
	path string

	// mu guards data and parsed against Close.
	mu sync.RWMutex

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF, OTF or a
// collection). The data slice is copied internally and can be reused after
// this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	// Apply options first to get parser name
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	logger := logging.OrNop(config.logger)

	// Copy the data
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parser := getParser(config.parserName)
	parsed, err := parser.Parse(dataCopy, config.index)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data:   dataCopy,
		index:  config.index,
		parsed: parsed,
		config: config,
	}
	s.addr = s // Self-reference for copy detection
	s.name = extractFontName(parsed)

	logger.Debug("text: font parsed",
		"name", s.name,
		"index", config.index,
		"parser", config.parserName,
		"backend", backendName(parsed),
		"glyphs", parsed.NumGlyphs(),
	)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	s, err := NewFontSource(data, opts...)
	if err != nil {
		return nil, err
	}
	s.path = path
	return s, nil
}

// Face creates a Face at the specified size (in points).
// Multiple faces can be created from the same FontSource.
//
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) (*Face, error) {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return newFace(s, size, config)
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Path returns the file the source was loaded from, or "" for in-memory
// data.
func (s *FontSource) Path() string {
	s.copyCheck()
	return s.path
}

// Index returns the face index within the font file.
func (s *FontSource) Index() int {
	s.copyCheck()
	return s.index
}

// Parsed returns the parsed font for advanced operations.
// It returns nil after Close.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// parsedFont returns the parsed font or ErrFontClosed.
func (s *FontSource) parsedFont() (ParsedFont, error) {
	p := s.Parsed()
	if p == nil {
		return nil, ErrFontClosed
	}
	return p, nil
}

// fontData returns the raw font bytes or ErrFontClosed.
func (s *FontSource) fontData() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, ErrFontClosed
	}
	return s.data, nil
}

// Closed reports whether Close has been called.
func (s *FontSource) Closed() bool {
	return s.Parsed() == nil
}

// Close releases resources associated with the FontSource.
// All faces created from this source fail with ErrFontClosed afterwards.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	s.data = nil
	s.parsed = nil
	s.mu.Unlock()

	forgetSource(s)
	return nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}

// backendName names the rasterizer behind a parsed font, for logging.
func backendName(p ParsedFont) string {
	switch p.(type) {
	case *freetypeParsedFont:
		return ParserFreeType
	case *ximageParsedFont:
		return ParserXImage
	default:
		return fmt.Sprintf("%T", p)
	}
}
