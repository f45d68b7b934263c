package text

import (
	"fmt"
	"strconv"
	"strings"

	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/shaping"
)

// Feature is an OpenType feature setting applied to a whole shaping run.
type Feature struct {
	// Tag is the four character feature tag, e.g. "liga".
	Tag string

	// Value is 0 to disable the feature, 1 to enable it, or an alternate
	// index for features such as "salt" or "cv01".
	Value uint32
}

// String formats f in the syntax accepted by ParseFeature.
func (f Feature) String() string {
	switch f.Value {
	case 0:
		return "-" + f.Tag
	case 1:
		return f.Tag
	default:
		return f.Tag + "=" + strconv.FormatUint(uint64(f.Value), 10)
	}
}

// ParseFeature parses a feature setting. Accepted forms are "liga" and
// "+liga" (enable), "-liga" (disable), and "ss01=2" or "liga=off" (explicit
// value). Tags shorter than four characters are padded with spaces.
func ParseFeature(spec string) (Feature, error) {
	s := strings.TrimSpace(spec)
	f := Feature{Value: 1}

	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		s = s[1:]
		f.Value = 0
	}

	if tag, value, ok := strings.Cut(s, "="); ok {
		v, err := parseFeatureValue(strings.TrimSpace(value))
		if err != nil {
			return Feature{}, fmt.Errorf("%w: %q", ErrUnknownFeature, spec)
		}
		if f.Value == 0 && v != 0 {
			return Feature{}, fmt.Errorf("%w: %q", ErrUnknownFeature, spec)
		}
		f.Value = v
		s = strings.TrimSpace(tag)
	}

	if len(s) == 0 || len(s) > 4 {
		return Feature{}, fmt.Errorf("%w: %q", ErrUnknownFeature, spec)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return Feature{}, fmt.Errorf("%w: %q", ErrUnknownFeature, spec)
		}
	}
	f.Tag = s + strings.Repeat(" ", 4-len(s))
	return f, nil
}

func parseFeatureValue(s string) (uint32, error) {
	switch s {
	case "on", "true":
		return 1, nil
	case "off", "false":
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}

// ParseFeatures parses every spec, stopping at the first malformed one.
func ParseFeatures(specs []string) ([]Feature, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make([]Feature, 0, len(specs))
	for _, spec := range specs {
		f, err := ParseFeature(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// shapingFeatures converts features to go-text's representation.
func shapingFeatures(fs []Feature) []shaping.FontFeature {
	if len(fs) == 0 {
		return nil
	}
	out := make([]shaping.FontFeature, len(fs))
	for i, f := range fs {
		out[i] = shaping.FontFeature{Tag: ot.MustNewTag(f.Tag), Value: f.Value}
	}
	return out
}
