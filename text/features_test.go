package text

import (
	"errors"
	"testing"

	ot "github.com/go-text/typesetting/font/opentype"
)

func TestParseFeature(t *testing.T) {
	tests := []struct {
		spec string
		want Feature
	}{
		{"liga", Feature{"liga", 1}},
		{"+calt", Feature{"calt", 1}},
		{"-liga", Feature{"liga", 0}},
		{"ss01=2", Feature{"ss01", 2}},
		{"liga=off", Feature{"liga", 0}},
		{"kern=on", Feature{"kern", 1}},
		{" cv01 = 3 ", Feature{"cv01", 3}},
		{"cv", Feature{"cv  ", 1}},
		{"-dlig=0", Feature{"dlig", 0}},
	}

	for _, tt := range tests {
		got, err := ParseFeature(tt.spec)
		if err != nil {
			t.Errorf("ParseFeature(%q) error: %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFeature(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

func TestParseFeatureErrors(t *testing.T) {
	for _, spec := range []string{"", "-", "toolong", "liga=x", "-liga=1", "ss01=-2", "li\x01a"} {
		if _, err := ParseFeature(spec); !errors.Is(err, ErrUnknownFeature) {
			t.Errorf("ParseFeature(%q) = %v, want ErrUnknownFeature", spec, err)
		}
	}
}

func TestFeatureString(t *testing.T) {
	tests := []struct {
		f    Feature
		want string
	}{
		{Feature{"liga", 1}, "liga"},
		{Feature{"liga", 0}, "-liga"},
		{Feature{"ss01", 2}, "ss01=2"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.f, got, tt.want)
		}
		back, err := ParseFeature(tt.want)
		if err != nil || back != tt.f {
			t.Errorf("ParseFeature(%q) = %+v, %v", tt.want, back, err)
		}
	}
}

func TestParseFeatures(t *testing.T) {
	fs, err := ParseFeatures([]string{"liga", "-kern"})
	if err != nil {
		t.Fatal(err)
	}
	if len(fs) != 2 || fs[1] != (Feature{"kern", 0}) {
		t.Errorf("unexpected features %+v", fs)
	}
	if fs, err := ParseFeatures(nil); fs != nil || err != nil {
		t.Errorf("ParseFeatures(nil) = %v, %v", fs, err)
	}
	if _, err := ParseFeatures([]string{"liga", "bad=?"}); !errors.Is(err, ErrUnknownFeature) {
		t.Errorf("expected ErrUnknownFeature, got %v", err)
	}

	sf := shapingFeatures(fs)
	if len(sf) != 2 || sf[0].Tag != ot.MustNewTag("liga") || sf[0].Value != 1 || sf[1].Value != 0 {
		t.Errorf("unexpected shaping features %+v", sf)
	}
}
