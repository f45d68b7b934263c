package text

import (
	"testing"

	"golang.org/x/image/font"
)

func TestHintingFromStyle(t *testing.T) {
	tests := []struct {
		enabled bool
		style   int
		want    Hinting
	}{
		{false, 0, HintingNone},
		{false, 1, HintingNone},
		{false, 3, HintingNone},
		{true, 0, HintingFull},
		{true, 1, HintingVertical},
		{true, 2, HintingVertical},
		{true, 3, HintingFull},
		{true, 4, HintingFull},
	}

	for _, tt := range tests {
		if got := HintingFromStyle(tt.enabled, tt.style); got != tt.want {
			t.Errorf("HintingFromStyle(%v, %d) = %s, want %s", tt.enabled, tt.style, got, tt.want)
		}
	}
}

func TestHintingXImage(t *testing.T) {
	tests := []struct {
		h    Hinting
		want font.Hinting
	}{
		{HintingNone, font.HintingNone},
		{HintingVertical, font.HintingVertical},
		{HintingFull, font.HintingFull},
	}

	for _, tt := range tests {
		if got := tt.h.xHinting(); got != tt.want {
			t.Errorf("%s.xHinting() = %v, want %v", tt.h, got, tt.want)
		}
	}
}
