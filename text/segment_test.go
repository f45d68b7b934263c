package text

import (
	"testing"

	"github.com/go-text/typesetting/language"
)

func TestGuessSegment(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		dir    Direction
		script language.Script
	}{
		{"latin", "abc", DirectionLTR, language.Latin},
		{"hebrew", "שלום", DirectionRTL, language.Hebrew},
		{"arabic", "مرحبا", DirectionRTL, language.Arabic},
		{"leading digits", "123 שלום", DirectionRTL, language.Hebrew},
		{"leading punctuation", "(abc)", DirectionLTR, language.Latin},
		{"combining mark", "é", DirectionLTR, language.Latin},
		{"han", "漢字", DirectionLTR, language.Han},
		{"only common", "123", DirectionLTR, language.Latin},
		{"empty", "", DirectionLTR, language.Latin},
		// The script decides, not the first strong bidi class.
		{"rtl mark before latin", "\u200fabc", DirectionLTR, language.Latin},
		{"syriac", "ܫܠܡ", DirectionRTL, language.Syriac},
		{"rtl mark without script", "\u200f123", DirectionRTL, language.Latin},
		{"old italic", "\U00010300", DirectionLTR, language.Old_Italic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := GuessSegment([]rune(tt.text), "en")
			if seg.Direction != tt.dir {
				t.Errorf("direction = %s, want %s", seg.Direction, tt.dir)
			}
			if seg.Script != tt.script {
				t.Errorf("script = %s, want %s", seg.Script, tt.script)
			}
		})
	}
}

func TestGuessSegmentLanguage(t *testing.T) {
	seg := GuessSegment([]rune("abc"), "ja")
	if seg.Language != language.NewLanguage("ja") {
		t.Errorf("language = %q, want ja", seg.Language)
	}

	t.Setenv("LC_ALL", "fr_FR.UTF-8")
	seg = GuessSegment([]rune("abc"), "")
	if seg.Language != language.DefaultLanguage() {
		t.Errorf("language = %q, want the process default %q", seg.Language, language.DefaultLanguage())
	}
}
