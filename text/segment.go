package text

import (
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// Segment holds the properties a shaper needs for one run of text.
type Segment struct {
	Direction Direction
	Script    language.Script
	Language  language.Language
}

// GuessSegment fills in the segment properties of runes.
//
// The script is the first strong (not Common, not Inherited) script in the
// text, or Latin when there is none. As in HarfBuzz's
// hb_buffer_guess_segment_properties, the direction is the horizontal
// direction of that script. Text without a strong script, and the few
// scripts written in either direction (Old Italic, Runic, ...), take the
// direction of the first rune with a strong bidi class instead, defaulting
// to left to right. An empty lang selects the process default language.
func GuessSegment(runes []rune, lang string) Segment {
	script, found := guessScript(runes)
	seg := Segment{Script: script}
	if dir, ok := scriptDirection(script); found && ok {
		seg.Direction = dir
	} else {
		seg.Direction = bidiDirection(runes)
	}
	if lang != "" {
		seg.Language = language.NewLanguage(lang)
	} else {
		seg.Language = language.DefaultLanguage()
	}
	return seg
}

func guessScript(runes []rune) (language.Script, bool) {
	for _, r := range runes {
		if s := language.LookupScript(r); s.Strong() && s != language.Unknown {
			return s, true
		}
	}
	return language.Latin, false
}

// scriptDirection returns the horizontal direction of script. ok is false
// for scripts that are written in either direction.
func scriptDirection(script language.Script) (dir Direction, ok bool) {
	switch script {
	case language.Arabic, language.Hebrew, language.Syriac, language.Thaana,
		language.Cypriot, language.Kharoshthi, language.Phoenician, language.Nko, language.Lydian,
		language.Avestan, language.Imperial_Aramaic, language.Inscriptional_Pahlavi,
		language.Inscriptional_Parthian, language.Old_South_Arabian, language.Old_Turkic,
		language.Samaritan, language.Mandaic, language.Meroitic_Cursive, language.Meroitic_Hieroglyphs,
		language.Manichaean, language.Mende_Kikakui, language.Nabataean, language.Old_North_Arabian,
		language.Palmyrene, language.Psalter_Pahlavi, language.Hatran, language.Adlam,
		language.Hanifi_Rohingya, language.Old_Sogdian, language.Sogdian, language.Elymaic,
		language.Chorasmian, language.Yezidi:
		return DirectionRTL, true
	case language.Old_Hungarian, language.Old_Italic, language.Runic, language.Tifinagh:
		return DirectionAuto, false
	}
	return DirectionLTR, true
}

// bidiDirection returns the direction of the first rune with a strong bidi
// class, or left to right.
func bidiDirection(runes []rune) Direction {
	for _, r := range runes {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
	}
	return DirectionLTR
}
