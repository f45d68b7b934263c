package text

import "golang.org/x/image/font"

// HintingFromStyle maps a fontconfig style hinting switch and hintstyle
// (0 = none, 1 = slight, 2 = medium, 3 = full) to a Hinting mode.
//
// Disabled hinting always wins. Styles 1 and 2 select the light target,
// style 3 and above the normal one. Style 0 with hinting enabled keeps the
// backend default, which is the normal target.
func HintingFromStyle(enabled bool, style int) Hinting {
	if !enabled {
		return HintingNone
	}
	if style > 0 && style < 3 {
		return HintingVertical
	}
	return HintingFull
}

// xHinting converts a Hinting mode to the x/image font.Hinting value.
func (h Hinting) xHinting() font.Hinting {
	switch h {
	case HintingVertical:
		return font.HintingVertical
	case HintingFull:
		return font.HintingFull
	default:
		return font.HintingNone
	}
}
