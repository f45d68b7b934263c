package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies text direction.
type Direction int

const (
	// DirectionAuto guesses the direction from the text being shaped.
	DirectionAuto Direction = iota
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
	// DirectionTTB is top-to-bottom text (traditional Chinese, Japanese)
	DirectionTTB
	// DirectionBTT is bottom-to-top text (rare)
	DirectionBTT
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionAuto:
		return "Auto"
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	case DirectionTTB:
		return "TTB"
	case DirectionBTT:
		return "BTT"
	default:
		return unknownStr
	}
}

// IsHorizontal returns true if the direction is horizontal (LTR or RTL).
func (d Direction) IsHorizontal() bool {
	return d == DirectionLTR || d == DirectionRTL
}

// IsVertical returns true if the direction is vertical (TTB or BTT).
func (d Direction) IsVertical() bool {
	return d == DirectionTTB || d == DirectionBTT
}

// Hinting specifies font hinting mode.
//
// The modes mirror FreeType's load targets: HintingFull is the normal
// target, HintingVertical the light target (grid-fitting along the y axis
// only) and HintingNone disables the hinter.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}

// PixelMode is the storage format of a rendered glyph bitmap.
// The numeric values match FreeType's FT_Pixel_Mode.
type PixelMode uint8

const (
	PixelModeNone PixelMode = iota
	// PixelModeMono packs 1 bit per pixel, most significant bit first.
	PixelModeMono
	// PixelModeGray stores one 8-bit coverage value per pixel.
	PixelModeGray
	PixelModeGray2
	PixelModeGray4
	PixelModeLCD
	PixelModeLCDV
	PixelModeBGRA
)

// String returns the string representation of the pixel mode.
func (m PixelMode) String() string {
	switch m {
	case PixelModeNone:
		return "None"
	case PixelModeMono:
		return "Mono"
	case PixelModeGray:
		return "Gray"
	case PixelModeGray2:
		return "Gray2"
	case PixelModeGray4:
		return "Gray4"
	case PixelModeLCD:
		return "LCD"
	case PixelModeLCDV:
		return "LCDV"
	case PixelModeBGRA:
		return "BGRA"
	default:
		return unknownStr
	}
}
