package models

// Length is the requested length of the suggested title.
type Length string

// Length constants
const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// Focus is the kind of keywords the suggested title should lean on.
type Focus string

// Focus constants
const (
	FocusGeneral  Focus = "general"
	FocusSpecific Focus = "specific"
)

// Preferences groups the optional form options of a generation request.
type Preferences struct {
	Length Length `json:"length"`
	Focus  Focus  `json:"focus"`
}

// DefaultPreferences returns medium length with a general focus.
func DefaultPreferences() Preferences {
	return Preferences{Length: LengthMedium, Focus: FocusGeneral}
}

// ParseLength maps a form value to a Length. Empty or unknown values fall
// back to LengthMedium.
func ParseLength(value string) Length {
	switch Length(value) {
	case LengthShort, LengthLong:
		return Length(value)
	default:
		return LengthMedium
	}
}

// ParseFocus maps a form value to a Focus. Anything other than "specific"
// is treated as FocusGeneral.
func ParseFocus(value string) Focus {
	if Focus(value) == FocusSpecific {
		return FocusSpecific
	}
	return FocusGeneral
}
