package parameter

// Disc geometry
const (
	// MinDiscRadius is the clamp floor applied when a caller asks for a
	// non-positive or sub-visible radius
	MinDiscRadius = 4.0

	// DefaultSoftness is the terminator blend band width as a fraction of
	// the disc radius. Cosmetic only.
	DefaultSoftness = 0.04

	// DiscScreenFraction sizes the disc against the smaller screen axis
	DiscScreenFraction = 0.38

	// DiscCenterYFraction places the disc center in the upper third,
	// matching the widget's portrait composition
	DiscCenterYFraction = 1.0 / 3.0
)

// Night sky gradient endpoints (top to bottom)
const (
	SkyTopHex    = "#0a0a23"
	SkyBottomHex = "#0f1e3c"
	SkySteps     = 100
)

// Moon surface palette
const (
	LitColorHex  = "#e8e4d8"
	DarkColorHex = "#1c2030" // dark-side tint, never pure black
	InfoTextHex  = "#e8eefc"
)

// Face overlay, in fractions of disc radius
const (
	EyeOffsetX  = 0.34 // horizontal distance from disc center
	EyeOffsetY  = 0.18 // above disc center
	EyeRadiusX  = 0.11
	EyeRadiusY  = 0.16
	CatchlightR = 0.04
)
