package parameter

import "time"

// Frame cadence
const (
	DefaultFPS = 30
	MinFPS     = 30
	MaxFPS     = 60

	// MaxTickDelta clamps dt before it reaches the controller, so a
	// suspended process does not produce one giant animation step
	MaxTickDelta = 0.25 // seconds
)

// Parallax
const (
	// ParallaxSmoothing is the exponential smoothing factor applied per tick
	ParallaxSmoothing = 0.15

	// MaxParallaxOffset limits how far the disc drifts from center, in pixels
	MaxParallaxOffset = 15.0

	// Layer depth multipliers on the shared parallax offset. The face layer
	// rides closer to the viewer and moves more than the moon behind it.
	MoonParallaxDepth = 1.0 / 3.0
	FaceParallaxDepth = 1.0
)

// Blink timing
const (
	MinBlinkInterval = 3.0 // seconds
	MaxBlinkInterval = 7.0

	BlinkClosingDuration = 0.08
	BlinkClosedHold      = 0.17
	BlinkOpeningDuration = 0.08

	// MinBlinkScale is the vertical squash at full eye closure
	MinBlinkScale = 0.05
)

// RolloverCheckInterval is how often the widget checks for a calendar-day
// change; the resolver cache makes the check itself O(1).
const RolloverCheckInterval = time.Minute

// PointerStaleAfter is how long after the last mouse event the pointer
// counts as gone. Terminals deliver no leave event, so absence is inferred.
const PointerStaleAfter = 2 * time.Second
