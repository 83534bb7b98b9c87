package shade

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"lunie/parameter"
	"lunie/phase"
)

// ErrInvalidPhaseData means a malformed record reached the shading model.
// Callers recover by substituting the nearest valid fallback record.
var ErrInvalidPhaseData = errors.New("invalid phase data")

// Hemisphere selects which limb is lit for a given phase
type Hemisphere int

const (
	North Hemisphere = iota
	South
)

// ParseHemisphere accepts "north"/"south" (any case, prefixes allowed,
// matching the original CLI flag behavior). Unknown input reads as North.
func ParseHemisphere(s string) Hemisphere {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "s") {
		return South
	}
	return North
}

// Terminator describes the lit/unlit partition of the disc as seen from
// the viewer. Derived from one record, owned by the shading model for the
// lifetime of one render.
type Terminator struct {
	PhaseFraction float64 // [0,1]: 0=new, 0.5=full, 1=new again
	Waxing        bool
	LimbAngle     float64 // radians; 0 = lit limb on the right
}

// ToTerminator turns phase attributes into terminator geometry.
// Pure; fails only on out-of-domain input.
func ToTerminator(rec phase.Record, hemi Hemisphere) (Terminator, error) {
	if err := rec.Validate(); err != nil {
		return Terminator{}, fmt.Errorf("%w: %v", ErrInvalidPhaseData, err)
	}

	frac := rec.AgeDays / parameter.SynodicPeriodDays
	waxing := frac < 0.5

	limb := 0.0
	if !waxing {
		limb = math.Pi
	}
	if hemi == South {
		limb = math.Mod(limb+math.Pi, 2*math.Pi)
	}

	return Terminator{
		PhaseFraction: frac,
		Waxing:        waxing,
		LimbAngle:     limb,
	}, nil
}

// LitFraction returns the illuminated fraction of the disc in [0,1].
// Monotonically increasing on [0,0.5] and decreasing on [0.5,1].
func (t Terminator) LitFraction() float64 {
	return (1 - math.Cos(2*math.Pi*t.PhaseFraction)) / 2
}

// HalfWidth returns the terminator ellipse's horizontal half-width as a
// fraction of the disc radius
func (t Terminator) HalfWidth() float64 {
	return math.Abs(math.Cos(2 * math.Pi * t.PhaseFraction))
}

// SunVector returns the unit sun direction implied by the geometry:
// x, y in the image plane (x right, y down), z toward the viewer.
// A surface point is lit where its normal's dot product with this vector
// is positive. This is the two-sphere projection behind the piecewise
// ellipse terminator; the sign of z flips the fill sense between crescent
// and gibbous without a case split.
func (t Terminator) SunVector() (sx, sy, sz float64) {
	k := t.LitFraction()
	cosA := 2*k - 1
	sinA := math.Sqrt(math.Max(0, 1-cosA*cosA))
	sx = sinA * math.Cos(t.LimbAngle)
	sy = sinA * math.Sin(t.LimbAngle)
	sz = cosA
	return sx, sy, sz
}
