package phase

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonphase"

	"lunie/parameter"
)

// Analytic fallback: closed-form synodic approximation anchored to the
// nearest preceding true new moon. Precision targets a daily-cadence
// ambient display, not an ephemeris.

// IlluminationForAge maps moon age in days to illuminated percentage
// using the cosine law over the mean synodic cycle
func IlluminationForAge(ageDays float64) float64 {
	frac := ageDays / parameter.SynodicPeriodDays
	return 50 * (1 - math.Cos(2*math.Pi*frac))
}

// NameForAge buckets the synodic cycle into the eight principal phases.
// Buckets are equal-width and centered on the cardinal points, so ages
// within 1/16 cycle of zero read as New Moon. Boundary ties go to the
// later bucket.
func NameForAge(ageDays float64) Name {
	frac := ageDays / parameter.SynodicPeriodDays
	idx := int(math.Floor(frac*8+0.5)) % 8
	return Name(idx)
}

// AgeForDate returns days since new moon for noon UTC of the given date.
// The epoch is the true new moon preceding the date, found via meeus;
// the mean epoch constant covers ages beyond one mean period.
func AgeForDate(date time.Time) float64 {
	noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.UTC)
	jd := julian.TimeToJD(noon)

	nm := precedingNewMoon(jd)
	age := jd - nm
	if age < 0 || age >= parameter.SynodicPeriodDays {
		age = math.Mod(age, parameter.SynodicPeriodDays)
		if age < 0 {
			age += parameter.SynodicPeriodDays
		}
	}
	return age
}

// precedingNewMoon returns the JDE of the last new moon at or before jd
func precedingNewMoon(jd float64) float64 {
	y := decimalYear(jd)
	nm := moonphase.New(y)
	for i := 0; nm > jd && i < 3; i++ {
		y -= parameter.SynodicPeriodDays / 365.25
		nm = moonphase.New(y)
	}
	if nm > jd {
		// Anchor failed, fall back to the mean epoch
		return parameter.NewMoonEpochJD
	}
	return nm
}

func decimalYear(jd float64) float64 {
	return 2000.0 + (jd-2451545.0)/365.25
}

// Fallback computes a full phase record for a date from the closed form
// alone. Never fails for a valid calendar date.
func Fallback(date time.Time) Record {
	age := AgeForDate(date)
	return Record{
		Date:            time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Phase:           NameForAge(age),
		IlluminationPct: IlluminationForAge(age),
		AgeDays:         age,
	}
}
