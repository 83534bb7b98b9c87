package phase

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"lunie/parameter"
)

// ErrDataUnavailable means neither the lookup table nor the analytic
// fallback produced a phase record. Should be unreachable for valid dates;
// treated as startup-fatal by the host.
var ErrDataUnavailable = errors.New("phase data unavailable")

// Name is one of the eight principal lunar phases
type Name int

const (
	NewMoon Name = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

var phaseNames = [...]string{
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Last Quarter",
	"Waning Crescent",
}

func (n Name) String() string {
	if n < NewMoon || n > WaningCrescent {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return phaseNames[n]
}

// ParseName matches a phase label from table data, case-insensitively
func ParseName(s string) (Name, bool) {
	s = strings.TrimSpace(s)
	for i, name := range phaseNames {
		if strings.EqualFold(s, name) {
			return Name(i), true
		}
	}
	return NewMoon, false
}

// Waxing reports whether the phase belongs to the waxing half-cycle.
// New Moon counts as waxing, Full Moon as waning, matching the age buckets.
func (n Name) Waxing() bool {
	return n < FullMoon
}

// Record holds the phase attributes for one calendar day.
// Immutable once produced by a Resolver.
type Record struct {
	Date            time.Time
	Phase           Name
	IlluminationPct float64 // [0, 100]
	AgeDays         float64 // [0, synodic period)
}

// Validate reports whether the record's fields are inside their declared
// domains
func (r Record) Validate() error {
	if math.IsNaN(r.IlluminationPct) || r.IlluminationPct < 0 || r.IlluminationPct > 100 {
		return fmt.Errorf("illumination %.2f out of range [0,100]", r.IlluminationPct)
	}
	if math.IsNaN(r.AgeDays) || r.AgeDays < 0 || r.AgeDays >= parameter.SynodicPeriodDays {
		return fmt.Errorf("age %.2f out of range [0,%.6f)", r.AgeDays, parameter.SynodicPeriodDays)
	}
	return nil
}

// dayKey normalizes a time to its calendar day for table and cache lookups
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
