package phase

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTargetDate parses a loose date argument relative to now.
//
// Accepts "today"/"now", "yesterday", "tomorrow", relative day counts like
// "+3" or "-2", and the explicit formats MM/DD/YYYY, MM/DD/YY, YYYY-MM-DD.
func ParseTargetDate(s string, now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	txt := strings.ToLower(strings.TrimSpace(s))
	switch txt {
	case "", "today", "now":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if strings.HasPrefix(txt, "+") || strings.HasPrefix(txt, "-") {
		if n, err := strconv.Atoi(txt); err == nil {
			return today.AddDate(0, 0, n), nil
		}
	}

	for _, layout := range dateFormats {
		if d, err := time.Parse(layout, txt); err == nil {
			return d, nil
		}
	}
	return today, fmt.Errorf("could not parse date %q", s)
}
