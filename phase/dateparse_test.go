package phase

import (
	"testing"
	"time"
)

// TestParseTargetDate verifies the loose date grammar the CLI accepts
func TestParseTargetDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		in   string
		want time.Time
	}{
		{"", today},
		{"today", today},
		{"NOW", today},
		{"yesterday", today.AddDate(0, 0, -1)},
		{"tomorrow", today.AddDate(0, 0, 1)},
		{"+3", today.AddDate(0, 0, 3)},
		{"-2", today.AddDate(0, 0, -2)},
		{"06/20/2024", time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)},
		{"06/20/24", time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)},
		{"2024-06-20", time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := ParseTargetDate(c.in, now)
		if err != nil {
			t.Errorf("ParseTargetDate(%q) unexpected error: %v", c.in, err)
			continue
		}
		if !got.Equal(c.want) {
			t.Errorf("ParseTargetDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

// TestParseTargetDateGarbage verifies unparseable input errors but still
// hands back today as the safe default
func TestParseTargetDateGarbage(t *testing.T) {
	now := time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)
	got, err := ParseTargetDate("the day after the fire", now)
	if err == nil {
		t.Fatal("expected an error")
	}
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("fallback date = %v, want %v", got, want)
	}
}
