package services

import (
	"testing"
	"time"
)

func TestResolveRangeCurrentWindows(t *testing.T) {
	// mid-month anchor so partial windows are visible
	now := time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		period string
		start  time.Time
		end    time.Time
	}{
		{"week", now.AddDate(0, 0, -7), now},
		{"month", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), now},
		{"quarter", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), now},
		{"year", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), now},
		{"bogus", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), now}, // falls back to month
	}
	for _, tc := range tests {
		rng := ResolveRange(tc.period, false, now)
		if !rng.Start.Equal(tc.start) || !rng.End.Equal(tc.end) {
			t.Errorf("%s: got [%v, %v), want [%v, %v)", tc.period, rng.Start, rng.End, tc.start, tc.end)
		}
	}
}

func TestResolveRangePreviousIsCompletePeriod(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)

	// previous month must be the full prior calendar month, not a
	// rolling 30 days
	rng := ResolveRange("month", true, now)
	wantStart := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if !rng.Start.Equal(wantStart) || !rng.End.Equal(wantEnd) {
		t.Errorf("previous month: got [%v, %v), want [%v, %v)", rng.Start, rng.End, wantStart, wantEnd)
	}

	// previous window must end exactly where the current one starts
	for _, period := range []string{"week", "month", "quarter", "year"} {
		cur := ResolveRange(period, false, now)
		prev := ResolveRange(period, true, now)
		if !prev.End.Equal(cur.Start) {
			t.Errorf("%s: previous end %v != current start %v", period, prev.End, cur.Start)
		}
		if !prev.Start.Before(prev.End) {
			t.Errorf("%s: empty previous window [%v, %v)", period, prev.Start, prev.End)
		}
	}
}

func TestResolveRangeJanuaryQuarterRollsYear(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	rng := ResolveRange("quarter", false, now)
	want := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)
	if !rng.Start.Equal(want) {
		t.Errorf("quarter start across year boundary: got %v, want %v", rng.Start, want)
	}
}
