package services

import (
	"testing"
	"time"
)

func TestFinishStats(t *testing.T) {
	s := DomainStats{Count: 3, Total: 10.006}
	finishStats(&s)
	if s.Total != 10.01 {
		t.Errorf("Total = %v, want 10.01", s.Total)
	}
	if s.Average != 3.34 {
		t.Errorf("Average = %v, want 3.34", s.Average)
	}

	empty := DomainStats{}
	finishStats(&empty)
	if empty.Average != 0 || empty.Total != 0 {
		t.Errorf("empty stats = %+v, want zero average and total", empty)
	}
}

func TestTopDay(t *testing.T) {
	if got := topDay(nil); got != nil {
		t.Errorf("topDay(nil) = %v, want nil", got)
	}

	series := []DailyPoint{
		{Date: "2024-05-01", Total: 20},
		{Date: "2024-05-02", Total: 50},
		{Date: "2024-05-03", Total: 50},
		{Date: "2024-05-04", Total: 10},
	}
	got := topDay(series)
	if got == nil || got.Date != "2024-05-02" {
		t.Errorf("topDay tie should pick the earliest day, got %+v", got)
	}
}

func TestToDailySeriesRounds(t *testing.T) {
	day := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	series := toDailySeries([]dailyRow{
		{Day: day, Total: 1234.567, Count: 3},
		{Day: day.AddDate(0, 0, 1), Total: 0.005, Count: 1},
	})
	if len(series) != 2 {
		t.Fatalf("len = %d, want 2", len(series))
	}
	if series[0].Total != 1234.57 {
		t.Errorf("total = %v, want 1234.57", series[0].Total)
	}
	if series[1].Total != 0.01 {
		t.Errorf("total = %v, want 0.01", series[1].Total)
	}
	if series[0].Date != "2024-05-15" || series[1].Date != "2024-05-16" {
		t.Errorf("dates = %q, %q", series[0].Date, series[1].Date)
	}
}

func TestSeriesValues(t *testing.T) {
	series := []DailyPoint{{Total: 1.5}, {Total: 2}, {Total: 0}}
	vals := seriesValues(series)
	want := []float64{1.5, 2, 0}
	if len(vals) != len(want) {
		t.Fatalf("len = %d, want %d", len(vals), len(want))
	}
	for i := range vals {
		if vals[i] != want[i] {
			t.Errorf("vals[%d] = %v, want %v", i, vals[i], want[i])
		}
	}
}
