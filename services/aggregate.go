package services

import "time"

// DomainStats is the shared aggregate shape: count, sum, average and a
// key→sum breakdown. Average is 0 for empty record sets.
type DomainStats struct {
	Count     int64              `json:"count"`
	Total     float64            `json:"total"`
	Average   float64            `json:"average"`
	Breakdown map[string]float64 `json:"breakdown"`
}

// DailyPoint is one calendar day with at least one record. Days with
// no records are absent from the series, never zero-filled.
type DailyPoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

func finishStats(s *DomainStats) {
	if s.Count > 0 {
		s.Average = round2(s.Total / float64(s.Count))
	}
	s.Total = round2(s.Total)
}

// seriesValues extracts the per-day totals for trend analysis.
func seriesValues(series []DailyPoint) []float64 {
	vals := make([]float64, len(series))
	for i, p := range series {
		vals[i] = p.Total
	}
	return vals
}

// topDay returns the day with the maximum total; the first maximum
// wins on ties since the series is ordered chronologically.
func topDay(series []DailyPoint) *DailyPoint {
	var top *DailyPoint
	for i := range series {
		if top == nil || series[i].Total > top.Total {
			top = &series[i]
		}
	}
	return top
}

const dayFormat = "2006-01-02"

func formatDay(t time.Time) string { return t.Format(dayFormat) }

// dailyRow is the shape every per-day GROUP BY scan produces.
type dailyRow struct {
	Day   time.Time
	Total float64
	Count int64
}

func toDailySeries(rows []dailyRow) []DailyPoint {
	series := make([]DailyPoint, 0, len(rows))
	for _, r := range rows {
		series = append(series, DailyPoint{Date: formatDay(r.Day), Total: round2(r.Total), Count: r.Count})
	}
	return series
}
