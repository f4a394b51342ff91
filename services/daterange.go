package services

import "time"

// DateRange is a half-open [Start, End) window.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// ResolveRange maps a named period onto concrete boundaries anchored at
// now. Current windows are rolling/partial (month = 1st through now);
// previous windows are the complete prior period (previous month = the
// full prior calendar month). The asymmetry is deliberate: it is what
// makes period-over-period comparison meaningful.
func ResolveRange(period string, previous bool, now time.Time) DateRange {
	switch period {
	case "week":
		if previous {
			return DateRange{Start: now.AddDate(0, 0, -14), End: now.AddDate(0, 0, -7)}
		}
		return DateRange{Start: now.AddDate(0, 0, -7), End: now}
	case "quarter":
		qStart := time.Date(now.Year(), now.Month()-3, 1, 0, 0, 0, 0, now.Location())
		if previous {
			return DateRange{
				Start: time.Date(now.Year(), now.Month()-6, 1, 0, 0, 0, 0, now.Location()),
				End:   qStart,
			}
		}
		return DateRange{Start: qStart, End: now}
	case "year":
		yStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		if previous {
			return DateRange{
				Start: time.Date(now.Year()-1, 1, 1, 0, 0, 0, 0, now.Location()),
				End:   yStart,
			}
		}
		return DateRange{Start: yStart, End: now}
	default: // "month" and anything unrecognized
		mStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		if previous {
			return DateRange{
				Start: time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location()),
				End:   mStart,
			}
		}
		return DateRange{Start: mStart, End: now}
	}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
