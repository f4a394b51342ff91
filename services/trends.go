package services

import (
	"math"

	"backend/models"
)

const (
	TrendIncreasing       = "increasing"
	TrendDecreasing       = "decreasing"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

type TrendResult struct {
	Direction string  `json:"direction"`
	ChangePct float64 `json:"change_pct"`
}

// MovingAverage returns the sliding-window mean over consecutive
// entries; nil when the series is shorter than the window.
func MovingAverage(series []float64, window int) []float64 {
	if window <= 0 || len(series) < window {
		return nil
	}
	out := make([]float64, 0, len(series)-window+1)
	var sum float64
	for i, v := range series {
		sum += v
		if i >= window {
			sum -= series[i-window]
		}
		if i >= window-1 {
			out = append(out, round2(sum/float64(window)))
		}
	}
	return out
}

// TrendDirection compares the mean of the first half [0, n/2) against
// the remainder. More than ±5% change counts as a direction.
func TrendDirection(series []float64) TrendResult {
	if len(series) < 2 {
		return TrendResult{Direction: TrendInsufficientData}
	}

	mid := len(series) / 2
	firstMean := mean(series[:mid])
	secondMean := mean(series[mid:])

	if firstMean == 0 {
		if secondMean == 0 {
			return TrendResult{Direction: TrendStable}
		}
		return TrendResult{Direction: TrendIncreasing, ChangePct: 100}
	}

	change := (secondMean - firstMean) / firstMean * 100
	res := TrendResult{ChangePct: round2(change)}
	switch {
	case change > 5:
		res.Direction = TrendIncreasing
	case change < -5:
		res.Direction = TrendDecreasing
	default:
		res.Direction = TrendStable
	}
	return res
}

// ProjectNext fits value-vs-index by ordinary least squares and
// projects one step beyond the series, clamped at zero.
func ProjectNext(series []float64) float64 {
	n := len(series)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return math.Max(0, series[0])
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return math.Max(0, mean(series))
	}
	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn

	next := slope*fn + intercept
	return round2(math.Max(0, next))
}

// minAnomalySample is the smallest record count for which the
// mean+2σ threshold is meaningful.
const minAnomalySample = 10

// DetectAnomalousExpenses flags expenses whose amount exceeds
// mean + 2·stddev of the full amount distribution (population stddev).
func DetectAnomalousExpenses(expenses []models.Expense) []models.Expense {
	if len(expenses) < minAnomalySample {
		return nil
	}

	amounts := make([]float64, len(expenses))
	for i, e := range expenses {
		amounts[i] = e.Amount
	}
	m := mean(amounts)
	sd := stddev(amounts, m)
	threshold := m + 2*sd

	var out []models.Expense
	for _, e := range expenses {
		if e.Amount > threshold {
			out = append(out, e)
		}
	}
	return out
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// population stddev, not sample
func stddev(vals []float64, mean float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var ss float64
	for _, v := range vals {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(vals)))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
