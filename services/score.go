package services

import "math"

// Component caps and targets are domain constants, not policy.
const (
	bmiComponentMax      = 40
	hydrationMax         = 30
	exerciseMax          = 30
	dailyWaterTargetMl   = 2000
	weeklyExerciseTarget = 150 // minutes
)

type HealthScore struct {
	Total              int    `json:"total"`
	BMIComponent       int    `json:"bmi_component"`
	HydrationComponent int    `json:"hydration_component"`
	ExerciseComponent  int    `json:"exercise_component"`
	Rating             string `json:"rating"`
}

// ComputeHealthScore sums three capped components into a 0-100 score.
func ComputeHealthScore(bmiCategory string, todayWaterMl, weeklyExerciseMin float64) HealthScore {
	s := HealthScore{}

	switch bmiCategory {
	case "normal":
		s.BMIComponent = bmiComponentMax
	case "overweight", "underweight":
		s.BMIComponent = 25
	case "obese":
		s.BMIComponent = 10
	}

	if todayWaterMl > 0 {
		s.HydrationComponent = int(math.Floor(todayWaterMl / dailyWaterTargetMl * hydrationMax))
		if s.HydrationComponent > hydrationMax {
			s.HydrationComponent = hydrationMax
		}
	}

	if weeklyExerciseMin > 0 {
		s.ExerciseComponent = int(math.Floor(weeklyExerciseMin / weeklyExerciseTarget * exerciseMax))
		if s.ExerciseComponent > exerciseMax {
			s.ExerciseComponent = exerciseMax
		}
	}

	s.Total = s.BMIComponent + s.HydrationComponent + s.ExerciseComponent

	switch {
	case s.Total >= 80:
		s.Rating = "excellent"
	case s.Total >= 60:
		s.Rating = "good"
	case s.Total >= 40:
		s.Rating = "fair"
	default:
		s.Rating = "needs_improvement"
	}
	return s
}

type BudgetSummary struct {
	Limit     float64 `json:"limit"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"` // may be negative
	UsagePct  float64 `json:"usage_pct"`
	Status    string  `json:"status"` // critical|warning|good|excellent
}

// BudgetStatus classifies spend against the monthly limit. The bands
// partition the usage line at 50/75/90 with no gaps or overlaps.
func BudgetStatus(spent, limit float64) BudgetSummary {
	b := BudgetSummary{Limit: limit, Spent: round2(spent), Remaining: round2(limit - spent)}
	if limit > 0 {
		b.UsagePct = round2(spent / limit * 100)
	}

	switch {
	case b.UsagePct > 90:
		b.Status = "critical"
	case b.UsagePct > 75:
		b.Status = "warning"
	case b.UsagePct < 50:
		b.Status = "excellent"
	default:
		b.Status = "good"
	}
	return b
}

type CalorieSummary struct {
	AvgDaily   float64 `json:"avg_daily"`
	Goal       float64 `json:"goal"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"` // low|good|high
}

func CalorieStatus(avgDaily, goal float64) CalorieSummary {
	c := CalorieSummary{AvgDaily: round2(avgDaily), Goal: goal}
	if goal > 0 {
		c.Percentage = round2(avgDaily / goal * 100)
	}
	switch {
	case c.Percentage < 80:
		c.Status = "low"
	case c.Percentage > 120:
		c.Status = "high"
	default:
		c.Status = "good"
	}
	return c
}
