package services

import "fmt"

type Insight struct {
	Type     string `json:"type"`     // warning|positive|achievement|info
	Category string `json:"category"` // budget|streak|spending
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"` // high|medium|low
}

type InsightInput struct {
	Budget         BudgetSummary
	HasBudget      bool
	Streak         int
	TotalSpent     float64
	CategoryTotals map[string]float64
}

// GenerateInsights evaluates the rule table. Rules are independent;
// every matching rule fires and callers treat the result as unordered.
func GenerateInsights(in InsightInput) []Insight {
	var out []Insight

	if in.HasBudget && in.Budget.UsagePct > 90 {
		out = append(out, Insight{
			Type:     "warning",
			Category: "budget",
			Title:    "Budget Alert",
			Message:  fmt.Sprintf("You've used %.0f%% of your monthly budget.", in.Budget.UsagePct),
			Priority: "high",
		})
	}

	if in.HasBudget && in.Budget.UsagePct < 50 {
		out = append(out, Insight{
			Type:     "positive",
			Category: "budget",
			Title:    "Great Budgeting",
			Message:  "You're well under your monthly limit. Keep it up!",
			Priority: "low",
		})
	}

	if in.Streak >= 7 {
		out = append(out, Insight{
			Type:     "achievement",
			Category: "streak",
			Title:    "Streak Master",
			Message:  fmt.Sprintf("%d days of consistent logging. Impressive!", in.Streak),
			Priority: "medium",
		})
	}

	if in.TotalSpent > 0 {
		// largest share wins; name order breaks exact ties so the
		// insight is deterministic
		var topCategory string
		var topTotal float64
		for category, total := range in.CategoryTotals {
			if total > topTotal || (total == topTotal && topCategory != "" && category < topCategory) {
				topCategory, topTotal = category, total
			}
		}
		if topTotal/in.TotalSpent > 0.4 {
			out = append(out, Insight{
				Type:     "info",
				Category: "spending",
				Title:    "Spending Pattern",
				Message:  fmt.Sprintf("%.0f%% of your spending goes to %s.", topTotal/in.TotalSpent*100, topCategory),
				Priority: "medium",
			})
		}
	}

	return out
}

// ExpenseRecommendations turns budget state and trend into plain-text
// suggestions for the expense analytics payload.
func ExpenseRecommendations(budget BudgetSummary, hasBudget bool, trend TrendResult) []string {
	var recs []string

	if hasBudget {
		switch budget.Status {
		case "critical":
			recs = append(recs, "You are over 90% of your monthly limit. Pause non-essential spending until next month.")
		case "warning":
			recs = append(recs, "Spending is above 75% of your limit with time left in the month. Review upcoming purchases.")
		case "excellent":
			recs = append(recs, "Spending is well controlled. Consider moving the surplus into savings.")
		}
	}

	if trend.Direction == TrendIncreasing {
		recs = append(recs, fmt.Sprintf("Your spending is trending up (%.0f%% vs. the start of the period).", trend.ChangePct))
	}

	return recs
}

func MealRecommendations(cal CalorieSummary, avgProtein, avgFiber float64) []string {
	var recs []string

	switch cal.Status {
	case "low":
		recs = append(recs, "Average intake is under 80% of your daily needs. Add a balanced snack or larger portions.")
	case "high":
		recs = append(recs, "Average intake exceeds 120% of your daily needs. Watch portion sizes and sugary drinks.")
	}
	if avgProtein > 0 && avgProtein < 50 {
		recs = append(recs, "Protein intake looks low. Aim for a protein source with every meal.")
	}
	if avgFiber > 0 && avgFiber < 20 {
		recs = append(recs, "Fiber intake looks low. More vegetables, legumes and whole grains would help.")
	}

	return recs
}

func HealthRecommendations(score *HealthScore, todayWaterMl, weeklyExerciseMin float64) []string {
	var recs []string

	if score != nil && score.BMIComponent < bmiComponentMax {
		recs = append(recs, "Your BMI is outside the normal range. Small, steady changes to diet and activity work best.")
	}
	if todayWaterMl < dailyWaterTargetMl {
		recs = append(recs, fmt.Sprintf("You've logged %.0f ml of water today. Target is %d ml.", todayWaterMl, dailyWaterTargetMl))
	}
	if weeklyExerciseMin < weeklyExerciseTarget {
		recs = append(recs, fmt.Sprintf("You're at %.0f of %d weekly exercise minutes. A brisk walk counts.", weeklyExerciseMin, weeklyExerciseTarget))
	}

	return recs
}
