package services

import "testing"

func TestComputeHealthScore(t *testing.T) {
	tests := []struct {
		name        string
		bmiCategory string
		waterMl     float64
		exerciseMin float64
		total       int
		rating      string
	}{
		{"all maxed", "normal", 2000, 150, 100, "excellent"},
		{"over target still capped", "normal", 5000, 500, 100, "excellent"},
		{"nothing logged", "obese", 0, 0, 10, "needs_improvement"},
		{"overweight halfway", "overweight", 1000, 75, 55, "fair"},
		{"underweight scores like overweight", "underweight", 1000, 75, 55, "fair"},
		{"unknown category contributes zero", "", 2000, 150, 60, "good"},
	}
	for _, tc := range tests {
		got := ComputeHealthScore(tc.bmiCategory, tc.waterMl, tc.exerciseMin)
		if got.Total != tc.total {
			t.Errorf("%s: total = %d, want %d", tc.name, got.Total, tc.total)
		}
		if got.Rating != tc.rating {
			t.Errorf("%s: rating = %q, want %q", tc.name, got.Rating, tc.rating)
		}
		if got.Total < 0 || got.Total > 100 {
			t.Errorf("%s: total %d out of [0,100]", tc.name, got.Total)
		}
	}
}

func TestComputeHealthScoreComponentFloors(t *testing.T) {
	// 999 ml of 2000 → floor(999/2000*30) = 14, not 15
	got := ComputeHealthScore("normal", 999, 0)
	if got.HydrationComponent != 14 {
		t.Errorf("hydration component = %d, want 14", got.HydrationComponent)
	}
	// 149 of 150 min → floor(149/150*30) = 29
	got = ComputeHealthScore("normal", 0, 149)
	if got.ExerciseComponent != 29 {
		t.Errorf("exercise component = %d, want 29", got.ExerciseComponent)
	}
}

func TestBudgetStatusPartition(t *testing.T) {
	// the bands must partition the usage line at 50/75/90 exactly
	tests := []struct {
		spent  float64
		status string
	}{
		{0, "excellent"},
		{49.9, "excellent"},
		{50, "good"},
		{75, "good"},
		{75.1, "warning"},
		{90, "warning"},
		{90.1, "critical"},
		{150, "critical"},
	}
	for _, tc := range tests {
		got := BudgetStatus(tc.spent, 100)
		if got.Status != tc.status {
			t.Errorf("spent %.1f/100: status = %q, want %q", tc.spent, got.Status, tc.status)
		}
	}
}

func TestBudgetStatusRemainingMayGoNegative(t *testing.T) {
	got := BudgetStatus(1200, 1000)
	if got.Remaining != -200 {
		t.Errorf("remaining = %v, want -200", got.Remaining)
	}
	if got.UsagePct != 120 {
		t.Errorf("usage = %v, want 120", got.UsagePct)
	}
}

func TestBudgetStatusZeroLimit(t *testing.T) {
	got := BudgetStatus(500, 0)
	if got.UsagePct != 0 {
		t.Errorf("usage with no limit = %v, want 0", got.UsagePct)
	}
}

func TestCalorieStatus(t *testing.T) {
	tests := []struct {
		avg, goal float64
		status    string
	}{
		{1500, 2000, "low"},      // 75%
		{1600, 2000, "good"},     // 80%
		{2400, 2000, "good"},     // 120%
		{2500, 2000, "high"},     // 125%
		{0, 2000, "low"},
	}
	for _, tc := range tests {
		got := CalorieStatus(tc.avg, tc.goal)
		if got.Status != tc.status {
			t.Errorf("%.0f/%.0f: status = %q, want %q", tc.avg, tc.goal, got.Status, tc.status)
		}
	}
}
