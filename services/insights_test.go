package services

import "testing"

func hasInsight(insights []Insight, title string) bool {
	for _, i := range insights {
		if i.Title == title {
			return true
		}
	}
	return false
}

func TestGenerateInsightsRules(t *testing.T) {
	tests := []struct {
		name    string
		in      InsightInput
		want    []string
		notWant []string
	}{
		{
			name: "over budget",
			in:   InsightInput{HasBudget: true, Budget: BudgetSummary{UsagePct: 95}},
			want: []string{"Budget Alert"},
		},
		{
			name: "well under budget",
			in:   InsightInput{HasBudget: true, Budget: BudgetSummary{UsagePct: 30}},
			want: []string{"Great Budgeting"},
		},
		{
			name:    "no budget set fires neither budget rule",
			in:      InsightInput{HasBudget: false, Budget: BudgetSummary{UsagePct: 0}},
			notWant: []string{"Budget Alert", "Great Budgeting"},
		},
		{
			name: "long streak",
			in:   InsightInput{Streak: 7},
			want: []string{"Streak Master"},
		},
		{
			name:    "short streak",
			in:      InsightInput{Streak: 6},
			notWant: []string{"Streak Master"},
		},
		{
			name: "dominant category",
			in: InsightInput{
				TotalSpent:     100,
				CategoryTotals: map[string]float64{"food": 45, "bills": 55},
			},
			want: []string{"Spending Pattern"},
		},
		{
			name: "even spread",
			in: InsightInput{
				TotalSpent:     100,
				CategoryTotals: map[string]float64{"food": 40, "bills": 35, "transport": 25},
			},
			notWant: []string{"Spending Pattern"},
		},
	}

	for _, tc := range tests {
		got := GenerateInsights(tc.in)
		for _, title := range tc.want {
			if !hasInsight(got, title) {
				t.Errorf("%s: missing insight %q in %v", tc.name, title, got)
			}
		}
		for _, title := range tc.notWant {
			if hasInsight(got, title) {
				t.Errorf("%s: unexpected insight %q", tc.name, title)
			}
		}
	}
}

func TestGenerateInsightsRulesAreIndependent(t *testing.T) {
	// multiple rules may fire from one input
	got := GenerateInsights(InsightInput{
		HasBudget:      true,
		Budget:         BudgetSummary{UsagePct: 95},
		Streak:         10,
		TotalSpent:     100,
		CategoryTotals: map[string]float64{"food": 60},
	})
	for _, title := range []string{"Budget Alert", "Streak Master", "Spending Pattern"} {
		if !hasInsight(got, title) {
			t.Errorf("missing %q when all conditions hold", title)
		}
	}
}

func TestGenerateInsightsDominantCategoryIsDeterministic(t *testing.T) {
	in := InsightInput{
		TotalSpent:     100,
		CategoryTotals: map[string]float64{"transport": 45, "food": 45, "other": 10},
	}

	// two categories tie above the threshold; the pick must not depend
	// on map iteration order
	want := "45% of your spending goes to food."
	for i := 0; i < 20; i++ {
		got := GenerateInsights(in)
		if len(got) != 1 || got[0].Message != want {
			t.Fatalf("run %d: got %v, want single insight %q", i, got, want)
		}
	}

	// with distinct shares the largest wins
	got := GenerateInsights(InsightInput{
		TotalSpent:     100,
		CategoryTotals: map[string]float64{"food": 41, "bills": 55},
	})
	if len(got) != 1 || got[0].Message != "55% of your spending goes to bills." {
		t.Fatalf("got %v, want the bills insight", got)
	}
}

func TestGenerateInsightsEmptyInput(t *testing.T) {
	if got := GenerateInsights(InsightInput{}); len(got) != 0 {
		t.Errorf("empty input produced %v", got)
	}
}
