package services

import (
	"testing"
	"time"

	"backend/models"
)

func TestLevelForCoins(t *testing.T) {
	tests := []struct {
		coins, level int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{999, 10},
		{1000, 11},
	}
	for _, tc := range tests {
		if got := models.LevelForCoins(tc.coins); got != tc.level {
			t.Errorf("LevelForCoins(%d) = %d, want %d", tc.coins, got, tc.level)
		}
	}
}

func TestLevelInvariantIndependentOfBatching(t *testing.T) {
	// same total awarded in different batches must land on the same level
	batchings := [][]int{
		{520},
		{100, 100, 100, 100, 120},
		{1, 519},
		{260, 260},
	}
	for _, batches := range batchings {
		coins := 0
		for _, b := range batches {
			coins += b
		}
		if got := models.LevelForCoins(coins); got != 6 {
			t.Errorf("batches %v: level = %d, want 6", batches, got)
		}
	}
}

func TestMilestoneBadgesBetween(t *testing.T) {
	tests := []struct {
		name       string
		prev, next int
		want       []int
	}{
		{"no crossing", 1, 4, nil},
		{"single", 4, 5, []int{5}},
		{"skip several", 1, 30, []int{5, 10, 25}},
		{"everything", 0, 150, []int{5, 10, 25, 50, 100}},
		{"already past", 10, 20, nil},
		{"no move", 25, 25, nil},
	}
	for _, tc := range tests {
		got := milestoneBadgesBetween(tc.prev, tc.next)
		if len(got) != len(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
				break
			}
		}
	}
}

func TestMilestoneRarity(t *testing.T) {
	tests := []struct {
		milestone int
		rarity    string
	}{
		{5, "rare"},
		{10, "rare"},
		{25, "epic"},
		{50, "legendary"},
		{100, "legendary"},
	}
	for _, tc := range tests {
		if got := milestoneRarity(tc.milestone); got != tc.rarity {
			t.Errorf("milestone %d: rarity = %q, want %q", tc.milestone, got, tc.rarity)
		}
	}
}

func TestCapProgress(t *testing.T) {
	tests := []struct {
		current, delta, target, want float64
	}{
		{90, 20, 100, 100}, // capped, not 110
		{90, 10, 100, 100},
		{0, 5, 100, 5},
		{50, 25, 100, 75},
	}
	for _, tc := range tests {
		if got := capProgress(tc.current, tc.delta, tc.target); got != tc.want {
			t.Errorf("capProgress(%v, %v, %v) = %v, want %v", tc.current, tc.delta, tc.target, got, tc.want)
		}
	}
}

func TestDailyStreakPolicy(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	today := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	tests := []struct {
		name      string
		current   int
		lastDay   *time.Time
		increment bool
		next      int
		moved     bool
	}{
		{"first ever", 0, nil, true, 1, true},
		{"new day", 3, &yesterday, true, 4, true},
		{"same day repeat is a no-op", 3, &today, true, 3, false},
		{"reset", 5, &yesterday, false, 0, true},
		{"reset when already zero", 0, nil, false, 0, false},
	}
	for _, tc := range tests {
		next, moved := DailyStreakPolicy(tc.current, tc.lastDay, now, tc.increment)
		if next != tc.next || moved != tc.moved {
			t.Errorf("%s: got (%d, %v), want (%d, %v)", tc.name, next, moved, tc.next, tc.moved)
		}
	}
}

func TestChallengeActiveAt(t *testing.T) {
	now := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	end := now.AddDate(0, 0, 7)

	tests := []struct {
		name string
		ch   models.Challenge
		want bool
	}{
		{"open ended", models.Challenge{IsActive: true, StartDate: now.AddDate(0, 0, -1)}, true},
		{"inside window", models.Challenge{IsActive: true, StartDate: now.AddDate(0, 0, -1), EndDate: &end}, true},
		{"not started", models.Challenge{IsActive: true, StartDate: now.AddDate(0, 0, 1)}, false},
		{"deactivated", models.Challenge{IsActive: false, StartDate: now.AddDate(0, 0, -1)}, false},
		{"ended", models.Challenge{IsActive: true, StartDate: now.AddDate(0, 0, -14), EndDate: &now}, false},
	}
	for _, tc := range tests {
		if got := tc.ch.ActiveAt(now); got != tc.want {
			t.Errorf("%s: ActiveAt = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEstimateCaloriesBurned(t *testing.T) {
	if got := EstimateCaloriesBurned("running", "high", 30); got != 420 {
		t.Errorf("running/high 30min = %v, want 420", got)
	}
	// unknown type and intensity fall back to other/moderate
	if got := EstimateCaloriesBurned("parkour", "extreme", 10); got != 60 {
		t.Errorf("fallback estimate = %v, want 60", got)
	}
}
