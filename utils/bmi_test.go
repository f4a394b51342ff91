package utils

import "testing"

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
		wantErr  bool
	}{
		{"typical", 170, 70, 24.2, false},
		{"tall", 190, 80, 22.2, false},
		{"zero height", 0, 70, 0, true},
		{"negative weight", 170, -5, 0, true},
		{"implausible height", 300, 70, 0, true},
	}
	for _, tc := range tests {
		got, err := CalculateBMI(tc.heightCm, tc.weightKg)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got %v", tc.name, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: BMI = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{15.0, "underweight"},
		{18.4, "underweight"},
		{18.5, "normal"},
		{24.9, "normal"},
		{25.0, "overweight"},
		{29.9, "overweight"},
		{30.0, "obese"},
		{42.0, "obese"},
	}
	for _, tc := range tests {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestDailyCalorieNeeds(t *testing.T) {
	if got := DailyCalorieNeeds(170, 70, 0, "male", "moderate"); got != nil {
		t.Errorf("expected nil without age, got %v", *got)
	}
	if got := DailyCalorieNeeds(170, 70, 30, "", "moderate"); got != nil {
		t.Errorf("expected nil without gender, got %v", *got)
	}

	// 10*70 + 6.25*170 - 5*30 + 5 = 1617.5, sedentary *1.2 = 1941
	got := DailyCalorieNeeds(170, 70, 30, "male", "sedentary")
	if got == nil || *got != 1941 {
		t.Fatalf("male sedentary needs = %v, want 1941", got)
	}

	// female subtracts 161: 1612.5 - 161 = 1451.5, *1.55 = 2250
	got = DailyCalorieNeeds(170, 70, 30, "female", "moderate")
	if got == nil || *got != 2250 {
		t.Fatalf("female moderate needs = %v, want 2250", got)
	}

	// unknown activity level falls back to sedentary
	got = DailyCalorieNeeds(170, 70, 30, "male", "couch")
	if got == nil || *got != 1941 {
		t.Fatalf("fallback needs = %v, want 1941", got)
	}
}
