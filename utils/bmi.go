package utils

import (
	"errors"
	"math"
	"strings"
)

// CalculateBMI expects height in centimeters and weight in kilograms.
// The result is rounded to one decimal.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*10) / 10, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25.0:
		return "normal"
	case bmi < 30.0:
		return "overweight"
	default:
		return "obese"
	}
}

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// DailyCalorieNeeds estimates maintenance calories via the
// Mifflin-St Jeor BMR scaled by the activity multiplier. Returns nil
// when age or gender is missing, since the formula needs both.
func DailyCalorieNeeds(heightCm, weightKg float64, age int, gender, activityLevel string) *float64 {
	if age <= 0 || gender == "" {
		return nil
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if strings.ToLower(gender) == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	mult, ok := activityMultipliers[strings.ToLower(activityLevel)]
	if !ok {
		mult = activityMultipliers["sedentary"]
	}

	needs := math.Round(bmr * mult)
	return &needs
}
