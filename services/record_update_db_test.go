package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"backend/models"
)

func TestMealUpdateScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	ctx := context.Background()

	meal, err := svc.Create(ctx, 1, MealInput{
		Name: "Oats", Calories: 350, MealType: "breakfast", Protein: 12,
		Date: time.Date(2024, 5, 15, 8, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	in := MealInput{Name: "Oats with honey", Calories: 420, MealType: "breakfast", Protein: 12}
	if _, err := svc.Update(ctx, 2, meal.ID, in); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other user's update err = %v, want ErrNotFound", err)
	}

	updated, err := svc.Update(ctx, 1, meal.ID, in)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Calories != 420 || updated.Name != "Oats with honey" {
		t.Errorf("updated meal = %+v, want new calories and name", updated)
	}
	if updated.Date.IsZero() || !updated.Date.Equal(meal.Date) {
		t.Errorf("date changed to %v without an input date", updated.Date)
	}

	var stored models.Meal
	if err := db.First(&stored, meal.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Calories != 420 {
		t.Errorf("stored calories = %v, want 420", stored.Calories)
	}
}

func TestMealUpdateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	ctx := context.Background()

	meal, err := svc.Create(ctx, 1, MealInput{Name: "Soup", Calories: 200, MealType: "lunch"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(ctx, 1, meal.ID, MealInput{Calories: 0, MealType: "lunch"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero calories err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Update(ctx, 1, meal.ID, MealInput{Calories: 200, MealType: "brunch"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("bad meal type err = %v, want ErrInvalidInput", err)
	}
}

func TestWaterUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthService(db)
	ctx := context.Background()

	entry, err := svc.AddWater(ctx, 1, 500, time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.UpdateWater(ctx, 1, entry.ID, 10, time.Time{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("below range err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.UpdateWater(ctx, 2, entry.ID, 700, time.Time{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("other user's update err = %v, want ErrNotFound", err)
	}

	updated, err := svc.UpdateWater(ctx, 1, entry.ID, 700, time.Time{})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Amount != 700 {
		t.Errorf("amount = %v, want 700", updated.Amount)
	}
}

func TestExerciseUpdateRecomputesCalories(t *testing.T) {
	db := newTestDB(t)
	svc := NewHealthService(db)
	ctx := context.Background()

	session, err := svc.AddExercise(ctx, 1, ExerciseInput{Type: "running", Duration: 30, Intensity: "high"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateExercise(ctx, 1, session.ID, ExerciseInput{Type: "walking", Duration: 60, Intensity: "moderate"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CaloriesBurned != 240 { // walking moderate 4 kcal/min
		t.Errorf("calories = %v, want 240", updated.CaloriesBurned)
	}
}
