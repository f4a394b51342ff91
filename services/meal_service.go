package services

import (
	"context"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type MealService struct{ db *gorm.DB }

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

type MealInput struct {
	Name     string    `json:"name"`
	Calories float64   `json:"calories"`
	Category string    `json:"category"`
	MealType string    `json:"meal_type"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Fiber    float64   `json:"fiber"`
	Sugar    float64   `json:"sugar"`
	Date     time.Time `json:"date"`
}

func (in *MealInput) validate() error {
	if in.Calories < 1 || in.Calories > 5000 || !models.ValidMealType(in.MealType) {
		return ErrInvalidInput
	}
	if in.Protein < 0 || in.Carbs < 0 || in.Fat < 0 || in.Fiber < 0 || in.Sugar < 0 {
		return ErrInvalidInput
	}
	return nil
}

func (s *MealService) Create(ctx context.Context, userID uint, in MealInput) (*models.Meal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	m := &models.Meal{
		UserID:   userID,
		Name:     in.Name,
		Calories: in.Calories,
		Category: in.Category,
		MealType: in.MealType,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Fiber:    in.Fiber,
		Sugar:    in.Sugar,
		Date:     in.Date,
	}
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, storeErr(err)
	}
	return m, nil
}

func (s *MealService) Update(ctx context.Context, userID, id uint, in MealInput) (*models.Meal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var m models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&m, id).Error; err != nil {
		return nil, storeErr(err)
	}

	m.Name = in.Name
	m.Calories = in.Calories
	m.Category = in.Category
	m.MealType = in.MealType
	m.Protein = in.Protein
	m.Carbs = in.Carbs
	m.Fat = in.Fat
	m.Fiber = in.Fiber
	m.Sugar = in.Sugar
	if !in.Date.IsZero() {
		m.Date = in.Date
	}
	if err := s.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, storeErr(err)
	}
	return &m, nil
}

func (s *MealService) Delete(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Meal{}, id)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MealService) rangeScope(ctx context.Context, userID uint, rng DateRange) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, rng.Start, rng.End)
}

func (s *MealService) List(ctx context.Context, userID uint, rng DateRange, mealType string) ([]models.Meal, error) {
	q := s.rangeScope(ctx, userID, rng).Order("date DESC")
	if mealType != "" {
		q = q.Where("meal_type = ?", mealType)
	}
	var out []models.Meal
	if err := q.Find(&out).Error; err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

// Stats aggregates calories with a mealType→calories breakdown.
func (s *MealService) Stats(ctx context.Context, userID uint, rng DateRange) (DomainStats, error) {
	stats := DomainStats{Breakdown: map[string]float64{}}

	var rows []struct {
		MealType string
		Total    float64
		Count    int64
	}
	err := s.rangeScope(ctx, userID, rng).
		Select("meal_type, SUM(calories) AS total, COUNT(*) AS count").
		Group("meal_type").
		Scan(&rows).Error
	if err != nil {
		return stats, storeErr(err)
	}

	for _, r := range rows {
		stats.Count += r.Count
		stats.Total += r.Total
		stats.Breakdown[r.MealType] = round2(r.Total)
	}
	finishStats(&stats)
	return stats, nil
}

type NutritionTotals struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Fiber   float64 `json:"fiber"`
	Sugar   float64 `json:"sugar"`
}

// NutritionAverages returns per-logged-day macro averages for the range.
func (s *MealService) NutritionAverages(ctx context.Context, userID uint, rng DateRange) (NutritionTotals, error) {
	var row struct {
		Days    int64
		Protein float64
		Carbs   float64
		Fat     float64
		Fiber   float64
		Sugar   float64
	}
	err := s.rangeScope(ctx, userID, rng).
		Select("COUNT(DISTINCT DATE(date)) AS days, SUM(protein) AS protein, SUM(carbs) AS carbs, SUM(fat) AS fat, SUM(fiber) AS fiber, SUM(sugar) AS sugar").
		Scan(&row).Error
	if err != nil {
		return NutritionTotals{}, storeErr(err)
	}
	if row.Days == 0 {
		return NutritionTotals{}, nil
	}

	d := float64(row.Days)
	return NutritionTotals{
		Protein: round2(row.Protein / d),
		Carbs:   round2(row.Carbs / d),
		Fat:     round2(row.Fat / d),
		Fiber:   round2(row.Fiber / d),
		Sugar:   round2(row.Sugar / d),
	}, nil
}

// DailySeries returns per-day calorie totals, sparse and ordered.
func (s *MealService) DailySeries(ctx context.Context, userID uint, rng DateRange) ([]DailyPoint, error) {
	var rows []dailyRow
	err := s.rangeScope(ctx, userID, rng).
		Select("DATE(date) AS day, SUM(calories) AS total, COUNT(*) AS count").
		Group("DATE(date)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return toDailySeries(rows), nil
}
