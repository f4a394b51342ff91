package services

import (
	"context"
	"errors"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type HealthService struct{ db *gorm.DB }

func NewHealthService(db *gorm.DB) *HealthService { return &HealthService{db: db} }

// ---------- metrics ----------

type HealthMetricInput struct {
	Height        float64   `json:"height"`
	Weight        float64   `json:"weight"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	ActivityLevel string    `json:"activity_level"`
	Date          time.Time `json:"date"`
}

// MetricView is a HealthMetric with its derived fields attached.
type MetricView struct {
	models.HealthMetric
	BMI               float64  `json:"bmi"`
	BMICategory       string   `json:"bmi_category"`
	DailyCalorieNeeds *float64 `json:"daily_calorie_needs"`
}

func (s *HealthService) AddMetric(ctx context.Context, userID uint, in HealthMetricInput) (*MetricView, error) {
	if _, err := utils.CalculateBMI(in.Height, in.Weight); err != nil {
		return nil, ErrInvalidInput
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	m := &models.HealthMetric{
		UserID:        userID,
		Height:        in.Height,
		Weight:        in.Weight,
		Age:           in.Age,
		Gender:        in.Gender,
		ActivityLevel: in.ActivityLevel,
		Date:          in.Date,
	}
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, storeErr(err)
	}
	return metricView(m), nil
}

func (s *HealthService) UpdateMetric(ctx context.Context, userID, id uint, in HealthMetricInput) (*MetricView, error) {
	if _, err := utils.CalculateBMI(in.Height, in.Weight); err != nil {
		return nil, ErrInvalidInput
	}

	var m models.HealthMetric
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&m, id).Error; err != nil {
		return nil, storeErr(err)
	}

	m.Height = in.Height
	m.Weight = in.Weight
	m.Age = in.Age
	m.Gender = in.Gender
	m.ActivityLevel = in.ActivityLevel
	if !in.Date.IsZero() {
		m.Date = in.Date
	}
	if err := s.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, storeErr(err)
	}
	return metricView(&m), nil
}

func metricView(m *models.HealthMetric) *MetricView {
	bmi, _ := utils.CalculateBMI(m.Height, m.Weight)
	return &MetricView{
		HealthMetric:      *m,
		BMI:               bmi,
		BMICategory:       utils.BMICategory(bmi),
		DailyCalorieNeeds: utils.DailyCalorieNeeds(m.Height, m.Weight, m.Age, m.Gender, m.ActivityLevel),
	}
}

// LatestMetric returns nil (no error) when the user has never logged one.
func (s *HealthService) LatestMetric(ctx context.Context, userID uint) (*MetricView, error) {
	var m models.HealthMetric
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storeErr(err)
	}
	return metricView(&m), nil
}

func (s *HealthService) MetricHistory(ctx context.Context, userID uint, rng DateRange) ([]MetricView, error) {
	var rows []models.HealthMetric
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, rng.Start, rng.End).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storeErr(err)
	}

	out := make([]MetricView, 0, len(rows))
	for i := range rows {
		out = append(out, *metricView(&rows[i]))
	}
	return out, nil
}

// ---------- water ----------

func (s *HealthService) AddWater(ctx context.Context, userID uint, amountMl float64, date time.Time) (*models.WaterIntake, error) {
	if amountMl < 50 || amountMl > 2000 {
		return nil, ErrInvalidInput
	}
	if date.IsZero() {
		date = time.Now()
	}

	w := &models.WaterIntake{UserID: userID, Amount: amountMl, Date: date}
	if err := s.db.WithContext(ctx).Create(w).Error; err != nil {
		return nil, storeErr(err)
	}
	return w, nil
}

func (s *HealthService) UpdateWater(ctx context.Context, userID, id uint, amountMl float64, date time.Time) (*models.WaterIntake, error) {
	if amountMl < 50 || amountMl > 2000 {
		return nil, ErrInvalidInput
	}

	var w models.WaterIntake
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&w, id).Error; err != nil {
		return nil, storeErr(err)
	}

	w.Amount = amountMl
	if !date.IsZero() {
		w.Date = date
	}
	if err := s.db.WithContext(ctx).Save(&w).Error; err != nil {
		return nil, storeErr(err)
	}
	return &w, nil
}

// TodayWater sums today's entries.
func (s *HealthService) TodayWater(ctx context.Context, userID uint, now time.Time) (float64, error) {
	start := dayStart(now)
	var total float64
	err := s.db.WithContext(ctx).
		Model(&models.WaterIntake{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, start.AddDate(0, 0, 1)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, storeErr(err)
	}
	return total, nil
}

func (s *HealthService) WaterDailySeries(ctx context.Context, userID uint, rng DateRange) ([]DailyPoint, error) {
	var rows []dailyRow
	err := s.db.WithContext(ctx).
		Model(&models.WaterIntake{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, rng.Start, rng.End).
		Select("DATE(date) AS day, SUM(amount) AS total, COUNT(*) AS count").
		Group("DATE(date)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return toDailySeries(rows), nil
}

// ---------- exercise ----------

// kcal burned per minute by type and intensity; used when the caller
// does not supply calories.
var exerciseBurnRates = map[string]map[string]float64{
	"running":  {"low": 8, "moderate": 11, "high": 14},
	"cycling":  {"low": 6, "moderate": 8, "high": 12},
	"swimming": {"low": 7, "moderate": 10, "high": 13},
	"walking":  {"low": 3, "moderate": 4, "high": 5},
	"yoga":     {"low": 2, "moderate": 3, "high": 4},
	"strength": {"low": 4, "moderate": 6, "high": 8},
	"other":    {"low": 4, "moderate": 6, "high": 8},
}

func EstimateCaloriesBurned(exerciseType, intensity string, durationMin float64) float64 {
	rates, ok := exerciseBurnRates[exerciseType]
	if !ok {
		rates = exerciseBurnRates["other"]
	}
	rate, ok := rates[intensity]
	if !ok {
		rate = rates["moderate"]
	}
	return round2(rate * durationMin)
}

type ExerciseInput struct {
	Type           string    `json:"type"`
	Duration       float64   `json:"duration"`
	CaloriesBurned float64   `json:"calories_burned"`
	Intensity      string    `json:"intensity"`
	Date           time.Time `json:"date"`
}

func (s *HealthService) AddExercise(ctx context.Context, userID uint, in ExerciseInput) (*models.Exercise, error) {
	if in.Type == "" || in.Duration < 1 || in.Duration > 600 {
		return nil, ErrInvalidInput
	}
	if in.Intensity == "" {
		in.Intensity = "moderate"
	}
	if in.CaloriesBurned <= 0 {
		in.CaloriesBurned = EstimateCaloriesBurned(in.Type, in.Intensity, in.Duration)
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	e := &models.Exercise{
		UserID:         userID,
		Type:           in.Type,
		Duration:       in.Duration,
		CaloriesBurned: in.CaloriesBurned,
		Intensity:      in.Intensity,
		Date:           in.Date,
	}
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, storeErr(err)
	}
	return e, nil
}

func (s *HealthService) UpdateExercise(ctx context.Context, userID, id uint, in ExerciseInput) (*models.Exercise, error) {
	if in.Type == "" || in.Duration < 1 || in.Duration > 600 {
		return nil, ErrInvalidInput
	}
	if in.Intensity == "" {
		in.Intensity = "moderate"
	}
	if in.CaloriesBurned <= 0 {
		in.CaloriesBurned = EstimateCaloriesBurned(in.Type, in.Intensity, in.Duration)
	}

	var e models.Exercise
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&e, id).Error; err != nil {
		return nil, storeErr(err)
	}

	e.Type = in.Type
	e.Duration = in.Duration
	e.CaloriesBurned = in.CaloriesBurned
	e.Intensity = in.Intensity
	if !in.Date.IsZero() {
		e.Date = in.Date
	}
	if err := s.db.WithContext(ctx).Save(&e).Error; err != nil {
		return nil, storeErr(err)
	}
	return &e, nil
}

// WeeklyExerciseMinutes sums the rolling last 7 days.
func (s *HealthService) WeeklyExerciseMinutes(ctx context.Context, userID uint, now time.Time) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).
		Model(&models.Exercise{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, now.AddDate(0, 0, -7), now).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, storeErr(err)
	}
	return total, nil
}

type ExerciseStats struct {
	Sessions      int64              `json:"sessions"`
	TotalMinutes  float64            `json:"total_minutes"`
	TotalCalories float64            `json:"total_calories"`
	MinutesByType map[string]float64 `json:"minutes_by_type"`
}

func (s *HealthService) ExerciseStats(ctx context.Context, userID uint, rng DateRange) (ExerciseStats, error) {
	stats := ExerciseStats{MinutesByType: map[string]float64{}}

	var rows []struct {
		Type     string
		Minutes  float64
		Calories float64
		Count    int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Exercise{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, rng.Start, rng.End).
		Select("type, SUM(duration) AS minutes, SUM(calories_burned) AS calories, COUNT(*) AS count").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return stats, storeErr(err)
	}

	for _, r := range rows {
		stats.Sessions += r.Count
		stats.TotalMinutes += r.Minutes
		stats.TotalCalories += r.Calories
		stats.MinutesByType[r.Type] = r.Minutes
	}
	stats.TotalCalories = round2(stats.TotalCalories)
	return stats, nil
}
