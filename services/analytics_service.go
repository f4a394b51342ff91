package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type AnalyticsService struct {
	db       *gorm.DB
	expenses *ExpenseService
	meals    *MealService
	health   *HealthService
	now      func() time.Time
}

func NewAnalyticsService(db *gorm.DB, ex *ExpenseService, me *MealService, he *HealthService) *AnalyticsService {
	return &AnalyticsService{db: db, expenses: ex, meals: me, health: he, now: time.Now}
}

func (s *AnalyticsService) user(ctx context.Context, userID uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, userID).Error; err != nil {
		return nil, storeErr(err)
	}
	return &u, nil
}

// budget is always measured against the calendar month regardless of
// the requested period; the limit is monthly.
func (s *AnalyticsService) monthlyBudget(ctx context.Context, u *models.User) (BudgetSummary, error) {
	monthRange := ResolveRange("month", false, s.now())
	stats, err := s.expenses.Stats(ctx, u.ID, monthRange)
	if err != nil {
		return BudgetSummary{}, err
	}
	return BudgetStatus(stats.Total, u.MonthlyLimit), nil
}

// ---------- Overview ----------

type UserSnapshot struct {
	ID             uint    `json:"id"`
	FullName       string  `json:"full_name"`
	MonthlyLimit   float64 `json:"monthly_limit"`
	CurrentBalance float64 `json:"current_balance"`
	Coins          int     `json:"coins"`
	Level          int     `json:"level"`
	Streak         int     `json:"streak"`
}

type Overview struct {
	Range    DateRange    `json:"range"`
	User     UserSnapshot `json:"user"`
	Expenses DomainStats  `json:"expenses"`
	Meals    DomainStats  `json:"meals"`
	Health   struct {
		Score             *HealthScore `json:"score"`
		TodayWaterMl      float64      `json:"today_water_ml"`
		WeeklyExerciseMin float64      `json:"weekly_exercise_min"`
	} `json:"health"`
	SpendingTrend TrendResult `json:"spending_trend"`
	Insights      []Insight   `json:"insights"`
}

// Overview joins the per-domain aggregations for one response. The
// sub-queries are independent, so they run concurrently.
func (s *AnalyticsService) Overview(ctx context.Context, userID uint, period string) (*Overview, error) {
	u, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rng := ResolveRange(period, false, now)
	out := &Overview{Range: rng}
	out.User = UserSnapshot{
		ID:             u.ID,
		FullName:       u.FullName,
		MonthlyLimit:   u.MonthlyLimit,
		CurrentBalance: u.CurrentBalance,
		Coins:          u.Coins,
		Level:          u.Level(),
		Streak:         u.Streak,
	}

	var (
		wg            sync.WaitGroup
		errs          [5]error
		expenseSeries []DailyPoint
		latestMetric  *MetricView
	)
	wg.Add(5)
	go func() {
		defer wg.Done()
		out.Expenses, errs[0] = s.expenses.Stats(ctx, userID, rng)
	}()
	go func() {
		defer wg.Done()
		out.Meals, errs[1] = s.meals.Stats(ctx, userID, rng)
	}()
	go func() {
		defer wg.Done()
		expenseSeries, errs[2] = s.expenses.DailySeries(ctx, userID, rng)
	}()
	go func() {
		defer wg.Done()
		latestMetric, errs[3] = s.health.LatestMetric(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		var err error
		if out.Health.TodayWaterMl, err = s.health.TodayWater(ctx, userID, now); err != nil {
			errs[4] = err
			return
		}
		out.Health.WeeklyExerciseMin, errs[4] = s.health.WeeklyExerciseMinutes(ctx, userID, now)
	}()
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}

	if latestMetric != nil {
		score := ComputeHealthScore(latestMetric.BMICategory, out.Health.TodayWaterMl, out.Health.WeeklyExerciseMin)
		out.Health.Score = &score
	}

	out.SpendingTrend = TrendDirection(seriesValues(expenseSeries))

	budget, err := s.monthlyBudget(ctx, u)
	if err != nil {
		return nil, err
	}
	out.Insights = GenerateInsights(InsightInput{
		Budget:         budget,
		HasBudget:      u.MonthlyLimit > 0,
		Streak:         u.Streak,
		TotalSpent:     out.Expenses.Total,
		CategoryTotals: out.Expenses.Breakdown,
	})

	return out, nil
}

// ---------- Expense analytics ----------

type SpendingPatterns struct {
	Trend         TrendResult      `json:"trend"`
	MovingAverage []float64        `json:"moving_average"`
	Projection    float64          `json:"projection"`
	TopDay        *DailyPoint      `json:"top_day"`
	Anomalies     []models.Expense `json:"anomalies"`
}

type ExpenseAnalytics struct {
	Range           DateRange        `json:"range"`
	Current         DomainStats      `json:"current"`
	Previous        *DomainStats     `json:"previous,omitempty"`
	DailySeries     []DailyPoint     `json:"daily_series"`
	Patterns        SpendingPatterns `json:"patterns"`
	Budget          BudgetSummary    `json:"budget"`
	Recommendations []string         `json:"recommendations"`
}

func (s *AnalyticsService) ExpenseAnalytics(ctx context.Context, userID uint, period string, comparison bool) (*ExpenseAnalytics, error) {
	u, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rng := ResolveRange(period, false, now)
	out := &ExpenseAnalytics{Range: rng}

	if out.Current, err = s.expenses.Stats(ctx, userID, rng); err != nil {
		return nil, err
	}
	if comparison {
		prev, err := s.expenses.Stats(ctx, userID, ResolveRange(period, true, now))
		if err != nil {
			return nil, err
		}
		out.Previous = &prev
	}
	if out.DailySeries, err = s.expenses.DailySeries(ctx, userID, rng); err != nil {
		return nil, err
	}

	vals := seriesValues(out.DailySeries)
	out.Patterns.Trend = TrendDirection(vals)
	out.Patterns.MovingAverage = MovingAverage(vals, 7)
	out.Patterns.Projection = ProjectNext(vals)
	out.Patterns.TopDay = topDay(out.DailySeries)

	records, err := s.expenses.List(ctx, userID, rng, "")
	if err != nil {
		return nil, err
	}
	out.Patterns.Anomalies = DetectAnomalousExpenses(records)

	if out.Budget, err = s.monthlyBudget(ctx, u); err != nil {
		return nil, err
	}
	out.Recommendations = ExpenseRecommendations(out.Budget, u.MonthlyLimit > 0, out.Patterns.Trend)

	return out, nil
}

// ---------- Meal analytics ----------

type MealAnalytics struct {
	Range           DateRange       `json:"range"`
	Current         DomainStats     `json:"current"`
	Previous        *DomainStats    `json:"previous,omitempty"`
	DailySeries     []DailyPoint    `json:"daily_series"`
	Nutrition       NutritionTotals `json:"nutrition_daily_avg"`
	Calories        CalorieSummary  `json:"calories"`
	Recommendations []string        `json:"recommendations"`
}

const defaultCalorieGoal = 2000

func (s *AnalyticsService) MealAnalytics(ctx context.Context, userID uint, period string, comparison bool) (*MealAnalytics, error) {
	if _, err := s.user(ctx, userID); err != nil {
		return nil, err
	}

	now := s.now()
	rng := ResolveRange(period, false, now)
	out := &MealAnalytics{Range: rng}

	var err error
	if out.Current, err = s.meals.Stats(ctx, userID, rng); err != nil {
		return nil, err
	}
	if comparison {
		prev, err := s.meals.Stats(ctx, userID, ResolveRange(period, true, now))
		if err != nil {
			return nil, err
		}
		out.Previous = &prev
	}
	if out.DailySeries, err = s.meals.DailySeries(ctx, userID, rng); err != nil {
		return nil, err
	}
	if out.Nutrition, err = s.meals.NutritionAverages(ctx, userID, rng); err != nil {
		return nil, err
	}

	// average daily intake over logged days
	var avgDaily float64
	if n := len(out.DailySeries); n > 0 {
		avgDaily = out.Current.Total / float64(n)
	}

	goal := float64(defaultCalorieGoal)
	metric, err := s.health.LatestMetric(ctx, userID)
	if err != nil {
		return nil, err
	}
	if metric != nil && metric.DailyCalorieNeeds != nil {
		goal = *metric.DailyCalorieNeeds
	}
	out.Calories = CalorieStatus(avgDaily, goal)
	out.Recommendations = MealRecommendations(out.Calories, out.Nutrition.Protein, out.Nutrition.Fiber)

	return out, nil
}

// ---------- Health analytics ----------

type HealthAnalytics struct {
	Range   DateRange    `json:"range"`
	History []MetricView `json:"history"`
	Latest  *MetricView  `json:"latest"`
	Water   struct {
		TodayMl     float64      `json:"today_ml"`
		DailySeries []DailyPoint `json:"daily_series"`
	} `json:"water"`
	Exercise struct {
		ExerciseStats
		WeeklyMinutes float64 `json:"weekly_minutes"`
	} `json:"exercise"`
	WeightTrend     TrendResult  `json:"weight_trend"`
	Score           *HealthScore `json:"score"`
	Recommendations []string     `json:"recommendations"`
}

func (s *AnalyticsService) HealthAnalytics(ctx context.Context, userID uint, period string) (*HealthAnalytics, error) {
	if _, err := s.user(ctx, userID); err != nil {
		return nil, err
	}

	now := s.now()
	rng := ResolveRange(period, false, now)
	out := &HealthAnalytics{Range: rng}

	var err error
	if out.History, err = s.health.MetricHistory(ctx, userID, rng); err != nil {
		return nil, err
	}
	if out.Latest, err = s.health.LatestMetric(ctx, userID); err != nil {
		return nil, err
	}
	if out.Water.TodayMl, err = s.health.TodayWater(ctx, userID, now); err != nil {
		return nil, err
	}
	if out.Water.DailySeries, err = s.health.WaterDailySeries(ctx, userID, rng); err != nil {
		return nil, err
	}
	if out.Exercise.ExerciseStats, err = s.health.ExerciseStats(ctx, userID, rng); err != nil {
		return nil, err
	}
	if out.Exercise.WeeklyMinutes, err = s.health.WeeklyExerciseMinutes(ctx, userID, now); err != nil {
		return nil, err
	}

	weights := make([]float64, 0, len(out.History))
	for _, m := range out.History {
		weights = append(weights, m.Weight)
	}
	out.WeightTrend = TrendDirection(weights)

	if out.Latest != nil {
		score := ComputeHealthScore(out.Latest.BMICategory, out.Water.TodayMl, out.Exercise.WeeklyMinutes)
		out.Score = &score
	}
	out.Recommendations = HealthRecommendations(out.Score, out.Water.TodayMl, out.Exercise.WeeklyMinutes)

	return out, nil
}

// ---------- Weekly digest ----------

// SendWeeklySummary emails the user a plain-text digest of the last
// week, built from the same aggregates the overview uses.
func (s *AnalyticsService) SendWeeklySummary(ctx context.Context, userID uint) error {
	u, err := s.user(ctx, userID)
	if err != nil {
		return err
	}
	ov, err := s.Overview(ctx, userID, "week")
	if err != nil {
		return err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\nYour week at a glance:\n\n", u.FullName)
	fmt.Fprintf(&sb, "- Spent: %.2f across %d expenses\n", ov.Expenses.Total, ov.Expenses.Count)
	fmt.Fprintf(&sb, "- Meals logged: %d (%.0f kcal total)\n", ov.Meals.Count, ov.Meals.Total)
	fmt.Fprintf(&sb, "- Exercise: %.0f minutes\n", ov.Health.WeeklyExerciseMin)
	if ov.Health.Score != nil {
		fmt.Fprintf(&sb, "- Health score: %d (%s)\n", ov.Health.Score.Total, ov.Health.Score.Rating)
	}
	fmt.Fprintf(&sb, "- Streak: %d days, level %d with %d coins\n", ov.User.Streak, ov.User.Level, ov.User.Coins)
	for _, ins := range ov.Insights {
		fmt.Fprintf(&sb, "\n%s: %s", ins.Title, ins.Message)
	}

	return utils.SendWeeklySummaryEmail(u.Email, sb.String())
}
