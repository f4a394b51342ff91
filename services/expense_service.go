package services

import (
	"context"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type ExpenseService struct{ db *gorm.DB }

func NewExpenseService(db *gorm.DB) *ExpenseService { return &ExpenseService{db: db} }

type ExpenseInput struct {
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Mood        string    `json:"mood"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

func (in *ExpenseInput) validate() error {
	if in.Amount <= 0 || !models.ValidExpenseCategory(in.Category) {
		return ErrInvalidInput
	}
	if in.Mood != "" && !models.ValidExpenseMood(in.Mood) {
		return ErrInvalidInput
	}
	return nil
}

func (s *ExpenseService) Create(ctx context.Context, userID uint, in ExpenseInput) (*models.Expense, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	e := &models.Expense{
		UserID:      userID,
		Amount:      in.Amount,
		Category:    in.Category,
		Mood:        in.Mood,
		Description: in.Description,
		Date:        in.Date,
	}
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, storeErr(err)
	}
	return e, nil
}

func (s *ExpenseService) Update(ctx context.Context, userID, id uint, in ExpenseInput) (*models.Expense, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var e models.Expense
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&e, id).Error; err != nil {
		return nil, storeErr(err)
	}

	e.Amount = in.Amount
	e.Category = in.Category
	e.Mood = in.Mood
	e.Description = in.Description
	if !in.Date.IsZero() {
		e.Date = in.Date
	}
	if err := s.db.WithContext(ctx).Save(&e).Error; err != nil {
		return nil, storeErr(err)
	}
	return &e, nil
}

// Delete soft-deletes; historical aggregates already exclude deleted
// rows via the gorm.DeletedAt clause.
func (s *ExpenseService) Delete(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Expense{}, id)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ExpenseService) rangeScope(ctx context.Context, userID uint, rng DateRange) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, rng.Start, rng.End)
}

func (s *ExpenseService) List(ctx context.Context, userID uint, rng DateRange, category string) ([]models.Expense, error) {
	q := s.rangeScope(ctx, userID, rng).Order("date DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []models.Expense
	if err := q.Find(&out).Error; err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

// Stats computes count, total, average and the category→sum breakdown
// for the range.
func (s *ExpenseService) Stats(ctx context.Context, userID uint, rng DateRange) (DomainStats, error) {
	stats := DomainStats{Breakdown: map[string]float64{}}

	var rows []struct {
		Category string
		Total    float64
		Count    int64
	}
	err := s.rangeScope(ctx, userID, rng).
		Select("category, SUM(amount) AS total, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return stats, storeErr(err)
	}

	for _, r := range rows {
		stats.Count += r.Count
		stats.Total += r.Total
		stats.Breakdown[r.Category] = round2(r.Total)
	}
	finishStats(&stats)
	return stats, nil
}

// DailySeries returns one (date, sum, count) point per day that has at
// least one expense, ordered chronologically.
func (s *ExpenseService) DailySeries(ctx context.Context, userID uint, rng DateRange) ([]DailyPoint, error) {
	var rows []dailyRow
	err := s.rangeScope(ctx, userID, rng).
		Select("DATE(date) AS day, SUM(amount) AS total, COUNT(*) AS count").
		Group("DATE(date)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return toDailySeries(rows), nil
}
