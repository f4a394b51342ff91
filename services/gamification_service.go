package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type GamificationService struct {
	db  *gorm.DB
	now func() time.Time
	// streak transitions are a product decision; the default policy
	// bumps at most once per calendar day.
	streakPolicy StreakPolicy
}

func NewGamificationService(db *gorm.DB) *GamificationService {
	return &GamificationService{db: db, now: time.Now, streakPolicy: DailyStreakPolicy}
}

// withDB rebinds the service to a transaction handle.
func (s *GamificationService) withDB(db *gorm.DB) *GamificationService {
	c := *s
	c.db = db
	return &c
}

// ---------- coins & levels ----------

var levelMilestones = []int{5, 10, 25, 50, 100}

// milestoneBadgesBetween lists milestone levels crossed when moving
// from prevLevel to newLevel.
func milestoneBadgesBetween(prevLevel, newLevel int) []int {
	var out []int
	for _, m := range levelMilestones {
		if prevLevel < m && newLevel >= m {
			out = append(out, m)
		}
	}
	return out
}

func milestoneRarity(milestone int) string {
	switch {
	case milestone >= 50:
		return "legendary"
	case milestone >= 25:
		return "epic"
	default:
		return "rare"
	}
}

type CoinAward struct {
	Coins     int  `json:"coins"`
	Level     int  `json:"level"`
	LeveledUp bool `json:"leveled_up"`
}

// AwardCoins applies a store-level atomic increment so concurrent
// awards for the same user never lose updates, then re-derives the
// level. Milestone badges ride on the unique (user_id, badge_id)
// index, so re-checking them after a racy read is harmless.
func (s *GamificationService) AwardCoins(ctx context.Context, userID uint, amount int, reason string) (*CoinAward, error) {
	if amount <= 0 {
		return nil, ErrInvalidInput
	}

	var before models.User
	if err := s.db.WithContext(ctx).First(&before, userID).Error; err != nil {
		return nil, storeErr(err)
	}
	prevLevel := before.Level()

	res := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("coins", gorm.Expr("coins + ?", amount))
	if res.Error != nil {
		return nil, storeErr(res.Error)
	}

	var after models.User
	if err := s.db.WithContext(ctx).First(&after, userID).Error; err != nil {
		return nil, storeErr(err)
	}

	award := &CoinAward{Coins: after.Coins, Level: after.Level(), LeveledUp: after.Level() > prevLevel}
	if award.LeveledUp {
		s.awardMilestoneBadges(ctx, userID, prevLevel, award.Level)
		EmitEvent(userID, "level.up", "Level Up!",
			fmt.Sprintf("You reached level %d.", award.Level),
			map[string]string{"level": fmt.Sprintf("%d", award.Level), "reason": reason})
	}
	return award, nil
}

func (s *GamificationService) awardMilestoneBadges(ctx context.Context, userID uint, prevLevel, newLevel int) {
	for _, m := range milestoneBadgesBetween(prevLevel, newLevel) {
		badge := models.Achievement{
			UserID:          userID,
			BadgeID:         fmt.Sprintf("level_%d", m),
			Title:           fmt.Sprintf("Level %d", m),
			Description:     fmt.Sprintf("Reached level %d", m),
			Rarity:          milestoneRarity(m),
			CoinsRewarded:   m * 10,
			ProgressCurrent: float64(m),
			ProgressTarget:  float64(m),
			IsCompleted:     true,
			UnlockedAt:      s.now(),
		}
		if err := s.AddBadgeRecord(ctx, &badge); err == nil {
			EmitEvent(userID, "badge.unlocked", "Badge Unlocked", badge.Title,
				map[string]string{"badge": badge.BadgeID, "rarity": badge.Rarity})
		}
	}
}

// AddBadge unlocks a badge by id, idempotently.
func (s *GamificationService) AddBadge(ctx context.Context, userID uint, badgeID, title, rarity string) error {
	return s.AddBadgeRecord(ctx, &models.Achievement{
		UserID:      userID,
		BadgeID:     badgeID,
		Title:       title,
		Rarity:      rarity,
		IsCompleted: true,
		UnlockedAt:  s.now(),
	})
}

// AddBadgeRecord inserts the achievement and treats a duplicate-key
// violation as "already unlocked". The DB constraint, not an
// application existence check, is what makes this race-safe.
func (s *GamificationService) AddBadgeRecord(ctx context.Context, a *models.Achievement) error {
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return storeErr(err)
	}
	return nil
}

func (s *GamificationService) Badges(ctx context.Context, userID uint) ([]models.Achievement, error) {
	var out []models.Achievement
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

// ---------- streaks ----------

// StreakPolicy decides the next streak value. It sees the current
// count, the last day the streak moved, the clock, and the caller's
// increment/reset intent.
type StreakPolicy func(current int, lastDay *time.Time, now time.Time, increment bool) (next int, moved bool)

// DailyStreakPolicy increments at most once per calendar day and
// zeroes on reset.
func DailyStreakPolicy(current int, lastDay *time.Time, now time.Time, increment bool) (int, bool) {
	if !increment {
		if current == 0 {
			return 0, false
		}
		return 0, true
	}
	if lastDay != nil && sameDay(*lastDay, now) {
		return current, false
	}
	return current + 1, true
}

func (s *GamificationService) UpdateStreak(ctx context.Context, userID uint, increment bool) (int, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return 0, storeErr(err)
	}

	now := s.now()
	next, moved := s.streakPolicy(user.Streak, user.LastStreakDay, now, increment)
	if !moved {
		return user.Streak, nil
	}

	day := dayStart(now)
	updates := map[string]any{"streak": next, "last_activity_at": now}
	if increment {
		updates["last_streak_day"] = day
	}
	if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return 0, storeErr(err)
	}
	return next, nil
}

// ---------- challenges ----------

func (s *GamificationService) ListChallenges(ctx context.Context, activeOnly bool) ([]models.Challenge, error) {
	q := s.db.WithContext(ctx).Model(&models.Challenge{})
	if activeOnly {
		now := s.now()
		q = q.Where("is_active = ? AND start_date <= ? AND (end_date IS NULL OR end_date > ?)", true, now, now)
	}
	var out []models.Challenge
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *GamificationService) JoinChallenge(ctx context.Context, userID, challengeID uint) (*models.UserChallenge, error) {
	var ch models.Challenge
	if err := s.db.WithContext(ctx).First(&ch, challengeID).Error; err != nil {
		return nil, storeErr(err)
	}
	if !ch.ActiveAt(s.now()) {
		return nil, ErrNotFound
	}

	uc := &models.UserChallenge{UserID: userID, ChallengeID: challengeID, JoinedAt: s.now()}
	if err := s.db.WithContext(ctx).Create(uc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEnrollment
		}
		return nil, storeErr(err)
	}
	return uc, nil
}

// capProgress applies delta without exceeding target.
func capProgress(current, delta, target float64) float64 {
	next := current + delta
	if next > target {
		return target
	}
	return next
}

// ApplyProgress advances one enrollment. Completion is terminal:
// updates on a completed row are rejected, never silently ignored.
func (s *GamificationService) ApplyProgress(ctx context.Context, userID, challengeID uint, delta float64) (*models.UserChallenge, error) {
	if delta <= 0 {
		return nil, ErrInvalidInput
	}

	var uc models.UserChallenge
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		First(&uc).Error
	if err != nil {
		return nil, storeErr(err)
	}
	if uc.IsCompleted {
		return nil, ErrAlreadyCompleted
	}

	var ch models.Challenge
	if err := s.db.WithContext(ctx).First(&ch, challengeID).Error; err != nil {
		return nil, storeErr(err)
	}
	if !ch.ActiveAt(s.now()) {
		return nil, ErrNotFound
	}

	uc.Progress = capProgress(uc.Progress, delta, ch.Target)
	if uc.Progress < ch.Target {
		if err := s.db.WithContext(ctx).Save(&uc).Error; err != nil {
			return nil, storeErr(err)
		}
		return &uc, nil
	}

	now := s.now()
	uc.IsCompleted = true
	uc.CompletedAt = &now

	// completion and its rewards commit together; a failed coin award
	// rolls the completion back so it can be retried
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txs := s.withDB(tx)
		if err := tx.Save(&uc).Error; err != nil {
			return err
		}
		return txs.completionRewards(ctx, userID, &ch)
	})
	if err != nil {
		return nil, err
	}

	if ch.BadgeReward != "" {
		EmitEvent(userID, "badge.unlocked", "Badge Unlocked", ch.Title,
			map[string]string{"badge": ch.BadgeReward})
	}
	EmitEvent(userID, "challenge.completed", "Challenge Complete", ch.Title,
		map[string]string{"challenge": fmt.Sprintf("%d", ch.ID), "coins": fmt.Sprintf("%d", ch.CoinsReward)})
	return &uc, nil
}

func (s *GamificationService) completionRewards(ctx context.Context, userID uint, ch *models.Challenge) error {
	if ch.CoinsReward > 0 {
		if _, err := s.AwardCoins(ctx, userID, ch.CoinsReward, "challenge_completed"); err != nil {
			return err
		}
	}
	if ch.BadgeReward != "" {
		if err := s.AddBadge(ctx, userID, ch.BadgeReward, ch.Title, "rare"); err != nil {
			return err
		}
	}
	return nil
}

// ApplyCategoryProgress advances every active, incomplete enrollment
// whose challenge category matches. Completed rows are skipped here
// (they were filtered out, not rejected) because the caller is a
// record-creation event, not a direct progress request.
func (s *GamificationService) ApplyCategoryProgress(ctx context.Context, userID uint, category string, delta float64) error {
	if delta <= 0 {
		return ErrInvalidInput
	}

	now := s.now()
	var rows []models.UserChallenge
	err := s.db.WithContext(ctx).
		Joins("JOIN challenges ON challenges.id = user_challenges.challenge_id").
		Where("user_challenges.user_id = ? AND user_challenges.is_completed = ?", userID, false).
		Where("challenges.deleted_at IS NULL AND challenges.category = ? AND challenges.is_active = ?", category, true).
		Where("challenges.start_date <= ? AND (challenges.end_date IS NULL OR challenges.end_date > ?)", now, now).
		Find(&rows).Error
	if err != nil {
		return storeErr(err)
	}

	for _, uc := range rows {
		if _, err := s.ApplyProgress(ctx, userID, uc.ChallengeID, delta); err != nil &&
			!errors.Is(err, ErrAlreadyCompleted) && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	return nil
}

func (s *GamificationService) UserChallenges(ctx context.Context, userID uint) ([]models.UserChallenge, error) {
	var out []models.UserChallenge
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("joined_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

// ---------- level re-check ----------

// LevelUp is the idempotent re-check of the derived-level invariant:
// it recomputes level from coins and back-fills any milestone badges.
func (s *GamificationService) LevelUp(ctx context.Context, userID uint) (int, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return 0, storeErr(err)
	}
	level := user.Level()
	s.awardMilestoneBadges(ctx, userID, 0, level)
	return level, nil
}

// ---------- record events ----------

const coinsPerRecordLogged = 5

// RecordLogged is the hook record-creation flows call: a small coin
// award, a streak bump, and category-matched challenge progress.
// progress is domain-specific (1 for count-based records, ml for
// water, minutes for exercise).
func (s *GamificationService) RecordLogged(ctx context.Context, userID uint, category string, progress float64) {
	_, _ = s.AwardCoins(ctx, userID, coinsPerRecordLogged, "record_logged")
	_, _ = s.UpdateStreak(ctx, userID, true)
	_ = s.ApplyCategoryProgress(ctx, userID, category, progress)
}

// ---------- leaderboard ----------

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   uint   `json:"user_id"`
	FullName string `json:"full_name"`
	Coins    int    `json:"coins"`
	Level    int    `json:"level"`
	Streak   int    `json:"streak"`
}

// Leaderboard ranks users by the requested metric descending, then
// most-recent activity descending, then user id ascending so equal
// rows always order the same way.
func (s *GamificationService) Leaderboard(ctx context.Context, metric string, limit int) ([]LeaderboardEntry, error) {
	var column string
	switch metric {
	case "coins", "level":
		column = "coins" // level is derived from coins; same order
	case "streak":
		column = "streak"
	default:
		return nil, ErrInvalidInput
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var users []models.User
	err := s.db.WithContext(ctx).
		Where("disabled = ?", false).
		Order(column + " DESC").
		Order("last_activity_at DESC").
		Order("id ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, storeErr(err)
	}

	out := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		out = append(out, LeaderboardEntry{
			Rank:     i + 1,
			UserID:   u.ID,
			FullName: u.FullName,
			Coins:    u.Coins,
			Level:    u.Level(),
			Streak:   u.Streak,
		})
	}
	return out, nil
}
