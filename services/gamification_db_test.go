package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"backend/config"
	"backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.HealthMetric{},
		&models.WaterIntake{},
		&models.Exercise{},
		&models.Achievement{},
		&models.Challenge{},
		&models.UserChallenge{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestGame(t *testing.T, now time.Time) (*GamificationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewGamificationService(db)
	svc.now = func() time.Time { return now }
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	u := &models.User{Email: "a@example.com", Password: "x", FullName: "A"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestApplyCategoryProgressSkipsInactiveChallenges(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	svc, db := newTestGame(t, now)
	u := seedUser(t, db)

	ended := now.AddDate(0, 0, -1)
	challenges := []models.Challenge{
		{Category: "water", Title: "Ended", Target: 100, CoinsReward: 50, IsActive: true,
			StartDate: now.AddDate(0, 0, -7), EndDate: &ended},
		{Category: "water", Title: "Deactivated", Target: 100, CoinsReward: 50, IsActive: false,
			StartDate: now.AddDate(0, 0, -7)},
		{Category: "water", Title: "Not started", Target: 100, CoinsReward: 50, IsActive: true,
			StartDate: now.AddDate(0, 0, 1)},
	}
	for i := range challenges {
		if err := db.Create(&challenges[i]).Error; err != nil {
			t.Fatalf("seed challenge: %v", err)
		}
		uc := models.UserChallenge{UserID: u.ID, ChallengeID: challenges[i].ID, JoinedAt: now.AddDate(0, 0, -7)}
		if err := db.Create(&uc).Error; err != nil {
			t.Fatalf("seed enrollment: %v", err)
		}
	}

	if err := svc.ApplyCategoryProgress(context.Background(), u.ID, "water", 100); err != nil {
		t.Fatalf("ApplyCategoryProgress: %v", err)
	}

	var rows []models.UserChallenge
	if err := db.Where("user_id = ?", u.ID).Find(&rows).Error; err != nil {
		t.Fatalf("reload enrollments: %v", err)
	}
	for _, uc := range rows {
		if uc.Progress != 0 || uc.IsCompleted {
			t.Errorf("challenge %d accrued progress=%v completed=%v outside its window",
				uc.ChallengeID, uc.Progress, uc.IsCompleted)
		}
	}

	var after models.User
	if err := db.First(&after, u.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if after.Coins != 0 {
		t.Errorf("coins = %d, want 0: no reward may flow from an inactive challenge", after.Coins)
	}
}

func TestApplyProgressRejectsInactiveChallenge(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	svc, db := newTestGame(t, now)
	u := seedUser(t, db)

	ended := now.AddDate(0, 0, -1)
	ch := models.Challenge{Category: "water", Title: "Ended", Target: 100, CoinsReward: 50,
		IsActive: true, StartDate: now.AddDate(0, 0, -7), EndDate: &ended}
	if err := db.Create(&ch).Error; err != nil {
		t.Fatalf("seed challenge: %v", err)
	}
	uc := models.UserChallenge{UserID: u.ID, ChallengeID: ch.ID, Progress: 40, JoinedAt: now.AddDate(0, 0, -7)}
	if err := db.Create(&uc).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}

	if _, err := svc.ApplyProgress(context.Background(), u.ID, ch.ID, 60); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	var reloaded models.UserChallenge
	if err := db.First(&reloaded, uc.ID).Error; err != nil {
		t.Fatalf("reload enrollment: %v", err)
	}
	if reloaded.Progress != 40 || reloaded.IsCompleted {
		t.Errorf("enrollment mutated: progress=%v completed=%v", reloaded.Progress, reloaded.IsCompleted)
	}
}

func TestApplyProgressCompletionAwardsCoinsAndBadge(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	svc, db := newTestGame(t, now)
	u := seedUser(t, db)

	ch := models.Challenge{Category: "water", Title: "Hydration Hero", Target: 100, CoinsReward: 50,
		BadgeReward: "hydration_hero", IsActive: true, StartDate: now.AddDate(0, 0, -7)}
	if err := db.Create(&ch).Error; err != nil {
		t.Fatalf("seed challenge: %v", err)
	}
	uc := models.UserChallenge{UserID: u.ID, ChallengeID: ch.ID, Progress: 90, JoinedAt: now.AddDate(0, 0, -7)}
	if err := db.Create(&uc).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}

	got, err := svc.ApplyProgress(context.Background(), u.ID, ch.ID, 20)
	if err != nil {
		t.Fatalf("ApplyProgress: %v", err)
	}
	if got.Progress != 100 || !got.IsCompleted || got.CompletedAt == nil {
		t.Fatalf("result = progress %v completed %v, want capped at 100 and completed", got.Progress, got.IsCompleted)
	}

	var after models.User
	if err := db.First(&after, u.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if after.Coins != 50 {
		t.Errorf("coins = %d, want 50: the reward must land with the completion", after.Coins)
	}

	var badge models.Achievement
	if err := db.Where("user_id = ? AND badge_id = ?", u.ID, "hydration_hero").First(&badge).Error; err != nil {
		t.Errorf("badge not recorded: %v", err)
	}

	// a second attempt on the terminal row is rejected
	if _, err := svc.ApplyProgress(context.Background(), u.ID, ch.ID, 1); !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("err = %v, want ErrAlreadyCompleted", err)
	}
}

func TestJoinChallengeDuplicateEnrollment(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	svc, db := newTestGame(t, now)
	u := seedUser(t, db)

	ch := models.Challenge{Category: "water", Title: "Open", Target: 100, CoinsReward: 10,
		IsActive: true, StartDate: now.AddDate(0, 0, -1)}
	if err := db.Create(&ch).Error; err != nil {
		t.Fatalf("seed challenge: %v", err)
	}

	if _, err := svc.JoinChallenge(context.Background(), u.ID, ch.ID); err != nil {
		t.Fatalf("first join: %v", err)
	}
	if _, err := svc.JoinChallenge(context.Background(), u.ID, ch.ID); !errors.Is(err, ErrDuplicateEnrollment) {
		t.Fatalf("second join err = %v, want ErrDuplicateEnrollment", err)
	}
}

func TestGetUserProfileMissingUserIsNotFound(t *testing.T) {
	config.DB = newTestDB(t)

	if _, err := GetUserProfile(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	disabled := models.User{Email: "d@example.com", Password: "x", Disabled: true}
	if err := config.DB.Create(&disabled).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := GetUserProfile(disabled.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("disabled user err = %v, want ErrNotFound", err)
	}
}
