package models

import (
	"time"

	"gorm.io/gorm"
)

// Challenge is a catalog entry users can enroll in.
type Challenge struct {
	gorm.Model
	Type        string `gorm:"size:16;not null"` // daily|weekly|monthly|milestone
	Category    string `gorm:"size:32;index"`
	Title       string `gorm:"not null"`
	Description string
	Target      float64 `gorm:"not null"`
	Unit        string  `gorm:"size:16"`
	CoinsReward int     `gorm:"not null"`
	BadgeReward string  `gorm:"size:64"`
	StartDate   time.Time
	EndDate     *time.Time
	IsActive    bool `gorm:"default:true"`
}

// ActiveAt reports whether the challenge window contains t.
func (c *Challenge) ActiveAt(t time.Time) bool {
	if !c.IsActive || t.Before(c.StartDate) {
		return false
	}
	return c.EndDate == nil || t.Before(*c.EndDate)
}

// UserChallenge joins a user to a challenge. One row per pair, enforced
// at the store level by the composite unique index.
type UserChallenge struct {
	gorm.Model
	UserID      uint    `gorm:"not null;uniqueIndex:idx_user_challenge"`
	ChallengeID uint    `gorm:"not null;uniqueIndex:idx_user_challenge"`
	Progress    float64 `gorm:"default:0"`
	IsCompleted bool    `gorm:"default:false"`
	CompletedAt *time.Time
	JoinedAt    time.Time
}
