package models

import (
	"time"

	"gorm.io/gorm"
)

// Achievement is a one-time badge unlock. The composite unique index is
// the guard against double-awarding under concurrent requests.
type Achievement struct {
	gorm.Model
	UserID          uint   `gorm:"not null;uniqueIndex:idx_user_badge"`
	BadgeID         string `gorm:"size:64;not null;uniqueIndex:idx_user_badge"`
	Title           string
	Description     string
	Rarity          string `gorm:"size:16"` // rare|epic|legendary
	CoinsRewarded   int
	ProgressCurrent float64
	ProgressTarget  float64
	IsCompleted     bool `gorm:"default:false"`
	UnlockedAt      time.Time
}
