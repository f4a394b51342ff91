package models

import "time"

// Notification is the persisted trace of a gamification event
// (badge unlock, level up, challenge completion).
type Notification struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Kind      string    `gorm:"size:32"` // "badge.unlocked" | "level.up" | "challenge.completed"
	Title     string    `gorm:"size:128"`
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}
