package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	FullName       string
	MonthlyLimit   float64 `gorm:"default:0"`
	CurrentBalance float64 `gorm:"default:0"`
	Coins          int     `gorm:"default:0"`
	Streak         int     `gorm:"default:0"`
	LastStreakDay  *time.Time
	LastActivityAt time.Time
	Preferences    string `gorm:"type:jsonb;default:'{}'"`
	ProfilePicture string
	ResetToken     string `gorm:"size:64"`
	ResetTokenExp  *time.Time
	Disabled       bool `gorm:"default:false"`
}

// Level is derived from coins and never stored independently.
func (u *User) Level() int { return LevelForCoins(u.Coins) }

func LevelForCoins(coins int) int { return coins/100 + 1 }
