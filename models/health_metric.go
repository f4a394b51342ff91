package models

import (
	"time"

	"gorm.io/gorm"
)

// A body measurement snapshot. BMI, BMI category and daily calorie
// needs are computed on read, never stored.
type HealthMetric struct {
	gorm.Model
	UserID        uint    `gorm:"index;not null"`
	Height        float64 `gorm:"not null"` // cm
	Weight        float64 `gorm:"not null"` // kg
	Age           int
	Gender        string    `gorm:"size:16"` // male|female
	ActivityLevel string    `gorm:"size:16"` // sedentary|light|moderate|active|very_active
	Date          time.Time `gorm:"index;not null"`
}

type WaterIntake struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Amount float64   `gorm:"not null"` // ml per entry, 50..2000
	Date   time.Time `gorm:"index;not null"`
}

type Exercise struct {
	gorm.Model
	UserID         uint    `gorm:"index;not null"`
	Type           string  `gorm:"size:32;not null"`
	Duration       float64 `gorm:"not null"` // minutes, 1..600
	CaloriesBurned float64
	Intensity      string    `gorm:"size:16"` // low|moderate|high
	Date           time.Time `gorm:"index;not null"`
}
