package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged meal with its nutrition snapshot.
type Meal struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null"`
	Name     string
	Calories float64 `gorm:"not null"`
	Category string  `gorm:"size:32;index"`
	MealType string  `gorm:"size:16;index;not null"` // breakfast|lunch|dinner|snack
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Sugar    float64
	Date     time.Time `gorm:"index;not null"`
}

var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

func ValidMealType(t string) bool {
	for _, v := range MealTypes {
		if v == t {
			return true
		}
	}
	return false
}
