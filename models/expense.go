package models

import (
	"time"

	"gorm.io/gorm"
)

type Expense struct {
	gorm.Model
	UserID      uint    `gorm:"index;not null"`
	Amount      float64 `gorm:"not null"`
	Category    string  `gorm:"size:32;index;not null"`
	Mood        string  `gorm:"size:16"`
	Description string
	Date        time.Time `gorm:"index;not null"`
}

var ExpenseCategories = []string{
	"food", "transport", "entertainment", "shopping", "bills", "health", "education", "other",
}

var ExpenseMoods = []string{"happy", "neutral", "sad", "stressed", "excited"}

func ValidExpenseCategory(c string) bool {
	for _, v := range ExpenseCategories {
		if v == c {
			return true
		}
	}
	return false
}

func ValidExpenseMood(m string) bool {
	for _, v := range ExpenseMoods {
		if v == m {
			return true
		}
	}
	return false
}
