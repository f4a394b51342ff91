package config

import (
	"log"
	"os"
	"time"

	"backend/models"
)

// SeedDemoData creates the demo user and the default challenge catalog
// when SEED_DEMO=true. This replaces any inline demo-user fallback in
// business logic: demo data is just ordinary rows.
func SeedDemoData() {
	if os.Getenv("SEED_DEMO") != "true" {
		return
	}

	demo := models.User{
		Email:          "demo@example.com",
		Password:       "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "demo"
		FullName:       "Demo User",
		MonthlyLimit:   1500,
		CurrentBalance: 800,
		LastActivityAt: time.Now(),
	}
	if err := DB.Where("email = ?", demo.Email).FirstOrCreate(&demo).Error; err != nil {
		log.Printf("seed: demo user: %v", err)
	}

	catalog := []models.Challenge{
		{Type: "daily", Category: "water", Title: "Hydration Day", Description: "Drink 2 liters of water today", Target: 2000, Unit: "ml", CoinsReward: 20, StartDate: time.Now().AddDate(0, 0, -1)},
		{Type: "weekly", Category: "exercise", Title: "Active Week", Description: "Exercise 150 minutes this week", Target: 150, Unit: "minutes", CoinsReward: 50, BadgeReward: "active_week", StartDate: time.Now().AddDate(0, 0, -7)},
		{Type: "weekly", Category: "expense", Title: "Log Keeper", Description: "Log 10 expenses this week", Target: 10, Unit: "records", CoinsReward: 30, StartDate: time.Now().AddDate(0, 0, -7)},
		{Type: "monthly", Category: "meal", Title: "Meal Tracker", Description: "Log 60 meals this month", Target: 60, Unit: "records", CoinsReward: 100, BadgeReward: "meal_tracker", StartDate: time.Now().AddDate(0, -1, 0)},
	}
	for _, ch := range catalog {
		c := ch
		if err := DB.Where("title = ?", c.Title).FirstOrCreate(&c).Error; err != nil {
			log.Printf("seed: challenge %q: %v", c.Title, err)
		}
	}
}
