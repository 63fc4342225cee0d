package database

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"venue_manager/model"
	"venue_manager/utils"
)

func SeedData(db *gorm.DB) {
	categories := []model.Category{
		{Name: "Food", Slug: "food"},
		{Name: "Drinks", Slug: "drinks"},
		{Name: "Fishing Gear", Slug: "fishing-gear"},
	}
	for _, category := range categories {
		if err := db.Where(model.Category{Slug: category.Slug}).FirstOrCreate(&category).Error; err != nil {
			utils.Log.Error("failed to seed category", zap.String("slug", category.Slug), zap.Error(err))
		}
	}

	durations := []model.Duration{
		{Label: "1 hour", Minutes: 60, Price: decimal.RequireFromString("50000")},
		{Label: "2 hours", Minutes: 120, Price: decimal.RequireFromString("90000")},
		{Label: "Half day", Minutes: 240, Price: decimal.RequireFromString("160000")},
	}
	for _, duration := range durations {
		if err := db.Where(model.Duration{Minutes: duration.Minutes}).FirstOrCreate(&duration).Error; err != nil {
			utils.Log.Error("failed to seed duration", zap.String("label", duration.Label), zap.Error(err))
		}
	}

	for _, number := range []string{"A1", "A2", "A3", "B1", "B2", "B3"} {
		table := model.TableNumber{Number: number, Seats: 4, IsActive: true}
		if err := db.Where(model.TableNumber{Number: number}).FirstOrCreate(&table).Error; err != nil {
			utils.Log.Error("failed to seed table", zap.String("number", number), zap.Error(err))
		}
	}

	seedSingleton(db, &model.FishingCms{Title: "Fishing"})
	seedSingleton(db, &model.AboutPageContent{Title: "About us"})
}

// seedSingleton creates the row only when the table is empty.
func seedSingleton[T any](db *gorm.DB, row *T) {
	var count int64
	if err := db.Model(new(T)).Count(&count).Error; err != nil {
		utils.Log.Error("failed to count singleton", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}
	if err := db.Create(row).Error; err != nil {
		utils.Log.Error("failed to seed singleton", zap.Error(err))
	}
}
