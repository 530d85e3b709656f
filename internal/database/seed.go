package database

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ivylu/wanderlog-api/internal/data"
	"github.com/ivylu/wanderlog-api/internal/models"
)

// SeedPosts inserts the compiled-in catalogs for any post not yet in the
// database. Existing rows are left alone so admin edits survive reseeding.
func SeedPosts(db *gorm.DB) error {
	// Copy before Create: gorm stamps timestamps onto the slice elements.
	travelogues := make([]models.Travelogue, len(data.Travelogues))
	copy(travelogues, data.Travelogues)

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&travelogues)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Seeded %d travelogues", result.RowsAffected)
	}

	daily := make([]models.DailyLife, len(data.DailyLife))
	copy(daily, data.DailyLife)

	result = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&daily)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Seeded %d daily-life posts", result.RowsAffected)
	}

	return nil
}
