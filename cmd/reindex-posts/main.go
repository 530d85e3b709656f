package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/ivylu/wanderlog-api/internal/config"
	"github.com/ivylu/wanderlog-api/internal/database"
	"github.com/ivylu/wanderlog-api/internal/models"
	"github.com/ivylu/wanderlog-api/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize search service
	searchService := services.NewSearchService(cfg)
	log.Println("Meilisearch service initialized")

	// Get counts
	var travelogues []models.Travelogue
	if err := db.Find(&travelogues).Error; err != nil {
		log.Fatalf("Failed to fetch travelogues: %v", err)
	}

	var daily []models.DailyLife
	if err := db.Find(&daily).Error; err != nil {
		log.Fatalf("Failed to fetch daily-life posts: %v", err)
	}

	meiliCount, err := searchService.GetPostCount()
	if err != nil {
		log.Fatalf("Failed to get post count from Meilisearch: %v", err)
	}

	dbCount := int64(len(travelogues) + len(daily))
	log.Printf("Posts in DB: %d", dbCount)
	log.Printf("Posts in Meilisearch: %d", meiliCount)

	if meiliCount == dbCount {
		log.Println("Counts match. Reindexing anyway to pick up edits...")
	} else {
		log.Println("Counts do not match. Reindexing all posts...")
	}

	if err := searchService.IndexAll(travelogues, daily); err != nil {
		log.Fatalf("Failed to reindex posts: %v", err)
	}

	log.Printf("Reindexing complete. Indexed %d posts.", dbCount)
}
