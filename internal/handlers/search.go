package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ivylu/wanderlog-api/internal/models"
	"github.com/ivylu/wanderlog-api/internal/services"
)

// SearchPosts runs a full-text search across both post catalogs.
// Optional ?kind=travelogue or ?kind=daily-life narrows the results.
func SearchPosts(search *services.SearchService) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "q is required",
				},
			})
			return
		}

		kind := c.Query("kind")
		if kind != "" && kind != "travelogue" && kind != "daily-life" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "kind must be travelogue or daily-life",
				},
			})
			return
		}

		result, err := search.Search(query, kind)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Search failed",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"hits":  result.Hits,
				"total": result.EstimatedTotalHits,
			},
		})
	}
}

// AdminReindexPosts rebuilds the search index from the database.
func AdminReindexPosts(db *gorm.DB, search *services.SearchService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var travelogues []models.Travelogue
		if err := db.Find(&travelogues).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to fetch travelogues",
				},
			})
			return
		}

		var daily []models.DailyLife
		if err := db.Find(&daily).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to fetch daily-life posts",
				},
			})
			return
		}

		if err := search.IndexAll(travelogues, daily); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to rebuild search index",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"indexed": len(travelogues) + len(daily),
			},
		})
	}
}
