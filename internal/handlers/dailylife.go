package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ivylu/wanderlog-api/internal/config"
	"github.com/ivylu/wanderlog-api/internal/data"
	"github.com/ivylu/wanderlog-api/internal/models"
	"github.com/ivylu/wanderlog-api/internal/services"
)

func findDailyLife(db *gorm.DB, id string) (models.DailyLife, bool, error) {
	var d models.DailyLife
	err := db.First(&d, "id = ?", id).Error
	if err == nil {
		return d, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DailyLife{}, false, err
	}
	if static, ok := data.FindDailyLife(id); ok {
		return static, true, nil
	}
	return models.DailyLife{}, false, nil
}

// ListDailyLife returns the daily-life catalog, newest first.
func ListDailyLife(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var list []models.DailyLife
		if result := db.Order("date desc, id asc").Find(&list); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to fetch daily-life posts",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
	}
}

// GetDailyLife returns one post's metadata.
func GetDailyLife(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, found, err := findDailyLife(db, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to fetch daily-life post",
				},
			})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Daily-life post not found",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": d})
	}
}

// GetDailyLifeContent resolves the display body the same way travelogues
// do: language file, default file, stored description.
func GetDailyLifeContent(db *gorm.DB, content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := contentLang(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "Unsupported language",
				},
			})
			return
		}

		d, found, err := findDailyLife(db, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to fetch daily-life post",
				},
			})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Daily-life post not found",
				},
			})
			return
		}

		body, err := content.Resolve(services.SectionDailyLife, d.ID, lang, d.Description)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to read content",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"content": body}})
	}
}

// GetDailyLifeCover returns the cover image URLs for a post.
func GetDailyLifeCover(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, found, err := findDailyLife(db, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to fetch cover image",
				},
			})
			return
		}
		if !found || d.CoverImage == "" {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"cover_image": nil}})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    coverPayload(cfg, d.CoverImage),
		})
	}
}

// AdminUpdateDailyLife upserts a post's metadata and refreshes the search
// index.
func AdminUpdateDailyLife(db *gorm.DB, search PostIndexer, activity *services.ActivityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdatePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": err.Error(),
				},
			})
			return
		}

		id := c.Param("id")
		d, found, err := findDailyLife(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to fetch daily-life post",
				},
			})
			return
		}
		if !found {
			d = models.DailyLife{ID: id}
		}

		d.Title = req.Title
		d.Description = req.Description
		d.Date = req.Date

		if err := db.Save(&d).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to update daily-life post",
				},
			})
			return
		}

		go func(saved models.DailyLife) {
			if err := search.IndexDailyLife(saved); err != nil {
				log.Printf("Failed to index daily-life post %s: %v", saved.ID, err)
			}
			activity.Record(models.ActivityPostUpdated, saved.ID, map[string]interface{}{"section": services.SectionDailyLife})
		}(d)

		c.JSON(http.StatusOK, gin.H{"success": true, "data": d})
	}
}

// AdminGetDailyLifeContent reads the raw body file for editing.
func AdminGetDailyLifeContent(content *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := contentLang(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "Unsupported language",
				},
			})
			return
		}

		body, _, err := content.Read(services.SectionDailyLife, c.Param("id"), lang)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to read content",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"content": body}})
	}
}

// AdminUpdateDailyLifeContent writes the body file.
func AdminUpdateDailyLifeContent(content *services.ContentService, activity *services.ActivityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := contentLang(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "Unsupported language",
				},
			})
			return
		}

		var req UpdateContentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "content is required",
				},
			})
			return
		}

		id := c.Param("id")
		if err := content.Write(services.SectionDailyLife, id, lang, *req.Content); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to write content",
				},
			})
			return
		}

		go func() {
			activity.Record(models.ActivityContentUpdated, id, map[string]interface{}{
				"section": services.SectionDailyLife,
				"lang":    lang,
			})
		}()

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"content": *req.Content}})
	}
}

// AdminUpdateDailyLifeCover sets the cover image URL.
func AdminUpdateDailyLifeCover(db *gorm.DB, activity *services.ActivityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCoverRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "cover_image is required",
				},
			})
			return
		}

		id := c.Param("id")
		d, found, err := findDailyLife(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to fetch daily-life post",
				},
			})
			return
		}
		if !found {
			d = models.DailyLife{ID: id}
		}

		d.CoverImage = req.CoverImage
		if err := db.Save(&d).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to update cover image",
				},
			})
			return
		}

		go func() {
			activity.Record(models.ActivityCoverUpdated, id, map[string]interface{}{"section": services.SectionDailyLife})
		}()

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"cover_image": d.CoverImage}})
	}
}
