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
	"github.com/ivylu/wanderlog-api/internal/utils"
)

// PostIndexer keeps the search index in step with post edits.
type PostIndexer interface {
	IndexTravelogue(models.Travelogue) error
	IndexDailyLife(models.DailyLife) error
}

type UpdatePostRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
}

type UpdateContentRequest struct {
	Content *string `json:"content" binding:"required"`
}

type UpdateCoverRequest struct {
	CoverImage string `json:"cover_image" binding:"required"`
}

// contentLang narrows the lang query to the two supported locales. The
// default language has no file suffix.
func contentLang(c *gin.Context) (string, bool) {
	lang := c.Query("lang")
	switch lang {
	case "", "en", "zh":
		return lang, true
	}
	return "", false
}

// findTravelogue loads a post from the database, falling back to the
// compiled-in catalog for ids that were never seeded.
func findTravelogue(db *gorm.DB, id string) (models.Travelogue, bool, error) {
	var t models.Travelogue
	err := db.First(&t, "id = ?", id).Error
	if err == nil {
		return t, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Travelogue{}, false, err
	}
	if static, ok := data.FindTravelogue(id); ok {
		return static, true, nil
	}
	return models.Travelogue{}, false, nil
}

// ListTravelogues returns the catalog, newest first.
func ListTravelogues(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var list []models.Travelogue
		if result := db.Order("date desc, id asc").Find(&list); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to fetch travelogues",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
	}
}

// GetTravelogue returns one post's metadata.
func GetTravelogue(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, found, err := findTravelogue(db, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to fetch travelogue",
				},
			})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Travelogue not found",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": t})
	}
}

// GetTravelogueContent resolves the display body: language-specific file,
// then default file, then the stored description.
func GetTravelogueContent(db *gorm.DB, content *services.ContentService) gin.HandlerFunc {
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

		t, found, err := findTravelogue(db, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to fetch travelogue",
				},
			})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Travelogue not found",
				},
			})
			return
		}

		body, err := content.Resolve(services.SectionTravelogues, t.ID, lang, t.Description)
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

// coverPayload builds the cover response: the stored URL, a
// web-displayable variant (HEIC rewritten to JPEG for Cloudinary-hosted
// covers), and a sized thumbnail when the cover is a Cloudinary delivery
// URL.
func coverPayload(cfg *config.Config, coverImage string) gin.H {
	payload := gin.H{
		"cover_image": coverImage,
		"display_url": utils.ConvertURLToWebFormat(coverImage),
	}
	if publicID := utils.ExtractPublicID(coverImage); publicID != "" {
		payload["thumbnail_url"] = utils.CloudinaryImageURL(cfg.CloudinaryCloudName, publicID, &utils.CloudinaryImageOptions{
			Width:   600,
			Crop:    "fill",
			Quality: 80,
		})
	}
	return payload
}

// GetTravelogueCover returns the cover image URLs for a post.
func GetTravelogueCover(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, found, err := findTravelogue(db, c.Param("id"))
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
		if !found || t.CoverImage == "" {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"cover_image": nil}})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    coverPayload(cfg, t.CoverImage),
		})
	}
}

// AdminUpdateTravelogue upserts a post's metadata and refreshes the
// search index.
func AdminUpdateTravelogue(db *gorm.DB, search PostIndexer, activity *services.ActivityService) gin.HandlerFunc {
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
		t := models.Travelogue{ID: id}
		if err := db.First(&t, "id = ?", id).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_ERROR",
						"message": "Failed to fetch travelogue",
					},
				})
				return
			}
			if static, ok := data.FindTravelogue(id); ok {
				t = static
			}
		}

		t.ID = id
		t.Title = req.Title
		t.Description = req.Description
		t.Date = req.Date

		if err := db.Save(&t).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to update travelogue",
				},
			})
			return
		}

		go func(saved models.Travelogue) {
			if err := search.IndexTravelogue(saved); err != nil {
				log.Printf("Failed to index travelogue %s: %v", saved.ID, err)
			}
			activity.Record(models.ActivityPostUpdated, saved.ID, map[string]interface{}{"section": services.SectionTravelogues})
		}(t)

		c.JSON(http.StatusOK, gin.H{"success": true, "data": t})
	}
}

// AdminGetTravelogueContent reads the raw body file for editing. A missing
// file comes back as an empty string, not an error.
func AdminGetTravelogueContent(content *services.ContentService) gin.HandlerFunc {
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

		body, _, err := content.Read(services.SectionTravelogues, c.Param("id"), lang)
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

// AdminUpdateTravelogueContent writes the body file (the lang-suffixed
// variant when lang is given).
func AdminUpdateTravelogueContent(content *services.ContentService, activity *services.ActivityService) gin.HandlerFunc {
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
		if err := content.Write(services.SectionTravelogues, id, lang, *req.Content); err != nil {
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
				"section": services.SectionTravelogues,
				"lang":    lang,
			})
		}()

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"content": *req.Content}})
	}
}

// AdminUpdateTravelogueCover sets the cover image URL.
func AdminUpdateTravelogueCover(db *gorm.DB, activity *services.ActivityService) gin.HandlerFunc {
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
		t, found, err := findTravelogue(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to fetch travelogue",
				},
			})
			return
		}
		if !found {
			t = models.Travelogue{ID: id}
		}

		t.CoverImage = req.CoverImage
		if err := db.Save(&t).Error; err != nil {
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
			activity.Record(models.ActivityCoverUpdated, id, map[string]interface{}{"section": services.SectionTravelogues})
		}()

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"cover_image": t.CoverImage}})
	}
}
