package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ivylu/wanderlog-api/internal/models"
	"github.com/ivylu/wanderlog-api/internal/services"
	"github.com/ivylu/wanderlog-api/internal/utils"
)

const maxImageSize = 10 << 20 // 10MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/heic": true,
}

func imageFolder(c *gin.Context) (string, bool) {
	folder := c.DefaultQuery("folder", services.SectionTravelogues)
	if folder != services.SectionTravelogues && folder != services.SectionDailyLife {
		return "", false
	}
	return folder, true
}

// AdminUploadImage accepts a multipart image and stores it in the image
// bucket under the requested folder.
func AdminUploadImage(images *services.ImageService, activity *services.ActivityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if images == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Image storage is not available",
				},
			})
			return
		}

		folder, ok := imageFolder(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "folder must be travelogues or daily-life",
				},
			})
			return
		}

		header, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "file is required",
				},
			})
			return
		}

		if header.Size > maxImageSize {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "File exceeds the 10MB limit",
				},
			})
			return
		}

		contentType := header.Header.Get("Content-Type")
		if !allowedImageTypes[contentType] {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "Unsupported image type",
				},
			})
			return
		}

		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to read upload",
				},
			})
			return
		}
		defer file.Close()

		suffix, err := utils.GenerateSecureToken(6)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to generate filename",
				},
			})
			return
		}

		ext := strings.ToLower(filepath.Ext(header.Filename))
		filename := fmt.Sprintf("%d-%s%s", time.Now().Unix(), suffix, ext)

		objectName, url, err := images.Upload(c.Request.Context(), file, folder, filename, header.Size, contentType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to store image",
				},
			})
			return
		}

		go func() {
			activity.Record(models.ActivityImageUploaded, objectName, map[string]interface{}{"folder": folder})
		}()

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data": gin.H{
				"object_name": objectName,
				"url":         url,
				"display_url": utils.ConvertURLToWebFormat(url),
			},
		})
	}
}

// AdminListImages returns the stored images for one folder, newest first.
func AdminListImages(images *services.ImageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if images == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Image storage is not available",
				},
			})
			return
		}

		folder, ok := imageFolder(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "folder must be travelogues or daily-life",
				},
			})
			return
		}

		list, err := images.List(c.Request.Context(), folder)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to list images",
				},
			})
			return
		}

		if list == nil {
			list = []services.ImageInfo{}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
	}
}

type DeleteImageRequest struct {
	ObjectName string `json:"object_name" binding:"required"`
}

// AdminDeleteImage removes an image from the bucket.
func AdminDeleteImage(images *services.ImageService, activity *services.ActivityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if images == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Image storage is not available",
				},
			})
			return
		}

		var req DeleteImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "object_name is required",
				},
			})
			return
		}

		if err := images.Delete(c.Request.Context(), req.ObjectName); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to delete image",
				},
			})
			return
		}

		go func() {
			activity.Record(models.ActivityImageDeleted, req.ObjectName, nil)
		}()

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"deleted": req.ObjectName}})
	}
}
