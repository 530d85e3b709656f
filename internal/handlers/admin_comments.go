package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ivylu/wanderlog-api/internal/models"
	"github.com/ivylu/wanderlog-api/internal/services"
)

// AdminListComments returns the whole board for moderation, newest first.
func AdminListComments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var list []models.Comment
		if result := db.Order("created_at desc").Find(&list); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to fetch comments",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
	}
}

// AdminDeleteComment removes any comment and its direct replies, no
// session token needed. Sits behind AdminRequired.
func AdminDeleteComment(db *gorm.DB, activity *services.ActivityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		commentID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "Invalid comment ID",
				},
			})
			return
		}

		var comment models.Comment
		if err := db.First(&comment, "id = ?", commentID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Comment not found",
				},
			})
			return
		}

		result := db.Where("id = ? OR parent_id = ?", commentID, commentID).Delete(&models.Comment{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to delete comment",
				},
			})
			return
		}

		go func() {
			activity.Record(models.ActivityCommentDeleted, commentID.String(), map[string]interface{}{
				"deleted": result.RowsAffected,
				"author":  comment.Name,
			})
		}()

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    gin.H{"deleted": result.RowsAffected},
		})
	}
}
