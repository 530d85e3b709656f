package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ivylu/wanderlog-api/internal/comments"
	"github.com/ivylu/wanderlog-api/internal/models"
	"github.com/ivylu/wanderlog-api/internal/services"
	"github.com/ivylu/wanderlog-api/internal/utils"
)

type CreateCommentRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Message  string     `json:"message"`
	ParentID *uuid.UUID `json:"parent_id"`
}

type UpdateCommentRequest struct {
	SessionID string  `json:"session_id" binding:"required"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Message   string  `json:"message"`
}

type DeleteCommentRequest struct {
	SessionID string `json:"session_id"`
}

// ListComments returns the full board, newest first. With ?view=threaded
// the flat list is grouped into top-level comments and their direct
// replies.
func ListComments(db *gorm.DB) gin.HandlerFunc {
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

		if c.Query("view") == "threaded" {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": comments.BuildThread(list)})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
	}
}

// CreateComment validates and stores a new comment. The server assigns the
// id, timestamp, and session token; the token comes back to the caller
// once so the browser can prove authorship later.
func CreateComment(db *gorm.DB, email *services.EmailService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCommentRequest
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

		normalized, err := comments.Validate(comments.Input{
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": err.Error(),
				},
			})
			return
		}

		sessionID, err := utils.GenerateSecureToken(24)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to create comment",
				},
			})
			return
		}

		comment := models.Comment{
			Name:       normalized.Name,
			Email:      normalized.Email,
			Message:    normalized.Message,
			ParentID:   req.ParentID,
			SessionID:  sessionID,
			IsApproved: true,
		}

		if result := db.Create(&comment); result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to save comment",
				},
			})
			return
		}

		// Notify the owner (best effort)
		if email.Enabled() {
			go func(saved models.Comment) {
				if err := email.NotifyNewComment(saved); err != nil {
					log.Printf("Failed to send comment notification: %v", err)
				}
			}(comment)
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":    true,
			"data":       comment,
			"session_id": sessionID,
		})
	}
}

// UpdateComment edits message/name/email of an existing comment. Only the
// original session may edit; admins get no override here.
func UpdateComment(db *gorm.DB) gin.HandlerFunc {
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

		var req UpdateCommentRequest
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

		if !comments.CanEdit(comment.SessionID, req.SessionID) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Not authorized to edit this comment",
				},
			})
			return
		}

		// Omitted name/email keep their stored values.
		name := comment.Name
		if req.Name != nil {
			name = *req.Name
		}
		emailAddr := comment.Email
		if req.Email != nil {
			emailAddr = *req.Email
		}

		normalized, err := comments.Validate(comments.Input{
			Name:    name,
			Email:   emailAddr,
			Message: req.Message,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": err.Error(),
				},
			})
			return
		}

		comment.Name = normalized.Name
		comment.Email = normalized.Email
		comment.Message = normalized.Message

		if err := db.Save(&comment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to update comment",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": comment})
	}
}

// DeleteComment removes a comment and its direct replies. The original
// session or an admin may delete; the admin flag is resolved by the
// AdminOptional middleware from the session cookie.
func DeleteComment(db *gorm.DB) gin.HandlerFunc {
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

		var req DeleteCommentRequest
		// Body is optional for admins
		_ = c.ShouldBindJSON(&req)

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

		if !comments.CanDelete(comment.SessionID, req.SessionID, c.GetBool("is_admin")) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Not authorized to delete this comment",
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

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    gin.H{"deleted": result.RowsAffected},
		})
	}
}
