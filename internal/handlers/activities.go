package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ivylu/wanderlog-api/internal/services"
)

// AdminListActivities returns the most recent admin-area mutations.
func AdminListActivities(activity *services.ActivityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 20
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > 100 {
				c.JSON(http.StatusBadRequest, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "VALIDATION_ERROR",
						"message": "limit must be between 1 and 100",
					},
				})
				return
			}
			limit = parsed
		}

		activities, err := activity.GetRecent(limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to fetch activities",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": activities})
	}
}
