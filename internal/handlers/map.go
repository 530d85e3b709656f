package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ivylu/wanderlog-api/internal/data"
)

// GetTrips returns the trip routes used by the travel map.
func GetTrips() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": data.Trips})
	}
}

// GetMapMarkers returns the standalone markers shown on the map.
func GetMapMarkers() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": data.MapMarkers})
	}
}
