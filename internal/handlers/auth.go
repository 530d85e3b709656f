package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ivylu/wanderlog-api/internal/config"
	"github.com/ivylu/wanderlog-api/internal/middleware"
	"github.com/ivylu/wanderlog-api/internal/utils"
)

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AdminLogin verifies the shared admin password and issues a signed
// session cookie. The plaintext password from config is hashed once at
// startup so every login attempt goes through a constant-time bcrypt
// comparison.
func AdminLogin(cfg *config.Config) gin.HandlerFunc {
	passwordHash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	expiry, err := time.ParseDuration(cfg.AdminSessionExpiry)
	if err != nil {
		log.Printf("WARNING: invalid ADMIN_SESSION_EXPIRY %q, using 168h", cfg.AdminSessionExpiry)
		expiry = 168 * time.Hour
	}

	return func(c *gin.Context) {
		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "password is required",
				},
			})
			return
		}

		if cfg.AdminPassword == "" || !utils.VerifyPassword(passwordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid password",
				},
			})
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"admin": true,
			"iat":   time.Now().Unix(),
			"exp":   time.Now().Add(expiry).Unix(),
		})

		signed, err := token.SignedString([]byte(cfg.AdminSessionSecret))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "Failed to create session",
				},
			})
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.AdminSessionCookie, signed, int(expiry.Seconds()), "/", "", false, true)

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"admin": true}})
	}
}

// AdminLogout clears the session cookie.
func AdminLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(middleware.AdminSessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"admin": false}})
	}
}

// AdminSession reports whether the current request carries a valid
// admin session. Runs behind AdminOptional so it never rejects.
func AdminSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"admin": c.GetBool("is_admin")}})
	}
}
