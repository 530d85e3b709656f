package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ivylu/wanderlog-api/internal/config"
)

// AdminSessionCookie carries the signed admin session token issued at
// login.
const AdminSessionCookie = "admin_session"

func parseAdminToken(cfg *config.Config, tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.AdminSessionSecret), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	admin, ok := claims["admin"].(bool)
	return ok && admin
}

// AdminRequired rejects requests without a valid admin session cookie.
func AdminRequired(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(AdminSessionCookie)
		if err != nil || !parseAdminToken(cfg, tokenString) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Admin access required",
				},
			})
			c.Abort()
			return
		}

		c.Set("is_admin", true)
		c.Next()
	}
}

// AdminOptional resolves the admin flag without gating the request. Public
// comment deletion uses it: the flag feeds the ownership policy alongside
// the session token.
func AdminOptional(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, err := c.Cookie(AdminSessionCookie); err == nil {
			c.Set("is_admin", parseAdminToken(cfg, tokenString))
		}
		c.Next()
	}
}
