package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivylu/wanderlog-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{AdminSessionSecret: "test_secret"}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func adminTestRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", AdminRequired(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": c.GetBool("is_admin")})
	})
	r.GET("/optional", AdminOptional(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": c.GetBool("is_admin")})
	})
	return r
}

func request(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRequired(t *testing.T) {
	cfg := testConfig()
	r := adminTestRouter(cfg)

	t.Run("valid session passes", func(t *testing.T) {
		token := signToken(t, cfg.AdminSessionSecret, jwt.MapClaims{
			"admin": true,
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		w := request(r, "/admin", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"admin":true`)
	})

	t.Run("missing cookie rejected", func(t *testing.T) {
		w := request(r, "/admin", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		w := request(r, "/admin", "not-a-jwt")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token := signToken(t, cfg.AdminSessionSecret, jwt.MapClaims{
			"admin": true,
			"exp":   time.Now().Add(-time.Hour).Unix(),
		})
		w := request(r, "/admin", token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token := signToken(t, "other_secret", jwt.MapClaims{
			"admin": true,
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		w := request(r, "/admin", token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("token without admin claim rejected", func(t *testing.T) {
		token := signToken(t, cfg.AdminSessionSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		w := request(r, "/admin", token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAdminOptional(t *testing.T) {
	cfg := testConfig()
	r := adminTestRouter(cfg)

	t.Run("valid session sets flag", func(t *testing.T) {
		token := signToken(t, cfg.AdminSessionSecret, jwt.MapClaims{
			"admin": true,
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		w := request(r, "/optional", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"admin":true`)
	})

	t.Run("no cookie still passes", func(t *testing.T) {
		w := request(r, "/optional", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"admin":false`)
	})

	t.Run("bad token still passes without flag", func(t *testing.T) {
		w := request(r, "/optional", "not-a-jwt")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"admin":false`)
	})
}
