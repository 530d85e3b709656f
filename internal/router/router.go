package router

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ivylu/wanderlog-api/internal/config"
	"github.com/ivylu/wanderlog-api/internal/handlers"
	"github.com/ivylu/wanderlog-api/internal/middleware"
	"github.com/ivylu/wanderlog-api/internal/services"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize Services
	imageService, err := services.NewImageService(cfg)
	if err != nil {
		log.Printf("Warning: Failed to initialize image service: %v", err)
	}

	contentService := services.NewContentService(cfg.ContentDir)
	searchService := services.NewSearchService(cfg)
	activityService := services.NewActivityService(db)
	emailService := services.NewEmailService(cfg)

	rateLimiter, err := middleware.NewRateLimiter(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to initialize rate limiter: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check endpoint
	r.GET("/health", handlers.HealthCheck(db))

	// API v1 routes
	api := r.Group("/api/v1")
	{
		// Comments
		comments := api.Group("/comments")
		{
			comments.GET("", handlers.ListComments(db))
			comments.POST("", limited(rateLimiter, 10, 3600), handlers.CreateComment(db, emailService))
			comments.PATCH("/:id", handlers.UpdateComment(db))
			comments.DELETE("/:id", middleware.AdminOptional(cfg), handlers.DeleteComment(db))
		}

		// Posts
		travelogues := api.Group("/travelogues")
		{
			travelogues.GET("", handlers.ListTravelogues(db))
			travelogues.GET("/:id", handlers.GetTravelogue(db))
			travelogues.GET("/:id/content", handlers.GetTravelogueContent(db, contentService))
			travelogues.GET("/:id/cover", handlers.GetTravelogueCover(db, cfg))
		}

		daily := api.Group("/daily-life")
		{
			daily.GET("", handlers.ListDailyLife(db))
			daily.GET("/:id", handlers.GetDailyLife(db))
			daily.GET("/:id/content", handlers.GetDailyLifeContent(db, contentService))
			daily.GET("/:id/cover", handlers.GetDailyLifeCover(db, cfg))
		}

		// Map
		api.GET("/map/trips", handlers.GetTrips())
		api.GET("/map/markers", handlers.GetMapMarkers())

		// Search
		api.GET("/search", handlers.SearchPosts(searchService))

		// Admin session
		api.POST("/admin/login", limited(rateLimiter, 5, 900), handlers.AdminLogin(cfg))
		api.POST("/admin/logout", handlers.AdminLogout())
		api.GET("/admin/session", middleware.AdminOptional(cfg), handlers.AdminSession())

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.AdminRequired(cfg))
		{
			// Comment moderation
			admin.GET("/comments", handlers.AdminListComments(db))
			admin.DELETE("/comments/:id", handlers.AdminDeleteComment(db, activityService))

			// Travelogue management
			admin.GET("/travelogues/:id", handlers.GetTravelogue(db))
			admin.PUT("/travelogues/:id", handlers.AdminUpdateTravelogue(db, searchService, activityService))
			admin.GET("/travelogues/:id/content", handlers.AdminGetTravelogueContent(contentService))
			admin.PUT("/travelogues/:id/content", handlers.AdminUpdateTravelogueContent(contentService, activityService))
			admin.PUT("/travelogues/:id/cover", handlers.AdminUpdateTravelogueCover(db, activityService))

			// Daily-life management
			admin.GET("/daily-life/:id", handlers.GetDailyLife(db))
			admin.PUT("/daily-life/:id", handlers.AdminUpdateDailyLife(db, searchService, activityService))
			admin.GET("/daily-life/:id/content", handlers.AdminGetDailyLifeContent(contentService))
			admin.PUT("/daily-life/:id/content", handlers.AdminUpdateDailyLifeContent(contentService, activityService))
			admin.PUT("/daily-life/:id/cover", handlers.AdminUpdateDailyLifeCover(db, activityService))

			// Images
			admin.POST("/images", handlers.AdminUploadImage(imageService, activityService))
			admin.GET("/images", handlers.AdminListImages(imageService))
			admin.DELETE("/images", handlers.AdminDeleteImage(imageService, activityService))

			// Search index
			admin.POST("/search/reindex", handlers.AdminReindexPosts(db, searchService))

			// Activities
			admin.GET("/activities/recent", handlers.AdminListActivities(activityService))
		}
	}

	return r
}

// limited applies an IP rate limit when Redis is available, and is a
// no-op passthrough when it is not.
func limited(rl *middleware.RateLimiter, maxRequests, window int) gin.HandlerFunc {
	if rl == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return rl.RateLimitByIP(maxRequests, window)
}
