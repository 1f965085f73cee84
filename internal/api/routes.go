package api

import (
	"log"

	"github.com/cueline/backend/internal/api/handlers"
	"github.com/cueline/backend/internal/config"
	"github.com/cueline/backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *sqlx.DB, rdb *redis.Client, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))

	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			// Aggressive no-cache for development
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] Aggressive no-cache headers enabled for all routes")
	}

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", handlers.HealthCheck)

		// Client-facing physics constants
		v1.GET("/config", handlers.GetConfig(db, rdb, cfg))

		// One-shot trajectory prediction
		v1.POST("/predict", handlers.Predict(db, rdb, cfg))

		// Live aiming channel (one connection per drag session)
		v1.GET("/aim/ws", handlers.HandleAimWebSocket(db, rdb, cfg))

		// Preset management
		preset := v1.Group("/presets")
		{
			preset.GET("", handlers.ListPresets(db))
			preset.GET("/active", handlers.GetActivePreset(db))

			admin := preset.Group("")
			admin.Use(middleware.AdminAuth(cfg))
			{
				admin.POST("", handlers.CreatePreset(db))
				admin.PUT("/:id", handlers.UpdatePreset(db, rdb))
				admin.POST("/:id/activate", handlers.ActivatePreset(db, rdb))
				admin.DELETE("/:id", handlers.DeletePreset(db))
			}
		}

		// Admin session
		v1.POST("/admin/login", handlers.AdminLogin(db, cfg))
	}
}
