package handlers

import (
	"net/http"

	"github.com/cueline/backend/internal/config"
	"github.com/cueline/backend/internal/presets"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// GetConfig returns the physics constants the client renderer needs to
// draw the ball and guide line consistently with the server's predictions
func GetConfig(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		phys := presets.ConfigOrDefault(c.Request.Context(), db, rdb, cfg)
		c.JSON(http.StatusOK, gin.H{
			"ball_radius":         phys.BallRadius,
			"friction":            phys.Friction,
			"min_velocity":        phys.MinVelocity,
			"time_step":           phys.TimeStep,
			"max_points":          phys.MaxPoints,
			"velocity_scale":      phys.VelocityScale,
			"restitution":         phys.Restitution,
			"default_max_bounces": cfg.DefaultMaxBounces,
		})
	}
}
