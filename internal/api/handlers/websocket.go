package handlers

import (
	"github.com/cueline/backend/internal/config"
	"github.com/cueline/backend/internal/ws"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// HandleAimWebSocket handles the live aiming channel
func HandleAimWebSocket(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return ws.HandleAiming(db, rdb, cfg)
}
