package presets

import (
	"context"
	"log"

	"github.com/cueline/backend/internal/config"
	"github.com/cueline/backend/internal/trajectory"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// ConfigOrDefault returns the active preset's physics config, falling back
// to the env-configured defaults when the store is unreachable or empty.
// Predictions must keep working even when Postgres is down.
func ConfigOrDefault(ctx context.Context, db *sqlx.DB, rdb *redis.Client, cfg *config.Config) trajectory.Config {
	if db != nil {
		if p, err := ActiveConfig(ctx, db, rdb); err == nil {
			return Config(p)
		} else {
			log.Printf("[PRESET] Falling back to env defaults: %v", err)
		}
	}

	fallback := trajectory.Config{
		BallRadius:    cfg.BallRadius,
		Friction:      cfg.Friction,
		MinVelocity:   cfg.MinVelocity,
		TimeStep:      cfg.TimeStep,
		MaxPoints:     cfg.MaxPoints,
		VelocityScale: cfg.VelocityScale,
		Restitution:   cfg.Restitution,
	}
	if !fallback.Valid() {
		return trajectory.DefaultConfig()
	}
	return fallback
}
