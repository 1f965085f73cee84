package presets

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/cueline/backend/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

const (
	activeCacheKey = "preset:active"
	activeCacheTTL = 5 * time.Minute
)

// ActiveConfig returns the physics config of the active preset, reading
// through a Redis cache so per-aim-frame lookups do not hit Postgres.
// Falls back to the DB on any cache error.
func ActiveConfig(ctx context.Context, db *sqlx.DB, rdb *redis.Client) (*models.PhysicsPreset, error) {
	if rdb != nil {
		if data, err := rdb.Get(ctx, activeCacheKey).Bytes(); err == nil {
			var p models.PhysicsPreset
			if err := json.Unmarshal(data, &p); err == nil {
				return &p, nil
			}
			log.Printf("[PRESET] Corrupt cache entry, falling back to DB")
		}
	}

	p, err := GetActive(db)
	if err != nil {
		return nil, err
	}

	if rdb != nil {
		if data, err := json.Marshal(p); err == nil {
			if err := rdb.Set(ctx, activeCacheKey, data, activeCacheTTL).Err(); err != nil {
				log.Printf("[PRESET] Failed to cache active preset: %v", err)
			}
		}
	}
	return p, nil
}

// InvalidateCache drops the cached active preset. Called after any preset
// mutation so the next prediction sees fresh constants.
func InvalidateCache(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, activeCacheKey).Err(); err != nil {
		log.Printf("[PRESET] Failed to invalidate preset cache: %v", err)
	}
}
