package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cueline/backend/internal/config"
	"github.com/cueline/backend/internal/presets"
	"github.com/cueline/backend/internal/trajectory"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// PredictRequest is the JSON body of POST /predict. MaxBounces is a
// pointer so an absent field gets the configured default while an explicit
// zero stays zero (a legitimate straight-line prediction).
type PredictRequest struct {
	Origin      trajectory.Vec2 `json:"origin"`
	AngleDeg    float64         `json:"angle_degrees"`
	Force       float64         `json:"force"`
	TableWidth  float64         `json:"table_width" binding:"required,gt=0"`
	TableHeight float64         `json:"table_height" binding:"required,gt=0"`
	MaxBounces  *int            `json:"max_bounces,omitempty"`
}

// PredictResponse carries the raw path, the downsampled guide line, the
// heuristic bounce markers, the simulator's true contact indices, and the
// stop reason.
type PredictResponse struct {
	Points       trajectory.Path       `json:"points"`
	Guide        trajectory.Path       `json:"guide"`
	BouncePoints trajectory.Path       `json:"bounce_points"`
	Contacts     []int                 `json:"contacts"`
	Reason       trajectory.StopReason `json:"reason"`
}

// Predict computes a full trajectory for one cue gesture
func Predict(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PredictRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		ctx := c.Request.Context()

		// Optional per-client rate limit, same SetNX pattern as session
		// throttling elsewhere.
		if rdb != nil && cfg.PredictRateLimitSeconds > 0 {
			key := fmt.Sprintf("predict_rate:%s", c.ClientIP())
			ok, err := rdb.SetNX(ctx, key, "1", time.Duration(cfg.PredictRateLimitSeconds)*time.Second).Result()
			if err == nil && !ok {
				c.JSON(http.StatusTooManyRequests, gin.H{"error": "prediction rate limit exceeded"})
				return
			}
		}

		maxBounces := cfg.DefaultMaxBounces
		if req.MaxBounces != nil {
			maxBounces = *req.MaxBounces
		}
		if maxBounces < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_bounces must be non-negative"})
			return
		}

		sim := trajectory.NewSimulator(presets.ConfigOrDefault(ctx, db, rdb, cfg))
		pred := sim.Predict(trajectory.LaunchRequest{
			Origin:       req.Origin,
			AngleDegrees: req.AngleDeg,
			Force:        req.Force,
			TableWidth:   req.TableWidth,
			TableHeight:  req.TableHeight,
			MaxBounces:   maxBounces,
		})

		if pred.Reason == trajectory.StopInvalidRequest {
			log.Printf("[PREDICT] Degenerate gesture from %s (force=%v angle=%v)", c.ClientIP(), req.Force, req.AngleDeg)
		}

		c.JSON(http.StatusOK, PredictResponse{
			Points:       pred.Points,
			Guide:        trajectory.SmoothTrajectory(pred.Points, trajectory.DefaultSmoothingSpacing),
			BouncePoints: trajectory.ExtractBouncePoints(pred.Points, trajectory.DefaultBounceAngleThreshold),
			Contacts:     pred.Contacts,
			Reason:       pred.Reason,
		})
	}
}
