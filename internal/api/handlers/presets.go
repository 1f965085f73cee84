package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"github.com/cueline/backend/internal/models"
	"github.com/cueline/backend/internal/presets"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// ListPresets returns all stored physics presets
func ListPresets(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := presets.List(db)
		if err != nil {
			log.Printf("[PRESET] List failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list presets"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"presets": list})
	}
}

// GetActivePreset returns the preset currently feeding predictions
func GetActivePreset(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := presets.GetActive(db)
		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusNotFound, gin.H{"error": "no active preset"})
				return
			}
			log.Printf("[PRESET] GetActive failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load active preset"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

type presetBody struct {
	Name          string  `json:"name" binding:"required"`
	BallRadius    float64 `json:"ball_radius"`
	Friction      float64 `json:"friction"`
	MinVelocity   float64 `json:"min_velocity"`
	TimeStep      float64 `json:"time_step"`
	MaxPoints     int     `json:"max_points"`
	VelocityScale float64 `json:"velocity_scale"`
	Restitution   float64 `json:"restitution"`
}

func (b presetBody) model() models.PhysicsPreset {
	return models.PhysicsPreset{
		Name:          b.Name,
		BallRadius:    b.BallRadius,
		Friction:      b.Friction,
		MinVelocity:   b.MinVelocity,
		TimeStep:      b.TimeStep,
		MaxPoints:     b.MaxPoints,
		VelocityScale: b.VelocityScale,
		Restitution:   b.Restitution,
	}
}

// CreatePreset inserts a new inactive preset
func CreatePreset(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body presetBody
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preset body"})
			return
		}

		p := body.model()
		if err := presets.Create(db, &p); err != nil {
			log.Printf("[PRESET] Create %q failed: %v", body.Name, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// UpdatePreset rewrites the constants of an existing preset
func UpdatePreset(db *sqlx.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preset id"})
			return
		}

		var body presetBody
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preset body"})
			return
		}

		p := body.model()
		p.ID = id
		if err := presets.Update(db, &p); err != nil {
			log.Printf("[PRESET] Update %d failed: %v", id, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// The edited preset may be the active one.
		presets.InvalidateCache(c.Request.Context(), rdb)
		c.JSON(http.StatusOK, p)
	}
}

// ActivatePreset switches which preset feeds predictions
func ActivatePreset(db *sqlx.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preset id"})
			return
		}

		if err := presets.Activate(db, id); err != nil {
			log.Printf("[PRESET] Activate %d failed: %v", id, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		presets.InvalidateCache(c.Request.Context(), rdb)
		admin := c.GetString("admin_username")
		log.Printf("[PRESET] Preset %d activated by %s", id, admin)
		c.JSON(http.StatusOK, gin.H{"activated": id})
	}
}

// DeletePreset removes an inactive preset
func DeletePreset(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preset id"})
			return
		}

		if err := presets.Delete(db, id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": id})
	}
}
