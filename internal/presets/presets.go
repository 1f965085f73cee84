package presets

import (
	"fmt"
	"log"

	"github.com/cueline/backend/internal/models"
	"github.com/cueline/backend/internal/trajectory"
	"github.com/jmoiron/sqlx"
)

// Config converts a stored preset into the trajectory engine's config object.
func Config(p *models.PhysicsPreset) trajectory.Config {
	return trajectory.Config{
		BallRadius:    p.BallRadius,
		Friction:      p.Friction,
		MinVelocity:   p.MinVelocity,
		TimeStep:      p.TimeStep,
		MaxPoints:     p.MaxPoints,
		VelocityScale: p.VelocityScale,
		Restitution:   p.Restitution,
	}
}

// List returns all presets, active first.
func List(db *sqlx.DB) ([]models.PhysicsPreset, error) {
	var presets []models.PhysicsPreset
	err := db.Select(&presets, `
		SELECT id, name, ball_radius, friction, min_velocity, time_step,
		       max_points, velocity_scale, restitution, is_active, created_at, updated_at
		FROM physics_presets
		ORDER BY is_active DESC, name
	`)
	return presets, err
}

// Get returns a single preset by id.
func Get(db *sqlx.DB, id int) (*models.PhysicsPreset, error) {
	var p models.PhysicsPreset
	err := db.Get(&p, `
		SELECT id, name, ball_radius, friction, min_velocity, time_step,
		       max_points, velocity_scale, restitution, is_active, created_at, updated_at
		FROM physics_presets WHERE id=$1
	`, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetActive returns the currently active preset.
func GetActive(db *sqlx.DB) (*models.PhysicsPreset, error) {
	var p models.PhysicsPreset
	err := db.Get(&p, `
		SELECT id, name, ball_radius, friction, min_velocity, time_step,
		       max_points, velocity_scale, restitution, is_active, created_at, updated_at
		FROM physics_presets WHERE is_active
	`)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new preset after validating its constants.
func Create(db *sqlx.DB, p *models.PhysicsPreset) error {
	if !Config(p).Valid() {
		return fmt.Errorf("preset %q has invalid physics constants", p.Name)
	}

	return db.Get(&p.ID, `
		INSERT INTO physics_presets
			(name, ball_radius, friction, min_velocity, time_step, max_points,
			 velocity_scale, restitution, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, NOW(), NOW())
		RETURNING id
	`, p.Name, p.BallRadius, p.Friction, p.MinVelocity, p.TimeStep,
		p.MaxPoints, p.VelocityScale, p.Restitution)
}

// Update rewrites the constants of an existing preset.
func Update(db *sqlx.DB, p *models.PhysicsPreset) error {
	if !Config(p).Valid() {
		return fmt.Errorf("preset %q has invalid physics constants", p.Name)
	}

	res, err := db.Exec(`
		UPDATE physics_presets
		SET name=$1, ball_radius=$2, friction=$3, min_velocity=$4, time_step=$5,
		    max_points=$6, velocity_scale=$7, restitution=$8, updated_at=NOW()
		WHERE id=$9
	`, p.Name, p.BallRadius, p.Friction, p.MinVelocity, p.TimeStep,
		p.MaxPoints, p.VelocityScale, p.Restitution, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("preset %d not found", p.ID)
	}
	return nil
}

// Activate makes the given preset the active one. The swap is transactional
// so there is never a moment with zero or two active presets.
func Activate(db *sqlx.DB, id int) error {
	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE physics_presets SET is_active=FALSE WHERE is_active`); err != nil {
		return err
	}
	res, err := tx.Exec(`UPDATE physics_presets SET is_active=TRUE, updated_at=NOW() WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("preset %d not found", id)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Printf("[PRESET] Activated preset %d", id)
	return nil
}

// Delete removes a preset. The active preset cannot be deleted.
func Delete(db *sqlx.DB, id int) error {
	res, err := db.Exec(`DELETE FROM physics_presets WHERE id=$1 AND NOT is_active`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("preset %d not found or is active", id)
	}
	return nil
}
