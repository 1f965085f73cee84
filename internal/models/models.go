package models

import "time"

// PhysicsPreset is a named, persisted set of trajectory constants. Exactly
// one preset is active at a time; the active one feeds every prediction.
type PhysicsPreset struct {
	ID            int       `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	BallRadius    float64   `db:"ball_radius" json:"ball_radius"`
	Friction      float64   `db:"friction" json:"friction"`
	MinVelocity   float64   `db:"min_velocity" json:"min_velocity"`
	TimeStep      float64   `db:"time_step" json:"time_step"`
	MaxPoints     int       `db:"max_points" json:"max_points"`
	VelocityScale float64   `db:"velocity_scale" json:"velocity_scale"`
	Restitution   float64   `db:"restitution" json:"restitution"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// AdminAccount is an operator allowed to manage physics presets.
type AdminAccount struct {
	Username     string    `db:"username" json:"username"`
	DisplayName  string    `db:"display_name" json:"display_name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
