package trajectory

// Config holds the physics constants for trajectory prediction. One Config
// is shared process-wide per simulator; it is never changed per request.
// Every derived quantity (stopping distance, bounce count for a given
// force) depends on all of these jointly, so they travel as one object.
type Config struct {
	BallRadius    float64 `json:"ball_radius"`
	Friction      float64 `json:"friction"`       // per-step velocity multiplier, 0 < f < 1
	MinVelocity   float64 `json:"min_velocity"`   // stopping threshold (speed per step)
	TimeStep      float64 `json:"time_step"`      // integration granularity
	MaxPoints     int     `json:"max_points"`     // hard cap on path length
	VelocityScale float64 `json:"velocity_scale"` // maps force onto initial speed
	Restitution   float64 `json:"restitution"`    // velocity retained per rail bounce
}

// DefaultMaxBounces is the bounce budget applied when a request leaves it unset.
const DefaultMaxBounces = 10

// DefaultConfig returns the stock physics constants tuned for a 0-100 force
// scale on tables a few hundred units across.
func DefaultConfig() Config {
	return Config{
		BallRadius:    8,
		Friction:      0.985,
		MinVelocity:   0.5,
		TimeStep:      1.0,
		MaxPoints:     1000,
		VelocityScale: 0.5,
		Restitution:   0.92,
	}
}

// Valid reports whether the constants are usable for simulation.
func (c Config) Valid() bool {
	return c.BallRadius > 0 &&
		c.Friction > 0 && c.Friction < 1 &&
		c.MinVelocity > 0 &&
		c.TimeStep > 0 &&
		c.MaxPoints > 0 &&
		c.VelocityScale > 0 &&
		c.Restitution > 0 && c.Restitution <= 1
}
