package trajectory

import "math"

// LaunchRequest describes one cue gesture: where the ball starts, the
// direction and strength of the shot, and the table it plays on.
// Angle 0 points along +x; positive angles turn clockwise in screen
// space since y grows downward. Force is on the caller's 0-100 scale.
type LaunchRequest struct {
	Origin       Vec2    `json:"origin"`
	AngleDegrees float64 `json:"angle_degrees"`
	Force        float64 `json:"force"`
	TableWidth   float64 `json:"table_width"`
	TableHeight  float64 `json:"table_height"`
	MaxBounces   int     `json:"max_bounces"`
}

// Path is the predicted sequence of ball positions, in time order. The
// first element is the launch origin; it is empty for invalid requests.
type Path []Vec2

// StopReason says why a prediction ended. All reasons except
// StopInvalidRequest are normal outcomes, not errors.
type StopReason string

const (
	StopInvalidRequest StopReason = "invalid_request"
	StopVelocityDecay  StopReason = "velocity_decay"
	StopBounceBudget   StopReason = "bounce_budget"
	StopPointCap       StopReason = "point_cap"
)

// Prediction is the full result of one simulation: the path, the indices
// of points where the ball actually contacted a rail, and the stop reason.
// Contacts is the simulator's own bookkeeping and is distinct from the
// geometric bounce-point heuristic in ExtractBouncePoints.
type Prediction struct {
	Points   Path       `json:"points"`
	Contacts []int      `json:"contacts"`
	Reason   StopReason `json:"reason"`
}

// Simulator predicts cue-ball trajectories. It holds an immutable Config
// and no other state, so one Simulator is safe to share across
// goroutines; every call works on its own locals.
type Simulator struct {
	cfg Config
}

func NewSimulator(cfg Config) *Simulator {
	return &Simulator{cfg: cfg}
}

func (s *Simulator) Config() Config {
	return s.cfg
}

// Simulate returns just the predicted path. See Predict for contacts and
// the stop reason.
func (s *Simulator) Simulate(req LaunchRequest) Path {
	return s.Predict(req).Points
}

// Predict integrates the ball from the launch state until it slows below
// the stopping threshold, spends its bounce budget, or hits the point cap.
//
// Invalid gestures (force <= 0 or non-finite force/angle) yield an empty
// path rather than an error: no guide line is the correct rendering of a
// shot that cannot happen. Deterministic for identical request and config.
func (s *Simulator) Predict(req LaunchRequest) Prediction {
	if req.Force <= 0 || math.IsNaN(req.Force) || math.IsInf(req.Force, 0) ||
		math.IsNaN(req.AngleDegrees) || math.IsInf(req.AngleDegrees, 0) {
		return Prediction{Points: Path{}, Contacts: []int{}, Reason: StopInvalidRequest}
	}

	maxBounces := req.MaxBounces
	if maxBounces < 0 {
		maxBounces = 0
	}

	angleRad := DegToRad(req.AngleDegrees)
	speed := req.Force * s.cfg.VelocityScale
	vel := Vec2{X: math.Cos(angleRad) * speed, Y: math.Sin(angleRad) * speed}
	pos := req.Origin

	points := Path{pos}
	// Contacts can never outnumber recorded points, so the allocation
	// hint is capped: an arbitrarily large budget is still a valid request.
	hint := maxBounces
	if hint > s.cfg.MaxPoints {
		hint = s.cfg.MaxPoints
	}
	contacts := make([]int, 0, hint)
	bounces := 0
	reason := StopPointCap

	for len(points) < s.cfg.MaxPoints {
		next := pos.Plus(vel.Times(s.cfg.TimeStep))
		step := ResolveStep(pos, next, vel, req.TableWidth, req.TableHeight, s.cfg.BallRadius)

		if step.Collided {
			if bounces >= maxBounces {
				reason = StopBounceBudget
				break
			}
			pos = step.Point
			vel = step.Velocity.Times(s.cfg.Restitution)
			bounces++
		} else {
			pos = next
		}

		// Friction exactly once per iteration, after any restitution.
		vel = vel.Times(s.cfg.Friction)

		if vel.Magnitude() < s.cfg.MinVelocity {
			// The sub-threshold point is deliberately not appended: the
			// guide line ends at the last position that was still moving.
			reason = StopVelocityDecay
			break
		}

		points = append(points, pos)
		if step.Collided {
			contacts = append(contacts, len(points)-1)
		}
	}

	return Prediction{Points: points, Contacts: contacts, Reason: reason}
}
