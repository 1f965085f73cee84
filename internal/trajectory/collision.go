package trajectory

// StepResult is the outcome of resolving one proposed integration step
// against the table boundaries.
type StepResult struct {
	Collided bool
	Point    Vec2
	Velocity Vec2
}

// ResolveStep checks whether a proposed step would carry the ball's leading
// edge across any of the four rails and, if so, clamps the position to the
// boundary and reflects the offending velocity component.
//
// The horizontal and vertical checks are independent, so a corner approach
// can flip both axes in the same call. Reflection here preserves magnitude;
// restitution loss and bounce counting belong to the simulator. Pure
// function, no side effects.
func ResolveStep(current, proposed, velocity Vec2, width, height, radius float64) StepResult {
	res := StepResult{Point: proposed, Velocity: velocity}

	if proposed.X-radius <= 0 {
		res.Collided = true
		res.Point.X = radius
		if res.Velocity.X < 0 {
			res.Velocity.X = -res.Velocity.X
		}
	} else if proposed.X+radius >= width {
		res.Collided = true
		res.Point.X = width - radius
		if res.Velocity.X > 0 {
			res.Velocity.X = -res.Velocity.X
		}
	}

	if proposed.Y-radius <= 0 {
		res.Collided = true
		res.Point.Y = radius
		if res.Velocity.Y < 0 {
			res.Velocity.Y = -res.Velocity.Y
		}
	} else if proposed.Y+radius >= height {
		res.Collided = true
		res.Point.Y = height - radius
		if res.Velocity.Y > 0 {
			res.Velocity.Y = -res.Velocity.Y
		}
	}

	return res
}
