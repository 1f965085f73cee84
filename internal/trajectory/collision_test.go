package trajectory

import "testing"

func TestResolveStepNoCollision(t *testing.T) {
	cur := NewVec2(50, 50)
	next := NewVec2(60, 55)
	vel := NewVec2(10, 5)

	res := ResolveStep(cur, next, vel, 300, 150, 8)

	if res.Collided {
		t.Error("Mid-table step should not collide")
	}
	if !res.Point.IsEqualTo(next) {
		t.Errorf("Point should pass through unchanged: got %v", res.Point)
	}
	if !res.Velocity.IsEqualTo(vel) {
		t.Errorf("Velocity should pass through unchanged: got %v", res.Velocity)
	}
}

func TestResolveStepRightWall(t *testing.T) {
	cur := NewVec2(285, 75)
	next := NewVec2(298, 75)
	vel := NewVec2(13, 0)

	res := ResolveStep(cur, next, vel, 300, 150, 8)

	if !res.Collided {
		t.Fatal("Expected collision with right wall")
	}
	if res.Point.X != 292 {
		t.Errorf("X should clamp to width-radius=292, got %v", res.Point.X)
	}
	if res.Velocity.X != -13 {
		t.Errorf("vx should reflect to -13, got %v", res.Velocity.X)
	}
	if res.Velocity.Y != 0 {
		t.Errorf("vy should be untouched, got %v", res.Velocity.Y)
	}
}

func TestResolveStepLeftWall(t *testing.T) {
	res := ResolveStep(NewVec2(12, 40), NewVec2(3, 40), NewVec2(-9, 0), 300, 150, 8)

	if !res.Collided {
		t.Fatal("Expected collision with left wall")
	}
	if res.Point.X != 8 {
		t.Errorf("X should clamp to radius=8, got %v", res.Point.X)
	}
	if res.Velocity.X != 9 {
		t.Errorf("vx should point back into the table (+9), got %v", res.Velocity.X)
	}
}

func TestResolveStepTopAndBottomWalls(t *testing.T) {
	top := ResolveStep(NewVec2(100, 10), NewVec2(100, 2), NewVec2(0, -8), 300, 150, 8)
	if !top.Collided || top.Point.Y != 8 || top.Velocity.Y != 8 {
		t.Errorf("Top wall: got point=%v vel=%v", top.Point, top.Velocity)
	}

	bottom := ResolveStep(NewVec2(100, 140), NewVec2(100, 148), NewVec2(0, 8), 300, 150, 8)
	if !bottom.Collided || bottom.Point.Y != 142 || bottom.Velocity.Y != -8 {
		t.Errorf("Bottom wall: got point=%v vel=%v", bottom.Point, bottom.Velocity)
	}
}

func TestResolveStepCornerFlipsBothAxes(t *testing.T) {
	// Shallow approach into the bottom-right corner crosses both
	// boundaries in one step.
	res := ResolveStep(NewVec2(288, 138), NewVec2(297, 147), NewVec2(9, 9), 300, 150, 8)

	if !res.Collided {
		t.Fatal("Expected corner collision")
	}
	if res.Point.X != 292 || res.Point.Y != 142 {
		t.Errorf("Both axes should clamp: got %v", res.Point)
	}
	if res.Velocity.X != -9 || res.Velocity.Y != -9 {
		t.Errorf("Both velocity components should reflect: got %v", res.Velocity)
	}
}

func TestResolveStepPreservesMagnitude(t *testing.T) {
	vel := NewVec2(11, -3)
	res := ResolveStep(NewVec2(286, 75), NewVec2(297, 72), vel, 300, 150, 8)

	if !res.Collided {
		t.Fatal("Expected collision")
	}
	// Reflection only changes sign; restitution is the simulator's job.
	if res.Velocity.Magnitude() != vel.Magnitude() {
		t.Errorf("Reflection should preserve speed: %v vs %v",
			res.Velocity.Magnitude(), vel.Magnitude())
	}
}
