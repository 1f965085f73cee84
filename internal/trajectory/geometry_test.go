package trajectory

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	if d := Distance(NewVec2(0, 0), NewVec2(3, 4)); d != 5 {
		t.Errorf("Distance((0,0),(3,4)) = %v, want 5", d)
	}
	if d := Distance(NewVec2(7, -2), NewVec2(7, -2)); d != 0 {
		t.Errorf("Distance of a point to itself = %v, want 0", d)
	}
}

func TestAngleBetween(t *testing.T) {
	cases := []struct {
		a, b Vec2
		want float64
	}{
		{NewVec2(0, 0), NewVec2(1, 0), 0},
		{NewVec2(0, 0), NewVec2(0, 1), 90},   // y down: +y is clockwise from +x
		{NewVec2(0, 0), NewVec2(-1, 0), 180}, // atan2 convention: (-180, 180]
		{NewVec2(0, 0), NewVec2(0, -1), -90},
		{NewVec2(10, 10), NewVec2(20, 20), 45},
	}
	for _, c := range cases {
		if got := AngleBetween(c.a, c.b); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("AngleBetween(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0}, {359, 359}, {360, 0}, {540, 180}, {-90, 270}, {-360, 0}, {725, 5},
	}
	for _, c := range cases {
		if got := NormalizeAngle(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	if got := DegToRad(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("DegToRad(180) = %v, want pi", got)
	}
	for _, deg := range []float64{-135, 0, 33.3, 90, 720} {
		if got := RadToDeg(DegToRad(deg)); math.Abs(got-deg) > 1e-9 {
			t.Errorf("Round trip of %v degrees gave %v", deg, got)
		}
	}
}
