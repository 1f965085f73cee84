package trajectory

import "math"

// DefaultBounceAngleThreshold is the direction change, in degrees, above
// which an interior path point is flagged as a bounce marker.
const DefaultBounceAngleThreshold = 30.0

// DefaultSmoothingSpacing is the minimum distance between points kept by
// SmoothTrajectory.
const DefaultSmoothingSpacing = 10.0

// ExtractBouncePoints returns the interior points of a path where the
// bearing of the incoming and outgoing segments differs by more than
// threshold degrees (difference reduced to [0, 180]).
//
// This is a display heuristic re-derived from the geometry alone; it is
// independent of the simulator's true rail-contact bookkeeping and can
// both over- and under-count real collisions.
func ExtractBouncePoints(path Path, threshold float64) Path {
	bounces := Path{}
	if len(path) < 3 {
		return bounces
	}

	for i := 1; i <= len(path)-2; i++ {
		in := AngleBetween(path[i-1], path[i])
		out := AngleBetween(path[i], path[i+1])
		diff := math.Abs(out - in)
		if diff > 180 {
			diff = 360 - diff
		}
		if diff > threshold {
			bounces = append(bounces, path[i])
		}
	}
	return bounces
}

// SmoothTrajectory downsamples a path for rendering: the first point is
// always kept, later points only when at least spacing away from the last
// kept point, and the final point is always kept. Order is preserved and
// the result is never longer than the input.
func SmoothTrajectory(path Path, spacing float64) Path {
	if len(path) == 0 {
		return Path{}
	}

	smoothed := Path{path[0]}
	lastKept := path[0]

	for i := 1; i < len(path); i++ {
		if Distance(lastKept, path[i]) >= spacing || i == len(path)-1 {
			smoothed = append(smoothed, path[i])
			lastKept = path[i]
		}
	}
	return smoothed
}
