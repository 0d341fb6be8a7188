package gamemath

import "math"

// IsDegenerateStep reports whether dt should be skipped instead of integrated.
// NaN, infinities and steps no longer than minStep would poison the state.
func IsDegenerateStep(dt, minStep float64) bool {
	return math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= minStep
}

// FallDelta returns the vertical displacement of a body falling at a constant
// gravity-scaled rate for one tick.
func FallDelta(gravity, dt, multiplier float64) float64 {
	return gravity * dt * multiplier
}

// Within reports whether elapsed time since ts is inside window (inclusive).
func Within(now, ts, window float64) bool {
	return now-ts <= window
}

// Before reports whether elapsed time since ts is strictly less than window.
func Before(now, ts, window float64) bool {
	return now-ts < window
}
