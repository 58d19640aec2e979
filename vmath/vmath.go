// Package vmath holds float64 3D helpers for rigid-body and steering math built on mgl64
package vmath

import "math"

// Rad2Deg converts radians to degrees, matches the integration factor used for trick scoring
const Rad2Deg = 180.0 / math.Pi

// RoundHalfAway rounds to nearest integer, halves away from zero
func RoundHalfAway(x float64) int {
	return int(math.Round(x))
}
