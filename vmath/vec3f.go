package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World and body-local basis vectors
// Body frame: +Z forward, +Y up, +X right
var (
	WorldUp      = mgl64.Vec3{0, 1, 0}
	LocalForward = mgl64.Vec3{0, 0, 1}
	LocalUp      = mgl64.Vec3{0, 1, 0}
	LocalRight   = mgl64.Vec3{1, 0, 0}
)

// Epsilon is the tolerance used for zero-length checks
const Epsilon = 1e-9

// V3FClampMagnitude limits vector magnitude, direction preserved
func V3FClampMagnitude(v mgl64.Vec3, maxMag float64) mgl64.Vec3 {
	magSq := v.LenSqr()
	if magSq <= maxMag*maxMag {
		return v
	}
	return V3FNormalize(v).Mul(maxMag)
}

// V3FNormalize returns unit vector or zero vector for degenerate input
// mgl64 Normalize divides by zero length, this does not
func V3FNormalize(v mgl64.Vec3) mgl64.Vec3 {
	mag := v.Len()
	if mag < Epsilon {
		return mgl64.Vec3{}
	}
	inv := 1.0 / mag
	return mgl64.Vec3{v[0] * inv, v[1] * inv, v[2] * inv}
}

// V3FHorizontal drops the vertical component
func V3FHorizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// V3FLerp interpolates a to b by t, t clamped to [0,1]
func V3FLerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = Clamp01(t)
	return a.Add(b.Sub(a).Mul(t))
}

// V3FAngleDeg returns the unsigned angle between two vectors in degrees
func V3FAngleDeg(a, b mgl64.Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la < Epsilon || lb < Epsilon {
		return 0
	}
	cos := a.Dot(b) / (la * lb)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return mgl64.RadToDeg(math.Acos(cos))
}

// Clamp01 clamps t to [0,1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// ClampF clamps v to [lo,hi]
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LerpF interpolates scalars, t clamped to [0,1]
func LerpF(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}
