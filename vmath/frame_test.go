package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestAxesIdentity(t *testing.T) {
	q := mgl64.QuatIdent()
	assert.InDelta(t, 1.0, Forward(q).Dot(LocalForward), 1e-12)
	assert.InDelta(t, 1.0, Up(q).Dot(WorldUp), 1e-12)
	assert.InDelta(t, 1.0, Right(q).Dot(LocalRight), 1e-12)
}

func TestYawRotationTurnsForwardTowardRight(t *testing.T) {
	q := YawRotation(90)
	f := Forward(q)
	assert.InDelta(t, 1.0, f[0], 1e-9)
	assert.InDelta(t, 0.0, f[2], 1e-9)
	assert.InDelta(t, 90.0, HeadingDeg(f), 1e-9)
}

func TestHeadingDegQuadrants(t *testing.T) {
	tests := []struct {
		name    string
		forward mgl64.Vec3
		want    float64
	}{
		{"forward", mgl64.Vec3{0, 0, 1}, 0},
		{"right", mgl64.Vec3{1, 0, 0}, 90},
		{"left", mgl64.Vec3{-1, 0, 0}, -90},
		{"back", mgl64.Vec3{0, 0, -1}, 180},
		{"pitched diagonal", mgl64.Vec3{1, 5, 1}, 45},
		{"straight up", mgl64.Vec3{0, 1, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, HeadingDeg(tt.forward), 1e-9)
		})
	}
}

func TestLocalWorldRoundTrip(t *testing.T) {
	q := YawRotation(37).Mul(mgl64.QuatRotate(0.3, LocalRight))
	v := mgl64.Vec3{1.5, -2, 0.25}
	back := ToWorld(q, ToLocal(q, v))
	assert.True(t, back.ApproxEqualThreshold(v, 1e-9), "got %v", back)
}

func TestRotateAroundPivot(t *testing.T) {
	pos := mgl64.Vec3{0, 0, 0}
	pivot := mgl64.Vec3{0, 0, 1}
	newPos, newOrient := RotateAround(pos, mgl64.QuatIdent(), pivot, YawRotation(90))

	// Center swings around the pivot: (0,0,0) - (0,0,1) = (0,0,-1) rotated 90 -> (-1,0,0)
	assert.True(t, newPos.ApproxEqualThreshold(mgl64.Vec3{-1, 0, 1}, 1e-9), "got %v", newPos)
	assert.InDelta(t, 90.0, HeadingDeg(Forward(newOrient)), 1e-9)
}

func TestClampMagnitude(t *testing.T) {
	tests := []struct {
		name string
		in   mgl64.Vec3
		max  float64
		want float64
	}{
		{"below", mgl64.Vec3{3, 0, 0}, 5, 3},
		{"equal", mgl64.Vec3{0, 5, 0}, 5, 5},
		{"above", mgl64.Vec3{0, 30, 40}, 5, 5},
		{"zero", mgl64.Vec3{}, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, V3FClampMagnitude(tt.in, tt.max).Len(), 1e-12)
		})
	}
}

func TestNormalizeZero(t *testing.T) {
	n := V3FNormalize(mgl64.Vec3{})
	assert.False(t, math.IsNaN(n[0]))
	assert.Equal(t, mgl64.Vec3{}, n)
}

func TestAngleDeg(t *testing.T) {
	assert.InDelta(t, 90.0, V3FAngleDeg(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1}), 1e-9)
	assert.InDelta(t, 0.0, V3FAngleDeg(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}), 1e-9)
}

func TestTilt(t *testing.T) {
	assert.InDelta(t, 1.0, Tilt(mgl64.QuatIdent()), 1e-12)
	assert.InDelta(t, -1.0, Tilt(mgl64.QuatRotate(math.Pi, LocalForward)), 1e-9)
	assert.InDelta(t, 0.5, Tilt(mgl64.QuatRotate(math.Pi/3, LocalForward)), 1e-9)
}
