package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Forward returns the body forward axis in world space
func Forward(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(LocalForward)
}

// Up returns the body up axis in world space
func Up(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(LocalUp)
}

// Right returns the body right axis in world space
func Right(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(LocalRight)
}

// ToLocal expresses a world direction in the body frame of q
func ToLocal(q mgl64.Quat, v mgl64.Vec3) mgl64.Vec3 {
	return q.Conjugate().Rotate(v)
}

// ToWorld expresses a body-frame direction in world space
func ToWorld(q mgl64.Quat, v mgl64.Vec3) mgl64.Vec3 {
	return q.Rotate(v)
}

// YawRotation returns a rotation of deg degrees about world up
// Positive angles turn +Z toward +X
func YawRotation(deg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(deg), WorldUp)
}

// RotateAround rotates a pose (position, orientation) around pivot by rot
// Returns the new position and orientation
func RotateAround(pos mgl64.Vec3, orient mgl64.Quat, pivot mgl64.Vec3, rot mgl64.Quat) (mgl64.Vec3, mgl64.Quat) {
	offset := pos.Sub(pivot)
	newPos := pivot.Add(rot.Rotate(offset))
	newOrient := rot.Mul(orient).Normalize()
	return newPos, newOrient
}

// Tilt returns the cosine between the body up axis and world up
// 1 = flat, 0 = on edge, -1 = upside down
func Tilt(q mgl64.Quat) float64 {
	return Up(q).Dot(WorldUp)
}

// HeadingDeg returns the yaw of the horizontal projection of forward in degrees
// 0 = +Z, 90 = +X
func HeadingDeg(forward mgl64.Vec3) float64 {
	h := V3FHorizontal(forward)
	if h.LenSqr() < Epsilon {
		return 0
	}
	return mgl64.RadToDeg(math.Atan2(h[0], h[2]))
}
