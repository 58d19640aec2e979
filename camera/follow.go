// Package camera implements the chase camera that trails a board
// The camera only reads the board; it never mutates simulation state
package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-skate/parameter"
	"github.com/lixenwraith/vi-skate/vmath"
)

// Params tunes the chase camera
type Params struct {
	OffsetY           float64 `mapstructure:"offset_y"`
	OffsetZ           float64 `mapstructure:"offset_z"`
	SmoothSpeed       float64 `mapstructure:"smooth_speed"`
	LookHeight        float64 `mapstructure:"look_height"`
	HeadingMinSpeedSq float64 `mapstructure:"heading_min_speed_sq"`
	IdleSideBias      float64 `mapstructure:"idle_side_bias"`
}

// DefaultParams returns the stock camera tuning
func DefaultParams() Params {
	return Params{
		OffsetY:           parameter.CameraOffsetY,
		OffsetZ:           parameter.CameraOffsetZ,
		SmoothSpeed:       parameter.CameraSmoothSpeed,
		LookHeight:        parameter.CameraLookHeight,
		HeadingMinSpeedSq: parameter.CameraHeadingMinSpeedSq,
		IdleSideBias:      parameter.CameraIdleSideBias,
	}
}

// Target is the read-only view of the followed body
type Target interface {
	Position() mgl64.Vec3
	LinearVelocity() mgl64.Vec3
	Forward() mgl64.Vec3
	Right() mgl64.Vec3
}

// Follow is a chase camera
type Follow struct {
	params Params
	target Target

	position mgl64.Vec3
	lookAt   mgl64.Vec3
	heading  float64 // degrees, 0 = +Z
}

// NewFollow creates a camera snapped to its desired pose behind target
func NewFollow(target Target, params Params) *Follow {
	f := &Follow{params: params, target: target}
	f.position = f.desired()
	f.lookAt = f.lookTarget()
	return f
}

// Update moves the camera toward its desired pose by SmoothSpeed*dt of the remaining distance
func (f *Follow) Update(dt float64) {
	if dt <= 0 {
		return
	}
	f.position = vmath.V3FLerp(f.position, f.desired(), vmath.Clamp01(f.params.SmoothSpeed*dt))
	f.lookAt = f.lookTarget()
}

// Position returns the camera position
func (f *Follow) Position() mgl64.Vec3 { return f.position }

// LookAt returns the point the camera faces
func (f *Follow) LookAt() mgl64.Vec3 { return f.lookAt }

// Heading returns the yaw (deg) used for the last desired pose
func (f *Follow) Heading() float64 { return f.heading }

// Forward returns the unit view direction
func (f *Follow) Forward() mgl64.Vec3 {
	return vmath.V3FNormalize(f.lookAt.Sub(f.position))
}

// desired is target + yaw(heading) * offset
func (f *Follow) desired() mgl64.Vec3 {
	f.heading = vmath.HeadingDeg(f.facing())
	offset := mgl64.Vec3{0, f.params.OffsetY, f.params.OffsetZ}
	return f.target.Position().Add(vmath.YawRotation(f.heading).Rotate(offset))
}

func (f *Follow) lookTarget() mgl64.Vec3 {
	return f.target.Position().Add(vmath.WorldUp.Mul(f.params.LookHeight))
}

// facing is the horizontal direction of travel, or the biased board facing when slow
func (f *Follow) facing() mgl64.Vec3 {
	v := vmath.V3FHorizontal(f.target.LinearVelocity())
	if v.LenSqr() > f.params.HeadingMinSpeedSq {
		return v
	}

	dir := f.target.Forward().Add(f.target.Right().Mul(f.params.IdleSideBias))
	dir = vmath.V3FHorizontal(dir)
	if dir.LenSqr() < vmath.Epsilon {
		return vmath.LocalForward
	}
	return dir
}
