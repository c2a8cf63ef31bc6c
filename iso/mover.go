// Package iso turns filtered stick input into movement on the ground plane
// of an isometric camera, and projects world points onto the screen.
package iso

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	Up      = mgl64.Vec3{0, 1, 0}
	Right   = mgl64.Vec3{1, 0, 0}
	Forward = mgl64.Vec3{0, 0, 1}
)

// TileRatio is the vertical foreshortening of the ground plane on screen.
const TileRatio = 0.5

// Body is the transform a Mover drives.
type Body interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Forward() mgl64.Vec3
	SetForward(f mgl64.Vec3)
}

// Mover converts input axes into a world velocity relative to the camera.
type Mover struct {
	HorizontalSpeed float64
	VerticalSpeed   float64
	RotationSpeed   float64
	// CameraYaw is the camera's rotation about the up axis, in degrees.
	CameraYaw float64

	Velocity mgl64.Vec3
}

// Update recomputes the velocity from this tick's filtered input.
func (m *Mover) Update(horizontal, vertical float64) {
	v := Right.Mul(horizontal * m.HorizontalSpeed).Add(Forward.Mul(vertical * m.VerticalSpeed))
	m.Velocity = Yaw(m.CameraYaw).Rotate(v)
}

// Displacement is how far the velocity carries the body in dt.
func (m *Mover) Displacement(dt float64) mgl64.Vec3 {
	return m.Velocity.Mul(dt)
}

// Turn rotates forward toward the direction of travel. A still mover keeps
// its facing.
func (m *Mover) Turn(forward mgl64.Vec3, dt float64) mgl64.Vec3 {
	if m.Velocity.Len() == 0 {
		return forward
	}
	return Slerp(forward, m.Velocity.Normalize(), m.RotationSpeed*dt)
}

// Step applies one fixed step to b without any collision.
func (m *Mover) Step(b Body, dt float64) {
	b.SetPosition(b.Position().Add(m.Displacement(dt)))
	b.SetForward(m.Turn(b.Forward(), dt))
}

// Yaw is a rotation of deg degrees about the up axis.
func Yaw(deg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(deg), Up)
}

// Slerp rotates the direction from toward to by the fraction t.
func Slerp(from, to mgl64.Vec3, t float64) mgl64.Vec3 {
	t = math.Max(0, math.Min(1, t))
	if from.Len() == 0 {
		return to
	}
	if to.Len() == 0 {
		return from
	}
	a, b := from.Normalize(), to.Normalize()
	q := mgl64.QuatBetweenVectors(a, b)
	return mgl64.QuatSlerp(mgl64.QuatIdent(), q, t).Rotate(a)
}

// Project maps a world point to screen space for a camera rotated yaw
// degrees about the up axis. Screen y grows downward.
func Project(p mgl64.Vec3, yaw float64) (x, y float64) {
	v := Yaw(-yaw).Rotate(p)
	return v.X(), -v.Z()*TileRatio - v.Y()
}
