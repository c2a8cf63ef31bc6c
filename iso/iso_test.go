package iso

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

func assertVec(t *testing.T, want, got mgl64.Vec3, msgAndArgs ...any) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, msgAndArgs...)
	}
}

type body struct {
	pos, fwd mgl64.Vec3
}

func (b *body) Position() mgl64.Vec3      { return b.pos }
func (b *body) SetPosition(p mgl64.Vec3) { b.pos = p }
func (b *body) Forward() mgl64.Vec3       { return b.fwd }
func (b *body) SetForward(f mgl64.Vec3)  { b.fwd = f }

func TestSquareToCircle(t *testing.T) {
	tests := []struct {
		name   string
		h, v   float64
		wh, wv float64
	}{
		{"center", 0, 0, 0, 0},
		{"axis", 1, 0, 1, 0},
		{"diagonal", 1, 1, math.Sqrt(0.5), math.Sqrt(0.5)},
		{"negative_diagonal", -1, 1, -math.Sqrt(0.5), math.Sqrt(0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, v := SquareToCircle(tt.h, tt.v)
			assert.InDelta(t, tt.wh, h, 1e-12)
			assert.InDelta(t, tt.wv, v, 1e-12)
			assert.LessOrEqual(t, math.Hypot(h, v), 1+1e-12)
		})
	}
}

func TestInputFilter_Smoothing(t *testing.T) {
	f := NewInputFilter()
	raw := RawInput{Vertical: 1}

	f.Update(raw, tick)
	assert.InDelta(t, 5.0/60, f.Vertical, 1e-12)

	prev := f.Vertical
	for range 120 {
		f.Update(raw, tick)
		require.GreaterOrEqual(t, f.Vertical, prev)
		require.LessOrEqual(t, f.Vertical, 1.0)
		prev = f.Vertical
	}
	assert.InDelta(t, 1, f.Vertical, 1e-3)
	assert.Equal(t, 0.0, f.Horizontal)

	f.Update(RawInput{}, 10)
	assert.Equal(t, 0.0, f.Vertical, "lerp factor saturates at 1")
}

func TestInputFilter_ForwardLimit(t *testing.T) {
	f := NewInputFilter()
	f.ForwardSpeedLimit = 0.5
	f.MapToCircular = false

	f.Update(RawInput{Vertical: -1, Horizontal: 1}, 1)

	assert.Equal(t, -0.5, f.Vertical)
	assert.Equal(t, 1.0, f.Horizontal, "turn axis is not limited")
}

func TestInputFilter_ButtonEdges(t *testing.T) {
	f := NewInputFilter()

	f.Update(RawInput{Jump: true, Sprint: true}, tick)
	assert.True(t, f.JumpPressed)
	assert.True(t, f.SprintHeld)

	f.Update(RawInput{Jump: true, Sprint: true, Attack: true}, tick)
	assert.False(t, f.JumpPressed, "held button fires once")
	assert.True(t, f.AttackPressed)
	assert.True(t, f.SprintHeld)

	f.Update(RawInput{Jump: true}, tick)
	assert.False(t, f.JumpPressed)
	assert.False(t, f.AttackPressed)
	assert.False(t, f.SprintHeld)

	f.Update(RawInput{}, tick)
	f.Update(RawInput{Jump: true, Interact: true, Utility: true}, tick)
	assert.True(t, f.JumpPressed)
	assert.True(t, f.InteractPressed)
	assert.True(t, f.UtilityPressed)
}

func TestMover_VelocityFollowsCamera(t *testing.T) {
	tests := []struct {
		name string
		yaw  float64
		h, v float64
		want mgl64.Vec3
	}{
		{"no_rotation_forward", 0, 0, 1, mgl64.Vec3{0, 0, 2}},
		{"no_rotation_right", 0, 1, 0, mgl64.Vec3{3, 0, 0}},
		{"quarter_turn_forward", 90, 0, 1, mgl64.Vec3{2, 0, 0}},
		{"iso_forward", 45, 0, 1, mgl64.Vec3{math.Sqrt2, 0, math.Sqrt2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mover{HorizontalSpeed: 3, VerticalSpeed: 2, CameraYaw: tt.yaw}
			m.Update(tt.h, tt.v)
			assertVec(t, tt.want, m.Velocity)
		})
	}
}

func TestMover_Step(t *testing.T) {
	m := &Mover{HorizontalSpeed: 4, VerticalSpeed: 4, RotationSpeed: 30}
	b := &body{fwd: Forward}

	m.Update(1, 0)
	m.Step(b, 0.5)

	assertVec(t, mgl64.Vec3{2, 0, 0}, b.pos)
	assertVec(t, Right, b.fwd, "rotation saturates")

	m.Update(0, 0)
	m.Step(b, 0.5)
	assertVec(t, mgl64.Vec3{2, 0, 0}, b.pos)
	assertVec(t, Right, b.fwd, "still mover keeps facing")
}

func TestSlerp(t *testing.T) {
	half := Slerp(Forward, Right, 0.5)
	assert.InDelta(t, 1, half.Len(), 1e-9)
	assert.InDelta(t, math.Cos(math.Pi/4), half.Dot(Forward), 1e-9)
	assert.InDelta(t, math.Cos(math.Pi/4), half.Dot(Right), 1e-9)

	back := Slerp(Forward, Forward.Mul(-1), 1)
	assertVec(t, Forward.Mul(-1), back)

	assertVec(t, Right, Slerp(mgl64.Vec3{}, Right, 0.2))
}

func TestProject(t *testing.T) {
	x, y := Project(mgl64.Vec3{1, 0, 1}, 45)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, -math.Sqrt2*TileRatio, y, 1e-9)

	x, y = Project(mgl64.Vec3{0, 10, 0}, 45)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, -10, y, 1e-9, "height lifts the point")

	// Pushing the stick forward moves the projection straight up the screen.
	m := &Mover{VerticalSpeed: 1, CameraYaw: 30}
	m.Update(0, 1)
	x, y = Project(m.Velocity, 30)
	assert.InDelta(t, 0, x, 1e-9)
	assert.Less(t, y, 0.0)
}
