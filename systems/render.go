package systems

import (
	"image/color"
	"math"

	"github.com/automoto/isoward/assets"
	"github.com/automoto/isoward/behavior"
	"github.com/automoto/isoward/components"
	cfg "github.com/automoto/isoward/config"
	"github.com/automoto/isoward/iso"
	"github.com/automoto/isoward/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ringSegments is the number of segments used for ground circles.
const ringSegments = 32

// DrawEntities renders the player and every agent as ground boxes with a
// facing line. Agents are tinted by type and recoloured by state, and show
// their detection range.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		agent := components.Agent.Get(e)
		transform := components.Transform.Get(e)
		c := agentColor(agent)

		drawBody(screen, camera, transform, c)
		drawDetection(screen, camera, transform, agent, c)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		c := cfg.BrightGreen
		if e.HasComponent(components.Death) {
			c = cfg.Red
		}
		drawBody(screen, camera, components.Transform.Get(e), c)
	})
}

func agentColor(agent *components.AgentData) color.RGBA {
	switch agent.Controller.State() {
	case behavior.Idle:
		return cfg.Slate
	case behavior.Active:
		return cfg.Red
	}
	return agent.Type.TintColor
}

func drawBody(screen *ebiten.Image, camera *components.CameraData, t *components.TransformData, c color.Color) {
	if t.Box != nil {
		drawGroundRect(screen, camera, assets.Rect{X: t.Box.X, Y: t.Box.Y, Width: t.Box.W, Height: t.Box.H}, 0, c)
	}
	reach := 10.0
	if t.Box != nil {
		reach = t.Box.W
	}
	if fwd := t.Forward(); fwd.Len() > 0 {
		drawSegment(screen, camera, t.Position(), t.Position().Add(fwd.Normalize().Mul(reach)), c)
	}
}

// drawDetection draws the alert radius, or the view cone for visual agents.
func drawDetection(screen *ebiten.Image, camera *components.CameraData, t *components.TransformData, agent *components.AgentData, c color.Color) {
	params := agent.Controller.Params()
	radius := params.AlertRadius
	if radius <= 0 {
		return
	}
	pos := t.Position()

	if params.Detection != behavior.Visual {
		drawRing(screen, camera, pos, radius, 0, 2*math.Pi, c)
		return
	}

	// The cone follows the heading of the current destination, not the body.
	heading := t.Forward()
	if dest, ok := agent.Nav.Destination(); ok {
		if d := dest.Sub(pos); d.Len() > 0 {
			heading = d
		}
	}
	if heading.Len() == 0 {
		return
	}
	heading = heading.Normalize()
	left := iso.Yaw(params.VisualAngle).Rotate(heading)
	right := iso.Yaw(-params.VisualAngle).Rotate(heading)
	drawSegment(screen, camera, pos, pos.Add(left.Mul(radius)), c)
	drawSegment(screen, camera, pos, pos.Add(right.Mul(radius)), c)

	start := math.Atan2(left.Z(), left.X())
	sweep := mgl64.DegToRad(2 * params.VisualAngle)
	drawRing(screen, camera, pos, radius, start, sweep, c)
}

// drawRing draws an arc of the ground circle around center, sweeping
// from start toward +z in the xz plane.
func drawRing(screen *ebiten.Image, camera *components.CameraData, center mgl64.Vec3, radius, start, sweep float64, c color.Color) {
	point := func(a float64) mgl64.Vec3 {
		return center.Add(mgl64.Vec3{math.Cos(a) * radius, 0, math.Sin(a) * radius})
	}
	prev := point(start)
	for i := 1; i <= ringSegments; i++ {
		next := point(start + sweep*float64(i)/ringSegments)
		drawSegment(screen, camera, prev, next, c)
		prev = next
	}
}
