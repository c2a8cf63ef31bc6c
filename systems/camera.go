package systems

import (
	"github.com/automoto/isoward/components"
	"github.com/automoto/isoward/config"
	"github.com/automoto/isoward/iso"
	"github.com/automoto/isoward/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera focus toward the player.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Transform.Get(playerEntry).Position()

	smoothing := config.Camera.FollowSmoothing
	if smoothing <= 0 || smoothing > 1 {
		smoothing = 1
	}
	camera.Position = camera.Position.Add(target.Sub(camera.Position).Mul(smoothing))
}

// screenPoint maps a world point to screen pixels for the camera, with the
// camera focus at the centre of the screen.
func screenPoint(camera *components.CameraData, p mgl64.Vec3, width, height int) (float32, float32) {
	x, y := iso.Project(p.Sub(camera.Position), camera.Yaw)
	return float32(float64(width)/2 + x), float32(float64(height)/2 + y)
}
