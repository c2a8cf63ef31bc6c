package factory

import (
	"github.com/automoto/isoward/archetypes"
	"github.com/automoto/isoward/components"
	cfg "github.com/automoto/isoward/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, focus mgl64.Vec3) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: focus,
		Yaw:      cfg.Camera.Yaw,
	})
	return camera
}
