package factory

import (
	"log"

	"github.com/automoto/isoward/archetypes"
	"github.com/automoto/isoward/components"
	cfg "github.com/automoto/isoward/config"
	"github.com/automoto/isoward/health"
	"github.com/automoto/isoward/iso"
	"github.com/automoto/isoward/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, pos mgl64.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.Size
	obj := newBox(pos, size, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Transform.Set(player, &components.TransformData{
		Pos: pos,
		Fwd: iso.Forward,
		Box: obj,
	})

	filter := iso.NewInputFilter()
	filter.MapToCircular = cfg.Input.MapToCircular
	filter.ForwardFilter = cfg.Input.ForwardFilter
	filter.TurnFilter = cfg.Input.TurnFilter
	filter.ForwardSpeedLimit = cfg.Input.ForwardSpeedLimit

	components.Player.SetValue(player, components.PlayerData{
		Filter: filter,
		Mover: &iso.Mover{
			HorizontalSpeed: cfg.Player.HorizontalSpeed,
			VerticalSpeed:   cfg.Player.VerticalSpeed,
			RotationSpeed:   cfg.Player.RotationSpeed,
			CameraYaw:       cfg.Camera.Yaw,
		},
	})

	display := &components.HealthDisplay{}
	hp := health.New(cfg.Health.Max, cfg.Health.SmoothDuration, display)
	curve, err := health.Curve(cfg.Health.Curve)
	if err != nil {
		log.Printf("Warning: %v, using linear decay", err)
	}
	hp.SetCurve(curve)
	hp.OnDeath = func() {
		log.Printf("player died")
	}
	components.Health.SetValue(player, components.HealthData{Entity: hp, Display: display})

	return player
}

// newBox makes a square collision box of side size centred under pos.
func newBox(pos mgl64.Vec3, size float64, tags ...string) *resolv.Object {
	return resolv.NewObject(pos.X()-size/2, pos.Z()-size/2, size, size, tags...)
}
