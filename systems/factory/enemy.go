package factory

import (
	"log"

	"github.com/automoto/isoward/archetypes"
	"github.com/automoto/isoward/assets"
	"github.com/automoto/isoward/behavior"
	"github.com/automoto/isoward/components"
	cfg "github.com/automoto/isoward/config"
	"github.com/automoto/isoward/iso"
	"github.com/automoto/isoward/nav"
	"github.com/automoto/isoward/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an agent of spawn.EnemyType walking the patrol route.
// Unknown types fall back to the configured default type.
func CreateEnemy(ecs *ecs.ECS, spawn assets.EnemySpawn, route []mgl64.Vec3) *donburi.Entry {
	typeName := spawn.EnemyType
	agentType, exists := cfg.Enemy.Types[typeName]
	if !exists {
		if typeName != "" {
			log.Printf("Warning: unknown enemy type %q, using %q", typeName, cfg.Enemy.DefaultType)
		}
		typeName = cfg.Enemy.DefaultType
		agentType = cfg.Enemy.Types[typeName]
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	obj := newBox(spawn.Position, agentType.Size, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	transform := &components.TransformData{
		Pos: spawn.Position,
		Fwd: iso.Forward,
		Box: obj,
	}
	components.Transform.Set(enemy, transform)

	var planner nav.Planner
	deps := behavior.Deps{Transform: transform}
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		levelData := components.Level.Get(levelEntry)
		if levelData.Grid != nil {
			planner = levelData.Grid
		}
		if levelData.Vision != nil {
			deps.Vision = levelData.Vision
		}
	}

	agent := nav.NewAgent(transform, agentType.Speed, agentType.StoppingDistance, planner)
	agent.RepathDistance = cfg.Nav.RepathDistance
	deps.Navigator = agent

	id := uuid.NewString()
	controller := behavior.New(agentParams(agentType, route, spawn.Paused), deps)
	controller.OnStateChange = func(from, to behavior.State) {
		if cfg.Debug.LogAI {
			log.Printf("agent %s (%s): %s -> %s", id[:8], typeName, from, to)
		}
	}

	components.Agent.SetValue(enemy, components.AgentData{
		ID:         id,
		TypeName:   typeName,
		Type:       agentType,
		Controller: controller,
		Nav:        agent,
	})
	return enemy
}

// agentParams converts a validated agent type into controller tuning. Mode
// names that fail to parse keep the zero value, which is chase and radial.
func agentParams(t cfg.AgentTypeConfig, route []mgl64.Vec3, paused bool) behavior.Params {
	movement, err := behavior.ParseMovementMode(t.Movement)
	if err != nil {
		log.Printf("Warning: agent type %q: %v", t.Name, err)
	}
	detection, err := behavior.ParseDetectionMode(t.Detection)
	if err != nil {
		log.Printf("Warning: agent type %q: %v", t.Name, err)
	}

	return behavior.Params{
		Movement:     movement,
		Detection:    detection,
		AlertRadius:  t.AlertRadius,
		EscapeRadius: t.EscapeRadius,
		CanEscape:    t.CanEscape,
		VisualAngle:  t.VisualAngle,
		TargetLayers: t.TargetLayers,
		AvoidScale:   t.AvoidScale,
		PatrolNodes:  route,
		Paused:       paused,
	}
}
