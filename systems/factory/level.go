package factory

import (
	"github.com/automoto/isoward/archetypes"
	"github.com/automoto/isoward/assets"
	"github.com/automoto/isoward/collision"
	"github.com/automoto/isoward/components"
	cfg "github.com/automoto/isoward/config"
	"github.com/automoto/isoward/nav"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	return CreateLevelAtIndex(ecs, 0)
}

func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	return CreateLevelFrom(ecs, assets.NewLevelLoader().MustLoadLevels(), levelIndex)
}

// CreateLevelFrom selects one of already loaded levels. Out of range indices
// fall back to the first level.
func CreateLevelFrom(ecs *ecs.ECS, levels []assets.Level, levelIndex int) *donburi.Entry {
	if len(levels) == 0 {
		panic("no levels to create")
	}
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: &levels[levelIndex],
	})
	return level
}

// PopulateLevel builds everything the current level describes: the collision
// space and its walls, the walkability grid, damage zones, the player, the
// enemies and the camera. It returns the player entry.
func PopulateLevel(ecs *ecs.ECS, levelEntry *donburi.Entry) *donburi.Entry {
	levelData := components.Level.Get(levelEntry)
	level := levelData.CurrentLevel

	spaceEntry := CreateSpace(ecs, level.Width, level.Height, cfg.Nav.SpaceCellSize, cfg.Nav.SpaceCellSize)
	space := components.Space.Get(spaceEntry)

	for _, w := range level.Walls {
		CreateWall(ecs, w)
	}

	// The grid only sees what is solid, so it is built before anything moves.
	levelData.Grid = nav.NewGrid(space, level.Width, level.Height, cfg.Nav.CellSize)
	levelData.Vision = collision.NewRaycaster(space)

	for _, z := range level.DamageZones {
		CreateDamageZone(ecs, z)
	}

	player := CreatePlayer(ecs, level.PlayerSpawn)

	for _, spawn := range level.EnemySpawns {
		var route []mgl64.Vec3
		if p, ok := level.PatrolPaths[spawn.PatrolPath]; ok {
			route = p.Points
		}
		CreateEnemy(ecs, spawn, route)
	}

	CreateCamera(ecs, level.PlayerSpawn)
	archetypes.GameOver.Spawn(ecs)
	return player
}
