package factory

import (
	"testing"

	"github.com/automoto/isoward/assets"
	"github.com/automoto/isoward/behavior"
	"github.com/automoto/isoward/components"
	cfg "github.com/automoto/isoward/config"
	"github.com/automoto/isoward/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testLevel() assets.Level {
	return assets.Level{
		Name:        "test",
		Width:       160,
		Height:      160,
		Walls:       []assets.Rect{{X: 64, Y: 0, Width: 16, Height: 96}},
		PlayerSpawn: mgl64.Vec3{24, 0, 24},
		EnemySpawns: []assets.EnemySpawn{
			{Position: mgl64.Vec3{120, 0, 24}, EnemyType: "Watcher", PatrolPath: "loop"},
			{Position: mgl64.Vec3{120, 0, 120}, EnemyType: "Nobody", Paused: true},
		},
		PatrolPaths: map[string]assets.PatrolPath{
			"loop": {Name: "loop", Points: []mgl64.Vec3{{120, 0, 24}, {140, 0, 24}}},
		},
		DamageZones: []assets.DamageZone{
			{Rect: assets.Rect{X: 8, Y: 120, Width: 32, Height: 16}, Name: "pit"},
		},
	}
}

func populated(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	level := CreateLevelFrom(e, []assets.Level{testLevel()}, 3)
	player := PopulateLevel(e, level)
	return e, player
}

func TestCreateLevelFrom_ClampsIndex(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	level := CreateLevelFrom(e, []assets.Level{testLevel()}, 3)
	data := components.Level.Get(level)
	assert.Equal(t, 0, data.LevelIndex)
	assert.Equal(t, "test", data.CurrentLevel.Name)

	assert.Panics(t, func() { CreateLevelFrom(e, nil, 0) })
}

func TestPopulateLevel(t *testing.T) {
	e, player := populated(t)

	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	space := components.Space.Get(spaceEntry)
	// wall, zone, player and two enemies
	assert.Len(t, space.Objects(), 5)

	levelEntry, ok := components.Level.First(e.World)
	require.True(t, ok)
	levelData := components.Level.Get(levelEntry)
	require.NotNil(t, levelData.Grid)
	require.NotNil(t, levelData.Vision)
	assert.False(t, levelData.Grid.Nodes[0][4].Walkable)
	assert.True(t, levelData.Grid.Nodes[7][4].Walkable)

	transform := components.Transform.Get(player)
	assert.Equal(t, mgl64.Vec3{24, 0, 24}, transform.Position())
	assert.Equal(t, 17.0, transform.Box.X)
	assert.True(t, transform.Box.HasTags(tags.ResolvPlayer))

	hp := components.Health.Get(player)
	assert.Equal(t, cfg.Health.Max, hp.Current())
	assert.Equal(t, 1, hp.Display.Reports)

	zone, ok := tags.DamageZone.First(e.World)
	require.True(t, ok)
	assert.Equal(t, cfg.Combat.DamageZoneAmount, components.DamageZone.Get(zone).Damage)

	_, ok = components.Camera.First(e.World)
	assert.True(t, ok)
	_, ok = components.GameOver.First(e.World)
	assert.True(t, ok)
}

func TestCreateEnemy(t *testing.T) {
	e, _ := populated(t)

	var agents []*components.AgentData
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		agents = append(agents, components.Agent.Get(entry))
	})
	require.Len(t, agents, 2)

	watcher := agents[0]
	assert.Equal(t, "Watcher", watcher.TypeName)
	_, err := uuid.Parse(watcher.ID)
	assert.NoError(t, err)
	require.NoError(t, watcher.Controller.Err())
	params := watcher.Controller.Params()
	assert.Equal(t, behavior.Visual, params.Detection)
	assert.Len(t, params.PatrolNodes, 2)
	assert.Equal(t, behavior.Patrol, watcher.Controller.State())
	assert.Equal(t, cfg.Nav.RepathDistance, watcher.Nav.RepathDistance)

	fallback := agents[1]
	assert.Equal(t, cfg.Enemy.DefaultType, fallback.TypeName)
	assert.Equal(t, behavior.Idle, fallback.Controller.State())
	assert.NotEqual(t, watcher.ID, fallback.ID)
}

func TestAgentParams(t *testing.T) {
	p := agentParams(cfg.AgentTypeConfig{Movement: "avoid", Detection: "bogus", AlertRadius: 50, AvoidScale: 2}, nil, true)
	assert.Equal(t, behavior.Avoid, p.Movement)
	assert.Equal(t, behavior.Radial, p.Detection)
	assert.Equal(t, 50.0, p.AlertRadius)
	assert.Equal(t, 2.0, p.AvoidScale)
	assert.True(t, p.Paused)
}
