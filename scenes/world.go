package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/isoward/assets"
	"github.com/automoto/isoward/components"
	cfg "github.com/automoto/isoward/config"
	"github.com/automoto/isoward/systems"
	"github.com/automoto/isoward/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewWorld builds a populated world for one level. input is the system that
// fills the player's raw input each tick; it runs first. Renderers are
// registered too, so the same world can be drawn or run headless.
func NewWorld(levels []assets.Level, levelIndex int, input ecs.System) *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(input)

	// Game systems stop once the game is over
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDamageZones))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSurvival))
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	level := factory.CreateLevelFrom(ecs, levels, levelIndex)
	factory.PopulateLevel(ecs, level)
	return ecs
}

// WorldScene is the playable level. Pressing restart after the game is over
// starts the level again.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	recorded     bool
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, levelIndex int) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if !systems.IsGameOver(ws.ecs) {
		return
	}
	if !ws.recorded {
		ws.recorded = true
		gameOver := systems.GetOrCreateGameOver(ws.ecs)
		gameOver.Best = systems.RecordSurvival(gameOver.Ticks)
		log.Printf("survived %d ticks (best %d)", gameOver.Ticks, gameOver.Best)
	}

	inputEntry, ok := components.Input.First(ws.ecs.World)
	if ok && components.Input.Get(inputEntry).JustPressed(cfg.ActionRestart) {
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, ws.levelIndex))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	levels := assets.NewLevelLoader().MustLoadLevels()
	ws.ecs = NewWorld(levels, ws.levelIndex, systems.UpdateInput)
}
