package systems

import (
	"github.com/automoto/isoward/assets"
	"github.com/automoto/isoward/components"
	cfg "github.com/automoto/isoward/config"
	"github.com/automoto/isoward/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug overlays blocked navigation cells and every agent's planned route.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawPaths {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if grid := components.Level.Get(levelEntry).Grid; grid != nil {
			for y := range grid.Height {
				for x := range grid.Width {
					if grid.Nodes[y][x].Walkable {
						continue
					}
					cell := assets.Rect{
						X:      float64(x) * grid.CellSize,
						Y:      float64(y) * grid.CellSize,
						Width:  grid.CellSize,
						Height: grid.CellSize,
					}
					drawGroundRect(screen, camera, cell, 0, cfg.Slate)
				}
			}
		}
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		agent := components.Agent.Get(e)
		prev := components.Transform.Get(e).Position()
		for _, p := range agent.Nav.Path() {
			drawSegment(screen, camera, prev, p, cfg.Yellow)
			prev = p
		}
	})
}
