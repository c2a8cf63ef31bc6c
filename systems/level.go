package systems

import (
	"image/color"

	"github.com/automoto/isoward/assets"
	"github.com/automoto/isoward/components"
	cfg "github.com/automoto/isoward/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// wallHeight is how tall walls are drawn; it has no effect on collision.
const wallHeight = 24

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}
	level := levelData.CurrentLevel

	screen.Fill(cfg.Ground)

	bounds := assets.Rect{Width: float64(level.Width), Height: float64(level.Height)}
	drawGroundRect(screen, camera, bounds, 0, cfg.Slate)

	for _, w := range level.Walls {
		drawGroundRect(screen, camera, w, 0, cfg.Slate)
		drawGroundRect(screen, camera, w, wallHeight, cfg.White)
		for _, c := range rectCorners(w, 0) {
			drawSegment(screen, camera, c, c.Add(mgl64.Vec3{0, wallHeight, 0}), cfg.Slate)
		}
	}

	for _, z := range level.DamageZones {
		drawGroundRect(screen, camera, z.Rect, 0, cfg.LightRed)
	}
}

func rectCorners(r assets.Rect, height float64) [4]mgl64.Vec3 {
	return [4]mgl64.Vec3{
		{r.X, height, r.Y},
		{r.X + r.Width, height, r.Y},
		{r.X + r.Width, height, r.Y + r.Height},
		{r.X, height, r.Y + r.Height},
	}
}

// drawGroundRect outlines r lifted to height.
func drawGroundRect(screen *ebiten.Image, camera *components.CameraData, r assets.Rect, height float64, c color.Color) {
	corners := rectCorners(r, height)
	for i := range corners {
		drawSegment(screen, camera, corners[i], corners[(i+1)%len(corners)], c)
	}
}

func drawSegment(screen *ebiten.Image, camera *components.CameraData, a, b mgl64.Vec3, c color.Color) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	x0, y0 := screenPoint(camera, a, w, h)
	x1, y1 := screenPoint(camera, b, w, h)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, false)
}
