package systems

import (
	"fmt"

	"github.com/automoto/isoward/components"
	cfg "github.com/automoto/isoward/config"
	"github.com/automoto/isoward/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSurvival counts the ticks the player has stayed alive.
func UpdateSurvival(e *ecs.ECS) {
	gameOver := GetOrCreateGameOver(e)
	if !gameOver.Over {
		gameOver.Ticks++
	}
}

// IsGameOver reports whether the player's death has played out.
func IsGameOver(e *ecs.ECS) bool {
	entry, ok := components.GameOver.First(e.World)
	return ok && components.GameOver.Get(entry).Over
}

// WithGameplayChecks wraps a system to skip execution once the game is over.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsGameOver(e) {
			return
		}
		system(e)
	}
}

// DrawGameOver renders the game over overlay
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	if !IsGameOver(e) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.OverlayColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := cfg.GameOver.Title
	titleX := int((width - float64(textWidth(title, titleFont))) / 2)
	text.Draw(screen, title, titleFont, titleX, int(height/2), cfg.GameOver.TitleColor)

	hintFont := fonts.Small.Get()
	hint := cfg.GameOver.Hint
	hintX := int((width - float64(textWidth(hint, hintFont))) / 2)
	hintY := int(height/2) + titleFont.Metrics().Height.Ceil()
	text.Draw(screen, hint, hintFont, hintX, hintY, cfg.GameOver.HintColor)

	gameOver := GetOrCreateGameOver(e)
	if gameOver.Best == 0 {
		return
	}
	record := fmt.Sprintf("best %.1fs", float64(gameOver.Best)*cfg.C.DeltaTime())
	recordX := int((width - float64(textWidth(record, hintFont))) / 2)
	text.Draw(screen, record, hintFont, recordX, hintY+hintFont.Metrics().Height.Ceil(), cfg.GameOver.HintColor)
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		e.World.Create(components.GameOver)
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
