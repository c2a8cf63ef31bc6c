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
	"golang.org/x/image/font"
)

// DrawHUD renders the player's health text in the top-left corner. The text
// switches to the damage colour while a hit is draining.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)

	face := fonts.HUD.Get()
	label := hp.Display.Text()
	lineHeight := face.Metrics().Height.Ceil()
	margin := float32(cfg.HUD.Margin)

	vector.FillRect(screen,
		margin/2, margin/2,
		float32(textWidth(label, face))+margin, float32(lineHeight)+margin,
		cfg.HUD.BgColor, false)

	c := cfg.Health.NormalColor
	if hp.Display.Damaged {
		c = cfg.Health.DamageColor
	}
	text.Draw(screen, label, face, int(cfg.HUD.Margin), int(cfg.HUD.Margin)+face.Metrics().Ascent.Ceil(), c)

	small := fonts.Small.Get()
	survived := fmt.Sprintf("%.1fs", float64(GetOrCreateGameOver(ecs).Ticks)*cfg.C.DeltaTime())
	text.Draw(screen, survived, small, int(cfg.HUD.Margin), int(cfg.HUD.Margin)+lineHeight+small.Metrics().Ascent.Ceil()+2, cfg.HUD.TextColor)
}

func textWidth(s string, face font.Face) int {
	return font.MeasureString(face, s).Ceil()
}
