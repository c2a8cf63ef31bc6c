package components

import (
	"github.com/automoto/isoward/assets"
	"github.com/automoto/isoward/collision"
	"github.com/automoto/isoward/nav"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	LevelIndex   int
	Levels       []assets.Level

	Grid   *nav.Grid
	Vision *collision.Raycaster
}

var Level = donburi.NewComponentType[LevelData]()
