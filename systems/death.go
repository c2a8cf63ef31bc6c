package systems

import (
	"github.com/automoto/isoward/components"
	"github.com/automoto/isoward/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down death timers. When the player's runs out the
// game is over; the player entity is kept so the scene can still draw it.
func UpdateDeaths(ecs *ecs.ECS) {
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Timer > 0 {
			death.Timer--
		}
		if death.Timer == 0 && e.HasComponent(tags.Player) {
			GetOrCreateGameOver(ecs).Over = true
		}
	})
}
