package systems

import (
	"github.com/automoto/isoward/collision"
	"github.com/automoto/isoward/components"
	cfg "github.com/automoto/isoward/config"
	"github.com/automoto/isoward/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(playerEntry)
	})
}

// updateSinglePlayer filters the raw input, then moves the player box
// against solid walls and turns it toward the direction of travel.
func updateSinglePlayer(playerEntry *donburi.Entry) {
	if playerEntry.HasComponent(components.Death) {
		return
	}

	dt := cfg.C.DeltaTime()
	player := components.Player.Get(playerEntry)
	transform := components.Transform.Get(playerEntry)

	player.Filter.Update(player.Raw, dt)
	player.Mover.Update(player.Filter.Horizontal, player.Filter.Vertical)

	d := player.Mover.Displacement(dt)
	if transform.Box != nil {
		collision.Move(transform.Box, d.X(), d.Z(), tags.ResolvSolid)
		transform.SyncFromBox()
	} else {
		transform.SetPosition(transform.Pos.Add(d))
	}
	transform.SetForward(player.Mover.Turn(transform.Fwd, dt))
}
