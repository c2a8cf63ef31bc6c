package systems

import (
	"github.com/automoto/isoward/behavior"
	"github.com/automoto/isoward/collision"
	"github.com/automoto/isoward/components"
	cfg "github.com/automoto/isoward/config"
	"github.com/automoto/isoward/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies feeds every agent the player's position, runs its state
// machine and walks it along its route. Chasing agents that touch the player
// hurt it once per contact. Once the player is dead agents stand down.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Transform.Get(playerEntry)
	playerDead := playerEntry.HasComponent(components.Death)

	var contacts []string
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		agent := components.Agent.Get(e)
		if agent.Controller.Err() != nil {
			return
		}

		if playerDead {
			agent.Controller.Pause()
			agent.Nav.Step(dt)
			return
		}

		agent.Controller.SetTarget(player.Position())
		agent.Controller.Advance(dt)
		agent.Nav.Step(dt)

		if touchingPlayer(e) {
			if !agent.Touching && catching(agent.Controller) {
				contacts = append(contacts, agent.TypeName)
			}
			agent.Touching = true
		} else {
			agent.Touching = false
		}
	})

	for _, source := range contacts {
		queueDamage(playerEntry, cfg.Combat.ContactDamage, source)
	}
}

func catching(c *behavior.Controller) bool {
	return c.State() == behavior.Active && c.Params().Movement == behavior.Chase
}

func touchingPlayer(e *donburi.Entry) bool {
	box := components.Transform.Get(e).Box
	if box == nil {
		return false
	}
	return len(collision.Overlapping(box, tags.ResolvPlayer)) > 0
}
