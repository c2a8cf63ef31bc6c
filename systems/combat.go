package systems

import (
	"github.com/automoto/isoward/components"
	cfg "github.com/automoto/isoward/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// queueDamage adds amount to the entry's pending DamageEvent, creating it if
// needed. Must not be called while iterating a query that matches entry.
func queueDamage(entry *donburi.Entry, amount float64, source string) {
	if !entry.Valid() || !entry.HasComponent(components.Health) {
		return
	}
	if entry.HasComponent(components.DamageEvent) {
		dmg := components.DamageEvent.Get(entry)
		dmg.Amount += amount
		dmg.Source = source
		return
	}
	donburi.Add(entry, components.DamageEvent, &components.DamageEventData{
		Amount: amount,
		Source: source,
	})
}

// UpdateCombat turns queued damage events into decays, then advances every
// health pool one tick. Entities whose health ran out get a Death component.
func UpdateCombat(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()

	var damaged []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		damaged = append(damaged, e)
	}
	for _, e := range damaged {
		dmg := components.DamageEvent.Get(e)
		if e.HasComponent(components.Health) {
			components.Health.Get(e).ApplyDamage(dmg.Amount)
		}
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}

	var died []*donburi.Entry
	for e := range components.Health.Iter(ecs.World) {
		hp := components.Health.Get(e)
		hp.Advance(dt)
		if hp.Dead() && !e.HasComponent(components.Death) {
			died = append(died, e)
		}
	}
	for _, e := range died {
		donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.Combat.DeathDelay})
	}
}
