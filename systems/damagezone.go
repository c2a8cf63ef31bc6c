package systems

import (
	"github.com/automoto/isoward/collision"
	"github.com/automoto/isoward/components"
	"github.com/automoto/isoward/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type zoneHit struct {
	entry  *donburi.Entry
	amount float64
	source string
}

// UpdateDamageZones queues damage for every player that entered a zone this
// tick. Standing in a zone does not hurt again until the player leaves and
// comes back.
func UpdateDamageZones(ecs *ecs.ECS) {
	var hits []zoneHit

	tags.DamageZone.Each(ecs.World, func(e *donburi.Entry) {
		zone := components.DamageZone.Get(e)
		obj := components.Object.Get(e)

		inside := make(map[donburi.Entity]bool)
		for _, other := range collision.Overlapping(obj.Object, tags.ResolvPlayer) {
			entry, ok := other.Data.(*donburi.Entry)
			if !ok || !entry.Valid() {
				continue
			}
			inside[entry.Entity()] = true
			if !zone.Inside[entry.Entity()] {
				hits = append(hits, zoneHit{entry: entry, amount: zone.Damage, source: zone.Name})
			}
		}
		zone.Inside = inside
	})

	for _, h := range hits {
		queueDamage(h.entry, h.amount, h.source)
	}
}
