package factory

import (
	"github.com/automoto/isoward/archetypes"
	"github.com/automoto/isoward/assets"
	"github.com/automoto/isoward/components"
	cfg "github.com/automoto/isoward/config"
	"github.com/automoto/isoward/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDamageZone places a trigger that hurts whatever walks into it. Zones
// without a damage property use the configured default.
func CreateDamageZone(ecs *ecs.ECS, zone assets.DamageZone) *donburi.Entry {
	entry := archetypes.DamageZone.Spawn(ecs)

	obj := resolv.NewObject(zone.X, zone.Y, zone.Width, zone.Height, tags.ResolvDamage)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	damage := zone.Damage
	if damage == 0 {
		damage = cfg.Combat.DamageZoneAmount
	}
	components.DamageZone.SetValue(entry, components.DamageZoneData{
		Name:   zone.Name,
		Damage: damage,
		Inside: make(map[donburi.Entity]bool),
	})
	return entry
}
