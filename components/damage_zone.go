package components

import "github.com/yohamta/donburi"

// DamageZoneData hurts anything that walks into it, once per entry.
type DamageZoneData struct {
	Name   string
	Damage float64
	Inside map[donburi.Entity]bool
}

var DamageZone = donburi.NewComponentType[DamageZoneData]()
