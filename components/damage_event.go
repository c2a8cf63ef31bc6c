package components

import "github.com/yohamta/donburi"

type DamageEventData struct {
	Amount float64
	Source string // name of the zone or entity that dealt it
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
