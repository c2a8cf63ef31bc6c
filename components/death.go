package components

import "github.com/yohamta/donburi"

// DeathData marks an entity whose health ran out. Timer counts down each
// frame; at zero the death is final.
type DeathData struct {
	Timer int
}

var Death = donburi.NewComponentType[DeathData]()
