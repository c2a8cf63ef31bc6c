package components

import (
	"github.com/automoto/isoward/iso"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Raw    iso.RawInput // this tick's device or scripted input
	Filter *iso.InputFilter
	Mover  *iso.Mover
}

var Player = donburi.NewComponentType[PlayerData]()
