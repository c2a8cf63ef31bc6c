package main

import "github.com/automoto/isoward/iso"

// wanderLeg is how many ticks the wander script holds one direction.
const wanderLeg = 90

var scripts = map[string]func(tick int) iso.RawInput{
	"wander": wander,
	"idle":   func(int) iso.RawInput { return iso.RawInput{} },
}

// wander walks the player around a square: right, up, left, down.
func wander(tick int) iso.RawInput {
	switch (tick / wanderLeg) % 4 {
	case 0:
		return iso.RawInput{Horizontal: 1}
	case 1:
		return iso.RawInput{Vertical: 1}
	case 2:
		return iso.RawInput{Horizontal: -1}
	default:
		return iso.RawInput{Vertical: -1}
	}
}
