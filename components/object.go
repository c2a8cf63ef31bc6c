package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its box in the collision space.
type ObjectData struct {
	*resolv.Object
}

// Center is the middle of the box on the ground plane.
func (o *ObjectData) Center() mgl64.Vec3 {
	return mgl64.Vec3{o.X + o.W/2, 0, o.Y + o.H/2}
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the level's collision space; there is one per world.
var Space = donburi.NewComponentType[resolv.Space]()
