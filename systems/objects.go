package systems

import (
	"github.com/automoto/isoward/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes every collision box's cells in the space after
// the tick's movement.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
