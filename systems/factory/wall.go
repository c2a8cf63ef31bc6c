package factory

import (
	"github.com/automoto/isoward/archetypes"
	"github.com/automoto/isoward/assets"
	"github.com/automoto/isoward/components"
	"github.com/automoto/isoward/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, r assets.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	obj := resolv.NewObject(r.X, r.Y, r.Width, r.Height, tags.ResolvSolid)
	obj.Data = wall
	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return wall
}
