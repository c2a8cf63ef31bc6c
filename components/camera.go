package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the ground point the isometric view is centred on.
type CameraData struct {
	Position mgl64.Vec3
	Yaw      float64
}

var Camera = donburi.NewComponentType[CameraData]()
