package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's world position and facing. When Box is set
// the collision box is kept centred under the position.
type TransformData struct {
	Pos mgl64.Vec3
	Fwd mgl64.Vec3
	Box *resolv.Object
}

func (t *TransformData) Position() mgl64.Vec3 { return t.Pos }
func (t *TransformData) Forward() mgl64.Vec3  { return t.Fwd }

func (t *TransformData) SetPosition(p mgl64.Vec3) {
	t.Pos = p
	if t.Box != nil {
		t.Box.X = p.X() - t.Box.W/2
		t.Box.Y = p.Z() - t.Box.H/2
		t.Box.Update()
	}
}

func (t *TransformData) SetForward(f mgl64.Vec3) { t.Fwd = f }

// SyncFromBox moves the position to the centre of Box after the box was
// moved directly by collision resolution.
func (t *TransformData) SyncFromBox() {
	if t.Box == nil {
		return
	}
	t.Pos = mgl64.Vec3{t.Box.X + t.Box.W/2, t.Pos.Y(), t.Box.Y + t.Box.H/2}
}

var Transform = donburi.NewComponentType[TransformData]()
