package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Wall       = donburi.NewTag().SetName("Wall")
	DamageZone = donburi.NewTag().SetName("DamageZone")
)

// Resolv tags for collision and raycasts
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
	ResolvEnemy  = "enemy"
	ResolvDamage = "damage"
)
