package tags

import "github.com/yohamta/donburi"

var (
	Fighter    = donburi.NewTag().SetName("Fighter")
	Projectile = donburi.NewTag().SetName("Projectile")
	Solid      = donburi.NewTag().SetName("Solid")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvFighter    = "fighter"
	ResolvHitbox     = "hitbox"
	ResolvProjectile = "projectile"
)
