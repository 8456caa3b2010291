package components

import (
	"github.com/automoto/versus/shared/gamemath"
	"github.com/automoto/versus/shared/hitbox"
	"github.com/yohamta/donburi"
)

// ProjectileData is a spawned attack that travels on its own.
type ProjectileData struct {
	Owner     string
	Attack    *hitbox.AttackInstance
	Velocity  gamemath.Vector
	Remaining float64 // seconds
	Destroy   bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
