package netcomponents

import "github.com/yohamta/donburi"

type NetProjectileData struct {
	X, Y      float64 // center
	W, H      float64
	VelX      float64 // client extrapolation between snapshots
	OwnerSlot int
	Move      string
}

var NetProjectile = donburi.NewComponentType[NetProjectileData]()

// LerpNetProjectile interpolates between two projectile states
func LerpNetProjectile(from, to NetProjectileData, t float64) *NetProjectileData {
	return &NetProjectileData{
		X:         from.X + (to.X-from.X)*t,
		Y:         from.Y + (to.Y-from.Y)*t,
		W:         to.W,
		H:         to.H,
		VelX:      to.VelX,
		OwnerSlot: to.OwnerSlot,
		Move:      to.Move,
	}
}
