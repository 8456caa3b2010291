package components

import (
	"github.com/automoto/versus/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PhysicsData is the integration state of a fighter body. Velocity is in
// units per second.
type PhysicsData struct {
	Velocity  gamemath.Vector
	OnGround  bool
	Simulated bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
