package fsm

//go:generate go tool mockgen -destination=./mocks/ports_mock.go -package=mocks . AnimationPlayer,Spawner

import (
	"github.com/automoto/versus/shared/gamemath"
	"github.com/automoto/versus/shared/hitbox"
	"github.com/automoto/versus/shared/movedb"
)

// AnimationPlayer plays named animations. The machine never inspects frame
// data; it only names what should play.
type AnimationPlayer interface {
	// Play starts the named animation. An error means the animation does not
	// exist and the current pose is held.
	Play(name string) error
	IsFinished() bool
	NormalizedProgress() float64
}

// Body is the physics side of a fighter. Position is the feet center.
type Body interface {
	Position() gamemath.Vector
	Velocity() gamemath.Vector
	SetVelocity(v gamemath.Vector)
	Grounded() bool
	SetGrounded(grounded bool)
	// SetSimulated turns physics integration on or off.
	SetSimulated(on bool)
}

// SpawnRequest asks for a projectile. The machine does not track what gets
// spawned.
type SpawnRequest struct {
	Owner  string
	Origin gamemath.Vector
	Facing float64
	Damage float64
	Move   movedb.MoveDescriptor
	Attack *hitbox.AttackInstance
}

// Spawner creates projectiles and effects, fire and forget.
type Spawner interface {
	Spawn(req SpawnRequest)
}

// Target is anything the machine can face, usually the opponent.
type Target interface {
	Position() gamemath.Vector
}

// Animation identifiers for the non-move states.
const (
	AnimIdle            = "Action_0"
	AnimWalk            = "Action_20"
	AnimJump            = "Action_40"
	AnimFall            = "Action_50"
	AnimBlock           = "Action_130"
	AnimKnockback       = "Action_5000"
	AnimAerialKnockback = "Action_5030"
	AnimDead            = "Action_5150"
	AnimDizzy           = "Action_5300"
)
