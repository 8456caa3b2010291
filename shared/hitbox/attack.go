// Package hitbox resolves an active attack against a defender: hit, block or
// whiff, and the damage, stun, meter and knockback that follow.
package hitbox

import (
	"github.com/automoto/versus/shared/gamemath"
	"github.com/automoto/versus/shared/movedb"
)

// Attacker receives hit confirmation for its own attacks. The state machine
// uses it to gate combo continuation.
type Attacker interface {
	OnHitConfirmed(a *AttackInstance)
}

// AttackInstance is one live attack. It is created when an attack starts and
// dropped when its hitbox window closes. Each activation may hit a given
// defender at most once.
type AttackInstance struct {
	Owner            string
	Move             string
	Damage           float64
	StunDamage       float64
	Knockback        gamemath.Vector
	FacingSign       float64
	IsAerialLauncher bool
	Unblockable      bool
	MeterGain        float64 // granted to the attacker on confirm
	Projectile       bool

	attacker Attacker
	active   bool
	hit      map[string]struct{}
}

// NewAttack builds an attack from a move. attacker may be nil for attacks
// whose confirmation nobody tracks.
func NewAttack(owner string, m movedb.MoveDescriptor, facing, launcherThreshold float64, attacker Attacker) *AttackInstance {
	return &AttackInstance{
		Owner:            owner,
		Move:             m.Name,
		Damage:           m.Damage,
		StunDamage:       m.StunDamage,
		Knockback:        m.Knockback,
		FacingSign:       gamemath.Sign(facing, 1),
		IsAerialLauncher: -m.Knockback.Y > launcherThreshold,
		Unblockable:      m.Unblockable,
		MeterGain:        m.MeterGain,
		attacker:         attacker,
		hit:              make(map[string]struct{}),
	}
}

// Activate opens a new hitbox window and forgets previous hits.
func (a *AttackInstance) Activate() {
	a.active = true
	clear(a.hit)
}

// Deactivate closes the hitbox window.
func (a *AttackInstance) Deactivate() {
	a.active = false
}

func (a *AttackInstance) Active() bool {
	return a.active
}

// HasHit reports whether the defender was already struck this activation.
func (a *AttackInstance) HasHit(defender string) bool {
	_, ok := a.hit[defender]
	return ok
}

// KnockbackVelocity returns the knockback mirrored by the attacker's facing.
func (a *AttackInstance) KnockbackVelocity() gamemath.Vector {
	return a.Knockback.MirrorX(a.FacingSign)
}

func (a *AttackInstance) markHit(defender string) {
	a.hit[defender] = struct{}{}
}
