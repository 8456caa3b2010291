package hitbox

import (
	"log"

	"github.com/automoto/versus/shared/events"
	"github.com/automoto/versus/shared/gamemath"
	"github.com/automoto/versus/shared/netconfig"
	"github.com/automoto/versus/shared/stats"
)

// Outcome is the result of resolving one overlap.
type Outcome int

const (
	Whiffed Outcome = iota
	Hit
	Blocked
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Blocked:
		return "blocked"
	}
	return "whiffed"
}

// Defender is the receiving side of an overlap.
type Defender interface {
	ID() string
	CurrentState() netconfig.StateID
	Ledger() *stats.Ledger
	// ApplyKnockback forces Knockback, or AerialKnockback when aerial is set,
	// with the given velocity.
	ApplyKnockback(v gamemath.Vector, aerial bool)
}

// Config holds resolver tuning.
type Config struct {
	ChipRatio         float64 // fraction of damage taken through a block
	BlockMeterGain    float64 // meter the blocker gains
	HitMeterRatio     float64 // meter the defender gains per point of damage taken
	LauncherThreshold float64 // upward knockback speed that makes a launcher
	Debug             bool
}

func DefaultConfig() Config {
	return Config{
		ChipRatio:         0.1,
		BlockMeterGain:    5,
		HitMeterRatio:     0.05,
		LauncherThreshold: 300,
	}
}

// Resolver applies attacks to defenders.
type Resolver struct {
	cfg  Config
	sink events.Sink
}

func NewResolver(cfg Config, sink events.Sink) *Resolver {
	if sink == nil {
		sink = events.Nop
	}
	return &Resolver{cfg: cfg, sink: sink}
}

func (r *Resolver) Config() Config {
	return r.cfg
}

// Resolve handles an overlap between an active attack and a defender's
// hurtbox. frontal is set when the defender faces the attack.
func (r *Resolver) Resolve(a *AttackInstance, d Defender, frontal bool) Outcome {
	if a == nil || d == nil || !a.Active() {
		return Whiffed
	}
	id := d.ID()
	if id == a.Owner || a.HasHit(id) {
		return Whiffed
	}
	ledger := d.Ledger()
	if ledger == nil || ledger.IsDead() || d.CurrentState() == netconfig.Dead {
		return Whiffed
	}
	a.markHit(id)

	if d.CurrentState() == netconfig.Blocking && frontal && !a.Unblockable {
		chip := a.Damage * r.cfg.ChipRatio
		ledger.ApplyBlockedHit(chip, r.cfg.BlockMeterGain)
		r.sink.Emit(events.BlockEvent{Attacker: a.Owner, Defender: id, Chip: chip})
		if r.cfg.Debug {
			log.Printf("[hitbox] %s blocked %s/%s chip=%.1f", id, a.Owner, a.Move, chip)
		}
		return Blocked
	}

	applied := ledger.ApplyHit(a.Damage, a.Damage*r.cfg.HitMeterRatio)
	ledger.AddStun(a.StunDamage)
	kb := a.KnockbackVelocity()
	d.ApplyKnockback(kb, a.IsAerialLauncher)

	if a.attacker != nil {
		a.attacker.OnHitConfirmed(a)
	}
	r.sink.Emit(events.HitEvent{
		Attacker:  a.Owner,
		Defender:  id,
		Damage:    applied,
		Knockback: kb,
		Launcher:  a.IsAerialLauncher,
		Combo:     ledger.ComboCount(),
	})
	if r.cfg.Debug {
		log.Printf("[hitbox] %s hit %s with %s dmg=%.1f combo=%d", a.Owner, id, a.Move, applied, ledger.ComboCount())
	}
	return Hit
}
