// Package fsm is the per-fighter combat and movement state machine. One
// generic Machine runs every character; what differs between characters is
// the move table it is built with.
package fsm

import (
	"log"

	"github.com/automoto/versus/shared/events"
	"github.com/automoto/versus/shared/gamemath"
	"github.com/automoto/versus/shared/hitbox"
	"github.com/automoto/versus/shared/intent"
	"github.com/automoto/versus/shared/movedb"
	"github.com/automoto/versus/shared/netconfig"
	"github.com/automoto/versus/shared/stats"
)

type chainID int

const (
	chainNone chainID = iota
	chainA
	chainB
)

func (c chainID) String() string {
	switch c {
	case chainA:
		return "A"
	case chainB:
		return "B"
	}
	return "-"
}

// Deps are the collaborators a Machine drives. Ledger, Animation and Body
// are required.
type Deps struct {
	Ledger    *stats.Ledger
	Animation AnimationPlayer
	Body      Body
	Spawner   Spawner
	Sink      events.Sink
	Buffer    *intent.Buffer
}

// Machine is one fighter's state machine.
type Machine struct {
	id    string
	cfg   Config
	table *movedb.MoveTable

	ledger  *stats.Ledger
	anim    AnimationPlayer
	body    Body
	spawner Spawner
	sink    events.Sink
	buffer  *intent.Buffer

	state      netconfig.StateID
	stateTimer float64
	facing     float64
	target     Target

	buttons     netconfig.Buttons
	prevButtons netconfig.Buttons

	move         movedb.MoveDescriptor
	attack       *hitbox.AttackInstance
	chain        chainID
	comboStepA   int
	comboStepB   int
	hitConfirmed bool
	sinceAttack  float64
	spawned      bool

	knockback  gamemath.Vector
	dizzyTimer float64
}

// New creates a machine in Idle facing right.
func New(id string, table *movedb.MoveTable, cfg Config, deps Deps) *Machine {
	m := &Machine{
		id:      id,
		cfg:     cfg,
		table:   table,
		ledger:  deps.Ledger,
		anim:    deps.Animation,
		body:    deps.Body,
		spawner: deps.Spawner,
		sink:    deps.Sink,
		buffer:  deps.Buffer,
		state:   netconfig.Idle,
		facing:  1,
	}
	if m.sink == nil {
		m.sink = events.Nop
	}
	if m.buffer == nil {
		m.buffer = intent.NewBuffer(intent.DefaultLifetime)
	}
	if m.table == nil {
		m.table = &movedb.MoveTable{}
	}
	m.ledger.Subscribe(m.onLedgerEvent)
	m.play(AnimIdle)
	return m
}

func (m *Machine) onLedgerEvent(e stats.Event) {
	switch e {
	case stats.EventDeath:
		m.sink.Emit(events.DeathEvent{Fighter: m.id})
		m.enter(netconfig.Dead)
	case stats.EventDizzyStart:
		m.dizzyTimer = 0
		if m.state != netconfig.Knockback && m.state != netconfig.AerialKnockback {
			m.enter(netconfig.Dizzied)
		}
	case stats.EventDizzyEnd:
		if m.state == netconfig.Dizzied {
			m.enter(netconfig.Idle)
		}
	}
}

// Reset puts the fighter back to its round-start state and refills its
// ledger.
func (m *Machine) Reset() {
	m.ledger.Reset()
	m.buffer.Clear()
	m.dropAttack()
	m.comboStepA, m.comboStepB = 0, 0
	m.buttons, m.prevButtons = 0, 0
	m.knockback = gamemath.Vector{}
	m.dizzyTimer = 0
	m.body.SetSimulated(true)
	m.body.SetVelocity(gamemath.Vector{})
	m.state = netconfig.Idle
	m.enter(netconfig.Idle)
}

// Decay ages the ledger's idle clock and the input buffer. It runs before
// any controller or Step in a tick.
func (m *Machine) Decay(dt float64) {
	m.ledger.Tick(dt)
	m.buffer.Tick(dt)
}

// SetTarget sets what the fighter faces. A nil target freezes facing.
func (m *Machine) SetTarget(t Target) {
	m.target = t
}

func (m *Machine) ID() string { return m.id }
func (m *Machine) Character() string { return m.table.Character }
func (m *Machine) CurrentState() netconfig.StateID { return m.state }
func (m *Machine) StateTimer() float64 { return m.stateTimer }
func (m *Machine) Facing() float64 { return m.facing }
func (m *Machine) Ledger() *stats.Ledger { return m.ledger }
func (m *Machine) Buffer() *intent.Buffer { return m.buffer }
func (m *Machine) Body() Body { return m.body }
func (m *Machine) Buttons() netconfig.Buttons { return m.buttons }
func (m *Machine) ComboSteps() (a, b int) { return m.comboStepA, m.comboStepB }
func (m *Machine) HitConfirmed() bool { return m.hitConfirmed }
func (m *Machine) CurrentMove() movedb.MoveDescriptor { return m.move }
func (m *Machine) Position() gamemath.Vector { return m.body.Position() }
func (m *Machine) Table() *movedb.MoveTable { return m.table }

// ActiveAttack returns the attack whose hitbox is open, or nil.
func (m *Machine) ActiveAttack() *hitbox.AttackInstance {
	if m.state != netconfig.Attacking || m.attack == nil || !m.attack.Active() {
		return nil
	}
	return m.attack
}

// HitboxRect returns the world rectangle of the open hitbox.
func (m *Machine) HitboxRect() (x, y, w, h float64, ok bool) {
	if m.ActiveAttack() == nil || !m.move.HasHitbox() {
		return 0, 0, 0, 0, false
	}
	pos := m.body.Position()
	box := m.move.Hitbox
	x = pos.X + box.X
	if m.facing < 0 {
		x = pos.X - box.X - box.W
	}
	return x, pos.Y + box.Y, box.W, box.H, true
}

// OnHitConfirmed is called by the hit resolver when one of this fighter's
// attacks lands.
func (m *Machine) OnHitConfirmed(a *hitbox.AttackInstance) {
	if a == nil || a != m.attack {
		return
	}
	m.hitConfirmed = true
	m.ledger.AddMeter(a.MeterGain)
}

// ApplyKnockback forces the fighter into hit stun. It preempts every state
// except Dead.
func (m *Machine) ApplyKnockback(v gamemath.Vector, aerial bool) {
	if m.state == netconfig.Dead {
		return
	}
	m.dropAttack()
	m.comboStepA, m.comboStepB = 0, 0
	m.knockback = v
	if aerial {
		m.enter(netconfig.AerialKnockback)
		return
	}
	m.enter(netconfig.Knockback)
}

func (m *Machine) enter(next netconfig.StateID) {
	if m.state == netconfig.Dead {
		return
	}
	prev := m.state
	m.state = next
	m.stateTimer = 0

	vel := m.body.Velocity()
	switch next {
	case netconfig.Idle:
		vel.X = 0
		m.play(AnimIdle)
	case netconfig.Walking:
		m.play(AnimWalk)
	case netconfig.Jumping:
		vel.Y = -m.table.Movement.JumpHeight
		m.body.SetGrounded(false)
		m.play(AnimJump)
	case netconfig.Falling:
		m.play(AnimFall)
	case netconfig.Attacking:
		vel.X = 0
		m.play(m.move.Animation)
	case netconfig.Blocking:
		vel.X = 0
		m.play(AnimBlock)
	case netconfig.ForwardDashing, netconfig.BackDashing:
		m.play(m.move.Animation)
	case netconfig.Knockback:
		vel.X = m.knockback.X
		m.play(AnimKnockback)
	case netconfig.AerialKnockback:
		vel = m.knockback
		m.body.SetGrounded(false)
		m.play(AnimAerialKnockback)
	case netconfig.Dizzied:
		vel.X = 0
		m.dropAttack()
		m.play(AnimDizzy)
	case netconfig.Dead:
		vel = gamemath.Vector{}
		m.dropAttack()
		m.body.SetSimulated(false)
		m.play(AnimDead)
	}
	m.body.SetVelocity(vel)

	if prev != next {
		m.sink.Emit(events.StateChangeEvent{Fighter: m.id, From: prev, To: next})
	}
}

func (m *Machine) play(name string) {
	if m.anim == nil {
		return
	}
	if name == "" {
		log.Printf("[fsm] %s: no animation for %s, holding pose", m.id, m.state)
		return
	}
	if err := m.anim.Play(name); err != nil {
		log.Printf("[fsm] %s: missing animation %s: %v", m.id, name, err)
	}
}

func (m *Machine) dropAttack() {
	if m.attack != nil {
		m.attack.Deactivate()
	}
	m.attack = nil
	m.chain = chainNone
}

func (m *Machine) debugf(format string, args ...any) {
	if m.cfg.Debug {
		log.Printf("[fsm] "+m.id+": "+format, args...)
	}
}
