package fsm

import (
	"log"

	"github.com/automoto/versus/shared/events"
	"github.com/automoto/versus/shared/hitbox"
	"github.com/automoto/versus/shared/intent"
	"github.com/automoto/versus/shared/movedb"
	"github.com/automoto/versus/shared/netconfig"
)

func (m *Machine) acceptsCommands() bool {
	return m.state == netconfig.Idle || m.state == netconfig.Walking
}

// tryCommand matches the table's command motions against the input buffer
// in table order. The first match is consumed even when the move cannot be
// paid for.
func (m *Machine) tryCommand() bool {
	if len(m.table.Commands) == 0 || m.buffer.Len() == 0 {
		return false
	}
	patterns := make([]string, len(m.table.Commands))
	for i, c := range m.table.Commands {
		patterns[i] = intent.Resolve(c.Pattern, m.facing)
	}
	var cmd movedb.Command
	matched := false
	for i, p := range patterns {
		if m.buffer.FindAndConsume(p) {
			cmd = m.table.Commands[i]
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	move := m.lookup(cmd.Move)
	switch move.Kind {
	case movedb.KindDashForward:
		m.move = move
		m.enter(netconfig.ForwardDashing)
		return true
	case movedb.KindDashBack:
		m.move = move
		m.enter(netconfig.BackDashing)
		return true
	}

	if move.MeterCost > 0 && !m.ledger.TrySpendMeter(move.MeterCost) {
		m.sink.Emit(events.SuperFailedEvent{
			Fighter: m.id,
			Move:    move.Name,
			Cost:    move.MeterCost,
			Meter:   m.ledger.Hyper(),
		})
		m.debugf("%s needs %.0f meter, have %.0f", move.Name, move.MeterCost, m.ledger.Hyper())
		return false
	}
	m.comboStepA, m.comboStepB = 0, 0
	m.startAttack(move, chainNone)
	return true
}

// handleAttackInput starts or continues a combo chain on a punch or kick
// press. Kick wins when both go down on the same tick, matching the input
// buffer's priority.
func (m *Machine) handleAttackInput() bool {
	var c chainID
	switch {
	case m.pressed(netconfig.ActionKick):
		c = chainB
	case m.pressed(netconfig.ActionPunch):
		c = chainA
	default:
		return false
	}

	switch m.state {
	case netconfig.Idle, netconfig.Walking:
		return m.advanceChain(c)
	case netconfig.Attacking:
		if m.chain == chainNone {
			m.debugf("dropped %s input during %s", c, m.move.Name)
			return false
		}
		return m.advanceChain(c)
	}
	return false
}

func (m *Machine) chainDef(c chainID) movedb.Chain {
	if c == chainA {
		return m.table.ChainA
	}
	return m.table.ChainB
}

func (m *Machine) step(c chainID) *int {
	if c == chainA {
		return &m.comboStepA
	}
	return &m.comboStepB
}

// advanceChain starts the next step of chain c. An attack in progress is
// only cancelled into another one after it has hit, whichever chain is
// pressed.
func (m *Machine) advanceChain(c chainID) bool {
	if m.state == netconfig.Attacking && !m.hitConfirmed {
		m.sink.Emit(events.ComboDroppedEvent{Fighter: m.id, Chain: c.String(), Step: *m.step(c)})
		m.debugf("combo dropped: missed")
		return false
	}

	if m.sinceAttack > m.cfg.ComboWindow {
		m.comboStepA, m.comboStepB = 0, 0
	}
	if c == chainA {
		m.comboStepB = 0
	} else {
		m.comboStepA = 0
	}

	def := m.chainDef(c)
	if len(def.Steps) == 0 {
		return false
	}
	step := m.step(c)

	var name string
	switch {
	case *step < len(def.Steps):
		name = def.Steps[*step]
	case *step == len(def.Steps) && def.Finisher != "":
		name = def.Finisher
	default:
		*step = 0
		name = def.Steps[0]
	}

	m.startAttack(m.lookup(name), c)
	*step++
	return true
}

// lookup returns the named move, or a zero-length placeholder when the table
// lacks it.
func (m *Machine) lookup(name string) movedb.MoveDescriptor {
	move, err := m.table.Move(name)
	if err != nil {
		log.Printf("[fsm] %s: %v", m.id, err)
		return movedb.MoveDescriptor{Name: name, Kind: movedb.KindNormal}
	}
	return move
}

func (m *Machine) startAttack(move movedb.MoveDescriptor, c chainID) {
	if m.attack != nil {
		m.attack.Deactivate()
	}
	m.move = move
	m.chain = c
	m.hitConfirmed = false
	m.sinceAttack = 0
	m.spawned = false
	m.attack = hitbox.NewAttack(m.id, move, m.facing, m.cfg.LauncherThreshold, m)
	m.enter(netconfig.Attacking)
}

func (m *Machine) updateAttack() {
	vel := m.body.Velocity()
	vel.X = 0
	m.body.SetVelocity(vel)

	if m.stateTimer > m.move.Duration() {
		m.dropAttack()
		m.comboStepA, m.comboStepB = 0, 0
		m.enter(netconfig.Idle)
		return
	}

	if m.move.Projectile != nil && !m.spawned && m.stateTimer >= float64(m.move.StartupFrames)/movedb.FrameRate {
		m.spawned = true
		m.spawnProjectile()
	}

	if m.attack == nil {
		return
	}
	inWindow := m.move.ActiveAt(m.stateTimer)
	switch {
	case inWindow && !m.attack.Active():
		m.attack.Activate()
	case !inWindow && m.attack.Active():
		m.attack.Deactivate()
	}
}

func (m *Machine) spawnProjectile() {
	if m.spawner == nil {
		return
	}
	p := m.move.Projectile
	attack := hitbox.NewAttack(m.id, m.move, m.facing, m.cfg.LauncherThreshold, nil)
	attack.Projectile = true
	attack.Activate()
	m.spawner.Spawn(SpawnRequest{
		Owner:  m.id,
		Origin: m.body.Position().Add(p.Offset.MirrorX(m.facing)),
		Facing: m.facing,
		Damage: m.move.Damage,
		Move:   m.move,
		Attack: attack,
	})
}
