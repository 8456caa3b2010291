package fsm

import (
	"math"

	"github.com/automoto/versus/shared/gamemath"
	"github.com/automoto/versus/shared/intent"
	"github.com/automoto/versus/shared/netconfig"
)

// Step advances the machine by one tick with the controller's buttons. Human
// and AI controllers both call it the same way.
func (m *Machine) Step(buttons netconfig.Buttons, dt float64) {
	m.prevButtons = m.buttons
	m.buttons = buttons

	if m.state == netconfig.Dead {
		m.body.SetVelocity(gamemath.Vector{})
		return
	}

	intent.Record(m.buffer, m.buttons, m.prevButtons)
	m.updateFacing()

	m.stateTimer += dt
	m.sinceAttack += dt

	if m.ledger.IsDizzy() && !m.state.Helpless() && m.body.Grounded() {
		m.enter(netconfig.Dizzied)
	}

	if m.acceptsCommands() && m.tryCommand() {
		m.applyGravity(dt)
		return
	}
	if m.handleAttackInput() {
		m.applyGravity(dt)
		return
	}

	m.updateState(dt)
	m.applyGravity(dt)
}

func (m *Machine) pressed(a netconfig.ActionID) bool {
	return m.buttons.Pressed(m.prevButtons).Has(a)
}

func (m *Machine) held(a netconfig.ActionID) bool {
	return m.buttons.Has(a)
}

func (m *Machine) updateFacing() {
	switch m.state {
	case netconfig.Attacking, netconfig.ForwardDashing, netconfig.BackDashing, netconfig.Dead:
		return
	}
	if m.target == nil {
		return
	}
	dx := m.target.Position().X - m.body.Position().X
	m.facing = gamemath.Sign(dx, m.facing)
}

func (m *Machine) updateState(dt float64) {
	mv := m.table.Movement
	vel := m.body.Velocity()
	input := m.buttons.Horizontal()
	grounded := m.body.Grounded()

	switch m.state {
	case netconfig.Idle:
		vel.X = 0
		m.body.SetVelocity(vel)
		switch {
		case !grounded:
			m.enter(netconfig.Falling)
		case m.held(netconfig.ActionBlock):
			m.enter(netconfig.Blocking)
		case m.held(netconfig.ActionUp):
			m.enter(netconfig.Jumping)
		case input != 0:
			m.enter(netconfig.Walking)
		}

	case netconfig.Walking:
		vel.X = gamemath.ClampSpeed(gamemath.Approach(vel.X, input*mv.MaxSpeed, mv.WalkAccel*dt), mv.MaxSpeed)
		m.body.SetVelocity(vel)
		switch {
		case !grounded:
			m.enter(netconfig.Falling)
		case m.held(netconfig.ActionBlock):
			m.enter(netconfig.Blocking)
		case m.held(netconfig.ActionUp):
			m.enter(netconfig.Jumping)
		case input == 0:
			m.enter(netconfig.Idle)
		}

	case netconfig.Jumping:
		if vel.Y > -mv.JumpHeight+m.cfg.JumpEpsilon {
			m.enter(netconfig.Falling)
		}

	case netconfig.Falling:
		if grounded {
			if input != 0 {
				m.enter(netconfig.Walking)
			} else {
				m.enter(netconfig.Idle)
			}
		}

	case netconfig.Attacking:
		m.updateAttack()

	case netconfig.Blocking:
		vel.X = 0
		m.body.SetVelocity(vel)
		if !m.held(netconfig.ActionBlock) {
			m.enter(netconfig.Idle)
		}

	case netconfig.ForwardDashing, netconfig.BackDashing:
		dir := m.facing
		if m.state == netconfig.BackDashing {
			dir = -m.facing
		}
		vel.X = dir * (mv.MaxSpeed + mv.DashBonus)
		m.body.SetVelocity(vel)
		if m.stateTimer > m.move.Duration() {
			m.enter(netconfig.Idle)
		}

	case netconfig.Knockback:
		vel.X = m.knockback.X
		m.body.SetVelocity(vel)
		if m.stateTimer > m.cfg.KnockbackDuration {
			m.recover(netconfig.Idle)
		}

	case netconfig.AerialKnockback:
		if m.stateTimer > m.cfg.AerialKnockbackDuration {
			m.enter(netconfig.Falling)
		}

	case netconfig.Dizzied:
		vel.X = 0
		m.body.SetVelocity(vel)
		m.dizzyTimer += dt
		if m.dizzyTimer >= m.cfg.DizzyDuration {
			// The ledger's dizzy-end event moves us to Idle.
			m.ledger.ResetStun()
		}
	}
}

// recover leaves hit stun, going to Dizzied instead when stun maxed out
// during the knockback.
func (m *Machine) recover(next netconfig.StateID) {
	if m.ledger.IsDizzy() {
		m.enter(netconfig.Dizzied)
		return
	}
	m.enter(next)
}

func (m *Machine) applyGravity(dt float64) {
	if m.state == netconfig.Dead || m.body.Grounded() {
		return
	}
	g := m.table.Movement.Gravity * dt
	if m.state == netconfig.Falling && m.held(netconfig.ActionBlock) {
		g *= m.cfg.FastFallMultiplier
	}
	vel := m.body.Velocity()
	vel.Y += g
	m.body.SetVelocity(vel)
}

// DizzyRemaining returns the seconds left in Dizzied, for HUD and AI.
func (m *Machine) DizzyRemaining() float64 {
	if m.state != netconfig.Dizzied {
		return 0
	}
	return math.Max(m.cfg.DizzyDuration-m.dizzyTimer, 0)
}
