// Package ai drives a fighter with the same buttons a player presses. A
// Policy decides on a fixed think interval and plays its decision back over
// the following ticks.
package ai

import (
	"math/rand"

	"github.com/automoto/versus/shared/gamemath"
	"github.com/automoto/versus/shared/intent"
	"github.com/automoto/versus/shared/movedb"
	"github.com/automoto/versus/shared/netconfig"
	"github.com/automoto/versus/shared/stats"
)

// View is the read-only side of a fighter the policy looks at.
// *fsm.Machine satisfies it.
type View interface {
	Position() gamemath.Vector
	CurrentState() netconfig.StateID
	Facing() float64
	Ledger() *stats.Ledger
}

// Action is one decision.
type Action int

const (
	ActionNone Action = iota
	ActionApproach
	ActionRetreat
	ActionJump
	ActionBlock
	ActionLight
	ActionHeavy
	ActionSpecial
	ActionSuper
)

func (a Action) String() string {
	switch a {
	case ActionApproach:
		return "approach"
	case ActionRetreat:
		return "retreat"
	case ActionJump:
		return "jump"
	case ActionBlock:
		return "block"
	case ActionLight:
		return "light"
	case ActionHeavy:
		return "heavy"
	case ActionSpecial:
		return "special"
	case ActionSuper:
		return "super"
	}
	return "none"
}

type motion struct {
	move    string
	pattern string
	cost    float64
}

// Policy is one bot's decision state.
type Policy struct {
	cfg     Config
	rng     *rand.Rand
	special *motion
	super   *motion

	thinkTimer float64
	cooldown   float64
	action     Action
	hold       float64
	queue      []netconfig.Buttons

	// Reused by decide to avoid allocations in the tick.
	options []Action
	weights []float64
}

// New builds a policy for a character. The first special and super command
// in the table become its motions. A nil rng gets a fixed seed.
func New(table *movedb.MoveTable, cfg Config, rng *rand.Rand) *Policy {
	if rng == nil {
		rng = rand.New(rand.NewSource(42))
	}
	p := &Policy{
		cfg:     cfg,
		rng:     rng,
		options: make([]Action, 0, 8),
		weights: make([]float64, 0, 8),
	}
	if table == nil {
		return p
	}
	for _, c := range table.Commands {
		m, err := table.Move(c.Move)
		if err != nil {
			continue
		}
		mo := &motion{move: m.Name, pattern: c.Pattern, cost: m.MeterCost}
		switch {
		case m.Kind == movedb.KindSpecial && p.special == nil:
			p.special = mo
		case m.Kind == movedb.KindSuper && p.super == nil:
			p.super = mo
		}
	}
	return p
}

// Action returns what the policy is currently doing.
func (p *Policy) Action() Action { return p.action }

// Interrupt drops the current action and any queued buttons.
func (p *Policy) Interrupt() {
	p.action = ActionNone
	p.hold = 0
	p.queue = p.queue[:0]
}

// Think returns this tick's buttons. It is a no-op until both fighters are
// known, and it returns nothing while self is helpless.
func (p *Policy) Think(self, target View, dt float64) netconfig.Buttons {
	if self == nil || target == nil {
		p.Interrupt()
		return 0
	}
	if self.CurrentState().Helpless() {
		p.Interrupt()
		return 0
	}

	p.thinkTimer -= dt
	p.cooldown -= dt

	if len(p.queue) == 0 && p.hold <= 0 {
		p.action = ActionNone
		if p.thinkTimer > 0 {
			return 0
		}
		p.thinkTimer = p.cfg.ThinkInterval
		p.begin(p.decide(self, target), self)
	}
	return p.next(self, target, dt)
}

func (p *Policy) next(self, target View, dt float64) netconfig.Buttons {
	if len(p.queue) > 0 {
		b := p.queue[0]
		p.queue = p.queue[1:]
		if len(p.queue) == 0 && p.hold <= 0 {
			p.action = ActionNone
		}
		return b
	}
	if p.hold <= 0 {
		return 0
	}
	p.hold -= dt

	toward := netconfig.ActionRight
	if target.Position().X < self.Position().X {
		toward = netconfig.ActionLeft
	}
	switch p.action {
	case ActionApproach:
		return toward.Bit()
	case ActionRetreat:
		if toward == netconfig.ActionRight {
			return netconfig.ActionLeft.Bit()
		}
		return netconfig.ActionRight.Bit()
	case ActionBlock:
		return netconfig.ActionBlock.Bit()
	}
	return 0
}

func (p *Policy) begin(a Action, self View) {
	p.action = a
	switch a {
	case ActionApproach, ActionRetreat, ActionBlock:
		p.hold = p.cfg.HoldTime
	case ActionJump:
		p.queue = append(p.queue, netconfig.ActionUp.Bit())
	case ActionLight:
		p.queue = append(p.queue, netconfig.ActionPunch.Bit())
		p.cooldown = p.cfg.AttackCooldown
	case ActionHeavy:
		p.queue = append(p.queue, netconfig.ActionKick.Bit())
		p.cooldown = p.cfg.AttackCooldown
	case ActionSpecial:
		p.queueMotion(p.special.pattern, self.Facing())
		p.cooldown = p.cfg.AttackCooldown
	case ActionSuper:
		p.queueMotion(p.super.pattern, self.Facing())
		p.cooldown = p.cfg.AttackCooldown
	}
}

// queueMotion turns a command pattern into one press per symbol with a
// release tick between, so every symbol is a fresh edge.
func (p *Policy) queueMotion(pattern string, facing float64) {
	resolved := intent.Resolve(pattern, facing)
	for i := 0; i < len(resolved); i++ {
		a, ok := intent.ActionFor(resolved[i])
		if !ok {
			continue
		}
		if len(p.queue) > 0 {
			p.queue = append(p.queue, 0)
		}
		p.queue = append(p.queue, a.Bit())
	}
}

func (p *Policy) decide(self, target View) Action {
	p.options = p.options[:0]
	p.weights = p.weights[:0]
	add := func(a Action, w float64) {
		if w > 0 {
			p.options = append(p.options, a)
			p.weights = append(p.weights, w)
		}
	}

	w := p.cfg.Weights
	dist := gamemath.DistanceX(self.Position(), target.Position())
	ledger := self.Ledger()
	hyper := ledger.Hyper()
	ready := p.cooldown <= 0
	inMelee := dist <= p.cfg.AttackRange

	if !inMelee {
		add(ActionApproach, w.Approach)
	}
	if ledger.Snapshot().HealthRatio() < p.cfg.RetreatThreshold || dist < p.cfg.AttackRange/2 {
		add(ActionRetreat, w.Retreat)
	}
	add(ActionJump, w.Jump)
	if target.CurrentState() == netconfig.Attacking && dist <= p.cfg.ThreatRange {
		add(ActionBlock, w.Block)
	}
	if ready && inMelee {
		add(ActionLight, w.Light)
		add(ActionHeavy, w.Heavy)
	}
	if ready && p.special != nil && hyper >= p.special.cost && !inMelee && dist <= p.cfg.SpecialRange {
		add(ActionSpecial, w.Special)
	}
	if ready && p.super != nil && hyper >= p.super.cost && dist <= p.cfg.SpecialRange {
		add(ActionSuper, w.Super)
	}

	if len(p.options) == 0 {
		return ActionNone
	}

	total := 0.0
	for _, wt := range p.weights {
		total += wt
	}
	roll := p.rng.Float64() * total
	cumulative := 0.0
	for i, wt := range p.weights {
		cumulative += wt
		if roll < cumulative {
			return p.options[i]
		}
	}
	return p.options[len(p.options)-1]
}
