// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so the dedicated server binary stays headless.
package netconfig

// StateID identifies a fighter state. Exactly one is active per fighter per tick.
type StateID int

// MatchStateID represents the current state of a match.
type MatchStateID int

const (
	MatchStateWaiting   MatchStateID = iota // Waiting for fighters
	MatchStateCountdown                     // Pre-round countdown (3, 2, 1)
	MatchStatePlaying                       // Round in progress
	MatchStateRoundOver                     // KO or timeout, short pause before next round
	MatchStateFinished                      // Match decided
)

func (m MatchStateID) String() string {
	switch m {
	case MatchStateWaiting:
		return "waiting"
	case MatchStateCountdown:
		return "countdown"
	case MatchStatePlaying:
		return "playing"
	case MatchStateRoundOver:
		return "round_over"
	case MatchStateFinished:
		return "finished"
	}
	return "unknown"
}

// StateNone marks the absence of a state in synced data.
const StateNone StateID = -1

const (
	Idle StateID = iota
	Walking
	Jumping
	Falling
	Attacking
	Blocking
	ForwardDashing
	BackDashing
	Knockback
	AerialKnockback
	Dizzied
	Dead
)

var stateNames = map[StateID]string{
	Idle:            "idle",
	Walking:         "walking",
	Jumping:         "jumping",
	Falling:         "falling",
	Attacking:       "attacking",
	Blocking:        "blocking",
	ForwardDashing:  "forward_dashing",
	BackDashing:     "back_dashing",
	Knockback:       "knockback",
	AerialKnockback: "aerial_knockback",
	Dizzied:         "dizzied",
	Dead:            "dead",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Locked reports whether input cannot move the fighter out of the state.
func (s StateID) Locked() bool {
	switch s {
	case Attacking, ForwardDashing, BackDashing, Knockback, AerialKnockback, Dizzied, Dead:
		return true
	}
	return false
}

// Helpless reports whether the fighter is in a forced state that overrides any
// controller, human or AI.
func (s StateID) Helpless() bool {
	switch s {
	case Knockback, AerialKnockback, Dizzied, Dead:
		return true
	}
	return false
}

// ActionID represents a logical fighter action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLeft
	ActionRight
	ActionDown
	ActionUp // also jump
	ActionKick
	ActionPunch
	ActionSpecial
	ActionHyper
	ActionBlock
	ActionCount // Must be last - used for array sizing
)

// Buttons is the per-tick pressed state of every action. Human and AI
// controllers both produce Buttons; the state machine consumes nothing else.
type Buttons uint16

// Bit returns the mask for an action.
func (a ActionID) Bit() Buttons {
	if a <= ActionNone || a >= ActionCount {
		return 0
	}
	return 1 << uint(a)
}

// Has reports whether the action is held.
func (b Buttons) Has(a ActionID) bool {
	return b&a.Bit() != 0
}

// With returns b with the action held.
func (b Buttons) With(a ActionID) Buttons {
	return b | a.Bit()
}

// Pressed returns the actions held in b that were not held in prev.
func (b Buttons) Pressed(prev Buttons) Buttons {
	return b &^ prev
}

// Horizontal returns -1, 0 or 1 from the left/right actions.
func (b Buttons) Horizontal() float64 {
	x := 0.0
	if b.Has(ActionLeft) {
		x--
	}
	if b.Has(ActionRight) {
		x++
	}
	return x
}

// ButtonsOf builds a Buttons value from a list of actions.
func ButtonsOf(actions ...ActionID) Buttons {
	var b Buttons
	for _, a := range actions {
		b = b.With(a)
	}
	return b
}
