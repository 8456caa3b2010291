package movedb

import (
	"fmt"

	"github.com/automoto/versus/shared/gamemath"
)

// FrameRate converts frame counts in move data to seconds.
const FrameRate = 60.0

// Kind classifies how a move is triggered.
type Kind string

const (
	KindNormal      Kind = "normal"
	KindSpecial     Kind = "special"
	KindSuper       Kind = "super"
	KindDashForward Kind = "dash_forward"
	KindDashBack    Kind = "dash_back"
)

// Box is a rectangle relative to the fighter's feet, mirrored by facing.
type Box struct {
	X, Y, W, H float64
}

// Projectile describes an entity a move spawns instead of (or in addition
// to) a melee hitbox.
type Projectile struct {
	Speed    float64 // units per second along facing
	Lifetime float64 // seconds
	W, H     float64
	Offset   gamemath.Vector
}

// MoveDescriptor is one immutable move entry.
type MoveDescriptor struct {
	Name             string          `yaml:"-"`
	InputPattern     string          `yaml:"input"`
	Kind             Kind            `yaml:"kind"`
	Animation        string          `yaml:"animation"`
	StartupFrames    int             `yaml:"startup"`
	ActiveFrames     int             `yaml:"active"`
	RecoveryFrames   int             `yaml:"recovery"`
	TotalFrames      int             `yaml:"total"`
	Damage           float64         `yaml:"damage"`
	StunDamage       float64         `yaml:"stun"`
	Knockback        gamemath.Vector `yaml:"knockback"`
	OnHitAdvantage   int             `yaml:"on_hit"`
	OnBlockAdvantage int             `yaml:"on_block"`
	MeterCost        float64         `yaml:"meter_cost"`
	MeterGain        float64         `yaml:"meter_gain"`
	Hitbox           Box             `yaml:"hitbox"`
	Unblockable      bool            `yaml:"unblockable"`
	Projectile       *Projectile     `yaml:"projectile"`
}

// Duration returns the move length in seconds. TotalFrames wins when set.
func (m MoveDescriptor) Duration() float64 {
	total := m.TotalFrames
	if total <= 0 {
		total = m.StartupFrames + m.ActiveFrames + m.RecoveryFrames
	}
	return float64(total) / FrameRate
}

// ActiveAt reports whether elapsed seconds fall inside the hitbox window
// [startup, startup+active).
func (m MoveDescriptor) ActiveAt(elapsed float64) bool {
	start := float64(m.StartupFrames) / FrameRate
	end := float64(m.StartupFrames+m.ActiveFrames) / FrameRate
	return m.ActiveFrames > 0 && elapsed >= start && elapsed < end
}

// HasHitbox reports whether the move ever damages in melee.
func (m MoveDescriptor) HasHitbox() bool {
	return m.ActiveFrames > 0 && m.Hitbox.W > 0 && m.Hitbox.H > 0
}

// Movement holds per-character locomotion tuning, in units per second.
type Movement struct {
	WalkAccel  float64 `yaml:"walk_accel"`
	MaxSpeed   float64 `yaml:"max_speed"`
	JumpHeight float64 `yaml:"jump_height"` // initial upward speed
	DashBonus  float64 `yaml:"dash_bonus"`
	Gravity    float64 `yaml:"gravity"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
}

// Command binds a motion pattern to a move. Commands are matched in table
// order, so longer motions come first.
type Command struct {
	Move    string `yaml:"move"`
	Pattern string `yaml:"pattern"`
}

// Chain is an ordered combo sequence with an optional finisher on the input
// after the last step.
type Chain struct {
	Steps    []string `yaml:"steps"`
	Finisher string   `yaml:"finisher"`
}

// MoveTable is everything the state machine needs for one character.
type MoveTable struct {
	Character string                    `yaml:"character"`
	Movement  Movement                  `yaml:"movement"`
	ChainA    Chain                     `yaml:"chain_a"`
	ChainB    Chain                     `yaml:"chain_b"`
	Commands  []Command                 `yaml:"commands"`
	Moves     map[string]MoveDescriptor `yaml:"moves"`
}

// Move returns the named move.
func (t *MoveTable) Move(name string) (MoveDescriptor, error) {
	m, ok := t.Moves[name]
	if !ok {
		return MoveDescriptor{}, fmt.Errorf("%s/%s: %w", t.Character, name, ErrUnknownMove)
	}
	return m, nil
}

// Validate reports every reference to a move the table does not define.
func (t *MoveTable) Validate() []error {
	var errs []error
	check := func(where, name string) {
		if name == "" {
			return
		}
		if _, ok := t.Moves[name]; !ok {
			errs = append(errs, fmt.Errorf("%s %s: %q: %w", t.Character, where, name, ErrUnknownMove))
		}
	}
	for _, s := range t.ChainA.Steps {
		check("chain_a", s)
	}
	check("chain_a finisher", t.ChainA.Finisher)
	for _, s := range t.ChainB.Steps {
		check("chain_b", s)
	}
	check("chain_b finisher", t.ChainB.Finisher)
	for _, c := range t.Commands {
		check("command", c.Move)
		if c.Pattern == "" {
			errs = append(errs, fmt.Errorf("%s command %q: empty pattern", t.Character, c.Move))
		}
	}
	return errs
}
