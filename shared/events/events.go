// Package events carries combat notifications out of the simulation core.
// Audio, hit-stop, VFX and network broadcast all subscribe through a Sink
// instead of reaching into fighter state.
package events

//go:generate go tool mockgen -destination=./mocks/sink_mock.go -package=mocks . Sink

import (
	"github.com/automoto/versus/shared/gamemath"
	"github.com/automoto/versus/shared/netconfig"
)

// Event is implemented by every combat notification.
type Event interface {
	isEvent()
}

// HitEvent is emitted when an attack lands unblocked.
type HitEvent struct {
	Attacker  string
	Defender  string
	Damage    float64 // after combo scaling
	Knockback gamemath.Vector
	Launcher  bool
	Combo     int // defender's combo count after the hit
}

// BlockEvent is emitted when an attack is blocked.
type BlockEvent struct {
	Attacker string
	Defender string
	Chip     float64
}

// DeathEvent is emitted once when a fighter's health reaches zero.
type DeathEvent struct {
	Fighter string
}

// StateChangeEvent is emitted on every fighter state transition.
type StateChangeEvent struct {
	Fighter string
	From    netconfig.StateID
	To      netconfig.StateID
}

// ComboDroppedEvent is emitted when a follow-up input arrives without a
// hit confirmation and is discarded.
type ComboDroppedEvent struct {
	Fighter string
	Chain   string
	Step    int
}

// SuperFailedEvent is emitted when a meter-gated move is attempted with
// insufficient meter.
type SuperFailedEvent struct {
	Fighter string
	Move    string
	Cost    float64
	Meter   float64
}

func (HitEvent) isEvent() {}
func (BlockEvent) isEvent() {}
func (DeathEvent) isEvent() {}
func (StateChangeEvent) isEvent() {}
func (ComboDroppedEvent) isEvent() {}
func (SuperFailedEvent) isEvent() {}

// RoundEndEvent is emitted when a round is decided. Winner is empty on a
// draw.
type RoundEndEvent struct {
	Round  int
	Winner string
	Reason string // "ko" or "time"
}

// MatchEndEvent is emitted once when the match is decided. Winner is empty
// on a draw.
type MatchEndEvent struct {
	MatchID string
	Winner  string
}

func (RoundEndEvent) isEvent() {}
func (MatchEndEvent) isEvent() {}
