package messages

import "github.com/automoto/versus/shared/events"

// HitMessage is broadcast when an attack lands unblocked.
type HitMessage struct {
	Attacker   string
	Defender   string
	Damage     float64
	KnockbackX float64
	KnockbackY float64
	Launcher   bool
	Combo      int
}

// BlockMessage is broadcast when an attack is blocked.
type BlockMessage struct {
	Attacker string
	Defender string
	Chip     float64
}

// RoundEndMessage is broadcast when a round is decided.
type RoundEndMessage struct {
	Round  int
	Winner string
	Reason string
}

// MatchEndMessage is broadcast once when the match is decided.
type MatchEndMessage struct {
	MatchID string
	Winner  string
}

// FromEvent converts a combat event into the message clients receive.
// Events clients can derive from synced state return false.
func FromEvent(e events.Event) (any, bool) {
	switch ev := e.(type) {
	case events.HitEvent:
		return HitMessage{
			Attacker:   ev.Attacker,
			Defender:   ev.Defender,
			Damage:     ev.Damage,
			KnockbackX: ev.Knockback.X,
			KnockbackY: ev.Knockback.Y,
			Launcher:   ev.Launcher,
			Combo:      ev.Combo,
		}, true
	case events.BlockEvent:
		return BlockMessage{Attacker: ev.Attacker, Defender: ev.Defender, Chip: ev.Chip}, true
	case events.RoundEndEvent:
		return RoundEndMessage{Round: ev.Round, Winner: ev.Winner, Reason: ev.Reason}, true
	case events.MatchEndEvent:
		return MatchEndMessage{MatchID: ev.MatchID, Winner: ev.Winner}, true
	}
	return nil, false
}
