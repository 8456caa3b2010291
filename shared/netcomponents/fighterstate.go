package netcomponents

import (
	"github.com/automoto/versus/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetFighterStateData is everything a client needs to draw a fighter and
// its gauges.
type NetFighterStateData struct {
	FighterID string
	Character string
	Slot      int
	StateID   netconfig.StateID
	Move      string // current move while attacking or dashing
	Facing    int    // -1 left, 1 right
	Health    float64
	Hyper     float64
	Stun      float64
	Combo     int

	// Per-character maxima for the bars.
	MaxHealth float64
	MaxHyper  float64
	MaxStun   float64

	LastSequence uint32 // last input sequence the server applied
	IsLocal      bool   // client-side only, not synced
}

var NetFighterState = donburi.NewComponentType[NetFighterStateData]()
