package components

import (
	"github.com/automoto/versus/shared/ai"
	"github.com/automoto/versus/shared/fsm"
	"github.com/automoto/versus/shared/netconfig"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// FighterData links a fighter entity to its state machine and controller.
type FighterData struct {
	ID        string
	Slot      int
	Character string
	Machine   *fsm.Machine

	// Bot drives the fighter when set; otherwise Input does.
	Bot   *ai.Policy
	Input netconfig.Buttons

	// Hitbox is the melee box. It is in the space only while an attack is
	// active.
	Hitbox       *resolv.Object
	HitboxActive bool
}

var Fighter = donburi.NewComponentType[FighterData]()
