package netcomponents

import (
	"github.com/automoto/versus/shared/netconfig"
	"github.com/yohamta/donburi"
)

type NetMatchData struct {
	MatchID string
	State   netconfig.MatchStateID
	Round   int
	Timer   float64 // seconds left in the current phase
	Wins    [2]int
	Winner  int // slot, -1 while undecided or on a draw
}

var NetMatch = donburi.NewComponentType[NetMatchData]()
