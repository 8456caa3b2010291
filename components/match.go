package components

import (
	"github.com/automoto/versus/shared/netconfig"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state. This is a singleton component;
// only one match exists per arena.
type MatchData struct {
	ID          string
	State       netconfig.MatchStateID
	Round       int
	Timer       float64 // seconds left in the current phase
	Wins        [2]int  // rounds won per slot
	RoundWinner int     // slot, -1 for a draw
	Winner      int     // slot, -1 while undecided or on a draw
}

var Match = donburi.NewComponentType[MatchData]()

// AddWin records a round for slot. A negative slot is a draw.
func (m *MatchData) AddWin(slot int) {
	m.RoundWinner = slot
	if slot >= 0 && slot < len(m.Wins) {
		m.Wins[slot]++
	}
}

// Leader returns the slot with the most rounds, or -1 on a tie.
func (m *MatchData) Leader() int {
	switch {
	case m.Wins[0] > m.Wins[1]:
		return 0
	case m.Wins[1] > m.Wins[0]:
		return 1
	}
	return -1
}
