package components

import "github.com/yohamta/donburi"

// NetInterpData smooths a synced position between server snapshots. The
// drawn position moves from Prev to Target as T goes from 0 to 1.
type NetInterpData struct {
	PrevX, PrevY     float64
	TargetX, TargetY float64
	T                float64
	Initialized      bool
}

// Retarget starts a new segment from the currently drawn position. The
// first target is taken as is.
func (n *NetInterpData) Retarget(x, y float64) {
	if !n.Initialized {
		n.PrevX, n.PrevY = x, y
		n.TargetX, n.TargetY = x, y
		n.T = 1
		n.Initialized = true
		return
	}
	n.PrevX, n.PrevY = n.Position()
	n.TargetX, n.TargetY = x, y
	n.T = 0
}

// Advance moves along the segment. step is the fraction of a server tick
// that passed.
func (n *NetInterpData) Advance(step float64) {
	n.T = min(n.T+step, 1)
}

func (n *NetInterpData) Position() (float64, float64) {
	return n.PrevX + (n.TargetX-n.PrevX)*n.T, n.PrevY + (n.TargetY-n.PrevY)*n.T
}

var NetInterp = donburi.NewComponentType[NetInterpData]()
