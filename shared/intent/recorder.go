package intent

import "github.com/automoto/versus/shared/netconfig"

// priority is the fixed order used when several buttons go down on the same
// tick. Only the first newly pressed one is recorded.
var priority = []struct {
	action netconfig.ActionID
	sym    byte
}{
	{netconfig.ActionLeft, SymLeft},
	{netconfig.ActionRight, SymRight},
	{netconfig.ActionDown, SymDown},
	{netconfig.ActionUp, SymUp},
	{netconfig.ActionKick, SymKick},
	{netconfig.ActionPunch, SymPunch},
	{netconfig.ActionSpecial, SymSpecial},
	{netconfig.ActionHyper, SymHyper},
}

// Record pushes the highest-priority button pressed this tick into buf. It
// returns the symbol recorded, or 0 when nothing new was pressed.
func Record(buf *Buffer, cur, prev netconfig.Buttons) byte {
	pressed := cur.Pressed(prev)
	if pressed == 0 {
		return 0
	}
	for _, p := range priority {
		if pressed.Has(p.action) {
			if buf.Push(p.sym) {
				return p.sym
			}
			return 0
		}
	}
	return 0
}

// ActionFor maps an absolute symbol back to the button that records it.
func ActionFor(sym byte) (netconfig.ActionID, bool) {
	for _, p := range priority {
		if p.sym == sym {
			return p.action, true
		}
	}
	return netconfig.ActionNone, false
}
