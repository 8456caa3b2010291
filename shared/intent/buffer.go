// Package intent turns edge-triggered button presses into a short-lived
// symbol buffer that command motions (dashes, specials, supers) are matched
// against.
package intent

import "strings"

// Input symbols. Motion patterns in move data use these plus the facing
// relative F and B, which Resolve rewrites to R or L.
const (
	SymLeft    byte = 'L'
	SymRight   byte = 'R'
	SymDown    byte = 'D'
	SymUp      byte = 'U'
	SymKick    byte = 'K'
	SymPunch   byte = 'P'
	SymSpecial byte = 'S'
	SymHyper   byte = 'H'

	SymForward byte = 'F'
	SymBack    byte = 'B'

	// Gap renders a consumed symbol. It never appears in a pattern.
	Gap byte = '.'
)

// DefaultLifetime is 25 frames at 60Hz.
const DefaultLifetime = 25.0 / 60.0

type entry struct {
	sym      byte
	life     float64
	consumed bool
}

// Buffer holds recent symbols in arrival order. Each symbol expires on its
// own; a successful match consumes its span so no other pattern can reuse it.
type Buffer struct {
	lifetime float64
	entries  []entry
	pushed   bool
}

// NewBuffer creates a buffer. A non-positive lifetime selects DefaultLifetime.
func NewBuffer(lifetime float64) *Buffer {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Buffer{lifetime: lifetime}
}

// Push appends a symbol. Only one symbol is accepted between ticks; a second
// push returns false. Appending extends the previous symbol's lifetime by one
// full lifetime so a fast chain of inputs survives long enough to match.
func (b *Buffer) Push(sym byte) bool {
	if b.pushed || sym == Gap {
		return false
	}
	if n := len(b.entries); n > 0 {
		b.entries[n-1].life += b.lifetime
	}
	b.entries = append(b.entries, entry{sym: sym, life: b.lifetime})
	b.pushed = true
	return true
}

// Tick ages every symbol by dt, drops the expired ones and opens the push
// slot for the next tick.
func (b *Buffer) Tick(dt float64) {
	b.pushed = false
	kept := b.entries[:0]
	for _, e := range b.entries {
		e.life -= dt
		if e.life > 0 {
			kept = append(kept, e)
		}
	}
	b.entries = kept
}

// String renders the buffer with consumed symbols as Gap.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(len(b.entries))
	for _, e := range b.entries {
		if e.consumed {
			sb.WriteByte(Gap)
		} else {
			sb.WriteByte(e.sym)
		}
	}
	return sb.String()
}

// FindAndConsume looks for pattern as a contiguous run of unconsumed
// symbols. On a match the whole span is consumed.
func (b *Buffer) FindAndConsume(pattern string) bool {
	if pattern == "" || strings.IndexByte(pattern, Gap) >= 0 {
		return false
	}
	idx := strings.Index(b.String(), pattern)
	if idx < 0 {
		return false
	}
	for i := idx; i < idx+len(pattern); i++ {
		b.entries[i].consumed = true
	}
	return true
}

// MatchFirst tries patterns in order and consumes only the first that
// matches. Callers list longer or higher-priority patterns first.
func (b *Buffer) MatchFirst(patterns ...string) (string, bool) {
	for _, p := range patterns {
		if b.FindAndConsume(p) {
			return p, true
		}
	}
	return "", false
}

// Len returns the number of live symbols, consumed or not.
func (b *Buffer) Len() int { return len(b.entries) }

// Clear drops every symbol.
func (b *Buffer) Clear() {
	b.entries = b.entries[:0]
	b.pushed = false
}

// Resolve rewrites facing-relative symbols to absolute directions. facing is
// +1 when the fighter faces right.
func Resolve(pattern string, facing float64) string {
	fwd, back := SymRight, SymLeft
	if facing < 0 {
		fwd, back = SymLeft, SymRight
	}
	out := []byte(pattern)
	for i, c := range out {
		switch c {
		case SymForward:
			out[i] = fwd
		case SymBack:
			out[i] = back
		}
	}
	return string(out)
}
