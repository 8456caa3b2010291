package intent

import (
	"testing"

	"github.com/automoto/versus/shared/netconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const frame = 1.0 / 60.0

func pushAll(b *Buffer, syms string) {
	for i := 0; i < len(syms); i++ {
		b.Push(syms[i])
		b.Tick(frame)
	}
}

func TestPushOnePerTick(t *testing.T) {
	b := NewBuffer(0)

	require.True(t, b.Push(SymDown))
	assert.False(t, b.Push(SymRight))
	assert.Equal(t, "D", b.String())

	b.Tick(frame)
	assert.True(t, b.Push(SymRight))
	assert.Equal(t, "DR", b.String())
}

func TestFindAndConsumeTwice(t *testing.T) {
	b := NewBuffer(0)
	pushAll(b, "DRP")

	assert.True(t, b.FindAndConsume("DRP"))
	assert.False(t, b.FindAndConsume("DRP"))
	assert.Equal(t, "...", b.String())
}

func TestFindAndConsumeMissLeavesBuffer(t *testing.T) {
	b := NewBuffer(0)
	pushAll(b, "DR")

	assert.False(t, b.FindAndConsume("DRP"))
	assert.Equal(t, "DR", b.String())
}

func TestGapBreaksContiguity(t *testing.T) {
	b := NewBuffer(0)
	pushAll(b, "RR")
	require.True(t, b.FindAndConsume("RR"))
	pushAll(b, "R")

	assert.False(t, b.FindAndConsume("RR"), "consumed R must not pair with a fresh one")
	assert.Equal(t, "..R", b.String())
}

func TestMatchFirstPriority(t *testing.T) {
	b := NewBuffer(0)
	pushAll(b, "DRDRP")

	got, ok := b.MatchFirst("DRDRP", "DRP")
	require.True(t, ok)
	assert.Equal(t, "DRDRP", got)

	_, ok = b.MatchFirst("DRDRP", "DRP")
	assert.False(t, ok, "shorter pattern overlaps the consumed span")
}

func TestSymbolExpires(t *testing.T) {
	b := NewBuffer(0)
	b.Push(SymPunch)

	b.Tick(DefaultLifetime)

	assert.Equal(t, 0, b.Len())
	assert.False(t, b.FindAndConsume("P"))
}

func TestPushExtendsPreviousLifetime(t *testing.T) {
	b := NewBuffer(0)
	b.Push(SymDown)
	b.Tick(frame)
	b.Push(SymRight)

	// R expires after one lifetime; D was extended by one more.
	b.Tick(DefaultLifetime)
	assert.Equal(t, "D", b.String())

	b.Tick(DefaultLifetime)
	assert.Equal(t, 0, b.Len())
}

func TestPatternWithGapNeverMatches(t *testing.T) {
	b := NewBuffer(0)
	pushAll(b, "RR")
	require.True(t, b.FindAndConsume("R"))

	assert.False(t, b.FindAndConsume(".R"))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "DRP", Resolve("DFP", 1))
	assert.Equal(t, "DLP", Resolve("DFP", -1))
	assert.Equal(t, "RR", Resolve("BB", -1))
}

func TestRecordPriority(t *testing.T) {
	b := NewBuffer(0)
	cur := netconfig.ButtonsOf(netconfig.ActionPunch, netconfig.ActionDown, netconfig.ActionRight)

	sym := Record(b, cur, 0)

	assert.Equal(t, SymRight, sym)
	assert.Equal(t, "R", b.String())
}

func TestRecordEdgeOnly(t *testing.T) {
	b := NewBuffer(0)
	held := netconfig.ButtonsOf(netconfig.ActionRight)

	Record(b, held, 0)
	b.Tick(frame)
	assert.Equal(t, byte(0), Record(b, held, held))

	assert.Equal(t, "R", b.String())
}

func TestConsumedNeverRematches(t *testing.T) {
	alphabet := []byte{SymLeft, SymRight, SymDown, SymUp, SymKick, SymPunch}
	rapid.Check(t, func(t *rapid.T) {
		b := NewBuffer(0)
		syms := rapid.SliceOfN(rapid.SampledFrom(alphabet), 1, 12).Draw(t, "syms")
		pushAll(b, string(syms))

		start := rapid.IntRange(0, len(syms)-1).Draw(t, "start")
		end := rapid.IntRange(start+1, len(syms)).Draw(t, "end")
		pattern := string(syms[start:end])

		if !b.FindAndConsume(pattern) {
			t.Fatalf("pattern %q not found in %q", pattern, syms)
		}
		if b.FindAndConsume(pattern) && len(syms) < 2*len(pattern) {
			t.Fatalf("pattern %q matched twice in %q", pattern, syms)
		}
	})
}
