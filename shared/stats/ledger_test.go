package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func testConfig() Config {
	return Config{
		MaxHealth:        1000,
		MaxHyper:         300,
		MaxStun:          100,
		ScalingFactor:    0.9,
		MinScalingCap:    0.3,
		ComboResetTime:   1.0,
		StunRecoveryRate: 20,
	}
}

type eventLog []Event

func (e *eventLog) record(ev Event) { *e = append(*e, ev) }

func (e eventLog) count(ev Event) int {
	n := 0
	for _, x := range e {
		if x == ev {
			n++
		}
	}
	return n
}

func TestNewStartsFull(t *testing.T) {
	l := New(testConfig())
	assert.Equal(t, 1000.0, l.Health())
	assert.Equal(t, 300.0, l.Hyper())
	assert.Equal(t, 0.0, l.Stun())
	assert.Equal(t, 0, l.ComboCount())
}

func TestApplyHitFirstHitUnscaled(t *testing.T) {
	l := New(testConfig())

	applied := l.ApplyHit(100, 0)

	assert.Equal(t, 100.0, applied)
	assert.Equal(t, 900.0, l.Health())
	assert.Equal(t, 1, l.ComboCount())
}

func TestApplyHitScalesWithCombo(t *testing.T) {
	l := New(testConfig())
	l.ApplyHit(100, 0)

	applied := l.ApplyHit(100, 0)

	assert.InDelta(t, 90.0, applied, 1e-9)
	assert.Equal(t, 2, l.ComboCount())
}

func TestApplyHitScaleFloorsAtCap(t *testing.T) {
	l := New(testConfig())
	for i := 0; i < 30; i++ {
		l.ApplyHit(1, 0)
	}
	applied := l.ApplyHit(100, 0)
	assert.InDelta(t, 30.0, applied, 1e-9)
}

func TestApplyHitGainsMeterClamped(t *testing.T) {
	l := New(testConfig())
	require.True(t, l.TrySpendMeter(250))

	l.ApplyHit(10, 20)
	assert.Equal(t, 70.0, l.Hyper())

	l.ApplyHit(10, 1000)
	assert.Equal(t, 300.0, l.Hyper())
}

func TestApplyBlockedHitChipOnly(t *testing.T) {
	l := New(testConfig())

	l.ApplyBlockedHit(10, 5)

	assert.Equal(t, 990.0, l.Health())
	assert.Equal(t, 0, l.ComboCount())
	assert.Equal(t, 0.0, l.Stun())
}

func TestDeathFiresOnceAndFreezesLedger(t *testing.T) {
	var log eventLog
	l := New(testConfig())
	l.Subscribe(log.record)

	l.ApplyHit(1000, 0)
	require.True(t, l.IsDead())
	assert.Equal(t, 0.0, l.Health())

	assert.Equal(t, 0.0, l.ApplyHit(100, 50))
	l.ApplyBlockedHit(10, 10)
	l.AddStun(50)
	l.Tick(5)

	assert.Equal(t, 1, log.count(EventDeath))
	assert.Equal(t, 0.0, l.Health())
	assert.Equal(t, 0.0, l.Stun())
	assert.Equal(t, 1, l.ComboCount())
}

func TestChipDamageCanKill(t *testing.T) {
	var log eventLog
	l := New(testConfig())
	l.Subscribe(log.record)
	l.ApplyHit(995, 0)

	l.ApplyBlockedHit(10, 0)

	assert.True(t, l.IsDead())
	assert.Equal(t, 1, log.count(EventDeath))
}

func TestAddStunDizzyOnceAndSuspends(t *testing.T) {
	var log eventLog
	l := New(testConfig())
	l.Subscribe(log.record)

	for i := 0; i < 10; i++ {
		l.AddStun(30)
	}

	assert.True(t, l.IsDizzy())
	assert.Equal(t, 100.0, l.Stun())
	assert.Equal(t, 1, log.count(EventDizzyStart))

	l.AddStun(30)
	assert.Equal(t, 100.0, l.Stun())
}

func TestResetStunEndsDizzy(t *testing.T) {
	var log eventLog
	l := New(testConfig())
	l.Subscribe(log.record)
	l.AddStun(100)

	l.ResetStun()

	assert.False(t, l.IsDizzy())
	assert.Equal(t, 0.0, l.Stun())
	assert.Equal(t, 1, log.count(EventDizzyEnd))

	l.ResetStun()
	assert.Equal(t, 1, log.count(EventDizzyEnd), "reset while not dizzy is silent")
}

func TestTickResetsComboAfterIdleWindow(t *testing.T) {
	l := New(testConfig())
	l.ApplyHit(10, 0)
	l.ApplyHit(10, 0)

	l.Tick(0.5)
	assert.Equal(t, 2, l.ComboCount())

	l.Tick(0.6)
	assert.Equal(t, 0, l.ComboCount())
}

func TestTickRecoversStunOnlyPastIdleWindow(t *testing.T) {
	l := New(testConfig())
	l.AddStun(50)

	l.Tick(0.9)
	assert.Equal(t, 50.0, l.Stun())

	l.Tick(0.5)
	assert.InDelta(t, 40.0, l.Stun(), 1e-9)

	l.Tick(10)
	assert.Equal(t, 0.0, l.Stun())
}

func TestTickDoesNotRecoverWhileDizzy(t *testing.T) {
	l := New(testConfig())
	l.AddStun(100)

	l.Tick(5)

	assert.Equal(t, 100.0, l.Stun())
	assert.True(t, l.IsDizzy())
}

func TestStunSharesIdleClockWithCombo(t *testing.T) {
	l := New(testConfig())
	l.ApplyHit(10, 0)
	l.Tick(0.8)

	l.AddStun(10)
	l.Tick(0.8)

	assert.Equal(t, 1, l.ComboCount(), "stun restarted the combo clock")
}

func TestTrySpendMeterInsufficient(t *testing.T) {
	l := New(testConfig())
	require.True(t, l.TrySpendMeter(250))
	require.Equal(t, 50.0, l.Hyper())

	ok := l.TrySpendMeter(100)

	assert.False(t, ok)
	assert.Equal(t, 50.0, l.Hyper())
}

func TestResetRestoresRound(t *testing.T) {
	var log eventLog
	l := New(testConfig())
	l.Subscribe(log.record)
	l.ApplyHit(2000, 0)
	require.True(t, l.IsDead())

	l.Reset()

	assert.False(t, l.IsDead())
	assert.Equal(t, 1000.0, l.Health())
	l.ApplyHit(1000, 0)
	assert.Equal(t, 2, log.count(EventDeath), "subscribers survive reset")
}

func TestScaleMonotonic(t *testing.T) {
	cfg := testConfig()
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 200).Draw(t, "combo")
		base := rapid.Float64Range(0, 500).Draw(t, "base")

		l := New(cfg)
		for i := 0; i < n; i++ {
			l.combo++
		}
		applied := l.ApplyHit(base, 0)

		want := base * cfg.Scale(n)
		if applied != want {
			t.Fatalf("combo %d: applied %v, want %v", n, applied, want)
		}
		if cfg.Scale(n+1) > cfg.Scale(n) {
			t.Fatalf("scale increased from combo %d to %d", n, n+1)
		}
	})
}

func TestTrySpendMeterAtomic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := New(testConfig())
		spent := rapid.Float64Range(0, 300).Draw(t, "spent")
		l.TrySpendMeter(spent)
		before := l.Hyper()
		amount := rapid.Float64Range(0, 400).Draw(t, "amount")

		ok := l.TrySpendMeter(amount)

		if ok && l.Hyper() != before-amount {
			t.Fatalf("spent %v from %v, left %v", amount, before, l.Hyper())
		}
		if !ok && l.Hyper() != before {
			t.Fatalf("failed spend changed meter %v -> %v", before, l.Hyper())
		}
	})
}
