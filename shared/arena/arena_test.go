package arena_test

import (
	"testing"

	"github.com/automoto/versus/assets"
	"github.com/automoto/versus/components"
	"github.com/automoto/versus/shared/ai"
	"github.com/automoto/versus/shared/arena"
	"github.com/automoto/versus/shared/events"
	"github.com/automoto/versus/shared/movedb"
	"github.com/automoto/versus/shared/netconfig"
	"github.com/automoto/versus/shared/stagedata"
	"github.com/automoto/versus/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const dt = 1.0 / 60.0

// flat is a floor-only stage with the fighters a jab apart.
func flat() *stagedata.Stage {
	return &stagedata.Stage{
		Name:   "flat",
		Width:  960,
		Height: 384,
		Solids: []stagedata.Solid{{X: 0, Y: 352, W: 960, H: 32}},
		Spawns: []stagedata.Spawn{{X: 300, Y: 352, Index: 0}, {X: 350, Y: 352, Index: 1}},
	}
}

func db(t *testing.T) *movedb.Database {
	t.Helper()
	d, err := movedb.LoadEmbedded()
	require.NoError(t, err)
	return d
}

func newArena(t *testing.T, cfg arena.Config, stage *stagedata.Stage) (*arena.Arena, *events.Recorder) {
	t.Helper()
	rec := &events.Recorder{}
	a := arena.New(cfg, stage, db(t), rec)
	for range 2 {
		_, err := a.AddFighter(arena.FighterSpec{Character: "gojo"})
		require.NoError(t, err)
	}
	require.NoError(t, a.Start())
	return a, rec
}

func untilPlaying(t *testing.T, a *arena.Arena) {
	t.Helper()
	for i := 0; i < 600; i++ {
		if a.Match().State == netconfig.MatchStatePlaying {
			return
		}
		a.Tick(dt)
	}
	t.Fatal("countdown never ended")
}

func ticks(a *arena.Arena, n int) {
	for range n {
		a.Tick(dt)
	}
}

func press(t *testing.T, a *arena.Arena, slot int, b netconfig.Buttons) {
	t.Helper()
	require.NoError(t, a.SetInput(slot, b))
	a.Tick(dt)
	require.NoError(t, a.SetInput(slot, 0))
	a.Tick(dt)
}

func fighterEntry(t *testing.T, a *arena.Arena, slot int) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	tags.Fighter.Each(a.World(), func(e *donburi.Entry) {
		if components.Fighter.Get(e).Slot == slot {
			found = e
		}
	})
	require.NotNil(t, found)
	return found
}

func TestAddFighterErrors(t *testing.T) {
	a := arena.New(arena.DefaultConfig(), flat(), db(t), nil)

	_, err := a.AddFighter(arena.FighterSpec{Character: "nobody"})
	assert.Error(t, err)

	_, err = a.AddFighter(arena.FighterSpec{Character: "gojo"})
	require.NoError(t, err)
	assert.ErrorIs(t, a.Start(), arena.ErrNotReady)

	_, err = a.AddFighter(arena.FighterSpec{Character: "sukuna"})
	require.NoError(t, err)
	_, err = a.AddFighter(arena.FighterSpec{Character: "naruto"})
	assert.ErrorIs(t, err, arena.ErrFull)

	assert.ErrorIs(t, a.SetInput(2, 0), arena.ErrNoSlot)
	_, err = a.Fighter(-1)
	assert.ErrorIs(t, err, arena.ErrNoSlot)
}

func TestFightersRestOnFloor(t *testing.T) {
	stage, err := assets.LoadStage("dojo")
	require.NoError(t, err)
	a, _ := newArena(t, arena.DefaultConfig(), stage)

	ticks(a, 120)

	for slot := range 2 {
		m, err := a.Fighter(slot)
		require.NoError(t, err)
		assert.InDelta(t, 352, m.Position().Y, 0.01)
		assert.True(t, m.Body().Grounded())
		assert.Equal(t, netconfig.Idle, m.CurrentState())
	}
}

func TestWallStopsWalk(t *testing.T) {
	stage, err := assets.LoadStage("dojo")
	require.NoError(t, err)
	a, _ := newArena(t, arena.DefaultConfig(), stage)
	untilPlaying(t, a)

	require.NoError(t, a.SetInput(0, netconfig.ActionLeft.Bit()))
	ticks(a, 180)

	m, err := a.Fighter(0)
	require.NoError(t, err)
	obj := components.Object.Get(fighterEntry(t, a, 0))
	assert.GreaterOrEqual(t, obj.X, 32.0, "left wall is one tile wide")
	assert.InDelta(t, 352, m.Position().Y, 0.01)
}

func TestInputIgnoredDuringCountdown(t *testing.T) {
	a, _ := newArena(t, arena.DefaultConfig(), flat())
	require.Equal(t, netconfig.MatchStateCountdown, a.Match().State)

	require.NoError(t, a.SetInput(0, netconfig.ActionRight.Bit()))
	ticks(a, 10)

	m, err := a.Fighter(0)
	require.NoError(t, err)
	assert.Equal(t, netconfig.Idle, m.CurrentState())
	assert.InDelta(t, 300, m.Position().X, 0.01)
}

func TestMeleeHitThroughArena(t *testing.T) {
	a, rec := newArena(t, arena.DefaultConfig(), flat())
	untilPlaying(t, a)

	press(t, a, 0, netconfig.ActionPunch.Bit())
	ticks(a, 12)

	defender, err := a.Fighter(1)
	require.NoError(t, err)
	hits := events.OfType[events.HitEvent](rec)
	require.Len(t, hits, 1, "one activation hits once")
	assert.Equal(t, defender.ID(), hits[0].Defender)
	assert.Less(t, defender.Ledger().Health(), 1000.0)

	attacker, err := a.Fighter(0)
	require.NoError(t, err)
	assert.True(t, attacker.HitConfirmed())
}

func TestHitFlashFades(t *testing.T) {
	a, rec := newArena(t, arena.DefaultConfig(), flat())
	untilPlaying(t, a)

	require.NoError(t, a.SetInput(0, netconfig.ActionPunch.Bit()))
	for i := 0; i < 20 && len(events.OfType[events.HitEvent](rec)) == 0; i++ {
		a.Tick(dt)
	}
	require.NoError(t, a.SetInput(0, 0))
	require.NotEmpty(t, events.OfType[events.HitEvent](rec))

	tint := components.Tint.Get(fighterEntry(t, a, 1))
	assert.Greater(t, tint.Value, float32(0))
	assert.Equal(t, float32(1), tint.R)

	ticks(a, 30)
	tint = components.Tint.Get(fighterEntry(t, a, 1))
	assert.Nil(t, tint.Tween)
	assert.Zero(t, tint.Value)
}

func TestBlockedMeleeTakesChip(t *testing.T) {
	a, rec := newArena(t, arena.DefaultConfig(), flat())
	untilPlaying(t, a)

	require.NoError(t, a.SetInput(1, netconfig.ActionBlock.Bit()))
	ticks(a, 2)
	press(t, a, 0, netconfig.ActionPunch.Bit())
	ticks(a, 12)

	assert.Empty(t, events.OfType[events.HitEvent](rec))
	blocks := events.OfType[events.BlockEvent](rec)
	require.Len(t, blocks, 1)
	defender, err := a.Fighter(1)
	require.NoError(t, err)
	assert.InDelta(t, 1000-blocks[0].Chip, defender.Ledger().Health(), 0.001)
}

func TestProjectileCrossesAndHits(t *testing.T) {
	stage, err := assets.LoadStage("dojo")
	require.NoError(t, err)
	a, rec := newArena(t, arena.DefaultConfig(), stage)
	untilPlaying(t, a)

	press(t, a, 0, netconfig.ActionDown.Bit())
	press(t, a, 0, netconfig.ActionRight.Bit())
	press(t, a, 0, netconfig.ActionSpecial.Bit())

	seen := false
	for i := 0; i < 90; i++ {
		a.Tick(dt)
		if len(a.Projectiles()) == 1 {
			seen = true
		}
	}

	require.True(t, seen, "red spawns a projectile")
	assert.Empty(t, a.Projectiles(), "the projectile is spent on hit")
	hits := events.OfType[events.HitEvent](rec)
	require.Len(t, hits, 1)
	defender, err := a.Fighter(1)
	require.NoError(t, err)
	assert.Equal(t, defender.ID(), hits[0].Defender)
}

func TestKnockoutWinsRound(t *testing.T) {
	a, rec := newArena(t, arena.DefaultConfig(), flat())
	untilPlaying(t, a)

	loser, err := a.Fighter(1)
	require.NoError(t, err)
	loser.Ledger().ApplyHit(5000, 0)
	a.Tick(dt)

	m := a.Match()
	assert.Equal(t, netconfig.MatchStateRoundOver, m.State)
	assert.Equal(t, [2]int{1, 0}, m.Wins)
	assert.Equal(t, 0, m.RoundWinner)
	assert.Equal(t, netconfig.Dead, loser.CurrentState())

	ends := events.OfType[events.RoundEndEvent](rec)
	require.Len(t, ends, 1)
	winner, err := a.Fighter(0)
	require.NoError(t, err)
	assert.Equal(t, winner.ID(), ends[0].Winner)
	assert.Equal(t, "ko", ends[0].Reason)
}

func TestTimeOutGoesToHealthLeader(t *testing.T) {
	cfg := arena.DefaultConfig()
	cfg.Match.RoundTime = 1
	a, rec := newArena(t, cfg, flat())
	untilPlaying(t, a)

	hurt, err := a.Fighter(0)
	require.NoError(t, err)
	hurt.Ledger().ApplyHit(100, 0)
	ticks(a, 70)

	m := a.Match()
	assert.Equal(t, netconfig.MatchStateRoundOver, m.State)
	assert.Equal(t, [2]int{0, 1}, m.Wins)

	ends := events.OfType[events.RoundEndEvent](rec)
	require.Len(t, ends, 1)
	assert.Equal(t, "time", ends[0].Reason)
}

func TestEvenTimeOutIsADraw(t *testing.T) {
	cfg := arena.DefaultConfig()
	cfg.Match.RoundTime = 0.5
	a, rec := newArena(t, cfg, flat())
	untilPlaying(t, a)
	ticks(a, 40)

	m := a.Match()
	assert.Equal(t, [2]int{0, 0}, m.Wins)
	assert.Equal(t, -1, m.RoundWinner)
	ends := events.OfType[events.RoundEndEvent](rec)
	require.Len(t, ends, 1)
	assert.Empty(t, ends[0].Winner)
}

func TestMatchFinishesAfterEnoughRounds(t *testing.T) {
	a, rec := newArena(t, arena.DefaultConfig(), flat())

	for round := 1; round <= 2; round++ {
		untilPlaying(t, a)
		require.Equal(t, round, a.Match().Round)

		loser, err := a.Fighter(1)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, loser.Ledger().Health(), "health refills each round")
		assert.InDelta(t, 350, loser.Position().X, 0.01, "fighters go back to their spawns")

		loser.Ledger().ApplyHit(5000, 0)
		ticks(a, int(arena.DefaultConfig().Match.RoundOverTime/dt)+5)
	}

	m := a.Match()
	assert.Equal(t, netconfig.MatchStateFinished, m.State)
	assert.True(t, a.Finished())
	assert.Equal(t, 0, m.Winner)
	assert.Equal(t, [2]int{2, 0}, m.Wins)

	ticks(a, 120)
	ends := events.OfType[events.MatchEndEvent](rec)
	require.Len(t, ends, 1, "the match ends once")
	assert.Equal(t, m.ID, ends[0].MatchID)
}

func TestDrawsStopAtMaxRounds(t *testing.T) {
	cfg := arena.DefaultConfig()
	cfg.Match.RoundTime = 0.2
	cfg.Match.MaxRounds = 3
	a, _ := newArena(t, cfg, flat())

	for i := 0; i < 2000 && !a.Finished(); i++ {
		a.Tick(dt)
	}

	m := a.Match()
	require.True(t, a.Finished())
	assert.Equal(t, 3, m.Round)
	assert.Equal(t, -1, m.Winner)
}

func playBots(t *testing.T) components.MatchData {
	t.Helper()
	cfg := arena.DefaultConfig()
	cfg.Match.RoundTime = 20
	stage, err := assets.LoadStage("rooftop")
	require.NoError(t, err)

	a := arena.New(cfg, stage, db(t), nil)
	hard := ai.Preset(ai.DifficultyHard)
	normal := ai.Preset(ai.DifficultyNormal)
	_, err = a.AddFighter(arena.FighterSpec{Character: "gojo", Bot: &hard, Seed: 1})
	require.NoError(t, err)
	_, err = a.AddFighter(arena.FighterSpec{Character: "sukuna", Bot: &normal, Seed: 2})
	require.NoError(t, err)
	require.NoError(t, a.Start())

	for i := 0; i < 10000 && !a.Finished(); i++ {
		a.Tick(dt)
	}
	require.True(t, a.Finished())
	return a.Match()
}

func TestBotsPlayAMatchDeterministically(t *testing.T) {
	first := playBots(t)
	second := playBots(t)

	assert.Equal(t, first.Wins, second.Wins)
	assert.Equal(t, first.Round, second.Round)
	assert.Equal(t, first.Winner, second.Winner)
}
