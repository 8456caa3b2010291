package messages_test

import (
	"testing"

	"github.com/automoto/versus/shared/events"
	"github.com/automoto/versus/shared/gamemath"
	"github.com/automoto/versus/shared/messages"
	"github.com/automoto/versus/shared/netconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEvent(t *testing.T) {
	msg, ok := messages.FromEvent(events.HitEvent{
		Attacker:  "a",
		Defender:  "b",
		Damage:    31.5,
		Knockback: gamemath.Vector{X: -60, Y: -400},
		Launcher:  true,
		Combo:     2,
	})
	require.True(t, ok)
	assert.Equal(t, messages.HitMessage{
		Attacker: "a", Defender: "b", Damage: 31.5,
		KnockbackX: -60, KnockbackY: -400, Launcher: true, Combo: 2,
	}, msg)

	msg, ok = messages.FromEvent(events.MatchEndEvent{MatchID: "m", Winner: "a"})
	require.True(t, ok)
	assert.Equal(t, messages.MatchEndMessage{MatchID: "m", Winner: "a"}, msg)
}

func TestFromEventSkipsSyncedState(t *testing.T) {
	for _, e := range []events.Event{
		events.StateChangeEvent{Fighter: "a", From: netconfig.Idle, To: netconfig.Walking},
		events.DeathEvent{Fighter: "a"},
		events.ComboDroppedEvent{Fighter: "a"},
	} {
		_, ok := messages.FromEvent(e)
		assert.False(t, ok, "%T", e)
	}
}
