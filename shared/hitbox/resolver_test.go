package hitbox_test

import (
	"testing"

	"github.com/automoto/versus/shared/events"
	"github.com/automoto/versus/shared/events/mocks"
	"github.com/automoto/versus/shared/gamemath"
	"github.com/automoto/versus/shared/hitbox"
	"github.com/automoto/versus/shared/movedb"
	"github.com/automoto/versus/shared/netconfig"
	"github.com/automoto/versus/shared/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeDefender struct {
	id        string
	state     netconfig.StateID
	ledger    *stats.Ledger
	knockback []gamemath.Vector
	aerial    []bool
}

func newDefender(state netconfig.StateID) *fakeDefender {
	return &fakeDefender{id: "p2", state: state, ledger: stats.New(stats.DefaultConfig())}
}

func (d *fakeDefender) ID() string { return d.id }
func (d *fakeDefender) CurrentState() netconfig.StateID { return d.state }
func (d *fakeDefender) Ledger() *stats.Ledger { return d.ledger }
func (d *fakeDefender) ApplyKnockback(v gamemath.Vector, aerial bool) {
	d.knockback = append(d.knockback, v)
	d.aerial = append(d.aerial, aerial)
}

type confirmCounter struct{ n int }

func (c *confirmCounter) OnHitConfirmed(*hitbox.AttackInstance) { c.n++ }

func punch(damage float64) movedb.MoveDescriptor {
	return movedb.MoveDescriptor{
		Name:       "jab",
		Damage:     damage,
		StunDamage: 10,
		Knockback:  gamemath.Vector{X: 80, Y: 0},
	}
}

func newAttack(m movedb.MoveDescriptor, facing float64, c hitbox.Attacker) *hitbox.AttackInstance {
	a := hitbox.NewAttack("p1", m, facing, hitbox.DefaultConfig().LauncherThreshold, c)
	a.Activate()
	return a
}

func TestResolveHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)
	sink.EXPECT().Emit(gomock.AssignableToTypeOf(events.HitEvent{})).Times(1)

	r := hitbox.NewResolver(hitbox.DefaultConfig(), sink)
	d := newDefender(netconfig.Idle)
	var confirms confirmCounter
	a := newAttack(punch(100), -1, &confirms)

	out := r.Resolve(a, d, true)

	require.Equal(t, hitbox.Hit, out)
	assert.Equal(t, 900.0, d.ledger.Health())
	assert.Equal(t, 1, d.ledger.ComboCount())
	assert.Equal(t, 10.0, d.ledger.Stun())
	require.Len(t, d.knockback, 1)
	assert.Equal(t, gamemath.Vector{X: -80, Y: 0}, d.knockback[0])
	assert.False(t, d.aerial[0])
	assert.Equal(t, 1, confirms.n)
}

func TestResolveBlocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockSink(ctrl)
	sink.EXPECT().Emit(events.BlockEvent{Attacker: "p1", Defender: "p2", Chip: 10}).Times(1)

	r := hitbox.NewResolver(hitbox.DefaultConfig(), sink)
	d := newDefender(netconfig.Blocking)
	var confirms confirmCounter
	a := newAttack(punch(100), 1, &confirms)

	out := r.Resolve(a, d, true)

	require.Equal(t, hitbox.Blocked, out)
	assert.Equal(t, 990.0, d.ledger.Health())
	assert.Equal(t, 0, d.ledger.ComboCount())
	assert.Equal(t, 0.0, d.ledger.Stun())
	assert.Empty(t, d.knockback)
	assert.Equal(t, 0, confirms.n)
}

func TestResolveBlockingFromBehindIsHit(t *testing.T) {
	r := hitbox.NewResolver(hitbox.DefaultConfig(), nil)
	d := newDefender(netconfig.Blocking)

	out := r.Resolve(newAttack(punch(100), 1, nil), d, false)

	assert.Equal(t, hitbox.Hit, out)
	assert.Equal(t, 900.0, d.ledger.Health())
}

func TestResolveUnblockable(t *testing.T) {
	r := hitbox.NewResolver(hitbox.DefaultConfig(), nil)
	d := newDefender(netconfig.Blocking)
	m := punch(100)
	m.Unblockable = true

	assert.Equal(t, hitbox.Hit, r.Resolve(newAttack(m, 1, nil), d, true))
}

func TestResolveOncePerActivation(t *testing.T) {
	r := hitbox.NewResolver(hitbox.DefaultConfig(), nil)
	d := newDefender(netconfig.Idle)
	a := newAttack(punch(100), 1, nil)

	require.Equal(t, hitbox.Hit, r.Resolve(a, d, true))
	assert.Equal(t, hitbox.Whiffed, r.Resolve(a, d, true))
	assert.Equal(t, 900.0, d.ledger.Health())

	a.Activate()
	assert.Equal(t, hitbox.Hit, r.Resolve(a, d, true))
	assert.Equal(t, 2, d.ledger.ComboCount())
}

func TestResolveInactiveWhiffs(t *testing.T) {
	r := hitbox.NewResolver(hitbox.DefaultConfig(), nil)
	d := newDefender(netconfig.Idle)
	a := newAttack(punch(100), 1, nil)
	a.Deactivate()

	assert.Equal(t, hitbox.Whiffed, r.Resolve(a, d, true))
	assert.Equal(t, 1000.0, d.ledger.Health())
}

func TestResolveDeadDefenderWhiffs(t *testing.T) {
	r := hitbox.NewResolver(hitbox.DefaultConfig(), nil)
	d := newDefender(netconfig.Idle)
	d.ledger.ApplyHit(1000, 0)

	assert.Equal(t, hitbox.Whiffed, r.Resolve(newAttack(punch(100), 1, nil), d, true))
}

func TestResolveSelfWhiffs(t *testing.T) {
	r := hitbox.NewResolver(hitbox.DefaultConfig(), nil)
	d := newDefender(netconfig.Idle)
	d.id = "p1"

	assert.Equal(t, hitbox.Whiffed, r.Resolve(newAttack(punch(100), 1, nil), d, true))
}

func TestLauncherGoesAerial(t *testing.T) {
	r := hitbox.NewResolver(hitbox.DefaultConfig(), nil)
	d := newDefender(netconfig.Walking)
	m := punch(70)
	m.Knockback = gamemath.Vector{X: 60, Y: -540}
	a := newAttack(m, 1, nil)
	require.True(t, a.IsAerialLauncher)

	r.Resolve(a, d, true)

	require.Len(t, d.aerial, 1)
	assert.True(t, d.aerial[0])
	assert.Equal(t, gamemath.Vector{X: 60, Y: -540}, d.knockback[0])
}

func TestSmallUpwardKnockbackIsNotLauncher(t *testing.T) {
	m := punch(70)
	m.Knockback = gamemath.Vector{X: 300, Y: -120}
	a := hitbox.NewAttack("p1", m, 1, 300, nil)
	assert.False(t, a.IsAerialLauncher)
}
