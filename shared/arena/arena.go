// Package arena is the headless match simulation. It owns a donburi world
// holding two fighters, their projectiles and the match state, and advances
// them in a fixed order once per tick.
package arena

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/automoto/versus/archetypes"
	"github.com/automoto/versus/components"
	"github.com/automoto/versus/shared/ai"
	"github.com/automoto/versus/shared/events"
	"github.com/automoto/versus/shared/fsm"
	"github.com/automoto/versus/shared/gamemath"
	"github.com/automoto/versus/shared/hitbox"
	"github.com/automoto/versus/shared/movedb"
	"github.com/automoto/versus/shared/netconfig"
	"github.com/automoto/versus/shared/stagedata"
	"github.com/automoto/versus/shared/stats"
	"github.com/automoto/versus/tags"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var (
	ErrFull     = errors.New("arena already has two fighters")
	ErrNotReady = errors.New("arena needs two fighters")
	ErrNoSlot   = errors.New("no fighter in slot")
)

const (
	defaultWidth  = 32.0
	defaultHeight = 80.0
)

// FighterSpec describes a fighter to add.
type FighterSpec struct {
	Character string
	// Bot makes the arena drive the fighter with an AI policy. Nil means
	// the fighter is controlled through SetInput.
	Bot  *ai.Config
	Seed int64
}

// Arena is one match.
type Arena struct {
	cfg      Config
	world    donburi.World
	space    *resolv.Space
	stage    *stagedata.Stage
	db       *movedb.Database
	resolver *hitbox.Resolver
	sink     events.Sink

	fighters []*donburi.Entry
	byID     map[string]*donburi.Entry
	match    *donburi.Entry
}

// New builds an arena on stage. Events from every fighter, the resolver and
// the match go to sink, which may be nil.
func New(cfg Config, stage *stagedata.Stage, db *movedb.Database, sink events.Sink) *Arena {
	a := &Arena{
		cfg:   cfg,
		world: donburi.NewWorld(),
		stage: stage,
		db:    db,
		byID:  make(map[string]*donburi.Entry),
	}
	a.sink = events.Multi{events.SinkFunc(a.onEvent), sink}
	a.resolver = hitbox.NewResolver(cfg.Hitbox, a.sink)

	cell := cfg.CellSize
	if cell <= 0 {
		cell = 16
	}
	a.space = resolv.NewSpace(int(stage.Width), int(stage.Height), cell, cell)
	components.Space.SetValue(archetypes.Space.Spawn(a.world), components.SpaceData{Space: a.space})
	a.spawnStage()

	a.match = archetypes.Match.Spawn(a.world)
	components.Match.SetValue(a.match, components.MatchData{
		ID:          uuid.NewString(),
		State:       netconfig.MatchStateWaiting,
		RoundWinner: -1,
		Winner:      -1,
	})
	return a
}

func (a *Arena) spawnStage() {
	stageEntry := archetypes.Stage.Spawn(a.world)
	components.Stage.SetValue(stageEntry, components.StageData{Stage: a.stage})

	for _, r := range a.stage.Solids {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		e := archetypes.Solid.Spawn(a.world)
		obj.Data = e
		components.Object.SetValue(e, components.ObjectData{Object: obj})
		a.space.Add(obj)
	}
	log.Printf("[arena] stage %s: %d solids, %d spawns, %.0fx%.0f",
		a.stage.Name, len(a.stage.Solids), len(a.stage.Spawns), a.stage.Width, a.stage.Height)
}

// AddFighter adds the next fighter and returns its ID.
func (a *Arena) AddFighter(spec FighterSpec) (string, error) {
	if len(a.fighters) >= 2 {
		return "", ErrFull
	}
	table, err := a.db.Table(spec.Character)
	if err != nil {
		return "", fmt.Errorf("add fighter: %w", err)
	}

	slot := len(a.fighters)
	id := uuid.NewString()
	e := archetypes.Fighter.Spawn(a.world)

	w, h := table.Movement.Width, table.Movement.Height
	if w <= 0 || h <= 0 {
		w, h = defaultWidth, defaultHeight
	}
	obj := resolv.NewObject(0, 0, w, h, tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	a.space.Add(obj)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	components.Physics.SetValue(e, components.PhysicsData{Simulated: true})
	components.Animation.SetValue(e, components.AnimationData{Lengths: animationLengths(table)})

	b := body{entry: e}
	b.place(a.spawnPoint(slot))

	machine := fsm.New(id, table, a.cfg.Fighter, fsm.Deps{
		Ledger:    stats.New(a.cfg.Stats),
		Animation: animation{entry: e},
		Body:      b,
		Spawner:   a,
		Sink:      a.sink,
	})

	hb := resolv.NewObject(0, 0, 1, 1, tags.ResolvHitbox)
	hb.Data = e

	data := components.FighterData{
		ID:        id,
		Slot:      slot,
		Character: table.Character,
		Machine:   machine,
		Hitbox:    hb,
	}
	if spec.Bot != nil {
		data.Bot = ai.New(table, *spec.Bot, rand.New(rand.NewSource(spec.Seed)))
	}
	components.Fighter.SetValue(e, data)

	a.fighters = append(a.fighters, e)
	a.byID[id] = e

	if len(a.fighters) == 2 {
		f0, f1 := a.fighter(0), a.fighter(1)
		f0.Machine.SetTarget(f1.Machine)
		f1.Machine.SetTarget(f0.Machine)
	}

	log.Printf("[arena] %s joined as %s in slot %d", id, table.Character, slot)
	return id, nil
}

// animationLengths lists every animation a character can play. Base states
// loop; moves last as long as the move.
func animationLengths(table *movedb.MoveTable) map[string]float64 {
	lengths := map[string]float64{
		fsm.AnimIdle:            0,
		fsm.AnimWalk:            0,
		fsm.AnimJump:            0,
		fsm.AnimFall:            0,
		fsm.AnimBlock:           0,
		fsm.AnimKnockback:       0,
		fsm.AnimAerialKnockback: 0,
		fsm.AnimDead:            0,
		fsm.AnimDizzy:           0,
	}
	for _, m := range table.Moves {
		if m.Animation != "" {
			lengths[m.Animation] = m.Duration()
		}
	}
	return lengths
}

func (a *Arena) spawnPoint(slot int) gamemath.Vector {
	s := a.stage.Spawn(slot)
	return gamemath.Vector{X: s.X, Y: s.Y}
}

func (a *Arena) fighter(slot int) *components.FighterData {
	return components.Fighter.Get(a.fighters[slot])
}

// opponent returns the other fighter's view, or nil when there is none.
func (a *Arena) opponent(slot int) ai.View {
	if len(a.fighters) < 2 {
		return nil
	}
	return a.fighter(1 - slot).Machine
}

// Fighter returns the state machine in slot.
func (a *Arena) Fighter(slot int) (*fsm.Machine, error) {
	if slot < 0 || slot >= len(a.fighters) {
		return nil, fmt.Errorf("slot %d: %w", slot, ErrNoSlot)
	}
	return a.fighter(slot).Machine, nil
}

// SetInput sets the buttons a human or remote fighter holds. They apply
// from the next tick until changed.
func (a *Arena) SetInput(slot int, b netconfig.Buttons) error {
	if slot < 0 || slot >= len(a.fighters) {
		return fmt.Errorf("slot %d: %w", slot, ErrNoSlot)
	}
	a.fighter(slot).Input = b
	return nil
}

// SetBot hands slot to an AI policy, or back to SetInput when cfg is nil.
func (a *Arena) SetBot(slot int, cfg *ai.Config, seed int64) error {
	if slot < 0 || slot >= len(a.fighters) {
		return fmt.Errorf("slot %d: %w", slot, ErrNoSlot)
	}
	f := a.fighter(slot)
	f.Input = 0
	if cfg == nil {
		f.Bot = nil
		return nil
	}
	f.Bot = ai.New(f.Machine.Table(), *cfg, rand.New(rand.NewSource(seed)))
	return nil
}

// Fighters returns how many fighters have joined.
func (a *Arena) Fighters() int { return len(a.fighters) }

// SlotOf returns the slot of the fighter with id, or -1.
func (a *Arena) SlotOf(id string) int {
	e, ok := a.byID[id]
	if !ok {
		return -1
	}
	return components.Fighter.Get(e).Slot
}

// Match returns a copy of the match state.
func (a *Arena) Match() components.MatchData {
	return *components.Match.Get(a.match)
}

func (a *Arena) World() donburi.World { return a.world }
func (a *Arena) Space() *resolv.Space { return a.space }
func (a *Arena) Stage() *stagedata.Stage { return a.stage }

// Start resets both fighters and begins the first round's countdown. It
// also restarts a finished match.
func (a *Arena) Start() error {
	if len(a.fighters) < 2 {
		return ErrNotReady
	}
	m := components.Match.Get(a.match)
	if m.State == netconfig.MatchStateFinished {
		m.ID = uuid.NewString()
	}
	m.Round = 0
	m.Wins = [2]int{}
	m.Winner = -1
	a.nextRound(m)
	return nil
}

// Tick advances the arena by dt seconds: decay, controllers, state
// machines, physics, hit resolution, then the match.
func (a *Arena) Tick(dt float64) {
	playing := components.Match.Get(a.match).State == netconfig.MatchStatePlaying

	for _, e := range a.fighters {
		components.Fighter.Get(e).Machine.Decay(dt)
	}

	buttons := make([]netconfig.Buttons, len(a.fighters))
	if playing {
		for i, e := range a.fighters {
			f := components.Fighter.Get(e)
			if f.Bot != nil {
				buttons[i] = f.Bot.Think(f.Machine, a.opponent(i), dt)
			} else {
				buttons[i] = f.Input
			}
		}
	}

	for i, e := range a.fighters {
		components.Fighter.Get(e).Machine.Step(buttons[i], dt)
	}

	for _, e := range a.fighters {
		body{entry: e}.integrate(dt, a.cfg.MaxFallSpeed)
		components.Animation.Get(e).Tick(dt)
	}
	a.moveProjectiles(dt)
	a.tickEffects(dt)

	a.resolveMelee()
	a.resolveProjectiles()

	a.updateMatch(dt)
}
