package systems

import (
	"fmt"

	"github.com/automoto/versus/components"
	cfg "github.com/automoto/versus/config"
	"github.com/automoto/versus/shared/netcomponents"
	"github.com/automoto/versus/shared/netconfig"
	"github.com/automoto/versus/shared/stagedata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewNetInterpSystem advances interpolation of synced positions by one
// client frame's share of a server tick.
func NewNetInterpSystem(tickRate func() int) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		step := float64(max(tickRate(), 1)) / float64(ebiten.TPS())
		components.NetInterp.Each(e.World, func(entry *donburi.Entry) {
			components.NetInterp.Get(entry).Advance(step)
		})
	}
}

// NewNetStageRenderer draws the server's stage. The client has no arena
// world, so solids come straight from the stage data.
func NewNetStageRenderer(stage *stagedata.Stage) func(*ecs.ECS, *ebiten.Image) {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		screen.Fill(cfg.Background)
		for _, s := range stage.Solids {
			vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), cfg.Gray, false)
		}
	}
}

func DrawNetworkedFighters(e *ecs.ECS, screen *ebiten.Image) {
	w, h := cfg.Fighter.BodyWidth, cfg.Fighter.BodyHeight

	netcomponents.NetFighterState.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.NetInterp) {
			return
		}
		state := netcomponents.NetFighterState.Get(entry)
		fx, fy := components.NetInterp.Get(entry).Position()

		x := float32(fx) - w/2
		y := float32(fy) - h
		vector.FillRect(screen, x, y, w, h, cfg.Fighter.SlotColors[state.Slot%len(cfg.Fighter.SlotColors)], false)
		drawFacing(screen, float32(fx), y+h/3, float32(state.Facing))
		if state.IsLocal {
			vector.StrokeRect(screen, x, y, w, h, 2, cfg.White, false)
		}

		if cfg.Debug.ShowStates {
			label := state.StateID.String()
			if state.Move != "" {
				label += " " + state.Move
			}
			if nid := esync.GetNetworkId(entry); nid != nil {
				label = fmt.Sprintf("%s #%d", label, *nid)
			}
			ebitenutil.DebugPrintAt(screen, label, int(x), int(y)-16)
		}
	})
}

func DrawNetworkedProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	netcomponents.NetProjectile.Each(e.World, func(entry *donburi.Entry) {
		p := netcomponents.NetProjectile.Get(entry)
		w := max(float32(p.W), cfg.Fighter.ProjectileSize)
		h := max(float32(p.H), cfg.Fighter.ProjectileSize)
		vector.FillRect(screen, float32(p.X)-w/2, float32(p.Y)-h/2, w, h, cfg.Yellow, false)
	})
}

func DrawNetworkHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBars {
		return
	}
	netcomponents.NetFighterState.Each(e.World, func(entry *donburi.Entry) {
		s := netcomponents.NetFighterState.Get(entry)
		drawBars(screen, s.Slot, fighterBars{
			Name:      s.Character,
			Health:    ratio(s.Health, s.MaxHealth),
			Hyper:     ratio(s.Hyper, s.MaxHyper),
			Stun:      ratio(s.Stun, s.MaxStun),
			Combo:     s.Combo,
			Dizzy:     s.StateID == netconfig.Dizzied,
			SlotColor: cfg.Fighter.SlotColors[s.Slot%len(cfg.Fighter.SlotColors)],
		})
	})

	if entry, ok := netcomponents.NetMatch.First(e.World); ok {
		m := netcomponents.NetMatch.Get(entry)
		drawMatchStatus(screen, m.State, m.Round, m.Timer, m.Wins, m.Winner)
	}
}
