package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/versus/components"
	cfg "github.com/automoto/versus/config"
	"github.com/automoto/versus/shared/netconfig"
	"github.com/automoto/versus/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawStage fills every solid tile.
func DrawStage(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)
	tags.Solid.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), cfg.Gray, false)
	})
}

// DrawFighters draws each fighter as its body box, tinted by hit flash and
// dizzy pulse, with a facing marker. Debug settings add the active hitbox
// and the state name.
func DrawFighters(e *ecs.ECS, screen *ebiten.Image) {
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		f := components.Fighter.Get(entry)
		obj := components.Object.Get(entry)
		tint := components.Tint.Get(entry)

		body := cfg.Fighter.SlotColors[f.Slot%len(cfg.Fighter.SlotColors)]
		if tint.Value > 0 {
			body = mix(body, tint.R, tint.G, tint.B, tint.Value)
		}
		x, y, w, h := float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, h, body, false)
		drawFacing(screen, x+w/2, y+h/3, float32(f.Machine.Facing()))

		if cfg.Debug.ShowBoxes {
			vector.StrokeRect(screen, x, y, w, h, 1, cfg.White, false)
			if f.HitboxActive {
				hb := f.Hitbox
				vector.FillRect(screen, float32(hb.X), float32(hb.Y), float32(hb.W), float32(hb.H), cfg.Fighter.HitboxColor, false)
			}
		}
		if cfg.Debug.ShowStates {
			label := f.Machine.CurrentState().String()
			if f.Machine.CurrentState().Locked() && f.Machine.CurrentMove().Name != "" {
				label += " " + f.Machine.CurrentMove().Name
			}
			ebitenutil.DebugPrintAt(screen, label, int(x), int(y)-16)
		}
	})
}

// DrawProjectiles draws live projectiles.
func DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		w := max(float32(obj.W), cfg.Fighter.ProjectileSize)
		h := max(float32(obj.H), cfg.Fighter.ProjectileSize)
		vector.FillRect(screen, float32(obj.X), float32(obj.Y), w, h, cfg.Yellow, false)
	})
}

// DrawHUD is the debug overlay: both fighters' bars and the round status.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBars {
		return
	}
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		f := components.Fighter.Get(entry)
		ledger := f.Machine.Ledger()
		limits := ledger.Config()
		drawBars(screen, f.Slot, fighterBars{
			Name:      f.Character,
			Health:    ratio(ledger.Health(), limits.MaxHealth),
			Hyper:     ratio(ledger.Hyper(), limits.MaxHyper),
			Stun:      ratio(ledger.Stun(), limits.MaxStun),
			Combo:     ledger.ComboCount(),
			Dizzy:     ledger.IsDizzy(),
			SlotColor: cfg.Fighter.SlotColors[f.Slot%len(cfg.Fighter.SlotColors)],
		})
	})

	if entry, ok := components.Match.First(e.World); ok {
		m := components.Match.Get(entry)
		drawMatchStatus(screen, m.State, m.Round, m.Timer, m.Wins, m.Winner)
	}
}

type fighterBars struct {
	Name      string
	Health    float64
	Hyper     float64
	Stun      float64
	Combo     int
	Dizzy     bool
	SlotColor color.RGBA
}

// drawBars lays out slot 0 on the left and slot 1 mirrored on the right.
func drawBars(screen *ebiten.Image, slot int, b fighterBars) {
	hud := cfg.HUD
	width := float32(screen.Bounds().Dx())
	x := hud.Margin
	if slot == 1 {
		x = width - hud.Margin - hud.BarWidth
	}
	y := hud.Margin

	bar := func(row int, fill float64, c color.RGBA, height float32) {
		top := y + float32(row)*(hud.BarHeight+3)
		vector.FillRect(screen, x, top, hud.BarWidth, height, hud.BarBack, false)
		w := hud.BarWidth * float32(fill)
		left := x
		if slot == 1 {
			left = x + hud.BarWidth - w
		}
		vector.FillRect(screen, left, top, w, height, c, false)
	}
	bar(0, b.Health, hud.HealthFill, hud.BarHeight)
	bar(1, b.Hyper, hud.HyperFill, hud.BarHeight/2)
	bar(2, b.Stun, hud.StunFill, hud.BarHeight/2)

	label := b.Name
	if b.Combo > 1 {
		label += fmt.Sprintf("  %d hits", b.Combo)
	}
	if b.Dizzy {
		label += "  DIZZY"
	}
	vector.FillRect(screen, x, y+3*(hud.BarHeight+3), 6, 6, b.SlotColor, false)
	ebitenutil.DebugPrintAt(screen, label, int(x)+10, int(y+3*(hud.BarHeight+3))-4)
}

func drawMatchStatus(screen *ebiten.Image, state netconfig.MatchStateID, round int, timer float64, wins [2]int, winner int) {
	status := fmt.Sprintf("R%d  %02.0f  %d-%d", round, max(timer, 0), wins[0], wins[1])
	switch state {
	case netconfig.MatchStateCountdown:
		status = fmt.Sprintf("Round %d", round)
	case netconfig.MatchStateFinished:
		if winner < 0 {
			status = "Draw"
		} else {
			status = fmt.Sprintf("P%d wins", winner+1)
		}
	case netconfig.MatchStateWaiting:
		status = "Waiting for opponent"
	}
	x := screen.Bounds().Dx()/2 - len(status)*3
	ebitenutil.DebugPrintAt(screen, status, x, int(cfg.HUD.Margin))
}

func drawFacing(screen *ebiten.Image, cx, cy, facing float32) {
	size := cfg.Fighter.FacingMarker
	vector.FillRect(screen, cx+facing*size-size/2, cy-size/2, size, size, cfg.White, false)
}

// mix blends c toward the tint color by strength in [0, 1].
func mix(c color.RGBA, r, g, b, strength float32) color.RGBA {
	blend := func(from uint8, to float32) uint8 {
		return uint8(float32(from) + (to*255-float32(from))*strength)
	}
	return color.RGBA{R: blend(c.R, r), G: blend(c.G, g), B: blend(c.B, b), A: c.A}
}

func ratio(v, maxV float64) float64 {
	if maxV <= 0 {
		return 0
	}
	return min(max(v/maxV, 0), 1)
}
