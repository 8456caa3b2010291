package arena

import (
	"github.com/automoto/versus/components"
	"github.com/automoto/versus/shared/events"
	"github.com/automoto/versus/shared/netconfig"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

const (
	pulseHigh float32 = 1
	pulseLow  float32 = 0.3
)

// onEvent reacts to combat events before they reach the caller's sink.
func (a *Arena) onEvent(e events.Event) {
	switch ev := e.(type) {
	case events.HitEvent:
		if entry, ok := a.byID[ev.Defender]; ok {
			a.flash(entry)
		}
	case events.StateChangeEvent:
		entry, ok := a.byID[ev.Fighter]
		if !ok {
			return
		}
		switch {
		case ev.To == netconfig.Dizzied:
			a.pulse(entry)
		case ev.From == netconfig.Dizzied:
			*components.Tint.Get(entry) = components.TintData{}
		}
	}
}

// flash tints the fighter red and fades it out. A dizzy pulse is replaced.
func (a *Arena) flash(e *donburi.Entry) {
	components.Tint.SetValue(e, components.TintData{
		Tween: gween.New(1, 0, float32(a.cfg.FlashTime), ease.OutQuad),
		Value: 1,
		R:     1, G: 0.2, B: 0.2,
	})
}

// pulse throbs the fighter yellow until cleared.
func (a *Arena) pulse(e *donburi.Entry) {
	components.Tint.SetValue(e, components.TintData{
		Tween: gween.New(pulseHigh, pulseLow, float32(a.cfg.PulseTime), ease.InOutSine),
		Pulse: true,
		Value: pulseHigh,
		R:     1, G: 0.9, B: 0.2,
	})
}

func (a *Arena) tickEffects(dt float64) {
	for _, e := range a.fighters {
		tint := components.Tint.Get(e)
		if tint.Tween == nil {
			continue
		}
		v, done := tint.Tween.Update(float32(dt))
		tint.Value = v
		if !done {
			continue
		}
		if !tint.Pulse {
			*tint = components.TintData{}
			continue
		}
		from, to := pulseLow, pulseHigh
		if v > (pulseHigh+pulseLow)/2 {
			from, to = pulseHigh, pulseLow
		}
		tint.Tween = gween.New(from, to, float32(a.cfg.PulseTime), ease.InOutSine)
	}
}
