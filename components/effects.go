package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TintData drives the hit flash and dizzy pulse. Value is the tint strength,
// 0 for none and 1 for full color.
type TintData struct {
	Tween   *gween.Tween
	Pulse   bool // restart reversed when the tween ends
	Value   float32
	R, G, B float32
}

var Tint = donburi.NewComponentType[TintData]()
