package config

import (
	"github.com/automoto/versus/shared/netconfig"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys and buttons bound to one action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[netconfig.ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[netconfig.ActionID]InputBinding{
			netconfig.ActionLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			netconfig.ActionRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			netconfig.ActionUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			netconfig.ActionDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			netconfig.ActionPunch: {
				Keys: []ebiten.Key{ebiten.KeyJ, ebiten.KeyZ},
				// X / Square
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			netconfig.ActionKick: {
				Keys: []ebiten.Key{ebiten.KeyK, ebiten.KeyX},
				// A / Cross
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			netconfig.ActionSpecial: {
				Keys: []ebiten.Key{ebiten.KeyL, ebiten.KeyC},
				// Y / Triangle
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			netconfig.ActionHyper: {
				Keys: []ebiten.Key{ebiten.KeySemicolon, ebiten.KeyV},
				// B / Circle
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			netconfig.ActionBlock: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
		},
	}
}
