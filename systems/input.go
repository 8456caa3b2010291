package systems

import (
	"log"

	cfg "github.com/automoto/versus/config"
	"github.com/automoto/versus/shared/arena"
	"github.com/automoto/versus/shared/netconfig"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// PollButtons reads the keyboard and every standard-layout gamepad into one
// Buttons value.
func PollButtons() netconfig.Buttons {
	var b netconfig.Buttons
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for action, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				b = b.With(action)
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					b = b.With(action)
				}
			}
		}
	}

	return b | analogButtons(gamepadIDs)
}

// analogButtons maps the left stick of every gamepad to directions.
func analogButtons(gamepads []ebiten.GamepadID) netconfig.Buttons {
	deadzone := cfg.Input.AnalogDeadzone
	var b netconfig.Buttons

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			b = b.With(netconfig.ActionLeft)
		}
		if horizontal > deadzone {
			b = b.With(netconfig.ActionRight)
		}
		if vertical < -deadzone {
			b = b.With(netconfig.ActionUp)
		}
		if vertical > deadzone {
			b = b.With(netconfig.ActionDown)
		}
	}
	return b
}

// NewLocalInputSystem feeds the polled buttons to one arena slot.
// Must run before the arena system.
func NewLocalInputSystem(a *arena.Arena, slot int) func(*ecs.ECS) {
	return func(_ *ecs.ECS) {
		if err := a.SetInput(slot, PollButtons()); err != nil {
			log.Printf("[input] slot %d: %v", slot, err)
		}
	}
}
