package systems

import (
	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reports which actions are held this frame. It is polled
// once per frame; the simulation never talks to a device directly.
type InputSource interface {
	Poll(pressed *[cfg.ActionCount]bool)
}

// NewInputSystem returns the system that polls src into the Input
// component. Must run BEFORE UpdatePlayer in the system order.
func NewInputSystem(src InputSource) ecs.System {
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		if src != nil {
			src.Poll(&input.Current)
		}

		if input.Action(cfg.ActionToggleDebug).JustPressed {
			cfg.Debug.DrawBounds = !cfg.Debug.DrawBounds
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Frame, components.Input))
	}
	return components.Input.Get(entry)
}

// KeyboardSource reads the configured keyboard and standard gamepad
// bindings from Ebitengine.
type KeyboardSource struct {
	gamepadIDs []ebiten.GamepadID
}

func (k *KeyboardSource) Poll(pressed *[cfg.ActionCount]bool) {
	k.gamepadIDs = ebiten.AppendGamepadIDs(k.gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}

		for _, gpID := range k.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range k.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			pressed[cfg.ActionMoveLeft] = true
		}
		if horizontal > deadzone {
			pressed[cfg.ActionMoveRight] = true
		}
	}
}
