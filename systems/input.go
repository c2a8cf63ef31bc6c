package systems

import (
	"github.com/automoto/isoward/components"
	cfg "github.com/automoto/isoward/config"
	"github.com/automoto/isoward/iso"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into the Input singleton and hands
// the player this tick's raw input. Must run BEFORE UpdatePlayer.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	input.StickX, input.StickY = readStick(gamepadIDs)
	if input.StickX != 0 || input.StickY != 0 {
		gamepadUsed = true
	}

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}

	setPlayerRaw(ecs, RawFromInput(input))
}

// readStick returns the first left stick outside the deadzone. Stick up is
// positive.
func readStick(gamepads []ebiten.GamepadID) (float64, float64) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := -ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h > -deadzone && h < deadzone {
			h = 0
		}
		if v > -deadzone && v < deadzone {
			v = 0
		}
		if h != 0 || v != 0 {
			return h, v
		}
	}
	return 0, 0
}

// RawFromInput folds digital directions and the analog stick into axes.
// The stick wins when it is moved.
func RawFromInput(in *components.InputData) iso.RawInput {
	raw := iso.RawInput{
		Jump:     in.Pressed(cfg.ActionJump),
		Interact: in.Pressed(cfg.ActionInteract),
		Attack:   in.Pressed(cfg.ActionAttack),
		Sprint:   in.Pressed(cfg.ActionSprint),
		Utility:  in.Pressed(cfg.ActionUtility),
	}

	if in.StickX != 0 || in.StickY != 0 {
		raw.Horizontal, raw.Vertical = in.StickX, in.StickY
		return raw
	}
	if in.Pressed(cfg.ActionMoveRight) {
		raw.Horizontal++
	}
	if in.Pressed(cfg.ActionMoveLeft) {
		raw.Horizontal--
	}
	if in.Pressed(cfg.ActionMoveUp) {
		raw.Vertical++
	}
	if in.Pressed(cfg.ActionMoveDown) {
		raw.Vertical--
	}
	return raw
}

// NewScriptedInput returns a system that feeds the player input from script
// instead of devices, for headless runs and tests.
func NewScriptedInput(script func(tick int) iso.RawInput) ecs.System {
	tick := 0
	return func(e *ecs.ECS) {
		setPlayerRaw(e, script(tick))
		tick++
	}
}

func setPlayerRaw(ecs *ecs.ECS, raw iso.RawInput) {
	if playerEntry, ok := components.Player.First(ecs.World); ok {
		components.Player.Get(playerEntry).Raw = raw
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
