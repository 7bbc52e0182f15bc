package scenes

import (
	"github.com/automoto/brawler/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// action is a logical host input.
type action int

const (
	actionMoveLeft action = iota
	actionMoveRight
	actionJump
	actionAttack
	actionPause
	actionRestart
	actionDebug
	actionConfirm
)

// binding is a single key or button binding for an action
type binding struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}

// analogDeadzone is the stick travel ignored around center.
const analogDeadzone = 0.25

var bindings = map[action]binding{
	actionMoveLeft: {
		keys:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	actionMoveRight: {
		keys:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	actionJump: {
		keys:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	actionAttack: {
		keys:    []ebiten.Key{ebiten.KeyJ, ebiten.KeyX},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	actionPause: {
		keys:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	actionRestart: {
		keys: []ebiten.Key{ebiten.KeyR},
	},
	actionDebug: {
		keys: []ebiten.Key{ebiten.KeyF1},
	},
	actionConfirm: {
		keys:    []ebiten.Key{ebiten.KeyEnter},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
}

func pressed(a action) bool {
	b := bindings[a]
	for _, k := range b.keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		for _, btn := range b.buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

func justPressed(a action) bool {
	b := bindings[a]
	for _, k := range b.keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		for _, btn := range b.buttons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

// readPlayerInput fills the player's intent for the coming tick. Edge
// triggered intents are OR-ed in so a press is not lost before it is used.
func readPlayerInput(input *components.PlayerInputData) {
	move := 0.0
	if pressed(actionMoveLeft) {
		move--
	}
	if pressed(actionMoveRight) {
		move++
	}
	if move == 0 {
		for _, id := range ebiten.AppendGamepadIDs(nil) {
			axis := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
			if axis < -analogDeadzone || axis > analogDeadzone {
				move = axis
				break
			}
		}
	}

	input.MoveX = move
	input.Jump = input.Jump || justPressed(actionJump)
	input.Attack = input.Attack || justPressed(actionAttack)
}
