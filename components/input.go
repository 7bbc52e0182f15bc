package components

import "github.com/yohamta/donburi"

// PlayerInputData is the intent the host hands to the simulation each tick.
// Jump and Attack are edge-triggered: the host sets them on the tick the
// button goes down and the player system clears them once consumed.
type PlayerInputData struct {
	MoveX  float64 // -1 left, +1 right, 0 none
	Jump   bool
	Attack bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
