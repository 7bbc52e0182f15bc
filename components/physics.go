package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData carries the per-body integration settings. Velocity itself
// lives on the actor so the state machine and physics share one source.
type PhysicsData struct {
	Gravity  float64
	OnGround *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
