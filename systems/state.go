package systems

import (
	"github.com/automoto/brawler/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates advances every actor's state machine by one tick.
func UpdateStates(ecs *ecs.ECS) {
	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		components.Actor.Get(e).Advance()
	})
}
