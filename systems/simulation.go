package systems

import (
	"github.com/automoto/brawler/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewSimulation wires the fixed per-tick system order onto a world. AI reads
// positions before anything moves; the state machine advances after physics
// and before combat, so hits always see this tick's frame.
func NewSimulation(w donburi.World) *ecs.ECS {
	e := ecs.NewECS(w)
	GetOrCreateRunState(e)
	SubscribeAudio(w)

	e.AddSystem(WithGameplayChecks(UpdateClock))
	e.AddSystem(WithGameplayChecks(UpdateEnemies))
	e.AddSystem(WithGameplayChecks(UpdatePlayer))
	e.AddSystem(WithGameplayChecks(UpdatePlatforms))
	e.AddSystem(WithGameplayChecks(UpdatePhysics))
	e.AddSystem(WithGameplayChecks(UpdateStates))
	e.AddSystem(WithGameplayChecks(UpdateCombat))
	e.AddSystem(WithGameplayChecks(UpdateHazards))
	e.AddSystem(WithGameplayChecks(UpdateFinishLine))
	e.AddSystem(WithGameplayChecks(UpdateDeaths))

	// Events raised on the finishing tick still have to reach subscribers.
	e.AddSystem(ProcessEvents)
	return e
}

// ProcessEvents delivers every event published during the tick.
func ProcessEvents(e *ecs.ECS) {
	events.ProcessAll(e.World)
}
