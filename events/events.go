// Package events declares the gameplay notifications the simulation raises.
// Systems publish them during the tick and ProcessAll delivers them in one
// batch at the end, so subscribers never observe a half-updated world.
package events

import (
	"github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
	bus "github.com/yohamta/donburi/features/events"
)

type AttackStartedData struct {
	Entity    donburi.Entity
	Kind      config.Kind
	Archetype string
}

type DamageTakenData struct {
	Entity    donburi.Entity
	Source    donburi.Entity // donburi.Null for level hazards
	Kind      config.Kind
	Amount    int
	Remaining int
}

type DiedData struct {
	Entity    donburi.Entity
	Kind      config.Kind
	Archetype string
}

type RespawnedData struct {
	Entity    donburi.Entity
	LivesLeft int
}

type RunEndedData struct {
	Tick int
}

type LevelFinishedData struct {
	Tick int
}

var (
	AttackStarted = bus.NewEventType[AttackStartedData]()
	DamageTaken   = bus.NewEventType[DamageTakenData]()
	Died          = bus.NewEventType[DiedData]()
	Respawned     = bus.NewEventType[RespawnedData]()
	RunEnded      = bus.NewEventType[RunEndedData]()
	LevelFinished = bus.NewEventType[LevelFinishedData]()
)

// ProcessAll delivers every queued event to its subscribers.
func ProcessAll(w donburi.World) {
	bus.ProcessAllEvents(w)
}
