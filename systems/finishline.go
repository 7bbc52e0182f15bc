package systems

import (
	"log"

	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/events"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFinishLine checks for player collision with finish line and triggers level complete
func UpdateFinishLine(ecs *ecs.ECS) {
	run := GetOrCreateRunState(ecs)
	if run.LevelFinished {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !components.Actor.Get(playerEntry).Alive() {
		return
	}

	playerObj := components.Object.Get(playerEntry).Object
	check := playerObj.Check(0, 0, tags.ResolvFinishLine)
	if check == nil {
		return
	}

	var finishLineEntry *donburi.Entry
	for _, o := range check.ObjectsByTags(tags.ResolvFinishLine) {
		if entry, ok := o.Data.(*donburi.Entry); ok && overlaps(playerObj, o) {
			finishLineEntry = entry
			break
		}
	}
	if finishLineEntry == nil {
		return
	}

	finishLine := components.FinishLine.Get(finishLineEntry)
	if finishLine.Activated {
		return
	}

	finishLine.Activated = true
	run.LevelFinished = true
	log.Printf("level finished at tick %d", run.Tick)
	events.LevelFinished.Publish(ecs.World, events.LevelFinishedData{Tick: run.Tick})
}
