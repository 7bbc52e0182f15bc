package systems

import (
	"log"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths acts on actors whose death clip has finished: enemies are
// removed, the player respawns or the run ends when no lives are left.
func UpdateDeaths(ecs *ecs.ECS) {
	var finished []*donburi.Entry
	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		if components.Actor.Get(e).DeathComplete() {
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		if components.Actor.Get(e).Kind == cfg.KindPlayer {
			handlePlayerDeath(ecs, e)
			continue
		}
		removeActor(ecs.World, e)
	}
}

func handlePlayerDeath(ecs *ecs.ECS, e *donburi.Entry) {
	lives := components.Lives.Get(e)
	if lives.Spend() {
		respawnPlayer(e)
		events.Respawned.Publish(ecs.World, events.RespawnedData{
			Entity:    e.Entity(),
			LivesLeft: lives.Lives,
		})
		return
	}

	tick := 0
	if runEntry, ok := components.RunState.First(ecs.World); ok {
		run := components.RunState.Get(runEntry)
		run.Over = true
		tick = run.Tick
	}
	log.Printf("run over at tick %d", tick)
	removeActor(ecs.World, e)
	events.RunEnded.Publish(ecs.World, events.RunEndedData{Tick: tick})
}

func respawnPlayer(e *donburi.Entry) {
	actor := components.Actor.Get(e)
	actor.Respawn()

	obj := components.Object.Get(e)
	obj.X, obj.Y = actor.Player.Spawn.X, actor.Player.Spawn.Y
	obj.Update()
	components.Physics.Get(e).OnGround = nil
}

func removeActor(w donburi.World, e *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
	}
	w.Remove(e.Entity())
}
