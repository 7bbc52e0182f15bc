package systems

import (
	"math"

	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/events"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns the player's intent into velocity, jumps and swings.
// Jump and attack intents are consumed whether or not they could act.
func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		input := components.PlayerInput.Get(e)
		updateSinglePlayer(ecs.World, e, input)
		input.Jump, input.Attack = false, false
	})
}

func updateSinglePlayer(w donburi.World, e *donburi.Entry, input *components.PlayerInputData) {
	actor := components.Actor.Get(e)
	if actor.State.Locked() {
		actor.SpeedX = 0
		return
	}

	// Swings start from the ground only.
	if input.Attack && actor.SpeedY == 0 && actor.StartAttack() {
		events.AttackStarted.Publish(w, events.AttackStartedData{
			Entity:    e.Entity(),
			Kind:      actor.Kind,
			Archetype: actor.Archetype,
		})
		return
	}

	move := math.Max(-1, math.Min(1, input.MoveX))
	actor.SpeedX = move * actor.Player.MoveSpeed

	if input.Jump && CanJump(e) {
		actor.SpeedY = -actor.Player.JumpSpeed
	}
}
