package systems

import (
	"math"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/events"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateEnemies runs the patrol, chase and attack decision for every enemy.
// It reads the player's position before the player moves this tick.
func UpdateEnemies(ecs *ecs.ECS) {
	target := playerTarget(ecs.World)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		x, y := components.Object.Get(e).Center()

		if steerEnemy(actor, x, y, target) {
			events.AttackStarted.Publish(ecs.World, events.AttackStartedData{
				Entity:    e.Entity(),
				Kind:      actor.Kind,
				Archetype: actor.Archetype,
			})
		}
	})
}

// playerTarget returns the live player's center, or nil when there is nothing
// to chase. Enemies without any player entity are a setup error unless the
// run is already over.
func playerTarget(w donburi.World) *math2.Vec2 {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		if _, hasEnemies := tags.Enemy.First(w); hasEnemies && !runOver(w) {
			panic("enemy AI has no player to target")
		}
		return nil
	}

	if !components.Actor.Get(playerEntry).Alive() {
		return nil
	}
	x, y := components.Object.Get(playerEntry).Center()
	return &math2.Vec2{X: x, Y: y}
}

func runOver(w donburi.World) bool {
	entry, ok := components.RunState.First(w)
	return ok && components.RunState.Get(entry).Over
}

// steerEnemy sets the enemy's velocity for this tick and reports whether a
// swing was started. x and y are the enemy's center.
func steerEnemy(actor *components.ActorData, x, y float64, target *math2.Vec2) bool {
	enemy := actor.Enemy
	enemy.TickCooldown()

	if actor.State.Locked() {
		actor.SpeedX = 0
		return false
	}

	if target != nil && target.X >= enemy.PatrolLeft && target.X <= enemy.PatrolRight {
		dx := target.X - x
		if target.X < x {
			actor.Face(cfg.FacingLeft)
		} else {
			actor.Face(cfg.FacingRight)
		}

		if math.Abs(dx) < enemy.DetectionX && math.Abs(target.Y-y) < enemy.DetectionY {
			if enemy.AttackCooldown == 0 {
				return actor.StartAttack()
			}
			// Hold position while recovering so the target stays ahead.
			actor.SpeedX = 0
			return false
		}

		var vx float64
		if dx != 0 {
			vx = math.Copysign(enemy.ChaseSpeed, dx)
		}
		actor.SpeedX = clampToPatrol(enemy, x, vx)
		return false
	}

	// Patrol: turn at the bounds, then step without crossing them. A zero
	// width patrol stands still facing whichever way it last looked.
	if enemy.PatrolLeft == enemy.PatrolRight {
		actor.SpeedX = 0
		return false
	}
	if actor.Facing == cfg.FacingRight && x >= enemy.PatrolRight {
		actor.Face(cfg.FacingLeft)
	} else if actor.Facing == cfg.FacingLeft && x <= enemy.PatrolLeft {
		actor.Face(cfg.FacingRight)
	}

	if actor.Facing == cfg.FacingRight {
		actor.SpeedX = clampToPatrol(enemy, x, enemy.PatrolSpeed)
	} else {
		actor.SpeedX = clampToPatrol(enemy, x, -enemy.PatrolSpeed)
	}
	return false
}

// clampToPatrol limits vx so that x+vx does not move further outside the
// patrol bounds than x already is.
func clampToPatrol(enemy *components.EnemyTraits, x, vx float64) float64 {
	vx = math.Min(vx, math.Max(enemy.PatrolRight-x, 0))
	vx = math.Max(vx, math.Min(enemy.PatrolLeft-x, 0))
	return vx
}
