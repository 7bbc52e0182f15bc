package systems

import (
	"math"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// platformLandingTolerance is how far below a one-way platform's top the feet
// may already be while still landing on it.
const platformLandingTolerance = 4

// contactEpsilon absorbs float drift when a body rests exactly against geometry.
const contactEpsilon = 0.001

// UpdatePhysics integrates every actor body: gravity, then horizontal and
// vertical movement resolved against solid and platform geometry.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		actor.SpeedY = clampVerticalSpeed(actor.SpeedY + physics.Gravity)

		dx := actor.SpeedX
		if actor.Kind == cfg.KindPlayer {
			dx += platformCarry(physics)
		}

		resolveHorizontal(actor, obj, dx)
		resolveVertical(actor, physics, obj)
		obj.Update()
	})
}

// CanJump reports whether the actor is standing on something and free to act.
func CanJump(e *donburi.Entry) bool {
	actor := components.Actor.Get(e)
	if actor.State.Locked() {
		return false
	}
	return components.Physics.Get(e).OnGround != nil
}

// overlaps is an exact box test. resolv's Check only narrows candidates to
// shared cells, so region triggers confirm contact with this.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func clampVerticalSpeed(speedY float64) float64 {
	limit := cfg.Physics.VerticalSpeedClamp
	return math.Max(math.Min(speedY, limit), -limit)
}

// platformCarry is the horizontal delta of the moving platform under the body.
func platformCarry(physics *components.PhysicsData) float64 {
	if physics.OnGround == nil {
		return 0
	}
	entry, ok := physics.OnGround.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.MovingPlatform) {
		return 0
	}
	return components.MovingPlatform.Get(entry).DeltaX
}

func resolveHorizontal(actor *components.ActorData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if object.Y+object.H <= solid.Y || object.Y >= solid.Y+solid.H {
				continue
			}
			gap := check.ContactWithObject(solid).X()
			if dx > 0 && gap > -contactEpsilon && gap < dx {
				dx = math.Max(gap, 0)
				actor.SpeedX = 0
			} else if dx < 0 && gap < contactEpsilon && gap > dx {
				dx = math.Min(gap, 0)
				actor.SpeedX = 0
			}
		}
	}

	object.X += dx
}

func resolveVertical(actor *components.ActorData, physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := actor.SpeedY

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if spans(object, solid) && solid.Y+solid.H < object.Y+contactEpsilon && object.Y-(solid.Y+solid.H) <= -dy {
				actor.SpeedY = 0
				dy = check.ContactWithObject(solid).Y()
				break
			}
		}
		object.Y += dy
		return
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if spans(object, solid) && solid.Y > object.Y+object.H-contactEpsilon && solid.Y-(object.Y+object.H) <= checkDistance {
			physics.OnGround = solid
			actor.SpeedY = 0
			object.Y += check.ContactWithObject(solid).Y()
			return
		}
	}

	for _, platform := range check.ObjectsByTags(tags.ResolvPlatform) {
		feet := object.Y + object.H
		if !spans(object, platform) || feet >= platform.Y+platformLandingTolerance || platform.Y-feet > checkDistance {
			continue
		}
		physics.OnGround = platform
		actor.SpeedY = 0
		object.Y += check.ContactWithObject(platform).Y()
		return
	}

	object.Y += dy
}

// spans reports whether a and b overlap on the x axis.
func spans(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W
}
