package systems

import (
	"math"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Candidate is one potential target of a swing, positioned by its center.
type Candidate struct {
	Entry *donburi.Entry
	Actor *components.ActorData
	X, Y  float64
}

// UpdateCombat resolves every swing that sits on its damage frame. Each swing
// damages its targets at most once.
func UpdateCombat(ecs *ecs.ECS) {
	var candidates []Candidate
	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		x, y := components.Object.Get(e).Center()
		candidates = append(candidates, Candidate{Entry: e, Actor: components.Actor.Get(e), X: x, Y: y})
	})

	for _, attacker := range candidates {
		a := attacker.Actor
		if a.State != cfg.Attacking {
			continue
		}
		if !a.AtDamageFrame() {
			a.HasDealtDamage = false
			continue
		}
		if a.HasDealtDamage {
			continue
		}

		for _, target := range Hits(a, attacker.X, attacker.Y, candidates) {
			ApplyDamage(ecs.World, target.Entry, attacker.Entry.Entity(), a.Attack.Damage)
		}
		a.HasDealtDamage = true
	}
}

// Hits returns the candidates a swing from (ax, ay) connects with: living
// opponents inside the attack box on the side the attacker faces.
func Hits(attacker *components.ActorData, ax, ay float64, candidates []Candidate) []Candidate {
	var hits []Candidate
	for _, c := range candidates {
		if c.Actor == attacker || !c.Actor.Alive() || !attacker.Kind.Opposes(c.Actor.Kind) {
			continue
		}
		if math.Abs(c.X-ax) >= attacker.Attack.RangeX || math.Abs(c.Y-ay) >= attacker.Attack.RangeY {
			continue
		}
		if (c.X-ax)*attacker.Facing.Sign() <= 0 {
			continue
		}
		hits = append(hits, c)
	}
	return hits
}

// ApplyDamage is the only path by which one entity lowers another's health.
// source is donburi.Null for environmental damage.
func ApplyDamage(w donburi.World, target *donburi.Entry, source donburi.Entity, amount int) components.DamageOutcome {
	actor := components.Actor.Get(target)
	outcome := actor.TakeDamage(amount)
	if outcome == components.DamageIgnored {
		return outcome
	}

	events.DamageTaken.Publish(w, events.DamageTakenData{
		Entity:    target.Entity(),
		Source:    source,
		Kind:      actor.Kind,
		Amount:    amount,
		Remaining: actor.Health,
	})
	if outcome == components.DamageKilled {
		publishDied(w, target, actor)
	}
	return outcome
}

// Kill forces an actor into Dead, bypassing invulnerability.
func Kill(w donburi.World, target *donburi.Entry) bool {
	actor := components.Actor.Get(target)
	if !actor.Kill() {
		return false
	}
	publishDied(w, target, actor)
	return true
}

func publishDied(w donburi.World, e *donburi.Entry, actor *components.ActorData) {
	events.Died.Publish(w, events.DiedData{
		Entity:    e.Entity(),
		Kind:      actor.Kind,
		Archetype: actor.Archetype,
	})
}
