package systems

import (
	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards applies level hazards to every living actor overlapping
// one. Lethal hazards kill through invulnerability; the others deal their
// damage through the normal damage path.
func UpdateHazards(ecs *ecs.ECS) {
	var touching []*donburi.Entry
	components.Actor.Each(ecs.World, func(e *donburi.Entry) {
		if components.Actor.Get(e).Alive() {
			touching = append(touching, e)
		}
	})

	for _, e := range touching {
		obj := components.Object.Get(e)
		check := obj.Check(0, 0, tags.ResolvHazard)
		if check == nil {
			continue
		}

		for _, hazardObj := range check.ObjectsByTags(tags.ResolvHazard) {
			if !overlaps(obj.Object, hazardObj) {
				continue
			}
			hazardEntry, ok := hazardObj.Data.(*donburi.Entry)
			if !ok || !hazardEntry.Valid() {
				continue
			}
			hazard := components.Hazard.Get(hazardEntry)
			if hazard.Lethal() {
				Kill(ecs.World, e)
			} else {
				ApplyDamage(ecs.World, e, hazardEntry.Entity(), hazard.Damage)
			}
			if !components.Actor.Get(e).Alive() {
				break
			}
		}
	}
}
