package systems

import (
	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms steps every moving platform's tween by one tick and
// records how far it moved so riders can follow.
func UpdatePlatforms(ecs *ecs.ECS) {
	tags.MovingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		tw := components.Tween.Get(e)
		mp := components.MovingPlatform.Get(e)

		x, _, done := tw.Update(1)
		if done {
			tw.Reset()
		}

		prev := obj.X
		obj.X = float64(x)
		mp.DeltaX = obj.X - prev
		obj.Update()
	})
}
