package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMovingPlatform creates a one-way platform that shuttles between left
// and right at speed pixels per tick.
func CreateMovingPlatform(ecs *ecs.ECS, x, y, w, h, left, right, speed float64) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	// The tween is driven in ticks, one Update(1) per simulation step.
	span := right - w - left
	if speed <= 0 {
		speed = 1
	}
	ticks := float32(span / speed)
	if ticks < 1 {
		ticks = 1
	}
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(left), float32(right-w), ticks, ease.InOutSine),
		gween.New(float32(right-w), float32(left), ticks, ease.InOutSine),
	)
	components.Tween.Set(platform, tw)
	components.MovingPlatform.SetValue(platform, components.MovingPlatformData{
		Left:  left,
		Right: right,
		Speed: speed,
	})

	return platform
}
