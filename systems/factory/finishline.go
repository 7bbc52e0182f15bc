package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFinishLine creates a finish line entity with collision detection
func CreateFinishLine(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	finishLine := archetypes.FinishLine.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvFinishLine)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = finishLine

	components.Object.SetValue(finishLine, components.ObjectData{Object: obj})
	components.FinishLine.SetValue(finishLine, components.FinishLineData{
		Activated: false,
	})
	addToSpace(ecs, obj)

	return finishLine
}
