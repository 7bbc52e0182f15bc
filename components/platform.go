package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

var Tween = donburi.NewComponentType[gween.Sequence]()

// MovingPlatformData tracks the last tweened position so riders can be
// carried by the same delta.
type MovingPlatformData struct {
	Left, Right float64
	Speed       float64
	DeltaX      float64
}

var MovingPlatform = donburi.NewComponentType[MovingPlatformData]()
