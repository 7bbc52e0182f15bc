package systems

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateRunState returns the singleton run state, creating it if needed.
func GetOrCreateRunState(e *ecs.ECS) *components.RunStateData {
	if _, ok := components.RunState.First(e.World); !ok {
		archetypes.Session.Spawn(e)
	}

	ent, _ := components.RunState.First(e.World)
	return components.RunState.Get(ent)
}

// UpdateClock counts simulated ticks.
func UpdateClock(e *ecs.ECS) {
	GetOrCreateRunState(e).Tick++
}

// WithGameplayChecks wraps a system to skip execution when paused or when the
// level has been finished.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if run := GetOrCreateRunState(e); run.Paused || run.LevelFinished {
			return
		}
		system(e)
	}
}
