package factory

import (
	"fmt"

	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/assets/animations"
	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceCellSize is the resolv broad-phase cell edge in pixels.
const spaceCellSize = 16

// CreateLevel populates the world from a parsed level: collision space, level
// geometry, then the player and every enemy. It returns the level entry.
func CreateLevel(ecs *ecs.ECS, clips animations.Provider, level *leveldata.Level) (*donburi.Entry, error) {
	if err := leveldata.Validate(level); err != nil {
		return nil, fmt.Errorf("create level %s: %w", level.Name, err)
	}

	levelEntry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(levelEntry, components.LevelData{
		Source: level,
		Name:   level.Name,
		Width:  level.MapWidth,
		Height: level.MapHeight,
	})

	CreateSpace(ecs, level.MapWidth, level.MapHeight, spaceCellSize, spaceCellSize)

	for _, r := range level.Solids {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range level.Platforms {
		CreatePlatform(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, p := range level.MovingPlatforms {
		CreateMovingPlatform(ecs, p.BoundaryLeft, p.Y, p.W, p.H, p.BoundaryLeft, p.BoundaryRight, p.Speed)
	}
	for _, h := range level.Hazards {
		CreateHazard(ecs, h.X, h.Y, h.W, h.H, h.Kind, h.Damage)
	}
	for _, r := range level.Finish {
		CreateFinishLine(ecs, r.X, r.Y, r.W, r.H)
	}

	if _, err := CreatePlayer(ecs, clips, level.PlayerSpawn.X, level.PlayerSpawn.Y); err != nil {
		return nil, err
	}
	for _, e := range level.Enemies {
		if _, err := CreateEnemy(ecs, clips, e.X, e.Y, e.PatrolLeft, e.PatrolRight, e.Type); err != nil {
			return nil, fmt.Errorf("level %s: %w", level.Name, err)
		}
	}

	return levelEntry, nil
}
