package factory

import (
	"fmt"

	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/assets/animations"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player standing with its feet centered on (x, y).
func CreatePlayer(ecs *ecs.ECS, clips animations.Provider, x, y float64) (*donburi.Entry, error) {
	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	left, top := x-w/2, y-h

	set, err := animations.NewClipSet(clips, cfg.Player.SpriteSheetKey, cfg.CharacterAnimations[cfg.Player.SpriteSheetKey])
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	actor, err := components.NewPlayerActor(cfg.Player, set, math.NewVec2(left, top))
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(left, top, w, h)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvCharacter, tags.ResolvPlayer)
	obj.Data = player
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, obj)

	components.Actor.Set(player, actor)
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity: cfg.Player.Gravity,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives:    cfg.Player.StartingLives,
		MaxLives: cfg.Player.StartingLives,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{})

	return player, nil
}
