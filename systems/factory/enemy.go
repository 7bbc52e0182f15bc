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
)

// CreateEnemy spawns an enemy of the named type with its feet centered on
// (x, y), patrolling between the left and right center positions.
func CreateEnemy(ecs *ecs.ECS, clips animations.Provider, x, y, left, right float64, enemyTypeName string) (*donburi.Entry, error) {
	enemyType := cfg.Enemy.Type(enemyTypeName)

	set, err := animations.NewClipSet(clips, enemyType.SpriteSheetKey, cfg.CharacterAnimations[enemyType.SpriteSheetKey])
	if err != nil {
		return nil, fmt.Errorf("create enemy %q: %w", enemyType.Name, err)
	}
	actor, err := components.NewEnemyActor(enemyType, set, left, right)
	if err != nil {
		return nil, fmt.Errorf("create enemy at %.0f,%.0f: %w", x, y, err)
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := float64(enemyType.CollisionWidth), float64(enemyType.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y-h, w, h)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags(tags.ResolvCharacter, tags.ResolvEnemy)
	obj.Data = enemy
	addToSpace(ecs, obj)

	components.Actor.Set(enemy, actor)
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity: enemyType.Gravity,
	})

	return enemy, nil
}
