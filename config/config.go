package config

import (
	"errors"
	"fmt"
	"image/color"
)

// Config holds host window settings.
type Config struct {
	Width  int
	Height int
}

// AttackDef is the static description of one archetype's melee swing.
type AttackDef struct {
	RangeX        float64 `yaml:"range_x"`         // half-width of the hit region
	RangeY        float64 `yaml:"range_y"`         // half-height of the hit region
	DamageFrame   int     `yaml:"damage_frame"`    // frame index evaluated for hits
	Damage        int     `yaml:"damage"`          // health removed per hit
	TotalFrames   int     `yaml:"total_frames"`    // frames in the swing
	TicksPerFrame int     `yaml:"ticks_per_frame"` // ticks each frame is held
}

// Duration is the full swing length in ticks.
func (a AttackDef) Duration() int {
	return a.TotalFrames * a.TicksPerFrame
}

// Validate rejects swings that could never reach their damage frame.
func (a AttackDef) Validate() error {
	switch {
	case a.TotalFrames <= 0:
		return errors.New("total_frames must be positive")
	case a.TicksPerFrame <= 0:
		return errors.New("ticks_per_frame must be positive")
	case a.DamageFrame < 0 || a.DamageFrame >= a.TotalFrames:
		return fmt.Errorf("damage_frame %d outside [0,%d)", a.DamageFrame, a.TotalFrames)
	case a.Damage < 0:
		return errors.New("damage must not be negative")
	case a.RangeX <= 0 || a.RangeY <= 0:
		return errors.New("attack ranges must be positive")
	}
	return nil
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
	Gravity   float64 `yaml:"gravity"`

	// Combat
	Health int       `yaml:"health"`
	Attack AttackDef `yaml:"attack"`

	// Lives
	StartingLives       int `yaml:"starting_lives"`
	RespawnInvulnFrames int `yaml:"respawn_invuln_frames"`

	// Dimensions
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`

	// Visual
	SpriteSheetKey string     `yaml:"sprite_sheet"`
	TintColor      color.RGBA `yaml:"-"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name   string    `yaml:"name"`
	Health int       `yaml:"health"`
	Attack AttackDef `yaml:"attack"`

	// AI
	PatrolSpeed    float64 `yaml:"patrol_speed"`
	ChaseSpeed     float64 `yaml:"chase_speed"`
	DetectionX     float64 `yaml:"detection_x"` // horizontal distance that triggers a swing
	DetectionY     float64 `yaml:"detection_y"` // vertical distance that triggers a swing
	AttackCooldown int     `yaml:"attack_cooldown"`

	// Physics
	Gravity float64 `yaml:"gravity"`

	// Dimensions
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`

	// Visual
	SpriteSheetKey string     `yaml:"sprite_sheet"`
	TintColor      color.RGBA `yaml:"-"`
}

// Validate checks the numeric invariants an enemy type must satisfy.
func (t EnemyTypeConfig) Validate() error {
	if t.Health <= 0 {
		return fmt.Errorf("enemy type %q: health must be positive", t.Name)
	}
	if t.PatrolSpeed < 0 || t.ChaseSpeed < 0 {
		return fmt.Errorf("enemy type %q: speeds must not be negative", t.Name)
	}
	if t.AttackCooldown < 0 {
		return fmt.Errorf("enemy type %q: attack_cooldown must not be negative", t.Name)
	}
	if err := t.Attack.Validate(); err != nil {
		return fmt.Errorf("enemy type %q: %w", t.Name, err)
	}
	return nil
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	DefaultType           string  // used when a level object names no type
	DefaultPatrolDistance float64 // patrol half-width when a level object has no boundaries
}

// Type looks up an enemy type, falling back to DefaultType.
func (c EnemyConfig) Type(name string) EnemyTypeConfig {
	if t, ok := c.Types[name]; ok {
		return t
	}
	return c.Types[c.DefaultType]
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	PlayerInvulnFrames int `yaml:"player_invuln_frames"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	VerticalSpeedClamp float64 `yaml:"vertical_speed_clamp"`
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	DefaultTicksPerFrame int `yaml:"default_ticks_per_frame"`
	IdleTicksPerFrame    int `yaml:"idle_ticks_per_frame"`
}

var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Animation AnimationConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue   = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Orange = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Purple = color.RGBA{R: 128, G: 0, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Animation = AnimationConfig{
		DefaultTicksPerFrame: 5,
		IdleTicksPerFrame:    5,
	}
	CharacterAnimations = defaultAnimations()

	Physics = PhysicsConfig{
		VerticalSpeedClamp: 20.0,
	}

	Player = PlayerConfig{
		MoveSpeed: 5.0,
		JumpSpeed: 20.0,
		Gravity:   1.1,

		Health: 5,
		Attack: AttackDef{
			RangeX:        80,
			RangeY:        40,
			DamageFrame:   4,
			Damage:        1,
			TotalFrames:   6,
			TicksPerFrame: 5,
		},

		StartingLives:       3,
		RespawnInvulnFrames: 60,

		CollisionWidth:  40,
		CollisionHeight: 80,

		SpriteSheetKey: "player",
		TintColor:      Blue,
	}

	mushroomType := EnemyTypeConfig{
		Name:   "Mushroom",
		Health: 3,
		Attack: AttackDef{
			RangeX:        50,
			RangeY:        50,
			DamageFrame:   6,
			Damage:        2,
			TotalFrames:   8,
			TicksPerFrame: 5,
		},

		PatrolSpeed:    1.0,
		ChaseSpeed:     4.0,
		DetectionX:     50,
		DetectionY:     40,
		AttackCooldown: 60,

		Gravity: 1.1,

		CollisionWidth:  40,
		CollisionHeight: 50,

		SpriteSheetKey: "mushroom",
		TintColor:      Red,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Mushroom": mushroomType,
		},
		DefaultType:           "Mushroom",
		DefaultPatrolDistance: 100.0,
	}

	Combat = CombatConfig{
		PlayerInvulnFrames: 60,
	}
}
