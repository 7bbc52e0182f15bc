package components

import (
	"errors"
	"fmt"

	"github.com/automoto/brawler/assets/animations"
	"github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

var (
	ErrInvalidPatrol = errors.New("patrol left boundary exceeds right boundary")
	ErrInvalidAttack = errors.New("invalid attack definition")
	ErrInvalidHealth = errors.New("max health must be positive")
)

// DamageOutcome is what a TakeDamage call did to the actor.
type DamageOutcome int

const (
	DamageIgnored DamageOutcome = iota
	DamageHurt
	DamageKilled
)

func (o DamageOutcome) String() string {
	switch o {
	case DamageHurt:
		return "hurt"
	case DamageKilled:
		return "killed"
	default:
		return "ignored"
	}
}

// TickResult reports what one Advance call changed.
type TickResult struct {
	From, To       config.StateID
	AttackFinished bool // a swing ran its full length this tick
	DeathFinished  bool // the death clip has been shown in full
}

// PlayerTraits is the player-only payload of an actor.
type PlayerTraits struct {
	Spawn         math.Vec2 // top-left corner of the collision box
	MoveSpeed     float64
	JumpSpeed     float64
	InvulnTimer   int // incoming damage is ignored while > 0
	InvulnFrames  int // window granted by each hit
	RespawnInvuln int // window granted by a respawn
}

// EnemyTraits is the enemy-only payload of an actor.
type EnemyTraits struct {
	TypeName    string
	PatrolLeft  float64
	PatrolRight float64
	PatrolSpeed float64
	ChaseSpeed  float64
	DetectionX  float64
	DetectionY  float64

	AttackCooldown int // ticks until the next swing may start
	CooldownTicks  int // value AttackCooldown is reset to after a swing
}

// TickCooldown counts the attack cooldown down by one tick.
func (e *EnemyTraits) TickCooldown() {
	if e.AttackCooldown > 0 {
		e.AttackCooldown--
	}
}

// ActorData is a combat-capable entity driven by the action state machine.
// Kind selects which of Player or Enemy is set; the other is always nil.
type ActorData struct {
	Kind      config.Kind
	Archetype string

	State      config.StateID
	StateTimer int // ticks since State was entered
	Facing     config.Facing

	Health    int
	MaxHealth int

	SpeedX float64
	SpeedY float64

	Attack         config.AttackDef
	HasDealtDamage bool // set once the current swing has resolved its hit

	Clips animations.ClipSet

	Player *PlayerTraits
	Enemy  *EnemyTraits

	// An attack started before this tick's Advance counts that tick as its
	// first, so the timer must not move on that Advance.
	holdTimer bool
}

var Actor = donburi.NewComponentType[ActorData]()

// NewPlayerActor builds the player's state machine from its configuration.
func NewPlayerActor(p config.PlayerConfig, clips animations.ClipSet, spawn math.Vec2) (*ActorData, error) {
	a, err := newActor(config.KindPlayer, p.SpriteSheetKey, p.Health, p.Attack, clips)
	if err != nil {
		return nil, err
	}
	a.Player = &PlayerTraits{
		Spawn:         spawn,
		MoveSpeed:     p.MoveSpeed,
		JumpSpeed:     p.JumpSpeed,
		InvulnFrames:  config.Combat.PlayerInvulnFrames,
		RespawnInvuln: p.RespawnInvulnFrames,
	}
	return a, nil
}

// NewEnemyActor builds an enemy that patrols between left and right.
func NewEnemyActor(t config.EnemyTypeConfig, clips animations.ClipSet, left, right float64) (*ActorData, error) {
	if left > right {
		return nil, fmt.Errorf("enemy %q: %w (%.1f > %.1f)", t.Name, ErrInvalidPatrol, left, right)
	}
	a, err := newActor(config.KindEnemy, t.SpriteSheetKey, t.Health, t.Attack, clips)
	if err != nil {
		return nil, err
	}
	a.Enemy = &EnemyTraits{
		TypeName:      t.Name,
		PatrolLeft:    left,
		PatrolRight:   right,
		PatrolSpeed:   t.PatrolSpeed,
		ChaseSpeed:    t.ChaseSpeed,
		DetectionX:    t.DetectionX,
		DetectionY:    t.DetectionY,
		CooldownTicks: t.AttackCooldown,
	}
	return a, nil
}

func newActor(kind config.Kind, archetype string, health int, attack config.AttackDef, clips animations.ClipSet) (*ActorData, error) {
	if health <= 0 {
		return nil, fmt.Errorf("%s %q: %w", kind, archetype, ErrInvalidHealth)
	}
	if err := attack.Validate(); err != nil {
		return nil, fmt.Errorf("%s %q: %w: %v", kind, archetype, ErrInvalidAttack, err)
	}
	for _, state := range config.AllStates {
		if clips[state].Frames <= 0 {
			return nil, fmt.Errorf("%s %q %s: %w", kind, archetype, state, animations.ErrEmptyClip)
		}
	}
	return &ActorData{
		Kind:      kind,
		Archetype: archetype,
		State:     config.Idle,
		Facing:    config.FacingRight,
		Health:    health,
		MaxHealth: health,
		Attack:    attack,
		Clips:     clips,
	}, nil
}

// Alive reports whether the actor can still act or be targeted.
func (a *ActorData) Alive() bool {
	return a.State != config.Dead
}

// HealthFraction is current over max health, for health bars.
func (a *ActorData) HealthFraction() float64 {
	if a.MaxHealth <= 0 {
		return 0
	}
	return float64(a.Health) / float64(a.MaxHealth)
}

// Invulnerable reports whether incoming damage is currently ignored.
func (a *ActorData) Invulnerable() bool {
	return a.Player != nil && a.Player.InvulnTimer > 0
}

// Clip returns the clip that drives the given state. The attack clip is
// derived from the attack definition so swing timing has one source.
func (a *ActorData) Clip(state config.StateID) animations.Clip {
	if state == config.Attacking {
		return animations.Clip{Frames: a.Attack.TotalFrames, TicksPerFrame: a.Attack.TicksPerFrame}
	}
	return a.Clips[state]
}

// Frame is the animation frame index for the current state.
func (a *ActorData) Frame() int {
	return a.Clip(a.State).FrameIndex(a.StateTimer)
}

// DeathComplete reports whether a dead actor has shown its whole death clip.
func (a *ActorData) DeathComplete() bool {
	return a.State == config.Dead && a.Clip(config.Dead).Complete(a.StateTimer)
}

// AtDamageFrame reports whether a swing is on the frame that resolves hits.
func (a *ActorData) AtDamageFrame() bool {
	return a.State == config.Attacking && a.Frame() == a.Attack.DamageFrame
}

func (a *ActorData) enter(state config.StateID) {
	a.State = state
	a.StateTimer = 0
}

// locomotion derives the free-movement state from velocity. Screen space is
// y-down, so negative SpeedY is upward.
func (a *ActorData) locomotion() config.StateID {
	switch {
	case a.SpeedY < 0:
		return config.Rising
	case a.SpeedY > 0:
		return config.Falling
	case a.SpeedX != 0:
		return config.Locomotion
	default:
		return config.Idle
	}
}

// Advance runs the state machine for one tick. Velocity has already been set
// by intent and integrated by physics for this tick.
func (a *ActorData) Advance() TickResult {
	res := TickResult{From: a.State}
	hold := a.holdTimer
	a.holdTimer = false

	if a.Player != nil && a.Player.InvulnTimer > 0 {
		a.Player.InvulnTimer--
	}

	switch a.State {
	case config.Dead:
		a.SpeedX, a.SpeedY = 0, 0
		clip := a.Clip(config.Dead)
		if !clip.Complete(a.StateTimer) {
			a.StateTimer++
		}
		res.DeathFinished = clip.Complete(a.StateTimer)

	case config.TakingDamage:
		a.SpeedX = 0
		a.StateTimer++
		if a.Clip(config.TakingDamage).Complete(a.StateTimer) {
			a.enter(a.locomotion())
		}

	case config.Attacking:
		a.SpeedX = 0
		if !hold {
			a.StateTimer++
		}
		if a.StateTimer >= a.Attack.Duration() {
			a.HasDealtDamage = false
			res.AttackFinished = true
			if a.Enemy != nil {
				a.Enemy.AttackCooldown = a.Enemy.CooldownTicks
			}
			a.enter(a.locomotion())
		}

	default:
		if a.SpeedX < 0 {
			a.Facing = config.FacingLeft
		} else if a.SpeedX > 0 {
			a.Facing = config.FacingRight
		}
		if next := a.locomotion(); next != a.State {
			a.enter(next)
		} else {
			a.StateTimer++
		}
	}

	res.To = a.State
	return res
}

// StartAttack begins a swing. It is refused while attacking, hurt or dead;
// an attack in progress can only be interrupted by damage.
func (a *ActorData) StartAttack() bool {
	if a.State.Locked() {
		return false
	}
	a.enter(config.Attacking)
	a.HasDealtDamage = false
	a.SpeedX = 0
	a.holdTimer = true
	return true
}

// Face turns the actor explicitly. Locked states keep their facing.
func (a *ActorData) Face(f config.Facing) bool {
	if a.State.Locked() {
		return false
	}
	a.Facing = f
	return true
}

// TakeDamage is the single entry point for health loss. Dead actors, an
// invulnerable player and non-positive amounts are ignored. Otherwise the
// actor is hurt (cancelling any swing) or killed when health reaches zero.
func (a *ActorData) TakeDamage(amount int) DamageOutcome {
	if a.State == config.Dead || a.Invulnerable() || amount <= 0 {
		return DamageIgnored
	}

	a.Health -= amount
	if a.Health <= 0 {
		a.die()
		return DamageKilled
	}

	a.enter(config.TakingDamage)
	a.HasDealtDamage = false
	a.holdTimer = false
	a.SpeedX = 0
	if a.Player != nil {
		a.Player.InvulnTimer = a.Player.InvulnFrames
	}
	return DamageHurt
}

// Kill forces death regardless of invulnerability, for lethal hazards.
func (a *ActorData) Kill() bool {
	if a.State == config.Dead {
		return false
	}
	a.die()
	return true
}

func (a *ActorData) die() {
	a.Health = 0
	a.enter(config.Dead)
	a.HasDealtDamage = false
	a.holdTimer = false
	a.SpeedX, a.SpeedY = 0, 0
}

// Respawn restores a dead player to full health in Idle.
func (a *ActorData) Respawn() {
	a.Health = a.MaxHealth
	a.SpeedX, a.SpeedY = 0, 0
	a.HasDealtDamage = false
	a.holdTimer = false
	a.Facing = config.FacingRight
	a.enter(config.Idle)
	if a.Player != nil {
		a.Player.InvulnTimer = a.Player.RespawnInvuln
	}
}

// Validate checks the structural invariants of the actor.
func (a *ActorData) Validate() error {
	switch {
	case a.MaxHealth <= 0:
		return ErrInvalidHealth
	case a.Health < 0 || a.Health > a.MaxHealth:
		return fmt.Errorf("health %d outside [0,%d]", a.Health, a.MaxHealth)
	case a.Health == 0 && a.State != config.Dead:
		return fmt.Errorf("zero health in state %s", a.State)
	case a.StateTimer < 0:
		return fmt.Errorf("negative state timer %d", a.StateTimer)
	case (a.Kind == config.KindPlayer) != (a.Player != nil):
		return fmt.Errorf("%s actor has mismatched player payload", a.Kind)
	case (a.Kind == config.KindEnemy) != (a.Enemy != nil):
		return fmt.Errorf("%s actor has mismatched enemy payload", a.Kind)
	case a.Enemy != nil && a.Enemy.PatrolLeft > a.Enemy.PatrolRight:
		return ErrInvalidPatrol
	}
	return nil
}
