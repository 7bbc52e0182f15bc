package components

import (
	"errors"
	"testing"

	"github.com/automoto/brawler/assets/animations"
	"github.com/automoto/brawler/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func clipsFor(t *testing.T, archetype string) animations.ClipSet {
	t.Helper()
	set, err := animations.NewClipSet(animations.StaticProvider(config.CharacterAnimations), archetype, config.CharacterAnimations[archetype])
	require.NoError(t, err)
	return set
}

func newPlayer(t *testing.T) *ActorData {
	t.Helper()
	a, err := NewPlayerActor(config.Player, clipsFor(t, "player"), math.NewVec2(100, 100))
	require.NoError(t, err)
	return a
}

func newEnemy(t *testing.T, left, right float64) *ActorData {
	t.Helper()
	typ := config.Enemy.Type("Mushroom")
	a, err := NewEnemyActor(typ, clipsFor(t, typ.SpriteSheetKey), left, right)
	require.NoError(t, err)
	return a
}

func advance(a *ActorData, n int) TickResult {
	var res TickResult
	for i := 0; i < n; i++ {
		res = a.Advance()
	}
	return res
}

func TestNewActorValidation(t *testing.T) {
	t.Run("inverted_patrol", func(t *testing.T) {
		typ := config.Enemy.Type("Mushroom")
		_, err := NewEnemyActor(typ, clipsFor(t, typ.SpriteSheetKey), 700, 500)
		assert.True(t, errors.Is(err, ErrInvalidPatrol))
	})

	t.Run("damage_frame_out_of_range", func(t *testing.T) {
		p := config.Player
		p.Attack.DamageFrame = p.Attack.TotalFrames
		_, err := NewPlayerActor(p, clipsFor(t, "player"), math.Vec2{})
		assert.True(t, errors.Is(err, ErrInvalidAttack))
	})

	t.Run("zero_health", func(t *testing.T) {
		p := config.Player
		p.Health = 0
		_, err := NewPlayerActor(p, clipsFor(t, "player"), math.Vec2{})
		assert.True(t, errors.Is(err, ErrInvalidHealth))
	})

	t.Run("missing_clip", func(t *testing.T) {
		clips := clipsFor(t, "player")
		delete(clips, config.Dead)
		_, err := NewPlayerActor(config.Player, clips, math.Vec2{})
		assert.True(t, errors.Is(err, animations.ErrEmptyClip))
	})

	t.Run("fresh_actors_are_valid", func(t *testing.T) {
		p := newPlayer(t)
		e := newEnemy(t, 500, 700)
		require.NoError(t, p.Validate())
		require.NoError(t, e.Validate())
		assert.Nil(t, p.Enemy)
		assert.Nil(t, e.Player)
		assert.Equal(t, config.Idle, p.State)
		assert.Equal(t, 5, p.Health)
		assert.Equal(t, 3, e.Health)
	})
}

func TestLocomotionFollowsVelocity(t *testing.T) {
	a := newPlayer(t)

	a.SpeedX = 5
	res := a.Advance()
	assert.Equal(t, config.Locomotion, a.State)
	assert.Equal(t, config.Idle, res.From)
	assert.Equal(t, config.Locomotion, res.To)
	assert.Equal(t, 0, a.StateTimer)

	a.Advance()
	assert.Equal(t, 1, a.StateTimer)

	a.SpeedX = -5
	a.Advance()
	assert.Equal(t, config.FacingLeft, a.Facing)
	assert.Equal(t, config.Locomotion, a.State)

	a.SpeedY = -20
	a.Advance()
	assert.Equal(t, config.Rising, a.State)

	a.SpeedY = 3
	a.Advance()
	assert.Equal(t, config.Falling, a.State)

	a.SpeedX, a.SpeedY = 0, 0
	a.Advance()
	assert.Equal(t, config.Idle, a.State)
	assert.Equal(t, config.FacingLeft, a.Facing, "standing still keeps the last facing")
}

func TestAttackRunsFullSwing(t *testing.T) {
	a := newPlayer(t)
	dur := a.Attack.Duration()
	require.Equal(t, 30, dur)

	require.True(t, a.StartAttack())
	assert.False(t, a.StartAttack(), "a swing cannot restart itself")

	var finishedAt int
	for tick := 0; tick < dur+5; tick++ {
		res := a.Advance()
		if res.AttackFinished {
			finishedAt = tick
			break
		}
		assert.Equal(t, config.Attacking, a.State)
		assert.Equal(t, tick/a.Attack.TicksPerFrame, a.Frame())
	}
	assert.Equal(t, dur, finishedAt)
	assert.Equal(t, config.Idle, a.State)
	assert.False(t, a.HasDealtDamage)
}

func TestAttackLocksMovementAndFacing(t *testing.T) {
	a := newPlayer(t)
	require.True(t, a.StartAttack())

	a.SpeedX = 5
	a.Advance()
	assert.Zero(t, a.SpeedX)
	assert.False(t, a.Face(config.FacingLeft))
	assert.Equal(t, config.FacingRight, a.Facing)
}

func TestDamageFrameWindow(t *testing.T) {
	a := newPlayer(t)
	require.True(t, a.StartAttack())

	var hits []int
	for tick := 0; tick < a.Attack.Duration(); tick++ {
		a.Advance()
		if a.AtDamageFrame() {
			hits = append(hits, tick)
		}
	}
	assert.Equal(t, []int{20, 21, 22, 23, 24}, hits)
}

func TestTakeDamage(t *testing.T) {
	t.Run("hurt_then_recover", func(t *testing.T) {
		e := newEnemy(t, 0, 100)
		assert.Equal(t, DamageHurt, e.TakeDamage(1))
		assert.Equal(t, 2, e.Health)
		assert.Equal(t, config.TakingDamage, e.State)

		hurt := e.Clip(config.TakingDamage).Duration()
		advance(e, hurt-1)
		assert.Equal(t, config.TakingDamage, e.State)
		e.Advance()
		assert.Equal(t, config.Idle, e.State)
	})

	t.Run("damage_cancels_attack", func(t *testing.T) {
		e := newEnemy(t, 0, 100)
		require.True(t, e.StartAttack())
		advance(e, 10)
		e.HasDealtDamage = true

		assert.Equal(t, DamageHurt, e.TakeDamage(1))
		assert.Equal(t, config.TakingDamage, e.State)
		assert.False(t, e.HasDealtDamage)

		advance(e, e.Clip(config.TakingDamage).Duration())
		require.True(t, e.StartAttack())
		assert.Equal(t, 0, e.StateTimer)
		assert.False(t, e.HasDealtDamage)
	})

	t.Run("lethal_blow_clamps_health", func(t *testing.T) {
		e := newEnemy(t, 0, 100)
		assert.Equal(t, DamageKilled, e.TakeDamage(10))
		assert.Equal(t, 0, e.Health)
		assert.Equal(t, config.Dead, e.State)
		require.NoError(t, e.Validate())
	})

	t.Run("dead_ignore_damage", func(t *testing.T) {
		e := newEnemy(t, 0, 100)
		e.TakeDamage(10)
		assert.Equal(t, DamageIgnored, e.TakeDamage(1))
		assert.Equal(t, 0, e.Health)
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		e := newEnemy(t, 0, 100)
		assert.Equal(t, DamageIgnored, e.TakeDamage(0))
		assert.Equal(t, DamageIgnored, e.TakeDamage(-3))
		assert.Equal(t, 3, e.Health)
		assert.Equal(t, config.Idle, e.State)
	})
}

func TestHealthNeverIncreasesWithoutRespawn(t *testing.T) {
	a := newPlayer(t)
	prev := a.Health
	for i := 0; i < 400; i++ {
		switch i % 7 {
		case 0:
			a.TakeDamage(1)
		case 3:
			a.StartAttack()
		case 5:
			a.SpeedX = 5
		}
		a.Advance()
		require.LessOrEqual(t, a.Health, prev)
		require.GreaterOrEqual(t, a.Health, 0)
		prev = a.Health
	}
}

func TestPlayerInvulnerabilityWindow(t *testing.T) {
	a := newPlayer(t)
	frames := a.Player.InvulnFrames
	require.Equal(t, 60, frames)

	// The hit lands on tick 1; Advance runs before damage each tick.
	require.Equal(t, DamageHurt, a.TakeDamage(1))
	for tick := 2; tick <= frames; tick++ {
		a.Advance()
		assert.Equal(t, DamageIgnored, a.TakeDamage(1), "tick %d", tick)
	}
	a.Advance()
	assert.Equal(t, DamageHurt, a.TakeDamage(1), "tick %d", frames+1)
	assert.Equal(t, 3, a.Health)
}

func TestEnemiesHaveNoInvulnerability(t *testing.T) {
	e := newEnemy(t, 0, 100)
	assert.Equal(t, DamageHurt, e.TakeDamage(1))
	assert.Equal(t, DamageHurt, e.TakeDamage(1))
	assert.Equal(t, 1, e.Health)
}

func TestKillIgnoresInvulnerability(t *testing.T) {
	a := newPlayer(t)
	a.TakeDamage(1)
	require.True(t, a.Invulnerable())

	assert.True(t, a.Kill())
	assert.Equal(t, config.Dead, a.State)
	assert.Equal(t, 0, a.Health)
	assert.False(t, a.Kill())
}

func TestDeathIsTerminal(t *testing.T) {
	a := newPlayer(t)
	a.Kill()
	deathLen := a.Clip(config.Dead).Duration()

	for i := 1; i < deathLen; i++ {
		a.SpeedX, a.SpeedY = 3, -4
		res := a.Advance()
		assert.False(t, res.DeathFinished)
		assert.Equal(t, config.Dead, a.State)
		assert.Zero(t, a.SpeedX)
		assert.Zero(t, a.SpeedY)
	}
	assert.False(t, a.StartAttack())

	res := a.Advance()
	assert.True(t, res.DeathFinished)
	assert.Equal(t, a.Clip(config.Dead).Frames-1, a.Frame())

	res = a.Advance()
	assert.True(t, res.DeathFinished, "finished stays reported until the owner acts")
	assert.Equal(t, config.Dead, a.State)
}

func TestRespawn(t *testing.T) {
	a := newPlayer(t)
	a.Kill()
	advance(a, a.Clip(config.Dead).Duration())

	a.Respawn()
	assert.Equal(t, config.Idle, a.State)
	assert.Equal(t, a.MaxHealth, a.Health)
	assert.Equal(t, config.Player.RespawnInvulnFrames, a.Player.InvulnTimer)
	assert.Equal(t, DamageIgnored, a.TakeDamage(1))
	require.NoError(t, a.Validate())
}

func TestEnemyCooldownSetAfterSwing(t *testing.T) {
	e := newEnemy(t, 500, 700)
	require.True(t, e.StartAttack())
	res := advance(e, e.Attack.Duration()+1)
	assert.True(t, res.AttackFinished)
	assert.Equal(t, config.Enemy.Type("Mushroom").AttackCooldown, e.Enemy.AttackCooldown)

	e.Enemy.TickCooldown()
	assert.Equal(t, 59, e.Enemy.AttackCooldown)
}

func TestHealthFraction(t *testing.T) {
	e := newEnemy(t, 0, 100)
	e.TakeDamage(1)
	assert.InDelta(t, 2.0/3.0, e.HealthFraction(), 1e-9)
}
