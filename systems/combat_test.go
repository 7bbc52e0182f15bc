package systems

import (
	"testing"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestHits(t *testing.T) {
	h := newHarness(t)
	attacker := actorOf(h.player(0))
	enemy := func() *components.ActorData { return actorOf(h.enemy(0, -100, 100)) }

	cases := []struct {
		name   string
		facing cfg.Facing
		target Candidate
		hit    bool
	}{
		{"in_front", cfg.FacingRight, Candidate{Actor: enemy(), X: 150, Y: 100}, true},
		{"behind", cfg.FacingRight, Candidate{Actor: enemy(), X: 50, Y: 100}, false},
		{"facing_left", cfg.FacingLeft, Candidate{Actor: enemy(), X: 50, Y: 100}, true},
		{"facing_left_behind", cfg.FacingLeft, Candidate{Actor: enemy(), X: 150, Y: 100}, false},
		{"facing_left_same_x", cfg.FacingLeft, Candidate{Actor: enemy(), X: 100, Y: 100}, false},
		{"same_x", cfg.FacingRight, Candidate{Actor: enemy(), X: 100, Y: 100}, false},
		{"out_of_range_x", cfg.FacingRight, Candidate{Actor: enemy(), X: 180, Y: 100}, false},
		{"out_of_range_y", cfg.FacingRight, Candidate{Actor: enemy(), X: 150, Y: 140}, false},
		{"same_kind", cfg.FacingRight, Candidate{Actor: actorOf(h.player(0)), X: 150, Y: 100}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			attacker.Facing = c.facing
			got := Hits(attacker, 100, 100, []Candidate{c.target})
			if c.hit {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}

	t.Run("dead_target", func(t *testing.T) {
		attacker.Facing = cfg.FacingRight
		target := enemy()
		target.Kill()
		assert.Empty(t, Hits(attacker, 100, 100, []Candidate{{Actor: target, X: 150, Y: 100}}))
	})

	t.Run("self", func(t *testing.T) {
		assert.Empty(t, Hits(attacker, 100, 100, []Candidate{{Actor: attacker, X: 150, Y: 100}}))
	})
}

func TestApplyDamageRespectsInvulnerability(t *testing.T) {
	h := newHarness(t)
	player := h.player(300)
	enemy := h.enemy(900, 800, 1000)

	var taken []events.DamageTakenData
	events.DamageTaken.Subscribe(h.ecs.World, func(_ donburi.World, e events.DamageTakenData) {
		taken = append(taken, e)
	})

	assert.Equal(t, components.DamageHurt, ApplyDamage(h.ecs.World, player, enemy.Entity(), 1))
	assert.Equal(t, components.DamageIgnored, ApplyDamage(h.ecs.World, player, enemy.Entity(), 1))
	ProcessEvents(h.ecs)

	require.Len(t, taken, 1)
	assert.Equal(t, 4, taken[0].Remaining)
	assert.Equal(t, cfg.KindPlayer, taken[0].Kind)
	assert.Equal(t, 4, actorOf(player).Health)
}

func TestApplyDamagePublishesDeath(t *testing.T) {
	h := newHarness(t)
	player := h.player(300)
	enemy := h.enemy(900, 800, 1000)

	var died []events.DiedData
	events.Died.Subscribe(h.ecs.World, func(_ donburi.World, e events.DiedData) {
		died = append(died, e)
	})

	assert.Equal(t, components.DamageKilled, ApplyDamage(h.ecs.World, enemy, player.Entity(), 5))
	assert.Equal(t, components.DamageIgnored, ApplyDamage(h.ecs.World, enemy, player.Entity(), 1))
	assert.False(t, Kill(h.ecs.World, enemy))
	ProcessEvents(h.ecs)

	require.Len(t, died, 1)
	assert.Equal(t, enemy.Entity(), died[0].Entity)
	assert.Equal(t, cfg.KindEnemy, died[0].Kind)
	assert.Equal(t, []cfg.SoundID{cfg.SoundDeath}, DrainSFX(h.ecs.World), "a killing blow plays no hit cue")
}

func TestMutedAudioQueuesNothing(t *testing.T) {
	h := newHarness(t)
	player := h.player(300)

	entry, ok := components.Audio.First(h.ecs.World)
	require.True(t, ok)
	components.Audio.Get(entry).Muted = true

	ApplyDamage(h.ecs.World, player, donburi.Null, 1)
	ProcessEvents(h.ecs)
	assert.Empty(t, DrainSFX(h.ecs.World))
}
