package systems

import (
	"testing"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestLethalHazardKillsThroughInvulnerability(t *testing.T) {
	h := newHarness(t)
	player := h.player(300)
	factory.CreateHazard(h.ecs, 280, 620, 40, 20, "spikes", 0)

	ApplyDamage(h.ecs.World, player, donburi.Null, 1)
	require.True(t, actorOf(player).Invulnerable())

	h.step(1)
	assert.Equal(t, cfg.Dead, actorOf(player).State)
	assert.Zero(t, actorOf(player).Health)
}

func TestDamagingHazardHonorsInvulnerability(t *testing.T) {
	h := newHarness(t)
	player := h.player(300)
	factory.CreateHazard(h.ecs, 280, 620, 40, 20, "thorns", 1)

	h.step(1)
	assert.Equal(t, 4, actorOf(player).Health)

	h.step(59)
	assert.Equal(t, 4, actorOf(player).Health)

	h.step(1)
	assert.Equal(t, 3, actorOf(player).Health)
}

func TestHazardKillsEnemy(t *testing.T) {
	h := newHarness(t)
	h.player(300)
	enemy := h.enemy(900, 900, 900)
	factory.CreateHazard(h.ecs, 880, 620, 40, 20, "spikes", 0)

	h.step(1)
	assert.Equal(t, cfg.Dead, actorOf(enemy).State)

	h.step(actorOf(enemy).Clip(cfg.Dead).Duration())
	assert.False(t, enemy.Valid())
}

func TestHazardNeedsOverlap(t *testing.T) {
	h := newHarness(t)
	player := h.player(300)
	factory.CreateHazard(h.ecs, 321, 620, 10, 20, "spikes", 0)

	h.step(10)
	assert.Equal(t, cfg.Idle, actorOf(player).State)
}
