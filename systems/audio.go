package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/events"
	"github.com/yohamta/donburi"
)

// SubscribeAudio turns gameplay events into sound cues on the singleton
// audio queue. Playback belongs to the host.
func SubscribeAudio(w donburi.World) {
	events.AttackStarted.Subscribe(w, func(w donburi.World, _ events.AttackStartedData) {
		queueSFX(w, cfg.SoundSwing)
	})
	events.DamageTaken.Subscribe(w, func(w donburi.World, e events.DamageTakenData) {
		if e.Remaining > 0 {
			queueSFX(w, cfg.SoundHit)
		}
	})
	events.Died.Subscribe(w, func(w donburi.World, _ events.DiedData) {
		queueSFX(w, cfg.SoundDeath)
	})
	events.Respawned.Subscribe(w, func(w donburi.World, _ events.RespawnedData) {
		queueSFX(w, cfg.SoundRespawn)
	})
	events.RunEnded.Subscribe(w, func(w donburi.World, _ events.RunEndedData) {
		queueSFX(w, cfg.SoundGameOver)
	})
	events.LevelFinished.Subscribe(w, func(w donburi.World, _ events.LevelFinishedData) {
		queueSFX(w, cfg.SoundLevelFinished)
	})
}

func queueSFX(w donburi.World, id cfg.SoundID) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	components.Audio.Get(entry).Queue(id)
}

// DrainSFX hands the cues queued since the last call to the host.
func DrainSFX(w donburi.World) []cfg.SoundID {
	entry, ok := components.Audio.First(w)
	if !ok {
		return nil
	}
	return components.Audio.Get(entry).Drain()
}
