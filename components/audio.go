package components

import (
	"github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// AudioData is the singleton queue of sound cues raised by gameplay events.
// The host drains it after each update.
type AudioData struct {
	PendingSFX []config.SoundID
	Muted      bool
}

var Audio = donburi.NewComponentType[AudioData]()

// Queue appends a cue unless audio is muted.
func (a *AudioData) Queue(id config.SoundID) {
	if a.Muted || id == config.SoundNone {
		return
	}
	a.PendingSFX = append(a.PendingSFX, id)
}

// Drain returns and clears the pending cues.
func (a *AudioData) Drain() []config.SoundID {
	out := a.PendingSFX
	a.PendingSFX = nil
	return out
}
