package assets

import (
	"encoding/binary"
	"math"

	"github.com/automoto/brawler/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate is the rate the host's audio context is created with.
const SampleRate = 44100

// tone describes a short synthesized cue: a pitch sweep with a linear fade.
type tone struct {
	startHz, endHz float64
	seconds        float64
	volume         float64
}

var tones = map[config.SoundID]tone{
	config.SoundSwing:         {startHz: 900, endHz: 300, seconds: 0.08, volume: 0.25},
	config.SoundHit:           {startHz: 220, endHz: 110, seconds: 0.12, volume: 0.4},
	config.SoundDeath:         {startHz: 330, endHz: 55, seconds: 0.45, volume: 0.4},
	config.SoundRespawn:       {startHz: 440, endHz: 880, seconds: 0.2, volume: 0.3},
	config.SoundGameOver:      {startHz: 196, endHz: 98, seconds: 0.9, volume: 0.4},
	config.SoundLevelFinished: {startHz: 523, endHz: 1046, seconds: 0.6, volume: 0.35},
}

// AudioLoader handles synthesis and caching of sound effects
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadAll renders every cue up front so the first play has no lag.
func (l *AudioLoader) PreloadAll() {
	for id := range tones {
		l.pcm(id)
	}
}

// Play starts a one-shot player for the cue at the given volume.
func (l *AudioLoader) Play(id config.SoundID, volume float64) {
	data := l.pcm(id)
	if data == nil || volume <= 0 {
		return
	}
	player := l.context.NewPlayerFromBytes(data)
	player.SetVolume(volume)
	player.Play()
}

func (l *AudioLoader) pcm(id config.SoundID) []byte {
	if data, ok := l.sfxCache[id]; ok {
		return data
	}
	t, ok := tones[id]
	if !ok {
		return nil
	}
	data := synthesize(t, l.context.SampleRate())
	l.sfxCache[id] = data
	return data
}

// synthesize renders signed 16-bit little-endian stereo PCM.
func synthesize(t tone, sampleRate int) []byte {
	n := int(t.seconds * float64(sampleRate))
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		hz := t.startHz + (t.endHz-t.startHz)*progress
		phase += 2 * math.Pi * hz / float64(sampleRate)
		v := int16(math.Sin(phase) * t.volume * (1 - progress) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
