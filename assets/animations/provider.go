package animations

import (
	"errors"
	"fmt"

	"github.com/automoto/brawler/config"
)

// ErrEmptyClip is returned when a provider has no frames for a state.
var ErrEmptyClip = errors.New("empty clip sequence")

// Provider supplies per-archetype frame sequences. Handles are opaque to the
// simulation and only travel to the renderer.
type Provider interface {
	Frames(archetype string, state config.StateID) int
	Frame(archetype string, state config.StateID, index int, facing config.Facing) any
}

// ClipSet holds one clip per state for a single archetype.
type ClipSet map[config.StateID]Clip

// NewClipSet builds the clips for archetype, taking frame counts from the
// provider and timing from defs. Every state must have at least one frame.
func NewClipSet(p Provider, archetype string, defs map[config.StateID]config.ClipDef) (ClipSet, error) {
	set := make(ClipSet, len(config.AllStates))
	for _, state := range config.AllStates {
		n := p.Frames(archetype, state)
		if n <= 0 {
			return nil, fmt.Errorf("%s %s: %w", archetype, state, ErrEmptyClip)
		}
		def := defs[state]
		tpf := def.TicksPerFrame
		if tpf <= 0 {
			tpf = config.Animation.DefaultTicksPerFrame
		}
		set[state] = Clip{Frames: n, TicksPerFrame: tpf, Loop: def.Loop}
	}
	return set, nil
}

// StaticProvider serves frame counts straight from configured clip tables.
// It has no images; Frame always returns nil.
type StaticProvider map[string]map[config.StateID]config.ClipDef

func (p StaticProvider) Frames(archetype string, state config.StateID) int {
	return p[archetype][state].Frames
}

func (p StaticProvider) Frame(string, config.StateID, int, config.Facing) any {
	return nil
}

// Handle resolves the frame to draw for an actor, clamping indexes past the
// end of a shorter-than-expected sequence to its last frame.
func Handle(p Provider, archetype string, state config.StateID, index int, facing config.Facing) any {
	n := p.Frames(archetype, state)
	if n <= 0 {
		return nil
	}
	if index >= n {
		index = n - 1
	}
	if index < 0 {
		index = 0
	}
	return p.Frame(archetype, state, index, facing)
}
