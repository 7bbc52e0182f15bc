package config

// ClipDef describes one animation clip: how many frames it has, how long each
// frame is held and whether it wraps around.
type ClipDef struct {
	Frames        int  `yaml:"frames"`
	TicksPerFrame int  `yaml:"ticks_per_frame"`
	Loop          bool `yaml:"loop"`
}

// CharacterAnimations maps a sprite sheet key (e.g., "player")
// to its clip definitions per state.
var CharacterAnimations map[string]map[StateID]ClipDef

func defaultAnimations() map[string]map[StateID]ClipDef {
	tpf := Animation.DefaultTicksPerFrame
	return map[string]map[StateID]ClipDef{
		"player": {
			Idle:         {Frames: 6, TicksPerFrame: Animation.IdleTicksPerFrame, Loop: true},
			Locomotion:   {Frames: 8, TicksPerFrame: tpf, Loop: true},
			Rising:       {Frames: 8, TicksPerFrame: tpf},
			Falling:      {Frames: 6, TicksPerFrame: tpf},
			Attacking:    {Frames: 6, TicksPerFrame: tpf},
			TakingDamage: {Frames: 4, TicksPerFrame: tpf},
			Dead:         {Frames: 12, TicksPerFrame: tpf},
		},
		// The mushroom sheet has no jump frames; its walk cycle stands in for
		// idle and both aerial states.
		"mushroom": {
			Idle:         {Frames: 4, TicksPerFrame: tpf, Loop: true},
			Locomotion:   {Frames: 4, TicksPerFrame: tpf, Loop: true},
			Rising:       {Frames: 4, TicksPerFrame: tpf},
			Falling:      {Frames: 4, TicksPerFrame: tpf},
			Attacking:    {Frames: 8, TicksPerFrame: tpf},
			TakingDamage: {Frames: 4, TicksPerFrame: tpf},
			Dead:         {Frames: 4, TicksPerFrame: tpf},
		},
	}
}
