package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundSwing
	SoundHit
	SoundDeath
	// Flow sounds
	SoundRespawn
	SoundGameOver
	SoundLevelFinished
)

var soundNames = map[SoundID]string{
	SoundNone:          "none",
	SoundSwing:         "swing",
	SoundHit:           "hit",
	SoundDeath:         "death",
	SoundRespawn:       "respawn",
	SoundGameOver:      "game_over",
	SoundLevelFinished: "level_finished",
}

func (s SoundID) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return "unknown"
}
