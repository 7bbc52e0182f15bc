package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/brawler/shared/leveldata"
)

// LevelsDir is the directory inside LevelFS that holds the TMX maps.
const LevelsDir = "levels"

//go:embed all:levels
var LevelFS embed.FS

// LoadLevel parses one embedded TMX map, e.g. "levels/arena.tmx".
func LoadLevel(path string) (*leveldata.Level, error) {
	level, err := leveldata.Load(LevelFS, path)
	if err != nil {
		return nil, fmt.Errorf("embedded level: %w", err)
	}
	return level, nil
}

// MustLoadLevels loads every embedded level, in name order.
func MustLoadLevels() []*leveldata.Level {
	levels, names, err := leveldata.LoadAll(LevelFS, LevelsDir)
	if err != nil {
		panic(fmt.Sprintf("load embedded levels: %v", err))
	}
	out := make([]*leveldata.Level, 0, len(names))
	for _, name := range names {
		out = append(out, levels[name])
	}
	return out
}
