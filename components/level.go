package components

import (
	"github.com/automoto/brawler/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Source *leveldata.Level
	Name   string
	Width  int
	Height int
}

var Level = donburi.NewComponentType[LevelData]()
