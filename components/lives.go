package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives    int
	MaxLives int
}

var Lives = donburi.NewComponentType[LivesData]()

// Spend uses one life and reports whether the player may respawn.
func (l *LivesData) Spend() bool {
	if l.Lives <= 0 {
		return false
	}
	l.Lives--
	return l.Lives > 0
}
