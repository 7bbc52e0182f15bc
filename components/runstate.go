package components

import "github.com/yohamta/donburi"

// RunStateData is the singleton outcome of the current run.
type RunStateData struct {
	Tick          int
	Paused        bool
	Over          bool // the player ran out of lives
	LevelFinished bool
}

var RunState = donburi.NewComponentType[RunStateData]()

// Done reports whether the run has stopped accepting gameplay.
func (r *RunStateData) Done() bool {
	return r.Over || r.LevelFinished
}
