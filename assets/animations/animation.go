package animations

// Clip is an ordered run of animation frames. It holds no playback state:
// the frame shown is a pure function of the ticks spent in the owning state.
type Clip struct {
	Frames        int
	TicksPerFrame int  // how many ticks before next frame
	Loop          bool // wrap around instead of holding the last frame
}

// FrameIndex maps ticks elapsed in a state to a frame of this clip. Looping
// clips wrap; the others hold on their last frame. The result is always a
// valid index, or 0 for a degenerate clip.
func (c Clip) FrameIndex(ticks int) int {
	if c.Frames <= 0 || ticks < 0 {
		return 0
	}
	tpf := c.TicksPerFrame
	if tpf <= 0 {
		tpf = 1
	}
	frame := ticks / tpf
	if c.Loop {
		return frame % c.Frames
	}
	if frame > c.Frames-1 {
		return c.Frames - 1
	}
	return frame
}

// Duration is the number of ticks needed to show every frame once.
func (c Clip) Duration() int {
	return c.Frames * c.TicksPerFrame
}

// Complete reports whether a non-looping playback of ticks has shown
// every frame for its full hold time.
func (c Clip) Complete(ticks int) bool {
	return ticks >= c.Duration()
}
