package component

// Animation is the playback state of the frame sequence.
//
// Cadence is counted in loop ticks, not wall-clock time: the frame advances
// every FrameDelay ticks, so the visible rate is tickRate / FrameDelay and
// follows the host tick rate if that changes.
type Animation struct {
	TotalFrames  int
	CurrentFrame int
	Counter      int
	FrameDelay   int
	Playing      bool
}

// NewAnimation returns a playing animation positioned on the first frame.
func NewAnimation(totalFrames, frameDelay int) *Animation {
	if totalFrames < 0 {
		totalFrames = 0
	}
	return &Animation{
		TotalFrames: totalFrames,
		FrameDelay:  max(frameDelay, 1),
		Playing:     true,
	}
}

// FrameDelayFor converts an animation rate into a tick delay.
func FrameDelayFor(tickRate, fps float64) int {
	if tickRate <= 0 || fps <= 0 {
		return 1
	}
	return max(int(tickRate/fps), 1)
}

// Tick advances the sub-tick counter and reports whether the active frame
// changed.
func (a *Animation) Tick() bool {
	if a == nil || !a.Playing || a.TotalFrames == 0 {
		return false
	}
	a.Counter++
	if a.Counter < a.FrameDelay {
		return false
	}
	a.Counter = 0
	a.CurrentFrame = (a.CurrentFrame + 1) % a.TotalFrames
	return true
}

// Toggle flips between playing and paused. The counter restarts so resuming
// never produces a shortened first frame.
func (a *Animation) Toggle() {
	if a == nil {
		return
	}
	a.Playing = !a.Playing
	a.Counter = 0
}

func (a *Animation) Pause() {
	if a == nil {
		return
	}
	a.Playing = false
	a.Counter = 0
}

func (a *Animation) Resume() {
	if a == nil {
		return
	}
	a.Playing = true
	a.Counter = 0
}

// SetFrameDelay changes the cadence, keeping Counter below the new delay.
func (a *Animation) SetFrameDelay(delay int) {
	if a == nil {
		return
	}
	a.FrameDelay = max(delay, 1)
	if a.Counter >= a.FrameDelay {
		a.Counter = 0
	}
}
