package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/raycaster/ecs"
	"github.com/milk9111/raycaster/ecs/component"
)

var ErrNoFrameSource = errors.New("system: no frame source configured")

// AnimationInitSystem loads the frame sequence, creates the playback state and
// shows the first frame. It is registered as a one-shot hook; a load failure
// stops the loop with that error.
type AnimationInitSystem struct{}

func NewAnimationInitSystem() *AnimationInitSystem {
	return &AnimationInitSystem{}
}

func (s *AnimationInitSystem) Update(c *ecs.Context) {
	if c == nil {
		return
	}
	if c.Anim.Load == nil {
		c.Fail(ErrNoFrameSource)
		return
	}
	frames, err := c.Anim.Load()
	if err != nil {
		c.Fail(fmt.Errorf("animation init: %w", err))
		return
	}

	c.Anim.Frames = frames
	c.Anim.State = component.NewAnimation(len(frames), c.Anim.FrameDelay)
	if c.Anim.Compositor != nil {
		c.Anim.Compositor.Show(frames, c.Anim.State.CurrentFrame)
	}
	c.Logger.Info("animation ready", "frames", len(frames), "frame_delay", c.Anim.State.FrameDelay)
}

// AnimationSystem advances playback and lets the compositor render the active
// frame.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(c *ecs.Context) {
	if c == nil || c.Anim.State == nil {
		return
	}
	anim := c.Anim.State
	comp := c.Anim.Compositor

	prev := anim.CurrentFrame
	if anim.Tick() && comp != nil {
		comp.FrameChanged(c.Anim.Frames, prev, anim.CurrentFrame)
	}
	if comp != nil {
		comp.Compose(c.Anim.Frames, anim.CurrentFrame)
	}
}
