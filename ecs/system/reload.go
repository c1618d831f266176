package system

import (
	"github.com/milk9111/raycaster/config"
	"github.com/milk9111/raycaster/ecs"
	"github.com/milk9111/raycaster/ecs/render"
)

type scaler interface {
	SetScale(scale float64)
}

type anchorer interface {
	SetAnchor(a render.Anchor)
}

// ReloadSystem applies config edits between ticks: animation cadence, blit
// scale and anchor. It never blocks; pending file events are drained each
// tick.
type ReloadSystem struct {
	events <-chan string
	errs   <-chan error
	load   func(path string) (*config.Config, error)
}

// NewReloadSystem reads from a config watcher. A nil watcher makes the hook a
// no-op.
func NewReloadSystem(w *config.Watcher) *ReloadSystem {
	s := &ReloadSystem{load: config.LoadFile}
	if w != nil {
		s.events = w.Events
		s.errs = w.Errors
	}
	return s
}

func (s *ReloadSystem) Update(c *ecs.Context) {
	if s == nil || c == nil {
		return
	}
	for {
		select {
		case path, ok := <-s.events:
			if !ok {
				s.events = nil
				return
			}
			s.reload(c, path)
		case err, ok := <-s.errs:
			if !ok {
				s.errs = nil
				continue
			}
			c.Logger.Warn("config watcher error", "err", err)
		default:
			return
		}
	}
}

func (s *ReloadSystem) reload(c *ecs.Context, path string) {
	cfg, err := s.load(path)
	if err != nil {
		c.Logger.Warn("config reload rejected", "path", path, "err", err)
		return
	}
	Apply(c, cfg)
	c.Logger.Info("config reloaded", "path", path, "frame_delay", c.Anim.FrameDelay)
}

// Apply pushes the live-tunable parts of cfg into the running engine.
func Apply(c *ecs.Context, cfg *config.Config) {
	if c == nil || cfg == nil {
		return
	}
	c.Anim.FrameDelay = cfg.FrameDelay()
	if c.Anim.State != nil {
		c.Anim.State.SetFrameDelay(c.Anim.FrameDelay)
	}

	_, opts := cfg.CompositorOptions()
	if sc, ok := c.Anim.Compositor.(scaler); ok {
		sc.SetScale(opts.Scale)
	}
	if an, ok := c.Anim.Compositor.(anchorer); ok {
		an.SetAnchor(opts.Anchor)
	}
	c.Mouse.Sensitivity = cfg.Player.MouseSensitivity
}
