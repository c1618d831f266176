package ecs

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/raycaster/ecs/component"
	"github.com/milk9111/raycaster/ecs/render"
	"github.com/milk9111/raycaster/levels"
)

// Platform is the window side of the host. It reports the viewport size and
// switches the cursor between captured and visible.
type Platform interface {
	Size() (w, h int)
	SetCursorCaptured(captured bool)
}

// Key identifies the keys the engine reacts to.
type Key int

const (
	KeyEscape Key = iota
	KeySpace
	KeyW
	KeyA
	KeyS
	KeyD
	KeyLeft
	KeyRight
)

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

// InputSource is the raw keyboard/mouse state for the current tick.
type InputSource interface {
	IsKeyPressed(k Key) bool
	IsKeyJustPressed(k Key) bool
	IsMouseButtonJustPressed(b MouseButton) bool
	CursorPosition() (x, y int)
}

// WorldState is what the world and minimap renderers share.
type WorldState struct {
	Level *levels.Level
	Scene *render.Surface
}

// AnimState groups the sprite animation subsystem.
type AnimState struct {
	State      *component.Animation
	Frames     []*render.Frame
	Compositor render.Compositor
	// FrameDelay is the tick delay the state is created with.
	FrameDelay int
	// Load produces the frame sequence; called by the init hook.
	Load func() ([]*render.Frame, error)
}

// Context is the engine state every hook reads and writes during a tick.
// Hooks run one at a time, so it is mutated in place without locking.
type Context struct {
	Logger   *log.Logger
	Platform Platform
	Input    InputSource
	TickRate int

	World  WorldState
	Player component.Player
	Mouse  component.Mouse
	Anim   AnimState

	ticks uint64
	quit  bool
	err   error
}

// NewContext returns a context with a default logger.
func NewContext(p Platform, in InputSource, logger *log.Logger) *Context {
	if logger == nil {
		logger = log.Default()
	}
	return &Context{Logger: logger, Platform: p, Input: in}
}

// RequestQuit asks the loop to stop after the current tick.
func (c *Context) RequestQuit() {
	if c == nil {
		return
	}
	c.quit = true
}

// Fail stops the loop and records err as the reason.
func (c *Context) Fail(err error) {
	if c == nil || err == nil {
		return
	}
	if c.err == nil {
		c.err = err
	}
	c.quit = true
}

func (c *Context) QuitRequested() bool {
	return c != nil && c.quit
}

// Err returns the error passed to Fail, if any.
func (c *Context) Err() error {
	if c == nil {
		return nil
	}
	return c.err
}

// Ticks returns how many ticks ran so far.
func (c *Context) Ticks() uint64 {
	if c == nil {
		return 0
	}
	return c.ticks
}

// ViewportSize reports the platform size, or the scene size without a
// platform.
func (c *Context) ViewportSize() (int, int) {
	if c == nil {
		return 0, 0
	}
	if c.Platform != nil {
		return c.Platform.Size()
	}
	if c.World.Scene != nil {
		return c.World.Scene.Width, c.World.Scene.Height
	}
	return 0, 0
}
