package system

import (
	"github.com/milk9111/raycaster/common"
	"github.com/milk9111/raycaster/ecs"
)

// CursorSystem turns cursor movement into view rotation while the cursor is
// captured. Installing it captures the cursor.
type CursorSystem struct{}

func NewCursorSystem() *CursorSystem {
	return &CursorSystem{}
}

func (s *CursorSystem) Install(c *ecs.Context) error {
	if c.Platform != nil {
		c.Platform.SetCursorCaptured(true)
	}
	c.Mouse.Captured = true
	c.Mouse.Reset()
	return nil
}

func (s *CursorSystem) Update(c *ecs.Context) {
	if c == nil || c.Input == nil {
		return
	}
	x, y := c.Input.CursorPosition()
	dx, _ := c.Mouse.Delta(x, y)
	if !c.Mouse.Captured || dx == 0 {
		return
	}
	c.Player.Angle = common.WrapAngle(c.Player.Angle + float64(dx)*c.Mouse.Sensitivity)
}

// ButtonSystem toggles cursor capture on left click.
type ButtonSystem struct{}

func NewButtonSystem() *ButtonSystem {
	return &ButtonSystem{}
}

func (s *ButtonSystem) Update(c *ecs.Context) {
	if c == nil || c.Input == nil {
		return
	}
	if !c.Input.IsMouseButtonJustPressed(ecs.MouseButtonLeft) {
		return
	}
	c.Mouse.Captured = !c.Mouse.Captured
	c.Mouse.Reset()
	if c.Platform != nil {
		c.Platform.SetCursorCaptured(c.Mouse.Captured)
	}
	c.Logger.Debug("cursor capture toggled", "captured", c.Mouse.Captured)
}

// KeySystem maps keys: ESC quits, SPACE toggles the animation, WASD moves and
// the arrow keys turn.
type KeySystem struct{}

func NewKeySystem() *KeySystem {
	return &KeySystem{}
}

func (s *KeySystem) Update(c *ecs.Context) {
	if c == nil || c.Input == nil {
		return
	}
	in := c.Input

	if in.IsKeyJustPressed(ecs.KeyEscape) {
		c.Logger.Info("quit requested")
		c.RequestQuit()
	}
	if in.IsKeyJustPressed(ecs.KeySpace) && c.Anim.State != nil {
		c.Anim.State.Toggle()
		c.Logger.Debug("animation toggled", "playing", c.Anim.State.Playing, "frame", c.Anim.State.CurrentFrame)
	}

	p := &c.Player
	p.ClearIntents()
	if in.IsKeyPressed(ecs.KeyW) {
		p.Forward++
	}
	if in.IsKeyPressed(ecs.KeyS) {
		p.Forward--
	}
	if in.IsKeyPressed(ecs.KeyD) {
		p.Strafe++
	}
	if in.IsKeyPressed(ecs.KeyA) {
		p.Strafe--
	}
	if in.IsKeyPressed(ecs.KeyRight) {
		p.Turn++
	}
	if in.IsKeyPressed(ecs.KeyLeft) {
		p.Turn--
	}
}
