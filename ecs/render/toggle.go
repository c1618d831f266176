package render

import "github.com/charmbracelet/log"

// Sprite is a resident drawable for one frame.
type Sprite struct {
	Frame   *Frame
	X, Y    int
	Enabled bool
}

// ToggleCompositor keeps one drawable per frame and swaps which one is
// enabled when the frame changes. O(1) per tick; every frame stays resident.
type ToggleCompositor struct {
	viewport Viewport
	anchor   Anchor
	sprites  []Sprite
	visible  int
	viewW    int
	viewH    int
	skips    skipLog
}

func NewToggleCompositor(vp Viewport, anchor Anchor, logger *log.Logger) *ToggleCompositor {
	return &ToggleCompositor{
		viewport: vp,
		anchor:   anchor,
		visible:  -1,
		skips:    newSkipLog(logger, StrategyToggle),
	}
}

// Sprites exposes the drawables, in frame order.
func (t *ToggleCompositor) Sprites() []Sprite {
	if t == nil {
		return nil
	}
	return t.sprites
}

// Visible returns the index of the enabled sprite, or -1.
func (t *ToggleCompositor) Visible() int {
	if t == nil {
		return -1
	}
	return t.visible
}

func (t *ToggleCompositor) SetAnchor(a Anchor) {
	if t == nil {
		return
	}
	t.anchor = a
	t.place(t.visible)
}

func (t *ToggleCompositor) Show(frames []*Frame, current int) {
	if t == nil {
		return
	}
	if len(frames) == 0 {
		t.skips.skip("no frames")
		return
	}
	t.sprites = make([]Sprite, len(frames))
	for i, f := range frames {
		t.sprites[i] = Sprite{Frame: f}
	}
	t.visible = -1
	t.viewW, t.viewH = t.viewportSize()
	t.enable(current)
}

func (t *ToggleCompositor) FrameChanged(frames []*Frame, prev, next int) {
	if t == nil {
		return
	}
	if len(t.sprites) != len(frames) {
		t.Show(frames, next)
		return
	}
	if prev >= 0 && prev < len(t.sprites) {
		t.sprites[prev].Enabled = false
	}
	t.enable(next)
}

// Compose only re-anchors the visible sprite when the viewport was resized.
func (t *ToggleCompositor) Compose(frames []*Frame, current int) {
	if t == nil {
		return
	}
	if len(t.sprites) == 0 {
		t.skips.skip("no sprites")
		return
	}
	w, h := t.viewportSize()
	if w == t.viewW && h == t.viewH {
		return
	}
	t.viewW, t.viewH = w, h
	t.place(t.visible)
}

func (t *ToggleCompositor) Present(p Painter) {
	if t == nil || p == nil {
		return
	}
	for i := range t.sprites {
		s := &t.sprites[i]
		if s.Enabled && s.Frame != nil {
			p.DrawFrame(s.Frame, s.X, s.Y)
		}
	}
}

func (t *ToggleCompositor) enable(i int) {
	if t.viewport == nil {
		t.skips.skip("no viewport")
		t.visible = -1
		return
	}
	if i < 0 || i >= len(t.sprites) || t.sprites[i].Frame == nil {
		t.skips.skip("no active frame")
		t.visible = -1
		return
	}
	if t.visible >= 0 && t.visible < len(t.sprites) && t.visible != i {
		t.sprites[t.visible].Enabled = false
	}
	t.sprites[i].Enabled = true
	t.visible = i
	t.place(i)
}

func (t *ToggleCompositor) place(i int) {
	if i < 0 || i >= len(t.sprites) || t.sprites[i].Frame == nil {
		return
	}
	s := &t.sprites[i]
	s.X, s.Y = t.anchor.Origin(t.viewW, t.viewH, s.Frame.Width, s.Frame.Height)
}

func (t *ToggleCompositor) viewportSize() (int, int) {
	if t.viewport == nil {
		return 0, 0
	}
	return t.viewport.Size()
}
