// Package platform binds the engine to ebiten: window, cursor, input and
// GPU images for frames and surfaces.
package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/raycaster/common"
	"github.com/milk9111/raycaster/ecs"
)

// Host implements ecs.Platform and ecs.InputSource on top of ebiten. The
// viewport follows the layout size reported by the game.
type Host struct {
	w, h int
}

// NewHost starts with the given size, or the base resolution when it is not
// positive.
func NewHost(w, h int) *Host {
	if w <= 0 || h <= 0 {
		w, h = common.BaseWidth, common.BaseHeight
	}
	return &Host{w: w, h: h}
}

func (h *Host) Size() (int, int) {
	return h.w, h.h
}

// SetSize records the layout size; ebiten calls Layout before each frame.
func (h *Host) SetSize(w, hh int) {
	if w > 0 && hh > 0 {
		h.w, h.h = w, hh
	}
}

func (h *Host) SetCursorCaptured(captured bool) {
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

var keyMap = map[ecs.Key]ebiten.Key{
	ecs.KeyEscape: ebiten.KeyEscape,
	ecs.KeySpace:  ebiten.KeySpace,
	ecs.KeyW:      ebiten.KeyW,
	ecs.KeyA:      ebiten.KeyA,
	ecs.KeyS:      ebiten.KeyS,
	ecs.KeyD:      ebiten.KeyD,
	ecs.KeyLeft:   ebiten.KeyArrowLeft,
	ecs.KeyRight:  ebiten.KeyArrowRight,
}

var buttonMap = map[ecs.MouseButton]ebiten.MouseButton{
	ecs.MouseButtonLeft:  ebiten.MouseButtonLeft,
	ecs.MouseButtonRight: ebiten.MouseButtonRight,
}

func (h *Host) IsKeyPressed(k ecs.Key) bool {
	key, ok := keyMap[k]
	return ok && ebiten.IsKeyPressed(key)
}

func (h *Host) IsKeyJustPressed(k ecs.Key) bool {
	key, ok := keyMap[k]
	return ok && inpututil.IsKeyJustPressed(key)
}

func (h *Host) IsMouseButtonJustPressed(b ecs.MouseButton) bool {
	btn, ok := buttonMap[b]
	return ok && inpututil.IsMouseButtonJustPressed(btn)
}

func (h *Host) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}
