package platform

import (
	"testing"

	"github.com/milk9111/raycaster/ecs"
)

func TestEveryEngineKeyIsMapped(t *testing.T) {
	keys := []ecs.Key{
		ecs.KeyEscape, ecs.KeySpace, ecs.KeyW, ecs.KeyA,
		ecs.KeyS, ecs.KeyD, ecs.KeyLeft, ecs.KeyRight,
	}
	seen := make(map[any]bool)
	for _, k := range keys {
		ek, ok := keyMap[k]
		if !ok {
			t.Fatalf("key %d has no ebiten mapping", k)
		}
		if seen[ek] {
			t.Fatalf("ebiten key %v mapped twice", ek)
		}
		seen[ek] = true
	}
	if _, ok := buttonMap[ecs.MouseButtonLeft]; !ok {
		t.Fatalf("left button unmapped")
	}
}

func TestHostSize(t *testing.T) {
	if w, hh := NewHost(0, 0).Size(); w != 1280 || hh != 720 {
		t.Fatalf("expected base resolution, got %dx%d", w, hh)
	}

	h := NewHost(640, 480)
	h.SetSize(0, 100)
	if w, hh := h.Size(); w != 640 || hh != 480 {
		t.Fatalf("zero size should be ignored, got %dx%d", w, hh)
	}
	h.SetSize(800, 600)
	if w, hh := h.Size(); w != 800 || hh != 600 {
		t.Fatalf("expected 800x600, got %dx%d", w, hh)
	}
}
