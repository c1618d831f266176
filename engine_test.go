package main

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/raycaster/config"
	"github.com/milk9111/raycaster/ecs"
	"github.com/milk9111/raycaster/ecs/render"
	"github.com/milk9111/raycaster/levels"
)

type testHost struct {
	w, h     int
	captured bool
}

func (h *testHost) Size() (int, int)                              { return h.w, h.h }
func (h *testHost) SetCursorCaptured(on bool)                     { h.captured = on }
func (h *testHost) IsKeyPressed(k ecs.Key) bool                   { return false }
func (h *testHost) IsKeyJustPressed(k ecs.Key) bool               { return false }
func (h *testHost) IsMouseButtonJustPressed(ecs.MouseButton) bool { return false }
func (h *testHost) CursorPosition() (int, int)                    { return 0, 0 }

func writeFrame(t *testing.T, dir, name string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

// newTestGame wires the engine the way runEngine does, minus the window.
func newTestGame(t *testing.T, cfg *config.Config) (*Game, *testHost) {
	t.Helper()
	lvl, err := levels.LoadLevelFromFS("default")
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	host := &testHost{w: 64, h: 48}
	ctx, err := newEngineContext(cfg, lvl, host, nil, log.New(io.Discard))
	if err != nil {
		t.Fatalf("newEngineContext: %v", err)
	}
	s, err := buildScheduler(cfg, nil)
	if err != nil {
		t.Fatalf("buildScheduler: %v", err)
	}
	if err := s.Install(ctx); err != nil {
		t.Fatalf("Install: %v", err)
	}
	return &Game{ctx: ctx, scheduler: s, closing: func() bool { return false }}, host
}

func TestBuildSchedulerOrder(t *testing.T) {
	cases := []struct {
		name    string
		minimap bool
		want    []string
	}{
		{
			name:    "minimap_enabled",
			minimap: true,
			want: []string{"world-render", "minimap", "movement", "animation-init", "animation-tick",
				"input-cursor", "input-button", "input-keys", "config-reload"},
		},
		{
			name:    "minimap_disabled",
			minimap: false,
			want: []string{"world-render", "movement", "animation-init", "animation-tick",
				"input-cursor", "input-button", "input-keys", "config-reload"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Minimap.Enabled = c.minimap
			s, err := buildScheduler(cfg, nil)
			if err != nil {
				t.Fatalf("buildScheduler: %v", err)
			}
			if got := s.Names(); !slices.Equal(got, c.want) {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestUpdateReturnsZeroFramesError(t *testing.T) {
	cfg := config.Default()
	dir := t.TempDir()
	cfg.Animation.Dir = dir
	g, _ := newTestGame(t, cfg)

	err := g.Update()
	if !errors.Is(err, render.ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}
	var le *render.LoadError
	if !errors.As(err, &le) || le.Dir != dir {
		t.Fatalf("error should name the frame directory, got %v", err)
	}
	if err := g.Update(); !errors.Is(err, render.ErrNoFrames) {
		t.Fatalf("later updates should keep returning the failure, got %v", err)
	}
	if g.ctx.Ticks() != 1 {
		t.Fatalf("no tick should run after the failure, got %d", g.ctx.Ticks())
	}
}

func TestUpdateTerminates(t *testing.T) {
	cases := []struct {
		name string
		stop func(g *Game)
	}{
		{"quit_requested", func(g *Game) { g.ctx.RequestQuit() }},
		{"window_closed", func(g *Game) { g.closing = func() bool { return true } }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Animation.Dir = t.TempDir()
			writeFrame(t, cfg.Animation.Dir, "frame1.png")
			writeFrame(t, cfg.Animation.Dir, "frame2.png")
			g, host := newTestGame(t, cfg)

			if err := g.Update(); err != nil {
				t.Fatalf("first update: %v", err)
			}
			if g.ctx.Anim.State == nil || g.ctx.Anim.State.TotalFrames != 2 {
				t.Fatalf("animation not initialized: %+v", g.ctx.Anim.State)
			}
			if !host.captured {
				t.Fatalf("cursor should be captured at install")
			}

			c.stop(g)
			if err := g.Update(); !errors.Is(err, ebiten.Termination) {
				t.Fatalf("expected ebiten.Termination, got %v", err)
			}
			if g.ctx.Ticks() != 1 {
				t.Fatalf("no tick should run once stopping, got %d", g.ctx.Ticks())
			}
		})
	}
}
