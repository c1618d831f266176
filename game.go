package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/raycaster/ecs"
	"github.com/milk9111/raycaster/platform"
)

// Game drives the hook scheduler from ebiten's fixed-rate Update and
// presents the scene and the sprite layer in Draw.
type Game struct {
	ctx       *ecs.Context
	scheduler *ecs.Scheduler
	host      *platform.Host
	painter   *platform.Painter
	hud       *HUD
	// closing reports a window close request.
	closing func() bool
}

func NewGame(ctx *ecs.Context, s *ecs.Scheduler, host *platform.Host, painter *platform.Painter) *Game {
	return &Game{
		ctx:       ctx,
		scheduler: s,
		host:      host,
		painter:   painter,
		hud:       NewHUD(),
		closing:   ebiten.IsWindowBeingClosed,
	}
}

func (g *Game) Update() error {
	if g.closing != nil && g.closing() {
		g.ctx.RequestQuit()
	}
	if g.ctx.QuitRequested() {
		if err := g.ctx.Err(); err != nil {
			return err
		}
		return ebiten.Termination
	}

	g.scheduler.Tick(g.ctx)
	if err := g.ctx.Err(); err != nil {
		return err
	}
	if g.hud != nil {
		g.hud.Update(g.ctx)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Begin(screen)
	if g.ctx.World.Scene != nil {
		g.painter.DrawSurface(g.ctx.World.Scene, 0, 0)
	}
	if g.ctx.Anim.Compositor != nil {
		g.ctx.Anim.Compositor.Present(g.painter)
	}
	if g.hud != nil {
		g.hud.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.host.SetSize(outsideWidth, outsideHeight)
	return g.host.Size()
}
