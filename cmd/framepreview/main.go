// framepreview plays a frame directory on a plain background with either
// compositing strategy. SPACE pauses, ESC quits.
package main

import (
	"errors"
	"flag"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/raycaster/ecs"
	"github.com/milk9111/raycaster/ecs/component"
	"github.com/milk9111/raycaster/ecs/render"
	"github.com/milk9111/raycaster/ecs/system"
	"github.com/milk9111/raycaster/platform"
)

const previewSize = 512

type previewGame struct {
	ctx       *ecs.Context
	scheduler *ecs.Scheduler
	host      *platform.Host
	painter   *platform.Painter
}

func (g *previewGame) Update() error {
	if g.ctx.QuitRequested() {
		if err := g.ctx.Err(); err != nil {
			return err
		}
		return ebiten.Termination
	}
	g.scheduler.Tick(g.ctx)
	return g.ctx.Err()
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})
	g.painter.Begin(screen)
	g.ctx.Anim.Compositor.Present(g.painter)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.host.Size()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code; deferred cleanup runs before exit.
func run(args []string) int {
	fs := flag.NewFlagSet("framepreview", flag.ContinueOnError)
	dir := fs.String("dir", "./frames", "frame directory")
	prefix := fs.String("prefix", "frame", "frame file prefix")
	base := fs.Int("base", 1, "index of the first frame")
	strategy := fs.String("strategy", "toggle", "toggle or blit")
	anchor := fs.String("anchor", "bottom-center", "bottom-left or bottom-center")
	scale := fs.Float64("scale", 1, "blit scale factor")
	fps := fs.Float64("fps", 12, "animation rate")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "framepreview"})

	s, err := render.ParseStrategy(*strategy)
	if err != nil {
		logger.Error("bad strategy", "err", err)
		return 2
	}
	a, err := render.ParseAnchor(*anchor)
	if err != nil {
		logger.Error("bad anchor", "err", err)
		return 2
	}

	host := platform.NewHost(previewSize, previewSize)
	images := platform.NewFrameImages()
	painter := platform.NewPainter(images)
	defer painter.Close()

	comp, err := render.New(s, host, render.Options{Anchor: a, Scale: *scale}, logger)
	if err != nil {
		logger.Error("compositor", "err", err)
		return 1
	}

	opts := render.DefaultLoadOptions(*dir)
	opts.Prefix = *prefix
	opts.BaseIndex = *base

	ctx := ecs.NewContext(host, host, logger)
	ctx.TickRate = ebiten.DefaultTPS
	ctx.Anim.Compositor = comp
	ctx.Anim.FrameDelay = component.FrameDelayFor(float64(ctx.TickRate), *fps)
	ctx.Anim.Load = func() ([]*render.Frame, error) {
		return render.LoadDir(opts, images, logger)
	}

	sched := ecs.NewScheduler()
	for _, err := range []error{
		sched.RegisterOnce("animation-init", system.NewAnimationInitSystem()),
		sched.Register("animation-tick", system.NewAnimationSystem()),
		sched.Register("input-keys", system.NewKeySystem()),
	} {
		if err != nil {
			logger.Error("register hooks", "err", err)
			return 1
		}
	}
	if err := sched.Install(ctx); err != nil {
		logger.Error("install hooks", "err", err)
		return 1
	}

	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Frame Preview")
	g := &previewGame{ctx: ctx, scheduler: sched, host: host, painter: painter}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("preview stopped", "err", err)
		return 1
	}
	return 0
}
