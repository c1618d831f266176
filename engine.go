package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/raycaster/config"
	"github.com/milk9111/raycaster/ecs"
	"github.com/milk9111/raycaster/ecs/component"
	"github.com/milk9111/raycaster/ecs/render"
	"github.com/milk9111/raycaster/ecs/system"
	"github.com/milk9111/raycaster/levels"
	"github.com/milk9111/raycaster/platform"
)

func runEngine(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	lvl, err := levels.Load(cfg.Level)
	if err != nil {
		return fmt.Errorf("load level %q: %w", cfg.Level, err)
	}

	host := platform.NewHost(cfg.Window.Width, cfg.Window.Height)
	images := platform.NewFrameImages()
	painter := platform.NewPainter(images)
	defer painter.Close()

	ctx, err := newEngineContext(cfg, lvl, host, images, logger)
	if err != nil {
		return err
	}

	var watcher *config.Watcher
	if cfg.Source != "" {
		watcher, err = config.NewWatcher(cfg.Source)
		if err != nil {
			logger.Warn("config hot reload disabled", "path", cfg.Source, "err", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	scheduler, err := buildScheduler(cfg, watcher)
	if err != nil {
		return err
	}
	if err := scheduler.Install(ctx); err != nil {
		return err
	}
	logger.Debug("hooks installed", "order", scheduler.Names())

	if flagBaseMonitor {
		if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
			ebiten.SetMonitor(monitors[0])
		}
	}
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowClosingHandled(true)

	game := NewGame(ctx, scheduler, host, painter)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("engine stopped", "err", err)
		return err
	}
	logger.Info("engine stopped", "ticks", ctx.Ticks())
	return nil
}

// engineHost is the window side the engine context needs.
type engineHost interface {
	ecs.Platform
	ecs.InputSource
}

// newEngineContext builds the shared tick state: level, scene, player, the
// compositor and the frame source used by the init hook.
func newEngineContext(cfg *config.Config, lvl *levels.Level, host engineHost, reg render.Registry, logger *log.Logger) (*ecs.Context, error) {
	ctx := ecs.NewContext(host, host, logger)
	ctx.TickRate = cfg.TickRate
	ctx.World.Level = lvl
	ctx.World.Scene = render.NewSurface(host.Size())

	sp := lvl.Spawn()
	ctx.Player = component.Player{
		X:         sp.X,
		Y:         sp.Y,
		Angle:     sp.Angle,
		FOV:       cfg.FOVRadians(),
		MoveSpeed: cfg.Player.MoveSpeed,
		TurnSpeed: cfg.Player.TurnSpeed,
		Radius:    cfg.Player.Radius,
	}
	ctx.Mouse.Sensitivity = cfg.Player.MouseSensitivity

	strategy, opts := cfg.CompositorOptions()
	comp, err := render.New(strategy, host, opts, logger)
	if err != nil {
		return nil, err
	}
	ctx.Anim.Compositor = comp
	ctx.Anim.FrameDelay = cfg.FrameDelay()

	loadOpts := cfg.LoadOptions()
	ctx.Anim.Load = func() ([]*render.Frame, error) {
		return render.LoadDir(loadOpts, reg, logger)
	}

	logger.Info("engine configured",
		"level", lvl.Name,
		"frames", loadOpts.Dir,
		"strategy", strategy,
		"anchor", opts.Anchor,
		"tps", cfg.TickRate,
		"frame_delay", ctx.Anim.FrameDelay,
	)
	return ctx, nil
}

// buildScheduler registers the hooks in run order. The world render comes
// first so the sprite layer and minimap draw over it.
func buildScheduler(cfg *config.Config, watcher *config.Watcher) (*ecs.Scheduler, error) {
	s := ecs.NewScheduler()

	type entry struct {
		name   string
		system ecs.System
		once   bool
	}
	entries := []entry{
		{name: "world-render", system: system.NewRaycastSystem()},
	}
	if cfg.Minimap.Enabled {
		entries = append(entries, entry{name: "minimap", system: system.NewMinimapSystem(cfg.Minimap.Tile, cfg.Minimap.Margin)})
	}
	entries = append(entries,
		entry{name: "movement", system: system.NewMovementSystem()},
		entry{name: "animation-init", system: system.NewAnimationInitSystem(), once: true},
		entry{name: "animation-tick", system: system.NewAnimationSystem()},
		entry{name: "input-cursor", system: system.NewCursorSystem()},
		entry{name: "input-button", system: system.NewButtonSystem()},
		entry{name: "input-keys", system: system.NewKeySystem()},
		entry{name: "config-reload", system: system.NewReloadSystem(watcher)},
	)

	for _, e := range entries {
		register := s.Register
		if e.once {
			register = s.RegisterOnce
		}
		if err := register(e.name, e.system); err != nil {
			return nil, fmt.Errorf("register hook %q: %w", e.name, err)
		}
	}
	return s, nil
}
