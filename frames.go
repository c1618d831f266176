package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/raycaster/ecs/render"
)

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "List the animation frames that would be loaded",
	Long: `Scans the configured frame directory the same way the engine does and
prints each frame with its size. Exits non-zero when no frame is found.`,
	RunE: runFrames,
}

func runFrames(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	frames, err := render.LoadDir(cfg.LoadOptions(), nil, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-5s  %-9s  %s\n", "Index", "Size", "Path")
	for _, f := range frames {
		fmt.Fprintf(out, "  %-5d  %-9s  %s\n", f.Index, fmt.Sprintf("%dx%d", f.Width, f.Height), f.Path)
	}
	fmt.Fprintf(out, "\n%d frames, %d ticks per frame at %d TPS\n", len(frames), cfg.FrameDelay(), cfg.TickRate)
	return nil
}
