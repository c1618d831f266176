// raycaster is a first-person grid raycaster with an animated sprite layer
// composited over the 3D view.
//
// Usage:
//
//	raycaster                  - Run the engine
//	raycaster frames           - List the frames the engine would load
//
// Global flags:
//
//	--config <path>    - Config file (default: ./raycaster.yaml, else built-in)
//	--frames <dir>     - Frame directory override
//	--strategy <name>  - toggle or blit
//	--level <name>     - Level in levels/ (basename, .json optional)
//	--log-level <lvl>  - debug, info, warn, error
//	-m                 - Use the first monitor instead of the primary
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/raycaster/config"
)

var (
	flagConfig      string
	flagFrames      string
	flagStrategy    string
	flagLevel       string
	flagLogLevel    string
	flagBaseMonitor bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "raycaster",
	Short:         "Grid raycaster with an animated sprite overlay",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEngine,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagFrames, "frames", "", "Directory holding frame1.png, frame2.png, ...")
	rootCmd.PersistentFlags().StringVar(&flagStrategy, "strategy", "", "Compositing strategy: toggle or blit")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level name in levels/")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVarP(&flagBaseMonitor, "monitor", "m", false, "Use the first monitor instead of the primary")

	rootCmd.AddCommand(framesCmd)
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if flagFrames != "" {
		cfg.Animation.Dir = flagFrames
	}
	if flagStrategy != "" {
		cfg.Animation.Strategy = flagStrategy
	}
	if flagLevel != "" {
		cfg.Level = flagLevel
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "raycaster",
	})
	if cfg.LogLevel != "" {
		lvl, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: log_level %q", config.ErrInvalid, cfg.LogLevel)
		}
		logger.SetLevel(lvl)
	}
	return cfg, logger, nil
}
