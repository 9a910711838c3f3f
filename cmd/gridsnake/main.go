// gridsnake is a tick-driven snake game played in the terminal.
//
// Usage:
//
//	gridsnake play           - Play in the terminal
//	gridsnake frame          - Run headless and export a frame as PNG
//	gridsnake config         - Print the effective configuration
//	gridsnake engines        - List available engines
//
// Global flags:
//
//	--config <path>   - Config file (default: search ~/.gridsnake, ./configs)
//	--engine <id>     - Simulation engine (default: wrap)
//	--speed <preset>  - Tick speed: slow, normal, fast
//	--seed <value>    - RNG seed for reproducible games
//	--debug           - Verbose logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/loop"
	"github.com/vovakirdan/gridsnake/internal/registry"

	// Import engines to register them
	_ "github.com/vovakirdan/gridsnake/internal/games/snake"
)

var (
	// Global flags
	flagConfig string
	flagEngine string
	flagSpeed  string
	flagSeed   int64
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "gridsnake - snake on a grid, in your terminal",
	Long: `gridsnake is a tick-driven snake game for the terminal.

Available commands:
  play     - Play in the terminal
  frame    - Run headless for a number of ticks and export the frame
  config   - Print the effective configuration
  engines  - List available simulation engines

Examples:
  gridsnake play
  gridsnake play --engine walls --speed fast
  gridsnake frame --ticks 20 --out frame.png
  gridsnake config > ~/.gridsnake/config.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagEngine, "engine", "wrap", "Simulation engine (see 'gridsnake engines')")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(enginesCmd)
}

// loadConfig loads the config and applies the --speed preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplySpeedPreset(&cfg, config.SpeedPreset(flagSpeed)); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// engineFactory returns the factory selected by --engine.
func engineFactory() (loop.EngineFactory, error) {
	f, err := registry.Factory(flagEngine)
	if err != nil {
		return nil, fmt.Errorf("%w (run 'gridsnake engines' to list them)", err)
	}
	return f, nil
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridsnake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
