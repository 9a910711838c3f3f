package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
)

// minWidth and minHeight fit the smallest board plus the panel.
const (
	minWidth  = 40
	minHeight = 12
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD        - Steer (any other key turns right)
  Enter/Space        - Start, stop, or reset after the game ends
  Ctrl+S             - Save a PNG screenshot to ~/.gridsnake/screenshots
  Esc/Ctrl+C         - Quit

The terminal belongs to the game while it runs, so logs are discarded
unless --log-file is given.

Examples:
  gridsnake play
  gridsnake play --speed slow --seed 42
  gridsnake play --engine walls --log-file /tmp/gridsnake.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	factory, err := engineFactory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if width < minWidth || height < minHeight {
		fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, need at least %dx%d\n", width, height, minWidth, minHeight)
		os.Exit(1)
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Error: could not open log file: %v\n", openErr)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)
	logger.Info("starting", "engine", flagEngine, "config", cfg.Source(), "interval", cfg.Loop.Interval)

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	if runErr := tui.Run(factory, cfg, rt, logger); runErr != nil {
		logger.Error("game exited", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
