package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play the game in the current terminal.

Controls:
  Space/Up/W  - Flap
  P/Esc       - Pause
  Ctrl+S      - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C    - Quit

Examples:
  flappy term
  flappy term --seed 7 --fps 30
  flappy term --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openRecordingStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	if err := tui.Run(tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		Width:  width,
		Height: height,
		Store:  store,
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
