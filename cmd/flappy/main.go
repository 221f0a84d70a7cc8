// flappy is a Flappy Bird-style arcade game for the desktop and the terminal.
//
// Usage:
//
//	flappy                       - Play in a window
//	flappy term                  - Play in the terminal
//	flappy serve                 - Start SSH server for remote play
//	flappy replays               - Browse and play back recorded sessions
//	flappy replays show <id>     - Re-simulate a recording and print a summary
//	flappy replays rm <id>       - Delete a recording
//	flappy config                - Print the default configuration
//
// Global flags:
//
//	--config <path> - Game config YAML (default: search ~/.flappy, ./configs)
//	--fps <rate>    - Override the target frame rate
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Replay journal path (default: ~/.flappy/replays.db)
//	--no-record     - Do not record the session
//	--debug         - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagNoRecord bool
	flagDebug    bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly through the gaps",
	Long: `Flappy is a side-scrolling arcade game. Press space to flap and steer
the bird through the gaps between the pipes. Touching a pipe or the ground
starts the run over.

With no command the game opens in a window.

Controls:
  Space   - Flap
  P       - Pause

Examples:
  flappy
  flappy --seed 42
  flappy term
  flappy serve --ssh :2222
  flappy replays`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
	RunE: runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Target frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/replays.db", "Path to replay journal")
	rootCmd.PersistentFlags().BoolVar(&flagNoRecord, "no-record", false, "Do not record the session")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies flag overrides.
func loadConfig() (config.FlappyConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Screen.TargetFPS = flagFPS
	}
	logger.Debug("config loaded",
		"width", cfg.Screen.Width,
		"height", cfg.Screen.Height,
		"fps", cfg.Screen.TargetFPS,
		"pipes", cfg.Obstacles.Count,
	)
	return cfg, nil
}

// openRecordingStore opens the journal for recording. Recording is
// optional: failures are logged and play goes on without it.
func openRecordingStore() *storage.Store {
	if flagNoRecord || flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay journal, session will not be recorded", "error", err)
		return nil
	}
	return store
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openRecordingStore()
	if store != nil {
		defer store.Close()
	}

	if err := window.Run(window.Options{
		Config: cfg,
		Seed:   flagSeed,
		Store:  store,
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
