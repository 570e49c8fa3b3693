package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kokaton/internal/config"
	"github.com/vovakirdan/kokaton/internal/core"
	"github.com/vovakirdan/kokaton/internal/games/kokaton"
	"github.com/vovakirdan/kokaton/internal/logging"
	"github.com/vovakirdan/kokaton/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game.

Controls:
  Arrows/WASD  - Move (combine two for diagonals)
  Space        - Fire
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

The game ends when a bomb touches the bird. The final screen stays up
for a moment, then the final score is printed.

Difficulty options:
  easy   - 3 bombs
  normal - 5 bombs
  hard   - 8 bombs

Examples:
  kokaton play
  kokaton play --difficulty easy
  kokaton play --config ./my-kokaton.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the game flags; the root command plays too.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, _ []string) {
	logger, closer, err := logging.New(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, err := loadGameConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cmd.Flags().Changed("fps") {
		cfg.Timing.FPS = flagFPS
	}
	if cfg.Timing.FPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: fps must be positive, got %d\n", cfg.Timing.FPS)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.FPS,
		Seed:     flagSeed,
	}

	game := kokaton.New(cfg)
	state, err := tui.Run(game, rc, tui.Options{
		HoldFrames:    cfg.Input.HoldFrames,
		GameOverDelay: cfg.Timing.GameOverDelay(),
		Logger:        logger,
	})
	if err != nil {
		logger.Error("session failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if state.GameOver {
		fmt.Printf("Game over! Score: %d\n", state.Score)
	} else {
		fmt.Printf("Score: %d\n", state.Score)
	}
}

// loadGameConfig loads the config file and applies the difficulty flag.
func loadGameConfig(logger *log.Logger) (config.KokatonConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Info("config loaded", "source", source)

	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyPreset(&cfg, preset)
		logger.Info("difficulty applied", "preset", preset, "hazards", cfg.Hazards.Count)
	} else if cfg.Difficulty != "" {
		config.ApplyPreset(&cfg, cfg.Difficulty)
	}

	return cfg, nil
}
