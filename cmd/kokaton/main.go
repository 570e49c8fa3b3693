// kokaton is a dodge-and-shoot arcade game for the terminal.
//
// Usage:
//
//	kokaton                  - Play with the default configuration
//	kokaton play             - Play a game
//	kokaton config           - Print the effective configuration
//	kokaton version          - Print the version
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate from the config
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file (default: discarded)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kokaton",
	Short: "Fight! Kokaton - dodge and shoot in your terminal",
	Long: `Fight! Kokaton is a terminal arcade game. Steer the bird around the
field, dodge the bouncing bombs and shoot them down for points.
Touching a bomb ends the game.

Available commands:
  play     - Start a game (default)
  config   - Print the effective configuration
  version  - Print the version

Examples:
  kokaton
  kokaton play --difficulty hard
  kokaton play --seed 42 --log-file ./kokaton.log
  kokaton config --default > ~/.kokaton/configs/kokaton.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
