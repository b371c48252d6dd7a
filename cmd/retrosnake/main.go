// retrosnake is a terminal snake game with power-ups, played locally or
// over SSH.
//
// Usage:
//
//	retrosnake play [mode]   - Play a mode (default: snake)
//	retrosnake menu          - Interactive mode picker
//	retrosnake modes         - List available modes
//	retrosnake serve         - Start SSH server for remote play
//	retrosnake scores <mode> - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.retrosnake/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/retro-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "retrosnake",
	Short: "Retro Snake - terminal snake with power-ups",
	Long: `Retro Snake is a terminal snake game: eat food, grab power-ups,
and climb the speed levels without hitting a wall or yourself.

Available commands:
  modes    - Show all available game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  retrosnake play
  retrosnake play snake_classic
  retrosnake menu
  retrosnake serve --ssh :2222
  retrosnake scores snake`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.retrosnake/scores.db", "Path to scores database")

	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
