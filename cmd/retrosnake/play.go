package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-snake/internal/config"
	"github.com/vovakirdan/retro-snake/internal/core"
	"github.com/vovakirdan/retro-snake/internal/games/snake"
	"github.com/vovakirdan/retro-snake/internal/platform/tui"
	"github.com/vovakirdan/retro-snake/internal/registry"
	"github.com/vovakirdan/retro-snake/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the specified mode (default: snake).

Controls:
  Arrows/WASD/HJKL - Steer
  P/Space          - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower base speed, more frequent power-ups
  normal - Default speed curve
  hard   - Faster base speed, rarer power-ups
  fixed  - No speed scaling, stays at base speed

Examples:
  retrosnake play
  retrosnake play snake_classic
  retrosnake play snake --difficulty hard
  retrosnake play snake --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameConfig loads the YAML config, applies the difficulty preset,
// and rebinds the registry factories to close over the result.
func applyGameConfig() error {
	sc, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		config.ApplySnakePreset(&sc, config.DifficultyPreset(flagDifficulty))
	}

	gc := toGameConfig(sc)
	registry.Rebind("snake", func() registry.Game {
		return snake.NewWithConfig(gc)
	})
	registry.Rebind("snake_classic", func() registry.Game {
		return snake.NewClassicWithConfig(gc)
	})
	return nil
}

// toGameConfig translates the YAML schema into the simulation config.
// Unset (zero) values keep their defaults so partial configs work.
func toGameConfig(sc config.SnakeConfig) snake.Config {
	gc := snake.DefaultConfig()

	setPos := func(dst *int, v int) {
		if v > 0 {
			*dst = v
		}
	}

	setPos(&gc.GridWidth, sc.Grid.Width)
	setPos(&gc.GridHeight, sc.Grid.Height)
	setPos(&gc.BaseSpeed, sc.Speed.Base)
	setPos(&gc.MaxSpeed, sc.Speed.Max)
	setPos(&gc.MinDelayMS, sc.Speed.MinDelayMS)
	setPos(&gc.MaxDelayMS, sc.Speed.MaxDelayMS)
	setPos(&gc.FoodPoints, sc.Scoring.FoodPoints)
	setPos(&gc.LevelEvery, sc.Scoring.LevelEvery)
	setPos(&gc.SpawnEveryTicks, sc.PowerUps.SpawnEveryTicks)
	setPos(&gc.ItemTTLTicks, sc.PowerUps.ItemTTLTicks)
	setPos(&gc.ExtendSegments, sc.PowerUps.ExtendSegments)
	setPos(&gc.EffectDurations[snake.EffectSpeedBoost], sc.PowerUps.Durations.SpeedBoost)
	setPos(&gc.EffectDurations[snake.EffectSlowDown], sc.PowerUps.Durations.SlowDown)
	setPos(&gc.EffectDurations[snake.EffectDoublePoints], sc.PowerUps.Durations.DoublePoints)
	setPos(&gc.EffectDurations[snake.EffectInvincibility], sc.PowerUps.Durations.Invincibility)
	gc.PowerUpsEnabled = sc.PowerUps.Enabled

	return gc
}

// terminalSize returns the current terminal dimensions, with fallbacks.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "snake"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'retrosnake modes' to see available modes.")
		os.Exit(1)
	}

	if err := applyGameConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
