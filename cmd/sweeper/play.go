package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aluzhin/tui-sweeper/internal/config"
	"github.com/aluzhin/tui-sweeper/internal/core"
	"github.com/aluzhin/tui-sweeper/internal/games/sweeper"
	"github.com/aluzhin/tui-sweeper/internal/platform/tui"
	"github.com/aluzhin/tui-sweeper/internal/registry"
	"github.com/aluzhin/tui-sweeper/internal/storage"
)

var (
	flagConfig string
	flagPreset string
	flagRows   int
	flagCols   int
	flagMines  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play sweeper",
	Long: `Start a game. Without --preset or custom dimensions a preset picker
menu is shown first.

Controls:
  Arrows/hjkl/wasd - Move cursor
  Space/Enter      - Reveal cell (left click)
  F                - Toggle flag (right click)
  C                - Chord a numbered cell (middle click)
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  sweeper play
  sweeper play --preset hard
  sweeper play --preset easy --seed 42
  sweeper play --rows 20 --cols 30 --mines 120
  sweeper play --config ./my-sweeper.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Custom board rows")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Custom board columns")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Custom mine count")
}

func runPlay(_ *cobra.Command, _ []string) {
	sc, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	sweeper.SetConfigPath(flagConfig)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	custom := flagRows != 0 || flagCols != 0 || flagMines != 0
	if custom {
		preset := config.BoardPreset{Rows: flagRows, Cols: flagCols, Mines: flagMines}
		if verr := preset.Validate(); verr != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid board: %v\n", verr)
			os.Exit(1)
		}
		sweeper.SetCustomBoard(flagRows, flagCols, flagMines)
	} else if flagPreset != "" {
		if _, perr := sc.Preset(flagPreset); perr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", perr)
			os.Exit(1)
		}
		sweeper.SetPreset(flagPreset)
	} else {
		// No explicit board: run the preset picker menu flow.
		if serr := tui.RunSession(sc, store, cfg); serr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", serr)
			os.Exit(1)
		}
		return
	}

	game, err := registry.Create("sweeper")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if runErr := tui.Run(game, store, cfg); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
