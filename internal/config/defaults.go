package config

import (
	_ "embed"
)

//go:embed defaults/sweeper.yaml
var defaultSweeperYAML []byte

// DefaultSweeperConfig returns the built-in configuration: the three classic
// board presets and standard display options. Used as the final fallback
// when no config file is found and the embedded YAML fails to parse.
func DefaultSweeperConfig() SweeperConfig {
	return SweeperConfig{
		Presets: map[string]BoardPreset{
			PresetEasy:   {Rows: 9, Cols: 9, Mines: 10},
			PresetNormal: {Rows: 16, Cols: 16, Mines: 40},
			PresetHard:   {Rows: 16, Cols: 30, Mines: 99},
		},
		Display: DisplayConfig{
			ShowTimer:   true,
			ShowCounter: true,
			WideCells:   true,
		},
	}
}
