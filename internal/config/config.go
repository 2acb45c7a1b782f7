// Package config provides YAML-based configuration loading for the sweeper
// platform: board presets and display options.
package config

import "fmt"

// SweeperConfig contains all configuration for the sweeper game.
type SweeperConfig struct {
	Presets map[string]BoardPreset `yaml:"presets"`
	Display DisplayConfig          `yaml:"display"`
}

// BoardPreset defines the board dimensions and mine count for a named
// difficulty.
type BoardPreset struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Mines int `yaml:"mines"`
}

// Validate checks that a preset describes a constructible board.
func (p BoardPreset) Validate() error {
	if p.Rows < 1 || p.Cols < 1 {
		return fmt.Errorf("config: invalid board size %dx%d", p.Rows, p.Cols)
	}
	if p.Mines < 0 || p.Mines > p.Rows*p.Cols {
		return fmt.Errorf("config: %d mines do not fit on a %dx%d board", p.Mines, p.Rows, p.Cols)
	}
	return nil
}

// DisplayConfig defines rendering options.
type DisplayConfig struct {
	ShowTimer   bool `yaml:"show_timer"`   // Elapsed time in the HUD
	ShowCounter bool `yaml:"show_counter"` // Mines-remaining counter in the HUD
	WideCells   bool `yaml:"wide_cells"`   // Pad cells to two columns for a squarer board
}

// Preset names shipped in the default configuration.
const (
	PresetEasy   = "easy"
	PresetNormal = "normal"
	PresetHard   = "hard"
)

// Preset returns the named preset, falling back to the defaults for names
// missing from a user-supplied file.
func (c SweeperConfig) Preset(name string) (BoardPreset, error) {
	if p, ok := c.Presets[name]; ok {
		return p, p.Validate()
	}
	if p, ok := DefaultSweeperConfig().Presets[name]; ok {
		return p, nil
	}
	return BoardPreset{}, fmt.Errorf("config: unknown preset %q", name)
}

// PresetNames returns the configured preset names in difficulty order,
// known names first.
func (c SweeperConfig) PresetNames() []string {
	order := []string{PresetEasy, PresetNormal, PresetHard}
	names := make([]string, 0, len(c.Presets))
	for _, n := range order {
		if _, ok := c.Presets[n]; ok {
			names = append(names, n)
		}
	}
	for n := range c.Presets {
		known := false
		for _, o := range order {
			if n == o {
				known = true
				break
			}
		}
		if !known {
			names = append(names, n)
		}
	}
	return names
}
