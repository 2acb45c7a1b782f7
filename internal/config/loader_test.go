package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	for _, name := range []string{PresetEasy, PresetNormal, PresetHard} {
		p, err := cfg.Preset(name)
		if err != nil {
			t.Errorf("Preset(%q) failed: %v", name, err)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("Preset %q invalid: %v", name, err)
		}
	}

	hard, _ := cfg.Preset(PresetHard)
	if hard.Rows != 16 || hard.Cols != 30 || hard.Mines != 99 {
		t.Errorf("Hard preset = %+v, expected 16x30/99", hard)
	}
}

func TestLoadCustomFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte("presets:\n  easy:\n    rows: 5\n    cols: 7\n    mines: 3\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	easy, err := cfg.Preset(PresetEasy)
	if err != nil {
		t.Fatalf("Preset(easy) failed: %v", err)
	}
	if easy.Rows != 5 || easy.Cols != 7 || easy.Mines != 3 {
		t.Errorf("Custom easy preset = %+v, expected 5x7/3", easy)
	}

	// Presets absent from the custom file fall back to defaults.
	normal, err := cfg.Preset(PresetNormal)
	if err != nil {
		t.Fatalf("Preset(normal) fallback failed: %v", err)
	}
	if normal.Rows != 16 || normal.Cols != 16 || normal.Mines != 40 {
		t.Errorf("Fallback normal preset = %+v, expected 16x16/40", normal)
	}
}

func TestLoadMissingCustomFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestPresetValidate(t *testing.T) {
	cases := []struct {
		name   string
		preset BoardPreset
		ok     bool
	}{
		{"valid", BoardPreset{Rows: 9, Cols: 9, Mines: 10}, true},
		{"zero rows", BoardPreset{Rows: 0, Cols: 9, Mines: 1}, false},
		{"negative mines", BoardPreset{Rows: 9, Cols: 9, Mines: -1}, false},
		{"too many mines", BoardPreset{Rows: 2, Cols: 2, Mines: 5}, false},
		{"full board", BoardPreset{Rows: 2, Cols: 2, Mines: 4}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.preset.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}
