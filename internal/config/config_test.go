package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points the home directory at an empty temp dir so user configs
// on the machine running the tests do not leak in.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	bowling, err := LoadBowling("")
	if err != nil {
		t.Fatalf("LoadBowling() failed: %v", err)
	}
	if bowling != DefaultBowlingConfig() {
		t.Errorf("embedded bowling config = %+v, want %+v", bowling, DefaultBowlingConfig())
	}

	tennis, err := LoadTennis("")
	if err != nil {
		t.Fatalf("LoadTennis() failed: %v", err)
	}
	if tennis != DefaultTennisConfig() {
		t.Errorf("embedded tennis config = %+v, want %+v", tennis, DefaultTennisConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "tennis.yaml", `
sets_to_win: 2
set: {games: 6, margin: 2}
game: {points: 4, margin: 2}
tiebreak: {at: 6, points: 7, margin: 2, final_set: true}
`)

	cfg, err := LoadTennis(path)
	if err != nil {
		t.Fatalf("LoadTennis() failed: %v", err)
	}
	if cfg.SetsToWin != 2 || cfg.Tiebreak.Margin != 2 || !cfg.Tiebreak.FinalSet {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.MaxSets() != 3 {
		t.Errorf("MaxSets() = %d, want 3", cfg.MaxSets())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		invalid bool
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), false},
		{"bad yaml", writeFile(t, dir, "bad.yaml", "frames: [1, 2"), false},
		{"zero frames", writeFile(t, dir, "zero.yaml", "frames: 0\npins: 10\nballs_per_frame: 2"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBowling(tt.path)
			if err == nil {
				t.Fatal("LoadBowling() should fail")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, home, filepath.Join(".scorekeeper", "configs", "bowling.yaml"), `
frames: 5
pins: 10
balls_per_frame: 3
final_frame_balls: 3
bonuses: false
`)

	cfg, err := LoadBowling("")
	if err != nil {
		t.Fatalf("LoadBowling() failed: %v", err)
	}
	if cfg.Frames != 5 || cfg.Bonuses {
		t.Errorf("user config not picked up: %+v", cfg)
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, home, filepath.Join(".scorekeeper", "configs", "tennis.yaml"), "sets_to_win: 0\n")

	cfg, err := LoadTennis("")
	if err != nil {
		t.Fatalf("LoadTennis() failed: %v", err)
	}
	if cfg != DefaultTennisConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"default bowling", DefaultBowlingConfig().Validate()},
		{"default tennis", DefaultTennisConfig().Validate()},
	}
	for _, tt := range tests {
		if tt.err != nil {
			t.Errorf("%s: Validate() = %v", tt.name, tt.err)
		}
	}

	bad := DefaultBowlingConfig()
	bad.FinalFrameBalls = 1
	if err := bad.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("short final frame: Validate() = %v", err)
	}

	noTiebreak := DefaultTennisConfig()
	noTiebreak.Tiebreak = TennisTiebreak{}
	if err := noTiebreak.Validate(); err != nil {
		t.Errorf("disabled tie-break should be valid: %v", err)
	}

	badGame := DefaultTennisConfig()
	badGame.Game.Margin = 0
	if err := badGame.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero game margin: Validate() = %v", err)
	}
}

func TestPresets(t *testing.T) {
	for _, p := range BowlingPresets {
		cfg := DefaultBowlingConfig()
		if err := ApplyBowlingPreset(&cfg, p); err != nil {
			t.Errorf("ApplyBowlingPreset(%q) failed: %v", p, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("bowling preset %q is invalid: %v", p, err)
		}
	}
	for _, p := range TennisPresets {
		cfg := DefaultTennisConfig()
		if err := ApplyTennisPreset(&cfg, p); err != nil {
			t.Errorf("ApplyTennisPreset(%q) failed: %v", p, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("tennis preset %q is invalid: %v", p, err)
		}
	}

	kids := DefaultBowlingConfig()
	_ = ApplyBowlingPreset(&kids, PresetKids)
	if kids.Frames != 5 || kids.BallsPerFrame != 3 || kids.Bonuses {
		t.Errorf("kids preset = %+v", kids)
	}

	cfg := DefaultTennisConfig()
	if err := ApplyTennisPreset(&cfg, "wimbledon-1877"); err == nil {
		t.Error("unknown preset should fail")
	}
	if err := ApplyBowlingPreset(&kids, PresetFast4); err == nil {
		t.Error("tennis preset should not apply to bowling")
	}
}
