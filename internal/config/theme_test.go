package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/taskflow/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	themeContent := []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  edit: "#0000FF"
`)
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(ThemeFileEnv, themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify theme was merged
	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.ColorScheme.Create)
	}
	if cfg.ColorScheme.Edit != "#0000FF" {
		t.Errorf("Expected edit to be #0000FF, got %s", cfg.ColorScheme.Edit)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.Delete == "" {
		t.Error("Expected delete to have default value")
	}
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	isolate(t)
	t.Setenv(ThemeFileEnv, filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Expected default accent, got %s", cfg.ColorScheme.Accent)
	}
}

func TestPresetsAreComplete(t *testing.T) {
	for _, name := range colors.Presets {
		scheme := colors.GetPreset(name)
		if scheme.Preset != name {
			t.Errorf("GetPreset(%q).Preset = %q", name, scheme.Preset)
		}

		var empty colors.ColorScheme
		empty.Preset = name
		empty.ApplyDefaults()
		if empty != *scheme {
			t.Errorf("ApplyDefaults on empty %q scheme did not reproduce the preset", name)
		}
	}
}

func TestMergeFrom_SwitchesPreset(t *testing.T) {
	scheme := DefaultColorScheme()
	scheme.MergeFrom(colors.ColorScheme{Preset: "wave", Accent: "#ABCDEF"})

	wave := colors.Wave()
	if scheme.Accent != "#ABCDEF" {
		t.Errorf("Expected accent override, got %s", scheme.Accent)
	}
	if scheme.Normal != wave.Normal {
		t.Errorf("Expected wave normal %s, got %s", wave.Normal, scheme.Normal)
	}
}
