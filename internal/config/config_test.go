package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "img2ascii.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Named file that does not exist should fail with os.ErrNotExist, got %v", err)
	}

	cfg, err := Load("")
	if err != nil || *cfg != *Default() {
		t.Errorf("Empty path should give defaults, got %+v, %v", cfg, err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
width = 120
auto_orient = true
open = true
title = "cat"
log_level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Width != 120 || !cfg.AutoOrient || !cfg.Open || cfg.Title != "cat" || cfg.LogLevel != "debug" {
		t.Errorf("File values not applied: %+v", cfg)
	}
	// Untouched keys keep their defaults
	if cfg.Scale != 2.0 || cfg.Decoder != "go" || cfg.Background != "#383838" {
		t.Errorf("Defaults lost: %+v", cfg)
	}
}

func TestLoadEmptyColorsAllowed(t *testing.T) {
	cfg, err := Load(writeConfig(t, "background = ''\nforeground = '#fff'\n"))
	if err != nil {
		t.Fatalf("Empty color means no style and should load: %v", err)
	}
	if cfg.Background != "" || cfg.Foreground != "#fff" {
		t.Errorf("Colors not applied: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":      "width = = 3",
		"unknown key": "widht = 3",
		"negative":    "width = -1",
		"zero scale":  "scale = 0.0",
		"css color":   "background = 'rgb(1,2,3)'",
		"bad hex":     "foreground = '#12345'",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Errorf("Expected error for %q", body)
			}
		})
	}
}
