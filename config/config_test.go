package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/astrokit/unitconv/config"
	"github.com/astrokit/unitconv/log"
)

func TestRead(t *testing.T) {
	const data = `
units:
  - name: furlong
    factor: 201.168
    base: m
prefixes:
  - symbol: T
    factor: 1e12
aliases:
  - pattern: fur
    replacement: furlong
  - ang: A
log:
  level: debug
`
	cfg, err := config.Read(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	if len(cfg.Units) != 1 || cfg.Units[0].Name != "furlong" || cfg.Units[0].Factor != 201.168 || cfg.Units[0].Base != "m" {
		t.Errorf("Wanted unit furlong 201.168 m, got %+v", cfg.Units)
	}
	if len(cfg.Prefixes) != 1 || cfg.Prefixes[0].Symbol != "T" || cfg.Prefixes[0].Factor != 1e12 {
		t.Errorf("Wanted prefix T 1e12, got %+v", cfg.Prefixes)
	}

	want := []config.Alias{
		{Pattern: "fur", Replacement: "furlong"},
		{Pattern: "ang", Replacement: "A"},
	}
	if len(cfg.Aliases) != len(want) {
		t.Fatalf("Wanted %d aliases, got %d", len(want), len(cfg.Aliases))
	}
	for i, a := range want {
		if cfg.Aliases[i] != a {
			t.Errorf("alias %d: Wanted %+v, got %+v", i, a, cfg.Aliases[i])
		}
	}

	if cfg.Log.Level != log.LevelDebug {
		t.Errorf("Wanted log level %v, got %v", log.LevelDebug, cfg.Log.Level)
	}
}

func TestReadEmpty(t *testing.T) {
	cfg, err := config.Read(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Units) != 0 || len(cfg.Prefixes) != 0 || len(cfg.Aliases) != 0 {
		t.Errorf("Wanted empty config, got %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unitconv.yaml")
	data := []byte("units:\n  - name: smoot\n    factor: 1.7018\n    base: m\n")
	if err := os.WriteFile(path, data, 0666); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Units) != 1 || cfg.Units[0].Name != "smoot" {
		t.Errorf("Wanted unit smoot, got %+v", cfg.Units)
	}

	// A missing first file falls back to the default config.
	cfg, err = config.Load(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != config.Default() {
		t.Errorf("Wanted default config, got %+v", cfg)
	}
}
